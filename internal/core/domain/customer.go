package domain

import (
	"errors"
	"strings"
)

// Role restricts an account to one of the two defined access levels.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole converts a request string to a Role, case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCustomer:
		return RoleCustomer, true
	}
	return "", false
}

var ErrCustomerNotFound = errors.New("customer not found")
var ErrUsernameTaken = errors.New("username already taken")
var ErrInvalidRole = errors.New("invalid role")
var ErrNotAllowedToDelete = errors.New("not allowed to delete other users")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrImageNotFound = errors.New("image not found")

// Customer is an account holder. The profile image is stored inline as a
// blob; deleting a customer cascades to their orders.
type Customer struct {
	ID           uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string  `json:"username" gorm:"size:32;not null;uniqueIndex"`
	Address      string  `json:"address" gorm:"size:64;not null"`
	Phone        string  `json:"phone" gorm:"size:16;not null"`
	PasswordHash string  `json:"-" gorm:"size:255;not null"`
	Role         Role    `json:"role" gorm:"size:16;not null"`
	ImageName    string  `json:"-" gorm:"size:100"`
	ImageType    string  `json:"-" gorm:"size:50"`
	ImageBytes   []byte  `json:"-" gorm:"type:blob"`
	Orders       []Order `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// HasImage reports whether the customer has a usable profile image.
func (c *Customer) HasImage() bool {
	return len(c.ImageBytes) > 0 && c.ImageType != ""
}
