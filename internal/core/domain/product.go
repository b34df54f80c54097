package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")
var ErrProductNameTaken = errors.New("product name already taken")
var ErrInvalidPrice = errors.New("price cannot be negative")

// Product is a purchasable item. Price is stored with a fixed 2-decimal
// precision; products without an uploaded image carry the default placeholder.
type Product struct {
	ID         uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string          `json:"name" gorm:"size:32;not null;uniqueIndex"`
	Supplier   string          `json:"supplier" gorm:"size:32;not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageName  string          `json:"-" gorm:"size:100"`
	ImageType  string          `json:"-" gorm:"size:50"`
	ImageBytes []byte          `json:"-" gorm:"type:blob"`
	Orders     []Order         `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// HasImage reports whether the product has a usable image.
func (p *Product) HasImage() bool {
	return len(p.ImageBytes) > 0 && p.ImageType != ""
}
