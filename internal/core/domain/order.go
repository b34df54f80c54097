package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
)

// validTransitions defines the allowed state machine transitions.
// Status only moves forward: SHIPPED → DELIVERED.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusShipped: {StatusDelivered},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order records a single purchase of a product by a customer. City is a
// snapshot of the customer's address at creation time, not a live reference.
type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	Date       time.Time   `json:"date" gorm:"not null;index"`
	City       string      `json:"city" gorm:"size:64;not null"`
	Status     OrderStatus `json:"status" gorm:"size:16;not null;index"`
	CustomerID uint        `json:"customer_id" gorm:"not null;index"`
	Customer   Customer    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ProductID  uint        `json:"product_id" gorm:"not null;index"`
	Product    Product     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// OrderEvent is an audit record of an order state change.
type OrderEvent struct {
	OrderID   uint
	Status    OrderStatus
	Timestamp time.Time
	Source    string
}
