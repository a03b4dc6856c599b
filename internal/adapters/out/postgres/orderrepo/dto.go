// Package orderrepo provides data transfer objects and mapping functions for purchase order persistence.
// This package implements the repository pattern for the purchase order domain aggregate,
// handling the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"bookstore/internal/adapters/out/postgres/bookrepo"
	"bookstore/internal/adapters/out/postgres/customerrepo"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting purchase order aggregates.
// Foreign keys to books and customers enforce referential integrity at the
// store level. Multiple orders for the same (book, customer) pair are
// distinct rows; CreatedAt orders them and the most recent one wins
// content-based lookups.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     int
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Book     bookrepo.BookDTO         `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
	Customer customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for purchase order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts a purchase order domain aggregate to its database representation.
func fromDomain(order *order.PurchaseOrder) OrderDTO {
	return OrderDTO{
		ID:         order.ID().Bytes(),
		BookID:     order.BookID().Bytes(),
		CustomerID: order.CustomerID().Bytes(),
		Status:     int(order.Status()),
	}
}

// toDomain converts a database DTO to a purchase order domain aggregate
// using RestorePurchaseOrder.
func toDomain(dto OrderDTO) (*order.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookID, err := kernel.UUIDFromBytes(dto.BookID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestorePurchaseOrder(id, bookID, customerID, order.Status(dto.Status))
}
