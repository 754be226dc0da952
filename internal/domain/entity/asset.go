// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Asset represents an owned durable good whose age is tracked against an
// expected lifespan, in months. Purchase prices are in minor currency units.
type Asset struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	Name                   string
	Category               string
	PurchasePriceCents     int64
	PurchaseDate           time.Time
	ExpectedLifespanMonths int
	Notes                  string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewAsset creates a new Asset entity.
func NewAsset(
	userID uuid.UUID,
	name string,
	category string,
	purchasePriceCents int64,
	purchaseDate time.Time,
	expectedLifespanMonths int,
	notes string,
) *Asset {
	now := time.Now().UTC()

	return &Asset{
		ID:                     uuid.New(),
		UserID:                 userID,
		Name:                   name,
		Category:               category,
		PurchasePriceCents:     purchasePriceCents,
		PurchaseDate:           purchaseDate,
		ExpectedLifespanMonths: expectedLifespanMonths,
		Notes:                  notes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}
