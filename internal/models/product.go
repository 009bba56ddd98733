package models

import (
	"time"
)

type Product struct {
	ID             string
	OwnerID        string
	Name           string
	Description    string
	Price          float64
	Category       string
	Address        string
	PurchasingDate time.Time
	Images         []Image
	Thumbnail      string
	IsActive       bool
	IsSold         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ImageIDs returns the media host ids of the product images.
func (p *Product) ImageIDs() []string {
	ids := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		ids = append(ids, img.ID)
	}
	return ids
}

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceFailed  InvoiceStatus = "failed"
)

type Invoice struct {
	ID               string
	SubscriptionName string
	UserID           string
	Amount           float64
	BankCode         string
	TransactionID    string
	OrderInfo        string
	Status           InvoiceStatus
	CreatedAt        time.Time
}
