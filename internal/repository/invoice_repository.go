package repository

import (
	"context"
	"database/sql"

	"secondhand/market-service/internal/models"
)

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice *models.Invoice) error
}

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

func (r *invoiceRepository) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	query := `
	INSERT INTO invoices (id, subscription_name, user_id, amount, bank_code, transaction_id, order_info, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at
	`

	return r.db.QueryRowContext(ctx, query,
		invoice.ID, invoice.SubscriptionName, invoice.UserID, invoice.Amount, invoice.BankCode,
		invoice.TransactionID, invoice.OrderInfo, string(invoice.Status),
	).Scan(&invoice.CreatedAt)
}
