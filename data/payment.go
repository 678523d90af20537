package data

import (
	"github.com/shopspring/decimal"
)

// Payment statuses reported by Asaas. Only StatusReceived is interpreted by the reports.
const (
	StatusPending   = "PENDING"
	StatusReceived  = "RECEIVED"
	StatusConfirmed = "CONFIRMED"
	StatusOverdue   = "OVERDUE"
	StatusRefunded  = "REFUNDED"
)

// Billing types accepted when issuing an invoice
const (
	BillingTypeBoleto = "BOLETO"
	BillingTypePix    = "PIX"
)

// Payment represents a payment (invoice) record returned by the Asaas payments endpoint
type Payment struct {
	ID          string              `json:"id"`
	Customer    string              `json:"customer"`
	Value       decimal.Decimal     `json:"value"`
	NetValue    decimal.NullDecimal `json:"netValue"`
	DueDate     string              `json:"dueDate"`
	PaymentDate *string             `json:"paymentDate"`
	Status      string              `json:"status"`
	BillingType string              `json:"billingType"`
	Description string              `json:"description"`
	InvoiceURL  string              `json:"invoiceUrl"`
}

// PaymentPage represents a page of payments for a customer
type PaymentPage struct {
	Object     string    `json:"object"`
	HasMore    bool      `json:"hasMore"`
	TotalCount int       `json:"totalCount"`
	Limit      int       `json:"limit"`
	Offset     int       `json:"offset"`
	Data       []Payment `json:"data"`
}

// PaymentRequest is the body sent when issuing a payment
type PaymentRequest struct {
	Customer    string          `json:"customer"`
	Value       decimal.Decimal `json:"value"`
	DueDate     string          `json:"dueDate"`
	Description string          `json:"description"`
	BillingType string          `json:"billingType"`
}

// SettlementDate returns the settlement date or an empty string when the payment is unsettled
func (p Payment) SettlementDate() string {
	if p.PaymentDate == nil {
		return ""
	}
	return *p.PaymentDate
}
