package transformer

import (
	"github.com/jaina/polo-report-service/data"
	"github.com/jaina/polo-report-service/models"
)

// Transformer provides an interface by which to transform Asaas records into report rows
type Transformer interface {
	GetLedgerRow(customer data.Customer, payment data.Payment) models.LedgerRow
	GetSettlementRow(customer data.Customer, payment data.Payment) models.SettlementRow
}

// Transform implements the Transformer interface
type Transform struct{}

// New returns a new implementation of the Transformer interface
func New() *Transform {

	return &Transform{}
}

// GetLedgerRow transforms a customer payment into a historical ledger row. The polo is
// echoed from the customer record rather than the query.
func (t *Transform) GetLedgerRow(customer data.Customer, payment data.Payment) models.LedgerRow {

	var settlementDate *string
	if payment.PaymentDate != nil {
		d := *payment.PaymentDate
		settlementDate = &d
	}

	return models.LedgerRow{
		Cliente:       customer.Name,
		CpfCnpj:       customer.CpfCnpj,
		Polo:          customer.UnitLabel(),
		FaturaID:      payment.ID,
		Descricao:     payment.Description,
		Valor:         payment.Value,
		ValorLiquido:  payment.NetValue,
		Vencimento:    payment.DueDate,
		Status:        payment.Status,
		DataPagamento: settlementDate,
		LinkPagamento: payment.InvoiceURL,
	}
}

// GetSettlementRow transforms a settled customer payment into a settlement row. The net
// amount falls back to the gross amount when Asaas does not report one.
func (t *Transform) GetSettlementRow(customer data.Customer, payment data.Payment) models.SettlementRow {

	netValue := payment.Value
	if payment.NetValue.Valid {
		netValue = payment.NetValue.Decimal
	}

	return models.SettlementRow{
		Cliente:       customer.Name,
		CpfCnpj:       customer.CpfCnpj,
		Polo:          customer.UnitLabel(),
		FaturaID:      payment.ID,
		Descricao:     payment.Description,
		Valor:         payment.Value,
		ValorLiquido:  netValue,
		Vencimento:    payment.DueDate,
		Status:        payment.Status,
		DataPagamento: payment.SettlementDate(),
		LinkPagamento: payment.InvoiceURL,
	}
}
