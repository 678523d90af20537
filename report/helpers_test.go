package report

import (
	"github.com/jaina/polo-report-service/config"
	"github.com/jaina/polo-report-service/data"
	"github.com/shopspring/decimal"
)

func testLimits() config.ReportLimits {
	return config.ReportLimits{
		PageSize:                 2,
		MaxPageLoops:             5,
		DefaultMaxClientes:       50,
		DefaultMaxFaturasCliente: 20,
		DefaultMaxRegistros:      100,
		LimitMaxClientes:         100,
		LimitMaxFaturasCliente:   50,
		LimitMaxRegistros:        500,
	}
}

func customer(id, name, polo string) data.Customer {
	return data.Customer{ID: id, Name: name, CpfCnpj: "cpf-" + id, Complement: polo}
}

func payment(id, status, due, paid string) data.Payment {
	p := data.Payment{
		ID:          id,
		Value:       decimal.RequireFromString("100"),
		DueDate:     due,
		Status:      status,
		Description: "Mensalidade " + id,
		InvoiceURL:  "https://www.asaas.com/i/" + id,
	}
	if paid != "" {
		p.PaymentDate = &paid
	}
	return p
}

func intPtr(i int) *int {
	return &i
}
