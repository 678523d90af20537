package models

import (
	"github.com/shopspring/decimal"
)

// LedgerRow is a single row of the historical ledger report
type LedgerRow struct {
	Cliente       string              `json:"cliente"`
	CpfCnpj       string              `json:"cpf_cnpj"`
	Polo          string              `json:"polo"`
	FaturaID      string              `json:"fatura_id"`
	Descricao     string              `json:"descricao"`
	Valor         decimal.Decimal     `json:"valor"`
	ValorLiquido  decimal.NullDecimal `json:"valor_liquido"`
	Vencimento    string              `json:"vencimento"`
	Status        string              `json:"status"`
	DataPagamento *string             `json:"data_pagamento"`
	LinkPagamento string              `json:"link_pagamento"`
}

// SettlementRow is a single row of the settled payments report
type SettlementRow struct {
	Cliente       string          `json:"cliente"`
	CpfCnpj       string          `json:"cpf_cnpj"`
	Polo          string          `json:"polo"`
	FaturaID      string          `json:"fatura_id"`
	Descricao     string          `json:"descricao"`
	Valor         decimal.Decimal `json:"valor"`
	ValorLiquido  decimal.Decimal `json:"valor_liquido"`
	Vencimento    string          `json:"vencimento"`
	Status        string          `json:"status"`
	DataPagamento string          `json:"data_pagamento"`
	LinkPagamento string          `json:"link_pagamento"`
}
