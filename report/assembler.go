package report

import (
	"fmt"
	"sort"

	"github.com/jaina/polo-report-service/models"
)

// Kind identifies one of the two report shapes
type Kind string

const (
	// KindLedger is the historical ledger of invoices
	KindLedger Kind = "faturas"
	// KindSettlement is the list of payments settled inside a window
	KindSettlement Kind = "pagamentos"
)

// Response statuses
const (
	StatusOK    = "ok"
	StatusError = "erro"
)

// Resolution states echoed on the response
const (
	ResolutionComplete = "completa"
	ResolutionPartial  = "parcial"
)

// Summary is the metadata shared by both report responses. The echoed bounds are the ones
// actually applied, so a caller can detect truncation by comparing Total to MaxRegistros.
type Summary struct {
	Status            string `json:"status"`
	Mensagem          string `json:"mensagem"`
	Polo              string `json:"polo"`
	DataInicial       string `json:"data_inicial,omitempty"`
	DataFinal         string `json:"data_final,omitempty"`
	StatusFiltro      string `json:"status_filtro,omitempty"`
	MaxClientes       int    `json:"max_clientes"`
	MaxFaturasCliente int    `json:"max_faturas_cliente"`
	MaxRegistros      int    `json:"max_registros"`
	TotalClientes     int    `json:"total_clientes"`
	ClientesComFalha  int    `json:"clientes_com_falha"`
	Resolucao         string `json:"resolucao"`
	Total             int    `json:"total"`
	Truncado          bool   `json:"truncado"`
}

// LedgerReport is the historical ledger response
type LedgerReport struct {
	Summary
	Faturas []models.LedgerRow `json:"faturas"`
}

// SettlementReport is the settled payments response
type SettlementReport struct {
	Summary
	Pagamentos []models.SettlementRow `json:"pagamentos"`
}

// SortLedger orders rows by customer name then due date. Ties keep production order.
func SortLedger(rows []models.LedgerRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Cliente != rows[j].Cliente {
			return rows[i].Cliente < rows[j].Cliente
		}
		return rows[i].Vencimento < rows[j].Vencimento
	})
}

// SortSettlement orders rows by settlement date. Ties keep production order.
func SortSettlement(rows []models.SettlementRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DataPagamento < rows[j].DataPagamento
	})
}

func summarize(q Query, res Resolution, customersFailed, total int, capped bool) Summary {

	resolution := ResolutionComplete
	if res.Outcome() == OutcomePartial || customersFailed > 0 {
		resolution = ResolutionPartial
	}

	noun := "fatura(s) encontrada(s)"
	if q.Kind == KindSettlement {
		noun = "pagamento(s) recebido(s)"
	}

	return Summary{
		Status:            StatusOK,
		Mensagem:          fmt.Sprintf("%d %s para %d cliente(s) do polo", total, noun, len(res.Customers)),
		Polo:              q.Polo,
		DataInicial:       q.DataInicial,
		DataFinal:         q.DataFinal,
		StatusFiltro:      q.Status,
		MaxClientes:       q.Bounds.MaxClientes,
		MaxFaturasCliente: q.Bounds.MaxFaturasCliente,
		MaxRegistros:      q.Bounds.MaxRegistros,
		TotalClientes:     len(res.Customers),
		ClientesComFalha:  customersFailed,
		Resolucao:         resolution,
		Total:             total,
		Truncado:          capped,
	}
}

// assembleLedger sorts ledger rows and wraps them with the summary
func assembleLedger(q Query, res Resolution, out fanOutResult[models.LedgerRow]) *LedgerReport {
	SortLedger(out.Rows)
	return &LedgerReport{
		Summary: summarize(q, res, out.FailedCustomers, len(out.Rows), out.Capped),
		Faturas: out.Rows,
	}
}

// assembleSettlement sorts settlement rows and wraps them with the summary
func assembleSettlement(q Query, res Resolution, out fanOutResult[models.SettlementRow]) *SettlementReport {
	SortSettlement(out.Rows)
	return &SettlementReport{
		Summary:    summarize(q, res, out.FailedCustomers, len(out.Rows), out.Capped),
		Pagamentos: out.Rows,
	}
}
