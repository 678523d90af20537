package report

import (
	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/asaas"
	"github.com/jaina/polo-report-service/config"
	"github.com/jaina/polo-report-service/keys"
	"github.com/jaina/polo-report-service/transformer"
)

// Generator produces the two polo reports
type Generator interface {
	Ledger(req Request) (*LedgerReport, error)
	Settlement(req Request) (*SettlementReport, error)
}

// Engine implements Generator. Every report recomputes from Asaas; calls are issued one at a
// time so the row ceiling is checked by a single writer.
type Engine struct {
	Client             asaas.Client
	Transformer        transformer.Transformer
	Limits             config.ReportLimits
	UpstreamConfigured bool
}

// New returns a report Engine
func New(client asaas.Client, t transformer.Transformer, limits config.ReportLimits, upstreamConfigured bool) *Engine {
	return &Engine{
		Client:             client,
		Transformer:        t,
		Limits:             limits,
		UpstreamConfigured: upstreamConfigured,
	}
}

// Ledger builds the historical ledger report for a polo
func (e *Engine) Ledger(req Request) (*LedgerReport, error) {

	q, res, err := e.prepare(KindLedger, req)
	if err != nil {
		return nil, err
	}

	out := fanOut(e.Client, res.Customers, q.Bounds.MaxFaturasCliente, q.Bounds.MaxRegistros,
		ledgerPredicate(q), e.Transformer.GetLedgerRow)

	e.logCompletion(q, res, out.FailedCustomers, len(out.Rows))
	return assembleLedger(q, res, out), nil
}

// Settlement builds the settled payments report for a polo and window
func (e *Engine) Settlement(req Request) (*SettlementReport, error) {

	q, res, err := e.prepare(KindSettlement, req)
	if err != nil {
		return nil, err
	}

	out := fanOut(e.Client, res.Customers, q.Bounds.MaxFaturasCliente, q.Bounds.MaxRegistros,
		settlementPredicate(q), e.Transformer.GetSettlementRow)

	e.logCompletion(q, res, out.FailedCustomers, len(out.Rows))
	return assembleSettlement(q, res, out), nil
}

func (e *Engine) prepare(kind Kind, req Request) (Query, Resolution, error) {

	q, err := ParseQuery(kind, req, e.Limits)
	if err != nil {
		return Query{}, Resolution{}, err
	}

	if !e.UpstreamConfigured {
		return Query{}, Resolution{}, ErrUpstreamUnavailable
	}

	log.Info("generating report", log.Data{
		keys.ReportKind:   string(kind),
		keys.Polo:         q.Polo,
		keys.MaxRegistros: q.Bounds.MaxRegistros,
	})

	resolver := Resolver{Client: e.Client, PageSize: e.Limits.PageSize, MaxPageLoops: e.Limits.MaxPageLoops}
	res := resolver.Resolve(q.Polo, q.Bounds.MaxClientes)
	if len(res.Customers) == 0 {
		return Query{}, res, &NoCustomersError{Polo: q.Polo, Resolution: res}
	}

	return q, res, nil
}

func (e *Engine) logCompletion(q Query, res Resolution, failed, rows int) {
	log.Info("report generated", log.Data{
		keys.ReportKind:      string(q.Kind),
		keys.Polo:            q.Polo,
		keys.CustomerCount:   len(res.Customers),
		keys.PagesFetched:    res.PagesFetched,
		keys.FailedCustomers: failed,
		keys.Rows:            rows,
	})
}
