package report

import (
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/asaas"
	"github.com/jaina/polo-report-service/data"
	"github.com/jaina/polo-report-service/keys"
)

const settledStatus = data.StatusReceived

// predicate decides whether a payment contributes a row
type predicate func(payment data.Payment) bool

// fanOutResult carries the rows produced by a fan-out and its failure bookkeeping
type fanOutResult[T any] struct {
	Rows             []T
	CustomersQueried int
	FailedCustomers  int
	Capped           bool
}

// fanOut fetches up to perCustomer payments for each customer in order, keeps those passing
// keep and maps them to rows. A customer whose fetch fails is skipped. Processing stops the
// moment maxRows rows have been collected.
func fanOut[T any](client asaas.Client, customers []data.Customer, perCustomer, maxRows int,
	keep predicate, toRow func(data.Customer, data.Payment) T) fanOutResult[T] {

	res := fanOutResult[T]{Rows: []T{}}

	for _, customer := range customers {

		res.CustomersQueried++
		payments, err := client.ListPayments(customer.ID, perCustomer)
		if asaas.OutcomeOf(len(payments), err) == asaas.OutcomeFailed {
			res.FailedCustomers++
			log.Info("skipping customer after payments fetch failure", log.Data{
				keys.Customer: customer.ID,
				keys.Message:  err.Error(),
			})
			continue
		}

		for _, payment := range payments {
			if !keep(payment) {
				continue
			}
			res.Rows = append(res.Rows, toRow(customer, payment))
			if len(res.Rows) >= maxRows {
				res.Capped = true
				return res
			}
		}
	}

	return res
}

// ledgerPredicate applies the optional status filter then the optional window on the
// settlement date. With any window bound present, unsettled payments are excluded.
func ledgerPredicate(q Query) predicate {
	return func(payment data.Payment) bool {
		if q.Status != "" && strings.ToUpper(payment.Status) != q.Status {
			return false
		}
		if !q.Window.IsSet() {
			return true
		}
		return settledWithin(payment, q.Window)
	}
}

// settlementPredicate keeps settled payments whose settlement date falls inside the window
func settlementPredicate(q Query) predicate {
	return func(payment data.Payment) bool {
		if strings.ToUpper(payment.Status) != settledStatus {
			return false
		}
		return settledWithin(payment, q.Window)
	}
}

func settledWithin(payment data.Payment, window Window) bool {
	if payment.PaymentDate == nil || strings.TrimSpace(*payment.PaymentDate) == "" {
		return false
	}
	settled, ok := parseDate(*payment.PaymentDate)
	if !ok {
		return false
	}
	return window.Contains(settled)
}
