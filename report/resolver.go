package report

import (
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/asaas"
	"github.com/jaina/polo-report-service/data"
	"github.com/jaina/polo-report-service/keys"
)

// Outcome distinguishes why a resolution returned what it did
type Outcome int

const (
	// OutcomeEmpty means every page was read and no customer matched
	OutcomeEmpty Outcome = iota
	// OutcomeFound means customers matched and no page fetch failed
	OutcomeFound
	// OutcomePartial means a page fetch failed and the walk stopped early
	OutcomePartial
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomeFound:
		return "found"
	default:
		return "partial"
	}
}

// Resolution is the result of walking the customer collection for a polo
type Resolution struct {
	Customers    []data.Customer
	PagesFetched int
	PagesFailed  int
	Capped       bool
}

// Outcome classifies the resolution
func (r Resolution) Outcome() Outcome {
	if r.PagesFailed > 0 {
		return OutcomePartial
	}
	if len(r.Customers) == 0 {
		return OutcomeEmpty
	}
	return OutcomeFound
}

// Resolver discovers the customers belonging to a polo
type Resolver struct {
	Client       asaas.Client
	PageSize     int
	MaxPageLoops int
}

// NormalizeUnit is the normalisation under which polo labels are compared
func NormalizeUnit(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Resolve walks the customer collection page by page and returns the customers whose unit
// label equals the polo after normalisation. The walk never fetches more than MaxPageLoops
// pages and stops as soon as maxCustomers have matched. A failed page ends the walk and
// whatever matched so far is returned.
func (r *Resolver) Resolve(polo string, maxCustomers int) Resolution {

	target := NormalizeUnit(polo)
	res := Resolution{Customers: []data.Customer{}}

	offset := 0
	for loop := 0; loop < r.MaxPageLoops; loop++ {

		page, hasMore, err := r.Client.ListCustomersPage(offset, r.PageSize)
		outcome := asaas.OutcomeOf(len(page), err)
		if outcome == asaas.OutcomeFailed {
			res.PagesFailed++
			log.Info("customer page fetch failed, returning partial resolution", log.Data{
				keys.Polo:          polo,
				keys.Offset:        offset,
				keys.CustomerCount: len(res.Customers),
				keys.Message:       err.Error(),
			})
			return res
		}

		res.PagesFetched++
		if outcome == asaas.OutcomeEmpty {
			return res
		}

		for _, customer := range page {
			if NormalizeUnit(customer.UnitLabel()) != target {
				continue
			}
			res.Customers = append(res.Customers, customer)
			if len(res.Customers) >= maxCustomers {
				res.Capped = true
				return res
			}
		}

		if len(page) < r.PageSize || !hasMore {
			return res
		}
		offset += r.PageSize
	}

	log.Info("customer walk stopped at the page loop ceiling", log.Data{
		keys.Polo:          polo,
		keys.PagesFetched:  res.PagesFetched,
		keys.CustomerCount: len(res.Customers),
	})
	return res
}
