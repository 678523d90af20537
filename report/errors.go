package report

import (
	"errors"
	"fmt"

	"github.com/jaina/polo-report-service/asaas"
)

var (
	// ErrValidation is wrapped by every ValidationError
	ErrValidation = errors.New("invalid report request")
	// ErrUpstreamUnavailable is returned when the billing provider is not configured
	ErrUpstreamUnavailable = asaas.ErrNotConfigured
	// ErrNoCustomers is wrapped by NoCustomersError
	ErrNoCustomers = errors.New("no customers found for polo")
)

// ValidationError describes a missing or malformed request field. It is returned before
// any upstream call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NoCustomersError is returned when the polo resolved to zero customers
type NoCustomersError struct {
	Polo       string
	Resolution Resolution
}

func (e *NoCustomersError) Error() string {
	return fmt.Sprintf("no customers found for polo %q (%s)", e.Polo, e.Resolution.Outcome())
}

// Unwrap allows errors.Is(err, ErrNoCustomers)
func (e *NoCustomersError) Unwrap() error {
	return ErrNoCustomers
}

// Message returns the caller facing message, distinguishing an empty polo from one whose
// customer lookup failed upstream
func (e *NoCustomersError) Message() string {
	if e.Resolution.Outcome() == OutcomePartial {
		return "Falha ao consultar clientes do polo no provedor"
	}
	return "Nenhum cliente encontrado para o polo"
}
