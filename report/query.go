package report

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jaina/polo-report-service/config"
)

// DateLayout is the calendar date layout accepted on requests and read from Asaas
const DateLayout = "2006-01-02"

// Request is the JSON body accepted by both report endpoints
type Request struct {
	Polo              string `json:"polo"                validate:"required"`
	DataInicial       string `json:"data_inicial"        validate:"omitempty,datetime=2006-01-02"`
	DataFinal         string `json:"data_final"          validate:"omitempty,datetime=2006-01-02"`
	Status            string `json:"status"`
	MaxClientes       *int   `json:"max_clientes"        validate:"omitempty,min=1"`
	MaxFaturasCliente *int   `json:"max_faturas_cliente" validate:"omitempty,min=1"`
	MaxRegistros      *int   `json:"max_registros"       validate:"omitempty,min=1"`
}

// Bounds are the three ceilings applied to a report run
type Bounds struct {
	MaxClientes       int
	MaxFaturasCliente int
	MaxRegistros      int
}

// Window is an inclusive calendar date range; either bound may be absent
type Window struct {
	Start *time.Time
	End   *time.Time
}

// Query is a validated report request
type Query struct {
	Kind   Kind
	Polo   string
	Status string
	Window Window
	Bounds Bounds

	DataInicial string
	DataFinal   string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseQuery validates a request and fills unset bounds from the limits. Caller supplied
// bounds are clamped to the configured ceilings.
func ParseQuery(kind Kind, req Request, limits config.ReportLimits) (Query, error) {

	req.Polo = strings.TrimSpace(req.Polo)
	req.DataInicial = strings.TrimSpace(req.DataInicial)
	req.DataFinal = strings.TrimSpace(req.DataFinal)

	if err := validate.Struct(req); err != nil {
		return Query{}, toValidationError(err)
	}

	q := Query{
		Kind:        kind,
		Polo:        req.Polo,
		DataInicial: req.DataInicial,
		DataFinal:   req.DataFinal,
		Bounds: Bounds{
			MaxClientes:       bound(req.MaxClientes, limits.DefaultMaxClientes, limits.LimitMaxClientes),
			MaxFaturasCliente: bound(req.MaxFaturasCliente, limits.DefaultMaxFaturasCliente, limits.LimitMaxFaturasCliente),
			MaxRegistros:      bound(req.MaxRegistros, limits.DefaultMaxRegistros, limits.LimitMaxRegistros),
		},
	}

	if req.DataInicial != "" {
		start, _ := time.Parse(DateLayout, req.DataInicial)
		q.Window.Start = &start
	}
	if req.DataFinal != "" {
		end, _ := time.Parse(DateLayout, req.DataFinal)
		q.Window.End = &end
	}

	switch kind {
	case KindSettlement:
		if q.Window.Start == nil {
			return Query{}, &ValidationError{Field: "data_inicial", Reason: "campo obrigatório"}
		}
		if q.Window.End == nil {
			return Query{}, &ValidationError{Field: "data_final", Reason: "campo obrigatório"}
		}
		q.Status = settledStatus
	default:
		q.Status = strings.ToUpper(strings.TrimSpace(req.Status))
	}

	if q.Window.Start != nil && q.Window.End != nil && q.Window.End.Before(*q.Window.Start) {
		return Query{}, &ValidationError{Field: "data_final", Reason: "anterior a data_inicial"}
	}

	return q, nil
}

func bound(requested *int, def, limit int) int {
	value := def
	if requested != nil {
		value = *requested
	}
	if limit > 0 && value > limit {
		value = limit
	}
	if value < 1 {
		value = 1
	}
	return value
}

func toValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &ValidationError{Field: "corpo", Reason: err.Error()}
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Reason: "campo obrigatório"}
	case "datetime":
		return &ValidationError{Field: fe.Field(), Reason: "data inválida, use AAAA-MM-DD"}
	case "min":
		return &ValidationError{Field: fe.Field(), Reason: "deve ser maior que zero"}
	default:
		return &ValidationError{Field: fe.Field(), Reason: "valor inválido"}
	}
}

// Contains reports whether the date falls inside the window, bounds inclusive
func (w Window) Contains(d time.Time) bool {
	if w.Start != nil && d.Before(*w.Start) {
		return false
	}
	if w.End != nil && d.After(*w.End) {
		return false
	}
	return true
}

// IsSet reports whether at least one bound is present
func (w Window) IsSet() bool {
	return w.Start != nil || w.End != nil
}

// parseDate reads the calendar date portion of an Asaas date field
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
