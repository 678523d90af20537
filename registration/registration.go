package registration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/jaina/polo-report-service/asaas"
	"github.com/jaina/polo-report-service/data"
	"github.com/jaina/polo-report-service/keys"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingFields is wrapped when a required request field is absent
	ErrMissingFields = errors.New("missing required fields")
	// ErrCustomerNotFound is returned when no Asaas customer has the tax id
	ErrCustomerNotFound = errors.New("customer not found for tax id")
)

// StudentRequest is the body accepted when registering a student
type StudentRequest struct {
	Nome        string `json:"nome"        validate:"required"`
	Cpf         string `json:"cpf"         validate:"required"`
	Complemento string `json:"complemento" validate:"required"`
}

// StudentResult identifies the Asaas customer a registration wrote to
type StudentResult struct {
	AlunoID string
	Updated bool
}

// InvoiceRequest is the body accepted when issuing an invoice. Valor may be a JSON number or string.
type InvoiceRequest struct {
	Nome       string              `json:"nome"       validate:"required"`
	Cpf        string              `json:"cpf"        validate:"required"`
	Valor      decimal.NullDecimal `json:"valor"`
	Vencimento string              `json:"vencimento" validate:"required"`
	Forma      string              `json:"forma"`
	Descricao  string              `json:"descricao"  validate:"required"`
}

// Service passes student and invoice writes through to Asaas
type Service struct {
	Client             asaas.Client
	UpstreamConfigured bool

	validate *validator.Validate
}

// New returns a registration Service over the client. An unconfigured upstream refuses every
// write with asaas.ErrNotConfigured before the client is called.
func New(client asaas.Client, upstreamConfigured bool) *Service {
	return &Service{Client: client, UpstreamConfigured: upstreamConfigured, validate: validator.New()}
}

// RegisterStudent updates the Asaas customer holding the tax id, or creates one when none does
func (s *Service) RegisterStudent(req StudentRequest) (*StudentResult, error) {

	req.Nome = strings.TrimSpace(req.Nome)
	req.Cpf = strings.TrimSpace(req.Cpf)
	req.Complemento = strings.TrimSpace(req.Complemento)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: nome, cpf, complemento", ErrMissingFields)
	}
	if !s.UpstreamConfigured {
		return nil, asaas.ErrNotConfigured
	}

	existing, err := s.Client.FindCustomerByCpfCnpj(req.Cpf)
	if err != nil {
		return nil, err
	}

	body := data.CustomerRequest{Name: req.Nome, CpfCnpj: req.Cpf, Complement: req.Complemento}

	if existing != nil {
		if _, err := s.Client.UpdateCustomer(existing.ID, body); err != nil {
			return nil, err
		}
		log.Info("student updated", log.Data{keys.Customer: existing.ID, keys.Polo: req.Complemento})
		return &StudentResult{AlunoID: existing.ID, Updated: true}, nil
	}

	created, err := s.Client.CreateCustomer(body)
	if err != nil {
		return nil, err
	}
	log.Info("student registered", log.Data{keys.Customer: created.ID, keys.Polo: req.Complemento})
	return &StudentResult{AlunoID: created.ID}, nil
}

// IssueInvoice creates a payment for the customer holding the tax id. Forma PIX bills by PIX,
// anything else by boleto.
func (s *Service) IssueInvoice(req InvoiceRequest) (*data.Payment, error) {

	req.Nome = strings.TrimSpace(req.Nome)
	req.Cpf = strings.TrimSpace(req.Cpf)
	req.Vencimento = strings.TrimSpace(req.Vencimento)
	req.Descricao = strings.TrimSpace(req.Descricao)
	if err := s.validate.Struct(req); err != nil || !req.Valor.Valid || !req.Valor.Decimal.IsPositive() {
		return nil, fmt.Errorf("%w: nome, cpf, valor, vencimento, descricao", ErrMissingFields)
	}
	if !s.UpstreamConfigured {
		return nil, asaas.ErrNotConfigured
	}

	customer, err := s.Client.FindCustomerByCpfCnpj(req.Cpf)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	billingType := data.BillingTypeBoleto
	if strings.ToUpper(strings.TrimSpace(req.Forma)) == data.BillingTypePix {
		billingType = data.BillingTypePix
	}

	payment, err := s.Client.CreatePayment(data.PaymentRequest{
		Customer:    customer.ID,
		Value:       req.Valor.Decimal,
		DueDate:     req.Vencimento,
		Description: req.Descricao,
		BillingType: billingType,
	})
	if err != nil {
		return nil, err
	}

	log.Info("invoice issued", log.Data{keys.Customer: customer.ID, keys.Payment: payment.ID, keys.BillingType: billingType})
	return &payment, nil
}
