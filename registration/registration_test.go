package registration

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jaina/polo-report-service/asaas"
	"github.com/jaina/polo-report-service/data"
	"github.com/jaina/polo-report-service/testutil"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestUnitRegisterStudent(t *testing.T) {

	Convey("Given a registration service over a mocked client", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := asaas.NewMockClient(ctrl)
		svc := New(client, true)

		Convey("An existing customer is updated in place", func() {
			client.EXPECT().FindCustomerByCpfCnpj("111").Return(&data.Customer{ID: "cus_1"}, nil)
			client.EXPECT().UpdateCustomer("cus_1", data.CustomerRequest{Name: "Ana", CpfCnpj: "111", Complement: "Polo X"}).Return(data.Customer{ID: "cus_1"}, nil)

			result, err := svc.RegisterStudent(StudentRequest{Nome: "Ana", Cpf: "111", Complemento: "Polo X"})
			So(err, ShouldBeNil)
			So(result.AlunoID, ShouldEqual, "cus_1")
			So(result.Updated, ShouldBeTrue)
		})

		Convey("An unknown tax id creates a customer", func() {
			client.EXPECT().FindCustomerByCpfCnpj("222").Return(nil, nil)
			client.EXPECT().CreateCustomer(gomock.Any()).Return(data.Customer{ID: "cus_2"}, nil)

			result, err := svc.RegisterStudent(StudentRequest{Nome: "Bruno", Cpf: "222", Complemento: "Polo Y"})
			So(err, ShouldBeNil)
			So(result.AlunoID, ShouldEqual, "cus_2")
			So(result.Updated, ShouldBeFalse)
		})

		Convey("Missing fields are rejected before any call", func() {
			_, err := svc.RegisterStudent(StudentRequest{Nome: "Ana", Cpf: " "})
			So(errors.Is(err, ErrMissingFields), ShouldBeTrue)
		})

		Convey("Upstream failures are returned", func() {
			client.EXPECT().FindCustomerByCpfCnpj("333").Return(nil, &asaas.InvalidAPIResponse{})

			_, err := svc.RegisterStudent(StudentRequest{Nome: "Carla", Cpf: "333", Complemento: "Polo X"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestUnitIssueInvoice(t *testing.T) {

	Convey("Given a registration service over a fake Asaas", t, func() {
		fake := testutil.NewFakeAsaas([]data.Customer{{ID: "cus_1", Name: "Ana", CpfCnpj: "111", Complement: "Polo X"}}, nil)
		defer fake.Close()
		svc := New(asaas.New(fake.URL(), "key", 5*time.Second), true)

		Convey("PIX invoices are billed by PIX", func() {
			payment, err := svc.IssueInvoice(InvoiceRequest{Nome: "Ana", Cpf: "111", Valor: amount("150.75"), Vencimento: "2024-05-10", Forma: "pix", Descricao: "Mensalidade"})
			So(err, ShouldBeNil)
			So(payment.ID, ShouldNotBeEmpty)
			So(payment.InvoiceURL, ShouldNotBeEmpty)
			So(payment.Value.Equal(decimal.RequireFromString("150.75")), ShouldBeTrue)
			So(fake.Issued()[0].BillingType, ShouldEqual, data.BillingTypePix)
			So(fake.Issued()[0].Customer, ShouldEqual, "cus_1")
		})

		Convey("Anything else is billed by boleto", func() {
			_, err := svc.IssueInvoice(InvoiceRequest{Nome: "Ana", Cpf: "111", Valor: amount("99"), Vencimento: "2024-05-10", Forma: "cartao", Descricao: "Taxa"})
			So(err, ShouldBeNil)
			So(fake.Issued()[0].BillingType, ShouldEqual, data.BillingTypeBoleto)
		})

		Convey("An unknown tax id is not found", func() {
			_, err := svc.IssueInvoice(InvoiceRequest{Nome: "X", Cpf: "999", Valor: amount("10"), Vencimento: "2024-05-10", Descricao: "Taxa"})
			So(err, ShouldEqual, ErrCustomerNotFound)
			So(fake.Issued(), ShouldBeEmpty)
		})
	})
}

func TestUnitInvoiceValidation(t *testing.T) {

	svc := New(nil, true)

	testCases := []struct {
		name string
		req  InvoiceRequest
	}{
		{"missing amount", InvoiceRequest{Nome: "A", Cpf: "1", Vencimento: "2024-05-10", Descricao: "d"}},
		{"zero amount", InvoiceRequest{Nome: "A", Cpf: "1", Valor: amount("0"), Vencimento: "2024-05-10", Descricao: "d"}},
		{"missing due date", InvoiceRequest{Nome: "A", Cpf: "1", Valor: amount("10"), Descricao: "d"}},
		{"missing description", InvoiceRequest{Nome: "A", Cpf: "1", Valor: amount("10"), Vencimento: "2024-05-10"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.IssueInvoice(tc.req)
			assert.True(t, errors.Is(err, ErrMissingFields))
		})
	}
}

func TestUnitUnconfiguredUpstream(t *testing.T) {

	Convey("Given a registration service without an Asaas key", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// no expectations are set so any client call fails the test
		client := asaas.NewMockClient(ctrl)
		svc := New(client, false)

		Convey("Registering a student is refused before any call", func() {
			_, err := svc.RegisterStudent(StudentRequest{Nome: "Ana", Cpf: "111", Complemento: "Polo X"})
			So(err, ShouldEqual, asaas.ErrNotConfigured)
		})

		Convey("Issuing an invoice is refused before any call", func() {
			_, err := svc.IssueInvoice(InvoiceRequest{Nome: "Ana", Cpf: "111", Valor: amount("10"), Vencimento: "2024-05-10", Descricao: "Taxa"})
			So(err, ShouldEqual, asaas.ErrNotConfigured)
		})

		Convey("Missing fields are still reported first", func() {
			_, err := svc.RegisterStudent(StudentRequest{Nome: "Ana"})
			So(errors.Is(err, ErrMissingFields), ShouldBeTrue)
		})
	})
}
