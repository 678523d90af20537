package report

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jaina/polo-report-service/asaas"
	"github.com/jaina/polo-report-service/data"
	"github.com/jaina/polo-report-service/models"
	"github.com/jaina/polo-report-service/transformer"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func date(s string) *time.Time {
	d, _ := time.Parse(DateLayout, s)
	return &d
}

func TestUnitFanOut(t *testing.T) {

	tr := transformer.New()
	keepAll := func(data.Payment) bool { return true }

	Convey("Given three customers on a mocked Asaas client", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := asaas.NewMockClient(ctrl)
		customers := []data.Customer{
			customer("A", "Ana", "Polo X"),
			customer("B", "Bia", "Polo X"),
			customer("C", "Caio", "Polo X"),
		}

		Convey("A failed fetch for one customer does not affect the others", func() {
			client.EXPECT().ListPayments("A", 10).Return([]data.Payment{payment("a1", data.StatusPending, "2024-01-10", "")}, nil)
			client.EXPECT().ListPayments("B", 10).Return(nil, errors.New("connection reset"))
			client.EXPECT().ListPayments("C", 10).Return([]data.Payment{
				payment("c1", data.StatusReceived, "2024-01-05", "2024-01-05"),
				payment("c2", data.StatusPending, "2024-02-05", ""),
			}, nil)

			out := fanOut(client, customers, 10, 100, keepAll, tr.GetLedgerRow)

			So(out.FailedCustomers, ShouldEqual, 1)
			So(out.CustomersQueried, ShouldEqual, 3)
			So(len(out.Rows), ShouldEqual, 3)
			So(out.Rows[0].FaturaID, ShouldEqual, "a1")
			So(out.Rows[1].FaturaID, ShouldEqual, "c1")
			So(out.Rows[2].FaturaID, ShouldEqual, "c2")
		})

		Convey("The row ceiling is checked after every append, mid customer", func() {
			client.EXPECT().ListPayments("A", 10).Return([]data.Payment{
				payment("a1", data.StatusPending, "2024-01-10", ""),
				payment("a2", data.StatusPending, "2024-02-10", ""),
				payment("a3", data.StatusPending, "2024-03-10", ""),
			}, nil)
			client.EXPECT().ListPayments("B", gomock.Any()).Times(0)
			client.EXPECT().ListPayments("C", gomock.Any()).Times(0)

			out := fanOut(client, customers, 10, 2, keepAll, tr.GetLedgerRow)

			So(len(out.Rows), ShouldEqual, 2)
			So(out.Capped, ShouldBeTrue)
			So(out.Rows[1].FaturaID, ShouldEqual, "a2")
		})

		Convey("The per customer bound is passed as the fetch limit", func() {
			client.EXPECT().ListPayments("A", 1).Return([]data.Payment{}, nil)
			client.EXPECT().ListPayments("B", 1).Return([]data.Payment{}, nil)
			client.EXPECT().ListPayments("C", 1).Return([]data.Payment{}, nil)

			out := fanOut(client, customers, 1, 100, keepAll, tr.GetLedgerRow)

			So(len(out.Rows), ShouldEqual, 0)
			So(out.Capped, ShouldBeFalse)
		})
	})
}

func TestUnitLedgerPredicate(t *testing.T) {

	settledJan := payment("p1", data.StatusReceived, "2024-01-10", "2024-01-15")
	pending := payment("p2", data.StatusPending, "2024-01-20", "")
	lowerCase := payment("p3", "received", "2024-01-10", "2024-01-31")
	withTime := payment("p4", data.StatusReceived, "2024-01-10", "2024-01-01 10:30:00")
	garbage := payment("p5", data.StatusReceived, "2024-01-10", "15/01/2024")

	tests := []struct {
		name    string
		query   Query
		payment data.Payment
		want    bool
	}{
		{"no filters keeps everything", Query{}, pending, true},
		{"status filter matches case insensitively", Query{Status: "RECEIVED"}, lowerCase, true},
		{"status filter excludes other statuses", Query{Status: "RECEIVED"}, pending, false},
		{"window excludes unsettled payments", Query{Window: Window{Start: date("2024-01-01")}}, pending, false},
		{"window start is inclusive", Query{Window: Window{Start: date("2024-01-15")}}, settledJan, true},
		{"window end is inclusive", Query{Window: Window{End: date("2024-01-31")}}, lowerCase, true},
		{"window end excludes later dates", Query{Window: Window{End: date("2024-01-14")}}, settledJan, false},
		{"timestamp settlement dates use the date part", Query{Window: Window{Start: date("2024-01-01"), End: date("2024-01-01")}}, withTime, true},
		{"unparsable settlement date is excluded", Query{Window: Window{Start: date("2024-01-01")}}, garbage, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledgerPredicate(tt.query)(tt.payment))
		})
	}
}

func TestUnitSettlementPredicate(t *testing.T) {

	q := Query{Window: Window{Start: date("2024-01-01"), End: date("2024-01-31")}}
	keep := settlementPredicate(q)

	Convey("only settled payments inside the window are kept", t, func() {
		So(keep(payment("p1", data.StatusReceived, "2023-12-20", "2024-01-01")), ShouldBeTrue)
		So(keep(payment("p2", data.StatusReceived, "2024-01-20", "2024-01-31")), ShouldBeTrue)
		So(keep(payment("p3", data.StatusReceived, "2024-01-20", "2024-02-01")), ShouldBeFalse)
		So(keep(payment("p4", data.StatusConfirmed, "2024-01-20", "2024-01-10")), ShouldBeFalse)
		So(keep(payment("p5", data.StatusReceived, "2024-01-20", "")), ShouldBeFalse)
	})
}

func TestUnitSort(t *testing.T) {

	Convey("ledger rows sort by customer then due date and keep ties in production order", t, func() {
		rows := []models.LedgerRow{
			{Cliente: "Bia", Vencimento: "2024-02-01", FaturaID: "1"},
			{Cliente: "Ana", Vencimento: "2024-03-01", FaturaID: "2"},
			{Cliente: "Ana", Vencimento: "", FaturaID: "3"},
			{Cliente: "Ana", Vencimento: "2024-03-01", FaturaID: "4"},
			{Cliente: "", Vencimento: "2024-01-01", FaturaID: "5"},
		}

		SortLedger(rows)

		ids := []string{}
		for _, r := range rows {
			ids = append(ids, r.FaturaID)
		}
		So(ids, ShouldResemble, []string{"5", "3", "2", "4", "1"})
	})

	Convey("settlement rows sort by settlement date alone", t, func() {
		rows := []models.SettlementRow{
			{Cliente: "Ana", DataPagamento: "2024-01-20", FaturaID: "1"},
			{Cliente: "Caio", DataPagamento: "2024-01-05", FaturaID: "2"},
			{Cliente: "Bia", DataPagamento: "2024-01-20", FaturaID: "3"},
		}

		SortSettlement(rows)

		So(rows[0].FaturaID, ShouldEqual, "2")
		So(rows[1].FaturaID, ShouldEqual, "1")
		So(rows[2].FaturaID, ShouldEqual, "3")
	})
}
