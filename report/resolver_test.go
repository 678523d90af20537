package report

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jaina/polo-report-service/asaas"
	"github.com/jaina/polo-report-service/data"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitResolve(t *testing.T) {

	Convey("Given a resolver over a mocked Asaas client", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := asaas.NewMockClient(ctrl)
		resolver := Resolver{Client: client, PageSize: 3, MaxPageLoops: 4}

		Convey("Only customers whose normalised label equals the polo are returned", func() {
			client.EXPECT().ListCustomersPage(0, 3).Return([]data.Customer{
				customer("c1", "Ana", "Polo X"),
				customer("c2", "Bia", "  polo x "),
				customer("c3", "Caio", "Polo X2"),
			}, true, nil)
			client.EXPECT().ListCustomersPage(3, 3).Return([]data.Customer{
				customer("c4", "Duda", "POLO X"),
				customer("c5", "Enzo", "Polo"),
			}, false, nil)

			res := resolver.Resolve(" Polo X", 10)

			So(res.Outcome(), ShouldEqual, OutcomeFound)
			So(res.PagesFetched, ShouldEqual, 2)
			So(len(res.Customers), ShouldEqual, 3)
			So(res.Customers[0].ID, ShouldEqual, "c1")
			So(res.Customers[1].ID, ShouldEqual, "c2")
			So(res.Customers[2].ID, ShouldEqual, "c4")
		})

		Convey("The walk stops as soon as maxCustomers have matched", func() {
			client.EXPECT().ListCustomersPage(0, 3).Return([]data.Customer{
				customer("c1", "Ana", "Polo X"),
				customer("c2", "Bia", "Polo X"),
				customer("c3", "Caio", "Polo X"),
			}, true, nil)
			client.EXPECT().ListCustomersPage(3, 3).Times(0)

			res := resolver.Resolve("Polo X", 2)

			So(len(res.Customers), ShouldEqual, 2)
			So(res.Capped, ShouldBeTrue)
		})

		Convey("An upstream that always reports more pages is bounded by MaxPageLoops", func() {
			calls := 0
			client.EXPECT().ListCustomersPage(gomock.Any(), 3).DoAndReturn(func(offset, limit int) ([]data.Customer, bool, error) {
				calls++
				return []data.Customer{
					customer("a", "Ana", "Outro"),
					customer("b", "Bia", "Outro"),
					customer("c", "Caio", "Outro"),
				}, true, nil
			}).Times(4)

			res := resolver.Resolve("Polo X", 10)

			So(calls, ShouldEqual, 4)
			So(res.PagesFetched, ShouldEqual, 4)
			So(res.Outcome(), ShouldEqual, OutcomeEmpty)
		})

		Convey("A failed page returns what was accumulated as a partial resolution", func() {
			client.EXPECT().ListCustomersPage(0, 3).Return([]data.Customer{
				customer("c1", "Ana", "Polo X"),
				customer("c2", "Bia", "Outro"),
				customer("c3", "Caio", "Outro"),
			}, true, nil)
			client.EXPECT().ListCustomersPage(3, 3).Return(nil, false, errors.New("timeout"))

			res := resolver.Resolve("Polo X", 10)

			So(len(res.Customers), ShouldEqual, 1)
			So(res.PagesFailed, ShouldEqual, 1)
			So(res.Outcome(), ShouldEqual, OutcomePartial)
		})

		Convey("A failure on the first page is distinguishable from an empty polo", func() {
			client.EXPECT().ListCustomersPage(0, 3).Return(nil, false, &asaas.InvalidAPIResponse{})

			res := resolver.Resolve("Polo X", 10)

			So(len(res.Customers), ShouldEqual, 0)
			So(res.Outcome(), ShouldEqual, OutcomePartial)
		})

		Convey("An empty page ends the walk", func() {
			client.EXPECT().ListCustomersPage(0, 3).Return([]data.Customer{}, true, nil)

			res := resolver.Resolve("Polo X", 10)

			So(res.Outcome(), ShouldEqual, OutcomeEmpty)
			So(res.PagesFetched, ShouldEqual, 1)
		})

		Convey("A short page ends the walk without an extra call", func() {
			client.EXPECT().ListCustomersPage(0, 3).Return([]data.Customer{
				customer("c1", "Ana", "Polo X"),
			}, true, nil)

			res := resolver.Resolve("Polo X", 10)

			So(len(res.Customers), ShouldEqual, 1)
			So(res.PagesFetched, ShouldEqual, 1)
		})
	})
}

func TestUnitNormalizeUnit(t *testing.T) {

	Convey("normalisation trims and lower cases", t, func() {
		So(NormalizeUnit("  Polo Centro "), ShouldEqual, "polo centro")
		So(NormalizeUnit("POLO"), ShouldEqual, NormalizeUnit("polo"))
		So(NormalizeUnit("Polo  Centro"), ShouldNotEqual, NormalizeUnit("Polo Centro"))
	})
}
