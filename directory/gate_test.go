package directory

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jaina/polo-report-service/dao"
	"github.com/jaina/polo-report-service/models"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func TestUnitIsExpired(t *testing.T) {

	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02 15:04", s)
		return d
	}

	testCases := []struct {
		name     string
		expiraEm string
		now      time.Time
		expired  bool
	}{
		{"no expiry", "", day("2024-01-01 10:00"), false},
		{"unparsable expiry", "31/12/2020", day("2024-01-01 10:00"), false},
		{"before expiry", "2024-01-02", day("2024-01-01 10:00"), false},
		{"on the expiry date", "2024-01-01", day("2024-01-01 23:59"), false},
		{"the day after", "2024-01-01", day("2024-01-02 00:01"), true},
		{"long past", "2020-01-01", day("2024-01-01 10:00"), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expired, IsExpired(tc.expiraEm, tc.now))
		})
	}
}

func TestUnitAuthorize(t *testing.T) {

	Convey("Given a directory with an expired, a valid and a protected key", t, func() {
		d := newFileDirectory(t)
		So(d.EnsureProtected(), ShouldBeNil)
		So(d.Store.PutPartnerKey(&models.PartnerKeyDao{Chave: "OLD2020", Nome: "Antigo", Polo: "Polo A", ExpiraEm: "2020-01-01"}), ShouldBeNil)
		So(d.Store.PutPartnerKey(&models.PartnerKeyDao{Chave: "VALID1", Nome: "Valido", Polo: "Polo X", ExpiraEm: "2030-01-01"}), ShouldBeNil)

		Convey("An empty key is rejected", func() {
			_, err := d.Authorize("   ")
			So(err, ShouldEqual, ErrEmptyKey)
		})

		Convey("An unknown key is rejected", func() {
			_, err := d.Authorize("UNKNOWN")
			So(err, ShouldEqual, ErrInvalidKey)
		})

		Convey("A key expired on 2020-01-01 is rejected today", func() {
			d.Now = time.Now
			_, err := d.Authorize("OLD2020")
			So(err, ShouldEqual, ErrExpiredKey)
		})

		Convey("A valid key returns the partner identity, compared after canonicalisation", func() {
			identity, err := d.Authorize(" valid1 ")
			So(err, ShouldBeNil)
			So(identity.Chave, ShouldEqual, "VALID1")
			So(identity.Nome, ShouldEqual, "Valido")
			So(identity.Polo, ShouldEqual, "Polo X")
		})

		Convey("A protected key is accepted", func() {
			identity, err := d.Authorize("jaina.polo")
			So(err, ShouldBeNil)
			So(identity.Polo, ShouldEqual, "Jaina")
		})
	})

	Convey("A store failure surfaces as an error", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := dao.NewMockService(ctrl)
		store.EXPECT().GetPartnerKey("ABC").Return(nil, errors.New("store down"))

		_, err := New(store, nil, nil).Authorize("abc")
		So(err, ShouldNotBeNil)
		So(err, ShouldNotEqual, ErrInvalidKey)
	})
}
