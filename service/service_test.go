package service

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jaina/polo-report-service/audit"
	"github.com/jaina/polo-report-service/config"
	"github.com/jaina/polo-report-service/dao"
	_ "github.com/jaina/polo-report-service/testing"
	. "github.com/smartystreets/goconvey/convey"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.BindAddr = "127.0.0.1:0"
	cfg.PartnersFile = filepath.Join(t.TempDir(), "partners.json")
	return cfg
}

func TestUnitNew(t *testing.T) {

	Convey("Given a file backed configuration", t, func() {
		cfg := testConfig(t)

		Convey("New provisions the protected keys and routes requests", func() {
			svc, err := New(cfg)
			So(err, ShouldBeNil)
			defer svc.Store.Shutdown()

			key, err := svc.Directory.Get("JAINA.POLO")
			So(err, ShouldBeNil)
			So(key, ShouldNotBeNil)
			So(key.Protegida, ShouldBeTrue)

			_, statErr := os.Stat(cfg.PartnersFile)
			So(statErr, ShouldBeNil)

			req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"chave_acesso":"jaina.admin"}`))
			rr := httptest.NewRecorder()
			svc.Server.Handler.ServeHTTP(rr, req)
			So(rr.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Reports are refused while the Asaas key is the placeholder", func() {
			svc, err := New(cfg)
			So(err, ShouldBeNil)
			defer svc.Store.Shutdown()

			req := httptest.NewRequest("POST", "/api/relatorio_faturas", bytes.NewBufferString(`{"polo":"Polo X"}`))
			rr := httptest.NewRecorder()
			svc.Server.Handler.ServeHTTP(rr, req)
			So(rr.Code, ShouldEqual, http.StatusServiceUnavailable)

			req = httptest.NewRequest("POST", "/api/cadastrar_aluno", bytes.NewBufferString(`{"nome":"Ana","cpf":"111","complemento":"Polo X"}`))
			rr = httptest.NewRecorder()
			svc.Server.Handler.ServeHTTP(rr, req)
			So(rr.Code, ShouldEqual, http.StatusServiceUnavailable)
		})

		Convey("A zero Asaas timeout fails start up", func() {
			cfg.AsaasTimeoutSeconds = 0
			_, err := New(cfg)
			So(err, ShouldNotBeNil)
		})

		Convey("A missing protected key file fails start up", func() {
			cfg.ProtectedKeysFile = "assets/absent.yml"
			_, err := New(cfg)
			So(err, ShouldNotBeNil)
		})

		Convey("An unknown key store fails start up", func() {
			cfg.KeyStore = "redis"
			_, err := New(cfg)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestUnitStart(t *testing.T) {

	Convey("Start serves until signalled then releases its resources", t, func() {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := dao.NewMockService(ctrl)
		publisher := audit.NewMockPublisher(ctrl)
		store.EXPECT().Shutdown()
		publisher.EXPECT().Close().Return(nil)

		svc := &Service{
			Server:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()},
			Store:     store,
			Publisher: publisher,
		}

		var wg sync.WaitGroup
		signals := make(chan os.Signal, 1)
		wg.Add(1)
		go svc.Start(&wg, signals)

		signals <- syscall.SIGTERM

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("service did not shut down")
		}
	})
}
