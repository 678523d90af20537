package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/pat"
	"github.com/jaina/polo-report-service/asaas"
	"github.com/jaina/polo-report-service/audit"
	"github.com/jaina/polo-report-service/config"
	"github.com/jaina/polo-report-service/dao"
	"github.com/jaina/polo-report-service/directory"
	"github.com/jaina/polo-report-service/handlers"
	"github.com/jaina/polo-report-service/keys"
	"github.com/jaina/polo-report-service/registration"
	"github.com/jaina/polo-report-service/report"
	"github.com/jaina/polo-report-service/transformer"
)

const shutdownTimeout = 10 * time.Second

// Service represents the running polo-report-service
type Service struct {
	Server    *http.Server
	Store     dao.Service
	Publisher audit.Publisher
	Directory *directory.Directory
	Reports   report.Generator
}

// New builds the store, key directory, Asaas client, report engine and router from the config
func New(cfg *config.Config) (*Service, error) {

	if err := cfg.Validate(); err != nil {
		log.Error(fmt.Errorf("invalid configuration: %s", err), nil)
		return nil, err
	}

	protectedKeys, err := config.GetProtectedKeys(cfg.ProtectedKeysFile)
	if err != nil {
		log.Error(fmt.Errorf("error loading protected keys: %s", err), nil)
		return nil, err
	}

	store, err := dao.NewDAOService(cfg)
	if err != nil {
		log.Error(fmt.Errorf("error initialising key store: %s", err), nil)
		return nil, err
	}

	var publisher audit.Publisher = audit.NoopPublisher{}
	if cfg.AuditEnabled() {
		kafkaPublisher, err := audit.NewKafkaPublisher(cfg.BrokerAddr, cfg.SchemaRegistryURL, cfg.PartnerKeyChangedTopic)
		if err != nil {
			store.Shutdown()
			return nil, err
		}
		publisher = kafkaPublisher
		log.Info("publishing key change events", log.Data{keys.Topic: cfg.PartnerKeyChangedTopic})
	}

	dir := directory.New(store, publisher, protectedKeys)
	if err := dir.EnsureProtected(); err != nil {
		log.Error(fmt.Errorf("error provisioning protected keys: %s", err), nil)
		store.Shutdown()
		publisher.Close()
		return nil, err
	}

	if !cfg.UpstreamConfigured() {
		log.Info("ASAAS_API_KEY is not set, report requests will be refused")
	}

	client := asaas.New(cfg.AsaasBaseURL, cfg.AsaasAPIKey, cfg.AsaasTimeout())
	engine := report.New(client, transformer.New(), cfg.ReportLimits(), cfg.UpstreamConfigured())

	router := pat.New()
	handlers.Init(router, &handlers.Handler{
		Reports:      engine,
		Directory:    dir,
		Registration: registration.New(client, cfg.UpstreamConfigured()),
		AdminToken:   cfg.AdminToken,
	})

	return &Service{
		Server:    &http.Server{Addr: cfg.BindAddr, Handler: router},
		Store:     store,
		Publisher: publisher,
		Directory: dir,
		Reports:   engine,
	}, nil
}

// Start serves HTTP until a signal arrives on c, then drains in-flight requests and releases
// the store and publisher
func (svc *Service) Start(wg *sync.WaitGroup, c chan os.Signal) {
	defer wg.Done()

	log.Info("Starting HTTP server", log.Data{keys.BindAddr: svc.Server.Addr})

	serverErrors := make(chan error, 1)
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	select {
	case <-c:
		log.Info("Received close notification")
	case err, ok := <-serverErrors:
		if ok {
			log.Error(fmt.Errorf("error starting HTTP server: %s", err), nil)
		}
	}

	svc.Shutdown()
	log.Info("Service successfully shutdown")
}

// Shutdown stops the HTTP server and closes the store and publisher
func (svc *Service) Shutdown() {

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := svc.Server.Shutdown(ctx); err != nil {
		log.Error(fmt.Errorf("error shutting down HTTP server: %s", err))
	}

	if err := svc.Publisher.Close(); err != nil {
		log.Error(fmt.Errorf("error closing publisher: %s", err))
	}

	svc.Store.Shutdown()
}
