package dao

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/config"
	"github.com/jaina/polo-report-service/keys"
)

// NewDAOService will create a new instance of the Service interface backed by the store named in
// the config. All details about its implementation and the database driver are hidden from outside
// of this package.
func NewDAOService(cfg *config.Config) (Service, error) {

	switch cfg.KeyStore {
	case config.KeyStoreMongo:
		log.Info("using mongodb access key store", log.Data{
			keys.Store:      cfg.KeyStore,
			keys.Collection: cfg.PartnerKeysCollection,
		})
		return &MongoService{
			db:         getMongoDatabase(cfg.MongoDBURL, cfg.Database),
			Collection: cfg.PartnerKeysCollection,
		}, nil
	case config.KeyStoreFile, "":
		log.Info("using file access key store", log.Data{keys.Store: cfg.PartnersFile})
		return NewFileService(cfg.PartnersFile), nil
	default:
		return nil, fmt.Errorf("unknown key store %q", cfg.KeyStore)
	}
}
