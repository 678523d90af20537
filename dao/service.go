package dao

import (
	"github.com/jaina/polo-report-service/models"
)

// Service interface declares how to interact with the access key store regardless of underlying technology
type Service interface {
	// GetPartnerKey returns the record stored under the key, or nil when there is none
	GetPartnerKey(chave string) (*models.PartnerKeyDao, error)
	// PutPartnerKey inserts or replaces the record stored under its key
	PutPartnerKey(key *models.PartnerKeyDao) error
	// DeletePartnerKey removes the record and reports whether one was present
	DeletePartnerKey(chave string) (bool, error)
	// ListPartnerKeys returns every record ordered by name
	ListPartnerKeys() ([]models.PartnerKeyDao, error)
	// Shutdown can be called to clean up any open resources that the service may be holding on to.
	Shutdown()
}
