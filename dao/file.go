package dao

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"sort"
	"sync"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/keys"
	"github.com/jaina/polo-report-service/models"
)

// FileService is an implementation of the Service interface over a flat JSON document mapping
// each access key to its record. The document layout matches the partners.json file the
// deployment already carries.
type FileService struct {
	Path string

	mu sync.Mutex
}

// NewFileService returns a FileService reading and writing the given path
func NewFileService(path string) *FileService {
	return &FileService{Path: path}
}

// load reads the document. A missing or unreadable document is an empty directory.
func (f *FileService) load() (map[string]models.PartnerKeyDao, error) {

	partnerKeys := map[string]models.PartnerKeyDao{}

	content, err := ioutil.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return partnerKeys, nil
		}
		log.Error(err, log.Data{keys.Store: f.Path})
		return nil, err
	}

	if err := json.Unmarshal(content, &partnerKeys); err != nil {
		log.Info("access key file is not valid json, treating it as empty", log.Data{
			keys.Store:   f.Path,
			keys.Message: err.Error(),
		})
		return map[string]models.PartnerKeyDao{}, nil
	}

	for chave, key := range partnerKeys {
		key.Chave = chave
		partnerKeys[chave] = key
	}

	return partnerKeys, nil
}

func (f *FileService) save(partnerKeys map[string]models.PartnerKeyDao) error {

	content, err := json.MarshalIndent(partnerKeys, "", "    ")
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(f.Path, content, 0644); err != nil {
		log.Error(err, log.Data{keys.Store: f.Path})
		return err
	}

	return nil
}

// GetPartnerKey reads a single access key record
func (f *FileService) GetPartnerKey(chave string) (*models.PartnerKeyDao, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	partnerKeys, err := f.load()
	if err != nil {
		return nil, err
	}

	key, ok := partnerKeys[chave]
	if !ok {
		return nil, nil
	}
	return &key, nil
}

// PutPartnerKey upserts an access key record
func (f *FileService) PutPartnerKey(key *models.PartnerKeyDao) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	partnerKeys, err := f.load()
	if err != nil {
		return err
	}

	partnerKeys[key.Chave] = *key
	return f.save(partnerKeys)
}

// DeletePartnerKey removes an access key record
func (f *FileService) DeletePartnerKey(chave string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	partnerKeys, err := f.load()
	if err != nil {
		return false, err
	}

	if _, ok := partnerKeys[chave]; !ok {
		return false, nil
	}

	delete(partnerKeys, chave)
	return true, f.save(partnerKeys)
}

// ListPartnerKeys returns every access key record ordered by name
func (f *FileService) ListPartnerKeys() ([]models.PartnerKeyDao, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	partnerKeys, err := f.load()
	if err != nil {
		return nil, err
	}

	list := make([]models.PartnerKeyDao, 0, len(partnerKeys))
	for _, key := range partnerKeys {
		list = append(list, key)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Nome != list[j].Nome {
			return list[i].Nome < list[j].Nome
		}
		return list[i].Chave < list[j].Chave
	})

	return list, nil
}

// Shutdown has nothing to release for a file store
func (f *FileService) Shutdown() {}
