package directory

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jaina/polo-report-service/audit"
	"github.com/jaina/polo-report-service/config"
	"github.com/jaina/polo-report-service/dao"
	"github.com/jaina/polo-report-service/keys"
	"github.com/jaina/polo-report-service/models"
)

const (
	generatedKeyLength  = 12
	maxGenerateAttempts = 5
)

// CreateRequest is the body accepted when creating an access key
type CreateRequest struct {
	Chave    string `json:"chave"`
	Nome     string `json:"nome"      validate:"required"`
	Polo     string `json:"polo"      validate:"required"`
	ExpiraEm string `json:"expira_em" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateRequest is the body accepted when updating an access key. Absent fields are left unchanged.
type UpdateRequest struct {
	Chave    string  `json:"chave"     validate:"required"`
	Nome     *string `json:"nome"`
	Polo     *string `json:"polo"`
	ExpiraEm *string `json:"expira_em" validate:"omitempty,datetime=2006-01-02"`
}

// Directory is the access key directory. Writes go straight to the store; protected keys cannot be
// deleted, cannot be created over and never carry an expiry.
type Directory struct {
	Store     dao.Service
	Publisher audit.Publisher
	Now       func() time.Time

	protected map[string]config.ProtectedKey
	validate  *validator.Validate
}

// New returns a Directory over the store. The protected set is keyed by canonical access key.
func New(store dao.Service, publisher audit.Publisher, protected *config.ProtectedKeys) *Directory {

	if publisher == nil {
		publisher = audit.NoopPublisher{}
	}

	d := &Directory{
		Store:     store,
		Publisher: publisher,
		Now:       time.Now,
		protected: map[string]config.ProtectedKey{},
		validate:  validator.New(),
	}
	d.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	if protected != nil {
		for _, key := range protected.Keys {
			key.Chave = Canonical(key.Chave)
			d.protected[key.Chave] = key
		}
	}

	return d
}

// Canonical is the form under which access keys are stored and compared
func Canonical(chave string) string {
	return strings.ToUpper(strings.TrimSpace(chave))
}

// GenerateKey returns a random upper case alphanumeric access key
func GenerateKey() string {
	var b strings.Builder
	for b.Len() < generatedKeyLength {
		for _, r := range strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")) {
			if b.Len() == generatedKeyLength {
				break
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsProtected reports whether the key belongs to the protected set
func (d *Directory) IsProtected(chave string) bool {
	_, ok := d.protected[Canonical(chave)]
	return ok
}

// Get returns the record for a key, or nil when the directory has none
func (d *Directory) Get(chave string) (*models.PartnerKeyDao, error) {
	return d.Store.GetPartnerKey(Canonical(chave))
}

// Put stores a record under its canonical key, normalising it in place. A protected key keeps its
// protected flag and no expiry.
func (d *Directory) Put(key *models.PartnerKeyDao) error {
	key.Chave = Canonical(key.Chave)
	key.Protegida = d.IsProtected(key.Chave)
	if key.Protegida {
		key.ExpiraEm = ""
	}
	return d.Store.PutPartnerKey(key)
}

// ListAll returns every record ordered by name
func (d *Directory) ListAll() ([]models.PartnerKeyDao, error) {
	return d.Store.ListPartnerKeys()
}

// Create adds a new access key. A key is generated when the request does not name one.
func (d *Directory) Create(req CreateRequest) (*models.PartnerKeyDao, error) {

	req.Nome = strings.TrimSpace(req.Nome)
	req.Polo = strings.TrimSpace(req.Polo)
	req.ExpiraEm = strings.TrimSpace(req.ExpiraEm)
	if err := d.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	chave := Canonical(req.Chave)
	if chave == "" {
		generated, err := d.unusedKey()
		if err != nil {
			return nil, err
		}
		chave = generated
	} else {
		if d.IsProtected(chave) {
			return nil, ErrProtectedKey
		}
		existing, err := d.Store.GetPartnerKey(chave)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrKeyExists
		}
	}

	key := models.PartnerKeyDao{Chave: chave, Nome: req.Nome, Polo: req.Polo, ExpiraEm: req.ExpiraEm}
	if err := d.Put(&key); err != nil {
		return nil, err
	}

	log.Info("access key created", log.Data{keys.AccessKey: chave, keys.Polo: key.Polo})
	d.publish(models.ActionCreated, key)
	return &key, nil
}

// Update changes the name, polo or expiry of an existing key
func (d *Directory) Update(req UpdateRequest) (*models.PartnerKeyDao, error) {

	req.Chave = Canonical(req.Chave)
	if err := d.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}
	if req.Nome != nil && strings.TrimSpace(*req.Nome) == "" {
		return nil, fmt.Errorf("%w: campo obrigatório nome", ErrInvalidRecord)
	}
	if req.Polo != nil && strings.TrimSpace(*req.Polo) == "" {
		return nil, fmt.Errorf("%w: campo obrigatório polo", ErrInvalidRecord)
	}

	key, err := d.Store.GetPartnerKey(req.Chave)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, ErrKeyNotFound
	}

	if req.Nome != nil {
		key.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Polo != nil {
		key.Polo = strings.TrimSpace(*req.Polo)
	}
	if req.ExpiraEm != nil {
		key.ExpiraEm = strings.TrimSpace(*req.ExpiraEm)
	}

	if err := d.Put(key); err != nil {
		return nil, err
	}

	log.Info("access key updated", log.Data{keys.AccessKey: key.Chave, keys.Polo: key.Polo})
	d.publish(models.ActionUpdated, *key)
	return key, nil
}

// Delete removes a key. It returns false with ErrProtectedKey for a protected key and false with
// ErrKeyNotFound when the key is absent.
func (d *Directory) Delete(chave string) (bool, error) {

	chave = Canonical(chave)
	if d.IsProtected(chave) {
		log.Info("refusing to delete protected access key", log.Data{keys.AccessKey: chave})
		return false, ErrProtectedKey
	}

	key, err := d.Store.GetPartnerKey(chave)
	if err != nil {
		return false, err
	}
	if key == nil {
		return false, ErrKeyNotFound
	}

	deleted, err := d.Store.DeletePartnerKey(chave)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, ErrKeyNotFound
	}

	log.Info("access key deleted", log.Data{keys.AccessKey: chave})
	d.publish(models.ActionDeleted, *key)
	return true, nil
}

// EnsureProtected writes every protected key missing from the store and clears any expiry or
// missing protected flag on the ones already there
func (d *Directory) EnsureProtected() error {

	for chave, protected := range d.protected {

		existing, err := d.Store.GetPartnerKey(chave)
		if err != nil {
			return err
		}

		if existing != nil && existing.Protegida && existing.ExpiraEm == "" {
			continue
		}

		key := models.PartnerKeyDao{Chave: chave, Nome: protected.Nome, Polo: protected.Polo}
		if existing != nil {
			key.Nome = existing.Nome
			key.Polo = existing.Polo
		}

		if err := d.Put(&key); err != nil {
			return err
		}

		log.Info("protected access key provisioned", log.Data{keys.AccessKey: chave, keys.Partner: key.Nome})
		d.publish(models.ActionProvision, key)
	}

	return nil
}

func (d *Directory) unusedKey() (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		chave := GenerateKey()
		existing, err := d.Store.GetPartnerKey(chave)
		if err != nil {
			return "", err
		}
		if existing == nil && !d.IsProtected(chave) {
			return chave, nil
		}
	}
	return "", fmt.Errorf("could not generate an unused access key after %d attempts", maxGenerateAttempts)
}

// publish emits a key change event. A failed publish is logged and never fails the change.
func (d *Directory) publish(action string, key models.PartnerKeyDao) {
	if err := d.Publisher.Publish(models.NewKeyChangeEvent(action, key, d.Now())); err != nil {
		log.Error(fmt.Errorf("error publishing key change event: %s", err), log.Data{
			keys.Action:    action,
			keys.AccessKey: key.Chave,
		})
	}
}

func invalid(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, err)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: campo obrigatório %s", ErrInvalidRecord, fe.Field())
	default:
		return fmt.Errorf("%w: %s deve estar no formato AAAA-MM-DD", ErrInvalidRecord, fe.Field())
	}
}
