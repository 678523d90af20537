package directory

import (
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/jaina/polo-report-service/keys"
)

const expiryLayout = "2006-01-02"

// Identity is the partner an accepted access key belongs to
type Identity struct {
	Chave string
	Nome  string
	Polo  string
}

// IsExpired reports whether the expiry date has passed on the given day. The expiry date itself is
// still valid. An empty or unparsable expiry never expires.
func IsExpired(expiraEm string, now time.Time) bool {
	expiraEm = strings.TrimSpace(expiraEm)
	if expiraEm == "" {
		return false
	}
	expiry, err := time.Parse(expiryLayout, expiraEm)
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return today.After(expiry)
}

// Authorize checks an access key against the directory
func (d *Directory) Authorize(chave string) (*Identity, error) {

	chave = Canonical(chave)
	if chave == "" {
		return nil, ErrEmptyKey
	}

	key, err := d.Store.GetPartnerKey(chave)
	if err != nil {
		return nil, err
	}
	if key == nil {
		log.Info("access key rejected", log.Data{keys.AccessKey: chave, keys.Message: ErrInvalidKey.Error()})
		return nil, ErrInvalidKey
	}

	if !d.IsProtected(chave) && !key.Protegida && IsExpired(key.ExpiraEm, d.Now()) {
		log.Info("access key rejected", log.Data{keys.AccessKey: chave, keys.Message: ErrExpiredKey.Error()})
		return nil, ErrExpiredKey
	}

	return &Identity{Chave: chave, Nome: key.Nome, Polo: key.Polo}, nil
}
