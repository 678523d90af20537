package models

import "time"

// PartnerKeyDao represents a partner access key as persisted in the key directory
type PartnerKeyDao struct {
	Chave     string `bson:"_id"       json:"-"`
	Nome      string `bson:"nome"      json:"nome"`
	Polo      string `bson:"polo"      json:"polo"`
	ExpiraEm  string `bson:"expira_em" json:"expira_em"`
	Protegida bool   `bson:"protegida" json:"protegida,omitempty"`
}

// KeyChangeEvent represents the avro record published whenever the key directory changes
type KeyChangeEvent struct {
	Action    string `avro:"action"`
	Chave     string `avro:"chave"`
	Nome      string `avro:"nome"`
	Polo      string `avro:"polo"`
	ExpiraEm  string `avro:"expira_em"`
	ChangedAt string `avro:"changed_at"`
}

// Key change actions
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionProvision = "provisioned"
)

// NewKeyChangeEvent builds a KeyChangeEvent for the given record
func NewKeyChangeEvent(action string, key PartnerKeyDao, at time.Time) KeyChangeEvent {
	return KeyChangeEvent{
		Action:    action,
		Chave:     key.Chave,
		Nome:      key.Nome,
		Polo:      key.Polo,
		ExpiraEm:  key.ExpiraEm,
		ChangedAt: at.UTC().Format(time.RFC3339),
	}
}
