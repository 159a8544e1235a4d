package models

import (
	"time"
)

// CurrentSchemaVersion is stamped on every entrant and winner this service writes
const CurrentSchemaVersion = 2

// PayoutKeyType identifies the kind of payout key an entrant supplied
type PayoutKeyType string

const (
	PayoutKeyNationalID PayoutKeyType = "national_id"
	PayoutKeyEmail      PayoutKeyType = "email"
	PayoutKeyPhone      PayoutKeyType = "phone"
	PayoutKeyRandom     PayoutKeyType = "random"
)

// Entrant represents a participant currently eligible for the draw
type Entrant struct {
	ID              string        `bson:"_id" json:"id"`
	Seq             int64         `bson:"seq" json:"-"`
	DisplayName     string        `bson:"displayName" json:"displayName"`
	NationalID      string        `bson:"nationalId" json:"nationalId"`
	CasinoAccountID string        `bson:"casinoAccountId" json:"casinoAccountId"`
	PayoutKeyType   PayoutKeyType `bson:"payoutKeyType,omitempty" json:"payoutKeyType,omitempty"`
	PayoutKeyValue  string        `bson:"payoutKeyValue,omitempty" json:"payoutKeyValue,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	SchemaVersion   int           `bson:"schemaVersion" json:"schemaVersion"`
}

// RegistrationRequest is the body of the public registration form
type RegistrationRequest struct {
	DisplayName     string `json:"displayName"`
	NationalID      string `json:"nationalId"`
	CasinoAccountID string `json:"casinoAccountId"`
	PayoutKeyType   string `json:"payoutKeyType,omitempty"`
	PayoutKeyValue  string `json:"payoutKeyValue,omitempty"`
}
