package models

import (
	"time"
)

// PayoutStatus tracks whether a winner's prize has been sent
type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "PENDING"
	PayoutStatusPaid    PayoutStatus = "PAID"
)

// Valid reports whether s is one of the two payout states
func (s PayoutStatus) Valid() bool {
	return s == PayoutStatusPending || s == PayoutStatusPaid
}

// Winner is the historical record of one draw. Entrant fields are copied at draw time.
type Winner struct {
	ID              string        `bson:"_id" json:"id"`
	Seq             int64         `bson:"seq" json:"-"`
	EntrantID       string        `bson:"entrantId" json:"entrantId"`
	DrawID          string        `bson:"drawId" json:"drawId"`
	DisplayName     string        `bson:"displayName" json:"displayName"`
	NationalID      string        `bson:"nationalId" json:"nationalId"`
	CasinoAccountID string        `bson:"casinoAccountId" json:"casinoAccountId"`
	PayoutKeyType   PayoutKeyType `bson:"payoutKeyType,omitempty" json:"payoutKeyType,omitempty"`
	PayoutKeyValue  string        `bson:"payoutKeyValue,omitempty" json:"payoutKeyValue,omitempty"`
	RegisteredAt    time.Time     `bson:"registeredAt" json:"registeredAt"`
	WonAt           time.Time     `bson:"wonAt" json:"wonAt"`
	Status          PayoutStatus  `bson:"status" json:"status"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
	SchemaVersion   int           `bson:"schemaVersion" json:"schemaVersion"`
}

// NewWinner copies the entrant into a pending winner record. wonAt is clamped so it
// never precedes the registration time.
func NewWinner(entrant *Entrant, id, drawID string, wonAt time.Time) *Winner {
	if wonAt.Before(entrant.CreatedAt) {
		wonAt = entrant.CreatedAt
	}
	return &Winner{
		ID:              id,
		EntrantID:       entrant.ID,
		DrawID:          drawID,
		DisplayName:     entrant.DisplayName,
		NationalID:      entrant.NationalID,
		CasinoAccountID: entrant.CasinoAccountID,
		PayoutKeyType:   entrant.PayoutKeyType,
		PayoutKeyValue:  entrant.PayoutKeyValue,
		RegisteredAt:    entrant.CreatedAt,
		WonAt:           wonAt,
		Status:          PayoutStatusPending,
		UpdatedAt:       wonAt,
		SchemaVersion:   CurrentSchemaVersion,
	}
}

// StatusUpdateRequest is the body of a payout status change
type StatusUpdateRequest struct {
	Status PayoutStatus `json:"status" binding:"required"`
}
