package models

import (
	"strings"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/utils"
)

// EntrantRecord is the stored shape of an entrant across every schema version.
// Documents without a schemaVersion predate versioning and are read as version 1.
type EntrantRecord struct {
	ID            string    `bson:"_id"`
	Seq           int64     `bson:"seq"`
	SchemaVersion int       `bson:"schemaVersion"`
	CreatedAt     time.Time `bson:"createdAt"`

	DisplayName     string        `bson:"displayName,omitempty"`
	NationalID      string        `bson:"nationalId,omitempty"`
	CasinoAccountID string        `bson:"casinoAccountId,omitempty"`
	PayoutKeyType   PayoutKeyType `bson:"payoutKeyType,omitempty"`
	PayoutKeyValue  string        `bson:"payoutKeyValue,omitempty"`

	LegacyFields `bson:",inline"`
}

// WinnerRecord is the stored shape of a winner across every schema version
type WinnerRecord struct {
	ID            string    `bson:"_id"`
	Seq           int64     `bson:"seq,omitempty"`
	SchemaVersion int       `bson:"schemaVersion"`
	CreatedAt     time.Time `bson:"createdAt,omitempty"`
	WonAt         time.Time `bson:"wonAt"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty"`
	Status        string    `bson:"status"`

	EntrantID       string        `bson:"entrantId,omitempty"`
	DrawID          string        `bson:"drawId,omitempty"`
	DisplayName     string        `bson:"displayName,omitempty"`
	NationalID      string        `bson:"nationalId,omitempty"`
	CasinoAccountID string        `bson:"casinoAccountId,omitempty"`
	PayoutKeyType   PayoutKeyType `bson:"payoutKeyType,omitempty"`
	PayoutKeyValue  string        `bson:"payoutKeyValue,omitempty"`
	RegisteredAt    time.Time     `bson:"registeredAt,omitempty"`

	LegacyFields `bson:",inline"`
}

// LegacyFields are the version 1 field names written by the first registration form
type LegacyFields struct {
	Name       string `bson:"name,omitempty"`
	TwitchNick string `bson:"twitchNick,omitempty"`
	CPF        string `bson:"cpf,omitempty"`
	CasinoID   string `bson:"casinoId,omitempty"`
	PixKeyType string `bson:"pixKeyType,omitempty"`
	PixKey     string `bson:"pixKey,omitempty"`
}

const (
	legacyStatusPending = "Pendente"
	legacyStatusPaid    = "Pix Enviado"
)

var legacyPayoutKeyTypes = map[string]PayoutKeyType{
	"cpf":       PayoutKeyNationalID,
	"email":     PayoutKeyEmail,
	"telefone":  PayoutKeyPhone,
	"aleatoria": PayoutKeyRandom,
}

// MigrateEntrant maps any stored entrant shape to the current Entrant
func MigrateEntrant(rec *EntrantRecord) *Entrant {
	e := &Entrant{
		ID:              rec.ID,
		Seq:             rec.Seq,
		DisplayName:     rec.DisplayName,
		NationalID:      rec.NationalID,
		CasinoAccountID: rec.CasinoAccountID,
		PayoutKeyType:   rec.PayoutKeyType,
		PayoutKeyValue:  rec.PayoutKeyValue,
		CreatedAt:       rec.CreatedAt,
		SchemaVersion:   CurrentSchemaVersion,
	}
	if rec.SchemaVersion >= CurrentSchemaVersion {
		return e
	}

	p := migrateLegacy(rec.LegacyFields)
	e.DisplayName = firstNonEmpty(rec.DisplayName, p.displayName)
	e.NationalID = firstNonEmpty(rec.NationalID, p.nationalID)
	e.CasinoAccountID = firstNonEmpty(rec.CasinoAccountID, p.casinoAccountID)
	if e.PayoutKeyType == "" {
		e.PayoutKeyType = p.payoutKeyType
	}
	e.PayoutKeyValue = firstNonEmpty(rec.PayoutKeyValue, p.payoutKeyValue)
	return e
}

// MigrateWinner maps any stored winner shape to the current Winner
func MigrateWinner(rec *WinnerRecord) *Winner {
	w := &Winner{
		ID:              rec.ID,
		Seq:             rec.Seq,
		EntrantID:       rec.EntrantID,
		DrawID:          rec.DrawID,
		DisplayName:     rec.DisplayName,
		NationalID:      rec.NationalID,
		CasinoAccountID: rec.CasinoAccountID,
		PayoutKeyType:   rec.PayoutKeyType,
		PayoutKeyValue:  rec.PayoutKeyValue,
		RegisteredAt:    rec.RegisteredAt,
		WonAt:           rec.WonAt,
		Status:          PayoutStatus(rec.Status),
		UpdatedAt:       rec.UpdatedAt,
		SchemaVersion:   CurrentSchemaVersion,
	}
	if rec.SchemaVersion >= CurrentSchemaVersion {
		return w
	}

	p := migrateLegacy(rec.LegacyFields)
	w.DisplayName = firstNonEmpty(rec.DisplayName, p.displayName)
	w.NationalID = firstNonEmpty(rec.NationalID, p.nationalID)
	w.CasinoAccountID = firstNonEmpty(rec.CasinoAccountID, p.casinoAccountID)
	if w.PayoutKeyType == "" {
		w.PayoutKeyType = p.payoutKeyType
	}
	w.PayoutKeyValue = firstNonEmpty(rec.PayoutKeyValue, p.payoutKeyValue)
	if w.RegisteredAt.IsZero() {
		w.RegisteredAt = rec.CreatedAt
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = rec.WonAt
	}

	switch rec.Status {
	case legacyStatusPaid:
		w.Status = PayoutStatusPaid
	case legacyStatusPending, "":
		w.Status = PayoutStatusPending
	}
	if !w.Status.Valid() {
		w.Status = PayoutStatusPending
	}
	return w
}

type legacyProjection struct {
	displayName     string
	nationalID      string
	casinoAccountID string
	payoutKeyType   PayoutKeyType
	payoutKeyValue  string
}

func migrateLegacy(l LegacyFields) legacyProjection {
	return legacyProjection{
		displayName:     strings.TrimSpace(firstNonEmpty(l.Name, l.TwitchNick)),
		nationalID:      utils.NormalizeNationalID(l.CPF),
		casinoAccountID: strings.TrimSpace(l.CasinoID),
		payoutKeyType:   legacyPayoutKeyTypes[strings.ToLower(strings.TrimSpace(l.PixKeyType))],
		payoutKeyValue:  strings.TrimSpace(l.PixKey),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
