package models

import (
	"time"
)

// DrawState is the position of the draw engine in its spin cycle
type DrawState string

const (
	DrawStateIdle       DrawState = "IDLE"
	DrawStateSpinning   DrawState = "SPINNING"
	DrawStateCommitting DrawState = "COMMITTING"
)

// RaffleStatsID is the key of the singleton counter document
const RaffleStatsID = "raffle"

// RaffleStats holds the monotonic draw counter
type RaffleStats struct {
	ID           string    `bson:"_id" json:"-"`
	TotalRaffles int64     `bson:"totalRaffles" json:"totalRaffles"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// RouletteView is what the operator's wheel needs to render before a spin
type RouletteView struct {
	State        DrawState  `json:"state"`
	Entrants     []*Entrant `json:"entrants"`
	TotalRaffles int64      `json:"totalRaffles"`
}

// ReconcileReport summarises the repairs made by one reconciliation sweep
type ReconcileReport struct {
	WinnersScanned    int      `json:"winnersScanned"`
	EntrantsRemoved   []string `json:"entrantsRemoved"`
	CounterBefore     int64    `json:"counterBefore"`
	CounterAfter      int64    `json:"counterAfter"`
	CounterAdjustedBy int64    `json:"counterAdjustedBy"`
}
