package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ArowuTest/raffle-backend/internal/repositories"
)

var (
	// ErrNotFound is returned when an entrant or winner id does not exist
	ErrNotFound = repositories.ErrNotFound
	// ErrEmptyPool is returned by a draw with no eligible entrants
	ErrEmptyPool = errors.New("no eligible entrants in the pool")
	// ErrDrawInProgress is returned when a draw is requested while another one runs
	ErrDrawInProgress = errors.New("a draw is already in progress")
	// ErrStorageUnavailable wraps store failures that are not domain errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries field-keyed messages. Keys are JSON field names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// DuplicateEntrantError is returned when the national ID is already in the active pool
type DuplicateEntrantError struct {
	NationalID string
}

func (e *DuplicateEntrantError) Error() string {
	return "national id already registered in the active pool"
}

// Fields reports the duplicate as a field error on nationalId
func (e *DuplicateEntrantError) Fields() map[string]string {
	return map[string]string{"nationalId": "is already registered"}
}

func (e *DuplicateEntrantError) Unwrap() error {
	return repositories.ErrDuplicateNationalID
}

// CommitStep names one write of the draw commit
type CommitStep string

const (
	StepAppendWinner   CommitStep = "append_winner"
	StepIncrementStats CommitStep = "increment_stats"
	StepRemoveEntrant  CommitStep = "remove_entrant"
)

// PartialCommitError reports a draw where some commit steps were written and a
// later one failed. The reconciliation sweep repairs it.
type PartialCommitError struct {
	DrawID    string
	WinnerID  string
	EntrantID string
	Completed []CommitStep
	Failed    CommitStep
	Err       error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("partial commit of draw %s: %s failed after %v: %v", e.DrawID, e.Failed, e.Completed, e.Err)
}

func (e *PartialCommitError) Unwrap() error {
	return e.Err
}

// storageError marks err as a store failure unless it already is a domain error
func storageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
