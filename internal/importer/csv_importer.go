package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"golang.org/x/exp/slog"
)

// Column aliases accepted in the header row, matched case-insensitively
var (
	nameColumns      = []string{"name", "displayName", "nick"}
	nationalIDColumn = []string{"nationalId", "national_id", "cpf"}
	casinoColumns    = []string{"casinoAccountId", "casino_account_id", "casinoId"}
	keyTypeColumns   = []string{"payoutKeyType", "payout_key_type", "pixKeyType"}
	keyValueColumns  = []string{"payoutKeyValue", "payout_key_value", "pixKey"}
)

// RowError records why a row was not registered
type RowError struct {
	Row    int               `json:"row"`
	Reason string            `json:"reason"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Result summarizes an import run
type Result struct {
	TotalRows  int        `json:"totalRows"`
	Registered int        `json:"registered"`
	Duplicates int        `json:"duplicates"`
	Invalid    int        `json:"invalid"`
	Failed     int        `json:"failed"`
	Errors     []RowError `json:"errors"`
}

// CSVImporter registers entrants from a CSV file through the entrant service,
// so every row gets the same validation and duplicate check as the form
type CSVImporter struct {
	entrants services.EntrantService
	dryRun   bool
}

// NewCSVImporter creates a new CSVImporter. With dryRun set rows are only validated.
func NewCSVImporter(entrants services.EntrantService, dryRun bool) *CSVImporter {
	return &CSVImporter{entrants: entrants, dryRun: dryRun}
}

type columns struct {
	name, nationalID, casino, keyType, keyValue int
}

// Import reads the header row, then registers every following row.
// Row failures are collected in the result; only an unreadable header or a
// cancelled ctx stops the run.
func (i *CSVImporter) Import(ctx context.Context, r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	result := &Result{Errors: []RowError{}}
	for row := 2; ; row++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		result.TotalRows++
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: row, Reason: err.Error()})
			continue
		}

		i.importRow(ctx, row, cols.request(record), result)
	}

	slog.Info("csv import finished",
		"rows", result.TotalRows,
		"registered", result.Registered,
		"duplicates", result.Duplicates,
		"invalid", result.Invalid,
		"failed", result.Failed,
		"dryRun", i.dryRun,
	)
	return result, nil
}

func (i *CSVImporter) importRow(ctx context.Context, row int, req *models.RegistrationRequest, result *Result) {
	var err error
	if i.dryRun {
		err = services.ValidateRegistration(req)
	} else {
		var entrant *models.Entrant
		entrant, err = i.entrants.Register(ctx, req)
		if err == nil {
			slog.Info("row registered", "row", row, "entrantId", entrant.ID)
		}
	}
	if err == nil {
		result.Registered++
		return
	}

	var (
		verr *services.ValidationError
		derr *services.DuplicateEntrantError
	)
	switch {
	case errors.As(err, &verr):
		result.Invalid++
		result.Errors = append(result.Errors, RowError{Row: row, Reason: "invalid registration", Fields: verr.Fields})
	case errors.As(err, &derr):
		result.Duplicates++
		result.Errors = append(result.Errors, RowError{Row: row, Reason: "duplicate national id", Fields: derr.Fields()})
	default:
		result.Failed++
		result.Errors = append(result.Errors, RowError{Row: row, Reason: err.Error()})
	}
	slog.Warn("row skipped", "row", row, "error", err)
}

func mapColumns(header []string) (*columns, error) {
	cols := &columns{
		name:       findColumnIndex(header, nameColumns),
		nationalID: findColumnIndex(header, nationalIDColumn),
		casino:     findColumnIndex(header, casinoColumns),
		keyType:    findColumnIndex(header, keyTypeColumns),
		keyValue:   findColumnIndex(header, keyValueColumns),
	}

	var missing []string
	if cols.name == -1 {
		missing = append(missing, "name")
	}
	if cols.nationalID == -1 {
		missing = append(missing, "nationalId")
	}
	if cols.casino == -1 {
		missing = append(missing, "casinoAccountId")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing csv columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c *columns) request(record []string) *models.RegistrationRequest {
	return &models.RegistrationRequest{
		DisplayName:     field(record, c.name),
		NationalID:      field(record, c.nationalID),
		CasinoAccountID: field(record, c.casino),
		PayoutKeyType:   field(record, c.keyType),
		PayoutKeyValue:  field(record, c.keyValue),
	}
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// findColumnIndex finds the index of the first header matching one of the names
func findColumnIndex(header []string, names []string) int {
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		for _, name := range names {
			if strings.EqualFold(h, name) {
				return i
			}
		}
	}
	return -1
}
