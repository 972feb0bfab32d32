package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"fintrack/internal/core"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// SheetsArchiver appends the month's records as rows to a Google Sheet,
// one tab per year (e.g. "Archive 2025").
type SheetsArchiver struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetBase     string
}

// NewSheetsArchiverFromEnv creates a Sheets archiver using environment
// variables and service account credentials.
// Required: GOOGLE_SPREADSHEET_ID.
// Auth: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewSheetsArchiverFromEnv(ctx context.Context, spreadsheetID, sheetBase string) (*SheetsArchiver, error) {
	if spreadsheetID == "" {
		spreadsheetID = strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	}
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	if sheetBase == "" {
		sheetBase = "Archive"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &SheetsArchiver{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetBase:     sheetBase,
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

func (a *SheetsArchiver) Archive(ctx context.Context, scope core.Scope, records []core.Transaction) error {
	sheetName := fmt.Sprintf("%s %d", a.sheetBase, scope.Year)
	values := recordRows(records)

	_, err := a.svc.Spreadsheets.Values.Append(
		a.spreadsheetID,
		sheetName+"!A:H",
		&gsheet.ValueRange{Values: values},
	).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %d rows to %s: %w", len(values), sheetName, err)
	}

	slog.InfoContext(ctx, "Records archived to sheet",
		"sink", "sheets",
		"sheet", sheetName,
		"month", scope.Month,
		"year", scope.Year,
		"record_count", len(records))

	return nil
}

// recordRows converts records to spreadsheet rows:
// id, month, year, kind, category, amount, note, created_at.
func recordRows(records []core.Transaction) [][]interface{} {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{
			strconv.FormatInt(r.ID, 10),
			r.Month,
			r.Year,
			string(r.Kind),
			r.Category,
			r.Amount.Units(),
			r.Note,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return rows
}
