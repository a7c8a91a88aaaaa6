// Package google implements the record-store ports on top of the Google
// Sheets API.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"opyta/internal/core"
	ports "opyta/internal/sheets"
)

// Config carries everything the adapter needs: the spreadsheet, the
// credentials and the six worksheet names.
type Config struct {
	SpreadsheetID string

	// One of the two; inline JSON wins when both are set.
	CredentialsJSON string
	CredentialsFile string

	ProjectsSheet  string
	RevenuesSheet  string
	ExpensesSheet  string
	CostsSheet     string
	TaxParamsSheet string
	TaxResultSheet string
}

type Client struct {
	svc            *gsheet.Service
	spreadsheetID  string
	projectsSheet  string
	revenuesSheet  string
	expensesSheet  string
	costsSheet     string
	taxParamsSheet string
	taxResultSheet string
}

// Ensure interface conformance
var (
	_ ports.SnapshotReader = (*Client)(nil)
	_ ports.TaxTableWriter = (*Client)(nil)
)

// New creates a Sheets client from service account credentials.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}

	svc, err := newSheetsService(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:            svc,
		spreadsheetID:  cfg.SpreadsheetID,
		projectsSheet:  cfg.ProjectsSheet,
		revenuesSheet:  cfg.RevenuesSheet,
		expensesSheet:  cfg.ExpensesSheet,
		costsSheet:     cfg.CostsSheet,
		taxParamsSheet: cfg.TaxParamsSheet,
		taxResultSheet: cfg.TaxResultSheet,
	}, nil
}

func newSheetsService(ctx context.Context, cfg Config) (*gsheet.Service, error) {
	var credentialsJSON []byte

	switch {
	case strings.TrimSpace(cfg.CredentialsJSON) != "":
		credentialsJSON = []byte(cfg.CredentialsJSON)
	case strings.TrimSpace(cfg.CredentialsFile) != "":
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = data
	default:
		return nil, errors.New("missing service account credentials")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// ReadSnapshot fetches the five source worksheets. It first checks the
// spreadsheet schema so an absent tab surfaces as a MissingSheetError rather
// than a generic transport failure, then fetches the tabs concurrently.
func (c *Client) ReadSnapshot(ctx context.Context) (core.RawTables, error) {
	if c.svc == nil {
		return core.RawTables{}, ports.ErrNotConnected
	}

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return core.RawTables{}, fmt.Errorf("%w: %v", ports.ErrNotConnected, err)
	}
	present := make(map[string]bool, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			present[s.Properties.Title] = true
		}
	}
	for _, name := range []string{c.projectsSheet, c.revenuesSheet, c.expensesSheet, c.costsSheet, c.taxParamsSheet} {
		if !present[name] {
			return core.RawTables{}, &ports.MissingSheetError{Sheet: name}
		}
	}

	var tables core.RawTables
	g, gctx := errgroup.WithContext(ctx)
	fetch := func(sheet string, dst *core.RawTable) func() error {
		return func() error {
			rows, err := c.readTable(gctx, sheet)
			if err != nil {
				return err
			}
			*dst = rows
			return nil
		}
	}
	g.Go(fetch(c.projectsSheet, &tables.Projects))
	g.Go(fetch(c.revenuesSheet, &tables.Revenues))
	g.Go(fetch(c.expensesSheet, &tables.Expenses))
	g.Go(fetch(c.costsSheet, &tables.Costs))
	g.Go(fetch(c.taxParamsSheet, &tables.TaxParams))
	if err := g.Wait(); err != nil {
		return core.RawTables{}, err
	}

	slog.DebugContext(ctx, "Snapshot read from spreadsheet",
		"projects", len(tables.Projects),
		"revenues", len(tables.Revenues),
		"expenses", len(tables.Expenses),
		"costs", len(tables.Costs),
		"tax_params", len(tables.TaxParams))
	return tables, nil
}

func (c *Client) readTable(ctx context.Context, sheet string) (core.RawTable, error) {
	rng := fmt.Sprintf("%s!A:Z", sheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return valuesToTable(resp.Values), nil
}

// ReplaceTaxTable clears the destination worksheet and writes the computed
// rows in a single batched update. The clear-then-write pair is not atomic
// on the store side; the computation is deterministic, so a retry after a
// partial failure fully repairs the table.
func (c *Client) ReplaceTaxTable(ctx context.Context, params []core.TaxParameter, rows []core.TaxRow) error {
	if c.svc == nil {
		return ports.ErrNotConnected
	}

	clearRng := fmt.Sprintf("%s!A:Z", c.taxResultSheet)
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRng, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", clearRng, err)
	}

	values := taxTableValues(params, rows)
	writeRng := fmt.Sprintf("%s!A1", c.taxResultSheet)
	vr := &gsheet.ValueRange{Values: values}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRng, vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("write %s: %w", writeRng, err)
	}

	slog.InfoContext(ctx, "Tax table replaced",
		"sheet", c.taxResultSheet, "rows", len(rows), "taxes", len(params))
	return nil
}
