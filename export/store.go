package export

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	_ "modernc.org/sqlite"
)

//go:embed schema/0001_init.sql
var schema string

// Store persists runs in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite database at path and applies the schema.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("export: opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{"PRAGMA foreign_keys=ON", schema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("export: initializing database: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun writes the run and its lines in one transaction and returns the
// new run id.
func (s *Store) SaveRun(ctx context.Context, run Run) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("export: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `INSERT INTO runs
		(id, region, search_radius_km, investment_period, threshold, iterations,
		 total_cost_eur, total_flow_gwh, cost_per_flow, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.Region, run.SearchRadiusKm, run.InvestmentPeriod, run.Threshold, run.Iterations,
		run.Summary.TotalCostEUR, run.Summary.TotalFlowGWh, run.Summary.CostPerFlowCtKWh,
		run.StartedAt.UTC().Format(time.RFC3339Nano), run.FinishedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("export: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO transmission_lines
		(run_id, seq, from_lon, from_lat, to_lon, to_lat,
		 flow_mwh, peak_mw, temperature_c, cost_eur, length_km, levelized_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("export: prepare lines: %w", err)
	}
	defer stmt.Close()
	for i, l := range run.Lines {
		if _, err := stmt.ExecContext(ctx, id, i, l.From.Lon(), l.From.Lat(), l.To.Lon(), l.To.Lat(),
			l.FlowMWh, l.PeakMW, l.TemperatureC, l.CostEUR, l.LengthKm, l.LevelizedCost); err != nil {
			return "", fmt.Errorf("export: insert line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("export: commit: %w", err)
	}
	return id, nil
}

// LoadRun reads a run and its lines back.
func (s *Store) LoadRun(ctx context.Context, id string) (*Run, error) {
	var (
		run               Run
		started, finished string
	)
	err := s.db.QueryRowContext(ctx, `SELECT region, search_radius_km, investment_period, threshold,
		iterations, total_cost_eur, total_flow_gwh, cost_per_flow, started_at, finished_at
		FROM runs WHERE id = ?`, id).Scan(
		&run.Region, &run.SearchRadiusKm, &run.InvestmentPeriod, &run.Threshold, &run.Iterations,
		&run.Summary.TotalCostEUR, &run.Summary.TotalFlowGWh, &run.Summary.CostPerFlowCtKWh,
		&started, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("export: load run: %w", err)
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("export: started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return nil, fmt.Errorf("export: finished_at: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT from_lon, from_lat, to_lon, to_lat,
		flow_mwh, peak_mw, temperature_c, cost_eur, length_km, levelized_cost
		FROM transmission_lines WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("export: load lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l Line
		var fromLon, fromLat, toLon, toLat float64
		if err := rows.Scan(&fromLon, &fromLat, &toLon, &toLat,
			&l.FlowMWh, &l.PeakMW, &l.TemperatureC, &l.CostEUR, &l.LengthKm, &l.LevelizedCost); err != nil {
			return nil, fmt.Errorf("export: scan line: %w", err)
		}
		l.From = orb.Point{fromLon, fromLat}
		l.To = orb.Point{toLon, toLat}
		run.Lines = append(run.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export: load lines: %w", err)
	}

	return &run, nil
}

// RunIDs returns the ids of all runs for region, oldest first.
func (s *Store) RunIDs(ctx context.Context, region string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs WHERE region = ? ORDER BY started_at, id`, region)
	if err != nil {
		return nil, fmt.Errorf("export: list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
