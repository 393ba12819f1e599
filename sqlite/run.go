package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bodytext"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bodytext.RunService = (*RunService)(nil)

// RunService implements bodytext.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// hashBody computes the xxHash of body text and returns a hex string.
// Failed rows store an empty hash.
func hashBody(body string) string {
	if body == "" {
		return ""
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(body))
	return hex.EncodeToString(b)
}

// SaveRun stores a finished run and all of its rows in one transaction.
// Assigns ID and CreatedAt when unset.
func (s *RunService) SaveRun(ctx context.Context, run *bodytext.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, succeeded, failed)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.CreatedAt.Format(time.RFC3339), run.Succeeded, run.Failed)
	if err != nil {
		return err
	}

	for i, row := range run.Rows {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO result_rows (run_id, position, input_url, final_url, http_status, title, body_text, body_len, body_hash, error)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, i, row.InputURL, row.FinalURL, row.HTTPStatus, row.Title,
			row.BodyText, row.BodyLen, hashBody(row.BodyText), row.Error)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run with its rows in position order.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*bodytext.Run, error) {
	run, err := s.scanRun(s.db.QueryRowContext(ctx, `
		SELECT id, created_at, succeeded, failed
		FROM runs
		WHERE id = ?
	`, id))
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT input_url, final_url, http_status, title, body_text, body_len, error
		FROM result_rows
		WHERE run_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row bodytext.Row
		if err := rows.Scan(&row.InputURL, &row.FinalURL, &row.HTTPStatus,
			&row.Title, &row.BodyText, &row.BodyLen, &row.Error); err != nil {
			return nil, err
		}
		run.Rows = append(run.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return run, nil
}

// FindRuns retrieves recent runs, newest first, without their rows.
func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*bodytext.Run, error) {
	query := `
		SELECT id, created_at, succeeded, failed
		FROM runs
		ORDER BY created_at DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*bodytext.Run
	for rows.Next() {
		run, err := s.scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRun scans the run columns shared by FindRunByID and FindRuns.
func (s *RunService) scanRun(scanner rowScanner) (*bodytext.Run, error) {
	var run bodytext.Run
	var createdAt string

	err := scanner.Scan(&run.ID, &createdAt, &run.Succeeded, &run.Failed)
	if err == sql.ErrNoRows {
		return nil, bodytext.Errorf(bodytext.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, bodytext.Errorf(bodytext.EINTERNAL, "failed to parse created_at: %v", err)
	}

	return &run, nil
}
