package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"mindhealth/internal/model"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// SQLiteStore is a single-file backend implementing AssessmentRepo and
// ReferenceRepo. Nested values are stored as JSON columns.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and migrates) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migration: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS assessments (
			id        TEXT PRIMARY KEY,
			user_id   TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			results   TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS disorders (
			id   TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			body TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS statistics (
			id   TEXT PRIMARY KEY,
			body TEXT NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_assessments_user_ts ON assessments (user_id, timestamp DESC)`)
	return err
}

func (s *SQLiteStore) Create(ctx context.Context, record *model.AssessmentRecord) (string, error) {
	if record.ID == "" {
		id, err := newRecordID()
		if err != nil {
			return "", err
		}
		record.ID = id
	}
	results, err := json.Marshal(record.SummarizedResults)
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, user_id, timestamp, results) VALUES (?, ?, ?, ?)`,
		record.ID, record.UserID, record.Timestamp, string(results))
	if err != nil {
		return "", fmt.Errorf("insert assessment: %w", err)
	}
	return record.ID, nil
}

func (s *SQLiteStore) GetByID(ctx context.Context, userID, id string) (*model.AssessmentRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, timestamp, results FROM assessments WHERE id = ? AND user_id = ?`, id, userID)
	record, err := scanAssessment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find assessment: %w", err)
	}
	return record, nil
}

func (s *SQLiteStore) ListByUser(ctx context.Context, userID string, limit int) ([]*model.AssessmentRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, timestamp, results FROM assessments
		 WHERE user_id = ? ORDER BY timestamp DESC, rowid DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	records := []*model.AssessmentRecord{}
	for rows.Next() {
		record, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAssessment(sc scanner) (*model.AssessmentRecord, error) {
	var (
		record  model.AssessmentRecord
		results string
	)
	if err := sc.Scan(&record.ID, &record.UserID, &record.Timestamp, &results); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(results), &record.SummarizedResults); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *SQLiteStore) ListDisorders(ctx context.Context) ([]*model.Disorder, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT body FROM disorders ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list disorders: %w", err)
	}
	defer rows.Close()

	disorders := []*model.Disorder{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var d model.Disorder
		if err := json.Unmarshal([]byte(body), &d); err != nil {
			return nil, fmt.Errorf("decode disorder: %w", err)
		}
		disorders = append(disorders, &d)
	}
	return disorders, rows.Err()
}

func (s *SQLiteStore) GetDisorder(ctx context.Context, id string) (*model.Disorder, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM disorders WHERE id = ?`, id).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find disorder: %w", err)
	}
	var d model.Disorder
	if err := json.Unmarshal([]byte(body), &d); err != nil {
		return nil, fmt.Errorf("decode disorder: %w", err)
	}
	return &d, nil
}

func (s *SQLiteStore) ReplaceDisorders(ctx context.Context, disorders []*model.Disorder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM disorders`); err != nil {
		return fmt.Errorf("clear disorders: %w", err)
	}
	for _, d := range disorders {
		body, err := json.Marshal(d)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO disorders (id, name, body) VALUES (?, ?, ?)`, d.ID, d.Name, string(body)); err != nil {
			return fmt.Errorf("insert disorder %s: %w", d.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetStatistics(ctx context.Context, id string) (*model.Statistics, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM statistics WHERE id = ?`, id).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find statistics: %w", err)
	}
	stats := &model.Statistics{ID: id}
	if err := json.Unmarshal([]byte(body), &stats.Data); err != nil {
		return nil, fmt.Errorf("decode statistics: %w", err)
	}
	return stats, nil
}

func (s *SQLiteStore) SaveStatistics(ctx context.Context, stats *model.Statistics) error {
	body, err := json.Marshal(stats.Data)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO statistics (id, body) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET body = excluded.body`, stats.ID, string(body))
	return err
}

var (
	_ AssessmentRepo = (*SQLiteStore)(nil)
	_ ReferenceRepo  = (*SQLiteStore)(nil)
)
