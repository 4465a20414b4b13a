// Package storage persists domain check results and scores in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/opendomains/opendomains/internal/check"
	"github.com/opendomains/opendomains/internal/score"
)

// Record is one stored domain result.
type Record struct {
	Domain    string
	Word      string
	TLD       string
	Available *bool // nil = unknown
	Method    string
	Error     string

	Score *score.Score // nil when unscored

	FirstChecked time.Time
	LastChecked  time.Time
	CheckCount   int
}

// Run summarizes one check batch.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Checked    int
	Available  int
}

// Query filters stored records. Zero values mean "no filter".
type Query struct {
	Available *bool
	MinScore  *float64
	MaxScore  *float64
	TLD       string
	MinLength int
	MaxLength int
	Limit     int
}

// Stats aggregates the stored results.
type Stats struct {
	Total       int
	Available   int
	Unavailable int
	Unknown     int
	WithScores  int
	AvgScore    float64
	MaxScore    float64
	MinScore    float64
	TLDs        map[string]TLDStats
}

// TLDStats is the per-TLD slice of Stats.
type TLDStats struct {
	Total     int
	Available int
}

// Store is the SQLite-backed results store.
type Store struct {
	db *sql.DB
}

// Open creates or opens the results database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add upserts one result. An existing row keeps its first_checked
// timestamp and bumps check_count.
func (s *Store) Add(ctx context.Context, result check.Result, sc *score.Score) error {
	return s.add(ctx, s.db, result, sc, time.Now().UTC())
}

// AddBatch upserts a slice of results and their scores in one
// transaction, and records a run row. scores may be shorter than
// results; missing entries store NULL score columns.
func (s *Store) AddBatch(ctx context.Context, results []check.Result, scores map[string]score.Score, started time.Time) (*Run, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	availableCount := 0
	for _, r := range results {
		var sc *score.Score
		if s, ok := scores[r.Domain]; ok {
			sc = &s
		}
		if err := s.add(ctx, tx, r, sc, now); err != nil {
			return nil, err
		}
		if r.Available() {
			availableCount++
		}
	}

	run := &Run{
		ID:         uuid.New().String(),
		StartedAt:  started.UTC(),
		FinishedAt: now,
		Checked:    len(results),
		Available:  availableCount,
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, checked, available)
		VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.FinishedAt, run.Checked, run.Available)
	if err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}
	return run, nil
}

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) add(ctx context.Context, q execQuerier, result check.Result, sc *score.Score, now time.Time) error {
	word, tld := score.SplitDomain(result.Domain)

	firstChecked := now
	checkCount := 1
	var prevFirst time.Time
	var prevCount int
	err := q.QueryRowContext(ctx,
		"SELECT first_checked, check_count FROM domains WHERE domain = ?",
		result.Domain).Scan(&prevFirst, &prevCount)
	switch {
	case err == nil:
		firstChecked = prevFirst
		checkCount = prevCount + 1
	case err != sql.ErrNoRows:
		return fmt.Errorf("failed to read existing record: %w", err)
	}

	var totalScore, tldMult sql.NullFloat64
	var pron, spell, length, memo, brand, euph, meaning sql.NullInt64
	if sc != nil {
		totalScore = sql.NullFloat64{Float64: sc.Total, Valid: true}
		tldMult = sql.NullFloat64{Float64: sc.TLDMultiplier, Valid: true}
		pron = sql.NullInt64{Int64: int64(sc.Pronounceability), Valid: true}
		spell = sql.NullInt64{Int64: int64(sc.Spellability), Valid: true}
		length = sql.NullInt64{Int64: int64(sc.Length), Valid: true}
		memo = sql.NullInt64{Int64: int64(sc.Memorability), Valid: true}
		brand = sql.NullInt64{Int64: int64(sc.Brandability), Valid: true}
		euph = sql.NullInt64{Int64: int64(sc.Euphony), Valid: true}
		meaning = sql.NullInt64{Int64: int64(sc.Meaning), Valid: true}
	}

	var available sql.NullBool
	if p := result.AvailablePtr(); p != nil {
		available = sql.NullBool{Bool: *p, Valid: true}
	}

	var errText sql.NullString
	if result.Err != "" {
		errText = sql.NullString{String: result.Err, Valid: true}
	}

	_, err = q.ExecContext(ctx, `
		INSERT OR REPLACE INTO domains (
			domain, word, tld, available, method, error,
			total_score, pronounceability, spellability, length_score,
			memorability, brandability, euphony, meaning_score, tld_multiplier,
			first_checked, last_checked, check_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Domain, word, tld, available, result.Method, errText,
		totalScore, pron, spell, length, memo, brand, euph, meaning, tldMult,
		firstChecked, now, checkCount)
	if err != nil {
		return fmt.Errorf("failed to upsert domain %s: %w", result.Domain, err)
	}
	return nil
}

// Get returns the stored record for a domain, or nil when absent.
func (s *Store) Get(ctx context.Context, domain string) (*Record, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+" FROM domains WHERE domain = ?", domain)
	if err != nil {
		return nil, fmt.Errorf("failed to query domain: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

const selectColumns = `SELECT domain, word, tld, available, method, error,
	total_score, pronounceability, spellability, length_score,
	memorability, brandability, euphony, meaning_score, tld_multiplier,
	first_checked, last_checked, check_count`

// Find returns records matching the query, best score first.
func (s *Store) Find(ctx context.Context, q Query) ([]Record, error) {
	var conditions []string
	var args []any

	if q.Available != nil {
		conditions = append(conditions, "available = ?")
		args = append(args, *q.Available)
	}
	if q.MinScore != nil {
		conditions = append(conditions, "total_score >= ?")
		args = append(args, *q.MinScore)
	}
	if q.MaxScore != nil {
		conditions = append(conditions, "total_score <= ?")
		args = append(args, *q.MaxScore)
	}
	if q.TLD != "" {
		conditions = append(conditions, "tld = ?")
		args = append(args, q.TLD)
	}
	if q.MinLength > 0 {
		conditions = append(conditions, "LENGTH(word) >= ?")
		args = append(args, q.MinLength)
	}
	if q.MaxLength > 0 {
		conditions = append(conditions, "LENGTH(word) <= ?")
		args = append(args, q.MaxLength)
	}

	sqlText := selectColumns + " FROM domains"
	if len(conditions) > 0 {
		sqlText += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlText += " ORDER BY total_score DESC"
	if q.Limit > 0 {
		sqlText += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query domains: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var r Record
		var available sql.NullBool
		var method, errText sql.NullString
		var totalScore, tldMult sql.NullFloat64
		var pron, spell, length, memo, brand, euph, meaning sql.NullInt64

		err := rows.Scan(&r.Domain, &r.Word, &r.TLD, &available, &method, &errText,
			&totalScore, &pron, &spell, &length, &memo, &brand, &euph, &meaning, &tldMult,
			&r.FirstChecked, &r.LastChecked, &r.CheckCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		if available.Valid {
			v := available.Bool
			r.Available = &v
		}
		r.Method = method.String
		r.Error = errText.String

		if totalScore.Valid {
			r.Score = &score.Score{
				Domain:           r.Domain,
				Total:            totalScore.Float64,
				Pronounceability: int(pron.Int64),
				Spellability:     int(spell.Int64),
				Length:           int(length.Int64),
				Memorability:     int(memo.Int64),
				Brandability:     int(brand.Int64),
				Euphony:          int(euph.Int64),
				Meaning:          int(meaning.Int64),
				TLDMultiplier:    tldMult.Float64,
			}
		}

		records = append(records, r)
	}
	return records, rows.Err()
}

// TopAvailable returns the n best-scoring available domains.
func (s *Store) TopAvailable(ctx context.Context, n int) ([]Record, error) {
	avail := true
	return s.Find(ctx, Query{Available: &avail, Limit: n})
}

// GetStats aggregates the stored results.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{TLDs: make(map[string]TLDStats)}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN available = 1 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN available = 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN available IS NULL THEN 1 ELSE 0 END), 0)
		FROM domains`).
		Scan(&stats.Total, &stats.Available, &stats.Unavailable, &stats.Unknown)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate totals: %w", err)
	}

	var avg, maxScore, minScore sql.NullFloat64
	var withScores sql.NullInt64
	err = s.db.QueryRowContext(ctx, `
		SELECT AVG(total_score), MAX(total_score), MIN(total_score), COUNT(total_score)
		FROM domains WHERE available = 1 AND total_score IS NOT NULL`).
		Scan(&avg, &maxScore, &minScore, &withScores)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate scores: %w", err)
	}
	stats.AvgScore = avg.Float64
	stats.MaxScore = maxScore.Float64
	stats.MinScore = minScore.Float64
	stats.WithScores = int(withScores.Int64)

	rows, err := s.db.QueryContext(ctx, `
		SELECT tld, COUNT(*), SUM(CASE WHEN available = 1 THEN 1 ELSE 0 END)
		FROM domains GROUP BY tld`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate TLDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tld string
		var t TLDStats
		if err := rows.Scan(&tld, &t.Total, &t.Available); err != nil {
			return nil, fmt.Errorf("failed to scan TLD stats: %w", err)
		}
		stats.TLDs[tld] = t
	}
	return stats, rows.Err()
}

// Runs returns the most recent check runs, newest first.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, checked, available
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Checked, &r.Available); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
