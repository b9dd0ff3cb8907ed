package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq" // PostgreSQL driver
)

// pgForeignKeyViolation is the SQLSTATE raised when a shortlist row points at
// a candidate deleted in the meantime.
const pgForeignKeyViolation = "23503"

// summaryColumns selects a CandidateSummary from candidates aliased as c.
const summaryColumns = `c.id, COALESCE(c.name, ''), COALESCE(c.skills, ''), COALESCE(c.filename, ''),
        COALESCE(c.email, ''), COALESCE(c.phone, ''), COALESCE(c.summary, ''),
        LEFT(COALESCE(c.resume_text, ''), 200)`

// candidateColumns selects a full Candidate from candidates aliased as c.
const candidateColumns = `c.id, COALESCE(c.name, ''), COALESCE(c.resume_text, ''), COALESCE(c.skills, ''),
        COALESCE(c.filename, ''), COALESCE(c.email, ''), COALESCE(c.phone, ''),
        COALESCE(c.summary, ''), c.created_at`

const (
	insertCandidateSQL = `INSERT INTO candidates (name, resume_text, skills, filename, email, phone, summary)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id, created_at`

	listCandidatesSQL = `SELECT ` + summaryColumns + `
        FROM candidates c
        ORDER BY c.id DESC`

	searchCandidatesSQL = `SELECT ` + summaryColumns + `
        FROM candidates c
        WHERE c.resume_text ILIKE $1
        ORDER BY c.id DESC`

	allCandidatesSQL = `SELECT ` + candidateColumns + `
        FROM candidates c
        ORDER BY c.id`

	getCandidateSQL = `SELECT ` + candidateColumns + `, s.added_at
        FROM candidates c
        LEFT JOIN shortlist s ON s.candidate_id = c.id
        WHERE c.id = $1`

	deleteShortlistEntrySQL = `DELETE FROM shortlist WHERE candidate_id = $1`

	deleteCandidateSQL = `DELETE FROM candidates WHERE id = $1 RETURNING COALESCE(filename, '')`

	addToShortlistSQL = `INSERT INTO shortlist (candidate_id)
              SELECT c.id FROM candidates c WHERE c.id = $1
              ON CONFLICT DO NOTHING`

	listShortlistSQL = `SELECT ` + summaryColumns + `
        FROM candidates c
        JOIN shortlist s ON s.candidate_id = c.id
        ORDER BY s.added_at DESC, s.id DESC`
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("candidate not found")

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{connection: db}, nil
}

// NewFromConn wraps an already opened connection pool.
func NewFromConn(conn *sql.DB) *DB {
	return &DB{connection: conn}
}

func (db *DB) Close() error {
	return db.connection.Close()
}

// Ping reports whether the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.connection.PingContext(ctx)
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.connection.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// InsertCandidate stores c and fills in its generated ID and creation time.
func (db *DB) InsertCandidate(ctx context.Context, c *Candidate) (int64, error) {
	err := db.connection.QueryRowContext(ctx, insertCandidateSQL,
		c.Name,
		c.ResumeText,
		c.Skills,
		c.Filename,
		c.Email,
		c.Phone,
		c.Summary,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert candidate: %w", err)
	}
	return c.ID, nil
}

// ListCandidates returns every candidate, newest first.
func (db *DB) ListCandidates(ctx context.Context) ([]CandidateSummary, error) {
	return db.querySummaries(ctx, "list candidates", listCandidatesSQL)
}

// SearchCandidates returns candidates whose resume text contains query,
// ignoring case. An empty query matches everything.
func (db *DB) SearchCandidates(ctx context.Context, query string) ([]CandidateSummary, error) {
	return db.querySummaries(ctx, "search candidates", searchCandidatesSQL, "%"+escapeLike(query)+"%")
}

// AllCandidates returns every candidate including its full text, in insertion order.
func (db *DB) AllCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := db.connection.QueryContext(ctx, allCandidatesSQL)
	if err != nil {
		return nil, fmt.Errorf("all candidates: %w", err)
	}
	defer rows.Close()

	res := []Candidate{}
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.ResumeText, &c.Skills, &c.Filename,
			&c.Email, &c.Phone, &c.Summary, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("all candidates: scan: %w", err)
		}
		res = append(res, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("all candidates: %w", err)
	}
	return res, nil
}

// GetCandidate returns one candidate with its shortlist membership.
func (db *DB) GetCandidate(ctx context.Context, id int64) (*CandidateDetail, error) {
	var (
		c       Candidate
		addedAt sql.NullTime
	)
	err := db.connection.QueryRowContext(ctx, getCandidateSQL, id).Scan(
		&c.ID, &c.Name, &c.ResumeText, &c.Skills, &c.Filename,
		&c.Email, &c.Phone, &c.Summary, &c.CreatedAt, &addedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate %d: %w", id, err)
	}

	detail := &CandidateDetail{
		CandidateSummary: c.ToSummary(),
		ResumeText:       c.ResumeText,
		Shortlisted:      addedAt.Valid,
	}
	if addedAt.Valid {
		t := addedAt.Time
		detail.AddedAt = &t
	}
	return detail, nil
}

// DeleteCandidate removes a candidate and its shortlist entry in one transaction.
// It returns the stored file name, or "" if the candidate did not exist.
func (db *DB) DeleteCandidate(ctx context.Context, id int64) (string, error) {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("delete candidate %d: begin: %w", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteShortlistEntrySQL, id); err != nil {
		return "", fmt.Errorf("delete candidate %d: shortlist: %w", id, err)
	}

	var filename string
	err = tx.QueryRowContext(ctx, deleteCandidateSQL, id).Scan(&filename)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("delete candidate %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("delete candidate %d: commit: %w", id, err)
	}
	return filename, nil
}

// AddToShortlist marks a candidate as shortlisted. Repeated calls and unknown
// ids are no-ops; the UNIQUE constraint on candidate_id keeps one row per candidate.
func (db *DB) AddToShortlist(ctx context.Context, id int64) error {
	_, err := db.connection.ExecContext(ctx, addToShortlistSQL, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
			return nil
		}
		return fmt.Errorf("shortlist candidate %d: %w", id, err)
	}
	return nil
}

// ListShortlist returns shortlisted candidates, most recently added first.
func (db *DB) ListShortlist(ctx context.Context) ([]CandidateSummary, error) {
	return db.querySummaries(ctx, "list shortlist", listShortlistSQL)
}

func (db *DB) querySummaries(ctx context.Context, op, query string, args ...any) ([]CandidateSummary, error) {
	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := []CandidateSummary{}
	for rows.Next() {
		var c CandidateSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Skills, &c.Filename,
			&c.Email, &c.Phone, &c.Summary, &c.Preview); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		res = append(res, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// escapeLike makes LIKE metacharacters in s match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
