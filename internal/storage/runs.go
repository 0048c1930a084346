package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one scramble-and-reverse session.
type Run struct {
	RunID        string
	CreatedAt    time.Time
	Level        *string
	Scheme       string
	ScrambleText string
	SolutionText string
	MoveCount    int
	FinalState   string
	Solved       bool
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create stores a run and returns its ID. RunID and CreatedAt are assigned
// here.
func (r *RunRepository) Create(run Run) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	scheme := run.Scheme
	if scheme == "" {
		scheme = "YRGWOB"
	}

	solved := 0
	if run.Solved {
		solved = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, created_at, level, scheme, scramble_text, solution_text, move_count, final_state, solved)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(timeLayout), run.Level, scheme, run.ScrambleText, run.SolutionText,
		run.MoveCount, run.FinalState, solved)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

const runColumns = `run_id, created_at, level, scheme, scramble_text, solution_text, move_count, final_state, solved`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var createdAtStr string
	var solved int

	err := row.Scan(
		&run.RunID, &createdAtStr, &run.Level, &run.Scheme,
		&run.ScrambleText, &run.SolutionText, &run.MoveCount,
		&run.FinalState, &solved,
	)
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = time.Parse(timeLayout, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	run.Solved = solved == 1

	return &run, nil
}

// Get retrieves a run by ID. It returns nil, nil when no run matches.
func (r *RunRepository) Get(runID string) (*Run, error) {
	run, err := scanRun(r.db.QueryRow(`
		SELECT `+runColumns+`
		FROM runs
		WHERE run_id = ?
	`, runID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// GetLast retrieves the most recent run, or nil when there are none.
func (r *RunRepository) GetLast() (*Run, error) {
	runs, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// List returns up to limit runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

// Count returns the number of stored runs.
func (r *RunRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}
