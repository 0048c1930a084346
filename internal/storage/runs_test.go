package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.MigrateUp())
	return db
}

func TestMigrateUp(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	// Running again is a no-op.
	require.NoError(t, db.MigrateUp())
	version, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestCurrentVersionEmpty(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer db.Close()

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, version)
}

func TestRunCreateGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewRunRepository(db)

	level := "simple"
	id, err := repo.Create(Run{
		Level:        &level,
		ScrambleText: "R U R' U'",
		SolutionText: "U R U' R'",
		MoveCount:    4,
		FinalState:   "YYYYYYYYYRRRRRRRRRGGGGGGGGGWWWWWWWWWOOOOOOOOOBBBBBBBBB",
		Solved:       true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	run, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, run)

	assert.Equal(t, id, run.RunID)
	require.NotNil(t, run.Level)
	assert.Equal(t, "simple", *run.Level)
	assert.Equal(t, "YRGWOB", run.Scheme)
	assert.Equal(t, "R U R' U'", run.ScrambleText)
	assert.Equal(t, "U R U' R'", run.SolutionText)
	assert.Equal(t, 4, run.MoveCount)
	assert.True(t, run.Solved)
	assert.WithinDuration(t, time.Now(), run.CreatedAt, time.Minute)
}

func TestRunGetMissing(t *testing.T) {
	repo := NewRunRepository(openTestDB(t))

	run, err := repo.Get("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, run)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestRunListNewestFirst(t *testing.T) {
	repo := NewRunRepository(openTestDB(t))

	var ids []string
	for _, scramble := range []string{"R", "U", "F"} {
		id, err := repo.Create(Run{ScrambleText: scramble, SolutionText: scramble + "'", FinalState: "x"})
		require.NoError(t, err)
		ids = append(ids, id)
		time.Sleep(2 * time.Millisecond)
	}

	runs, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, ids[2], runs[0].RunID)
	assert.Equal(t, ids[0], runs[2].RunID)
	assert.Nil(t, runs[0].Level)
	assert.False(t, runs[0].Solved)

	runs, err = repo.List(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Equal(t, ids[2], last.RunID)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTransactionRollsBack(t *testing.T) {
	db := openTestDB(t)

	err := db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO runs (run_id, created_at, scramble_text, solution_text, final_state) VALUES ('a', 'now', 'R', 'R''', 'x')`)
		require.NoError(t, err)
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	count, err := NewRunRepository(db).Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
