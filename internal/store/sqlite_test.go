package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "tally.db"), os.DirFS(filepath.Join("..", "..")))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	created, err := s.Insert(model.TransactionInput{
		Amount:      1250,
		Type:        model.TypeIncome,
		Category:    "Salary",
		Description: "Monthly salary",
		Date:        "2026-01-15",
		Tags:        []string{"work", "regular"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, []string{"work", "regular"}, got.Tags)
}

func TestSQLiteStoreIDRuleMatchesMemoryStore(t *testing.T) {
	s := newTestSQLiteStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.Insert(input(10, model.TypeExpense, "Misc", "x"))
		require.NoError(t, err)
	}

	require.NoError(t, s.Delete(3))
	tx, err := s.Insert(input(10, model.TypeExpense, "Misc", "y"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), tx.ID, "deleting the top record frees its id")

	require.NoError(t, s.Delete(1))
	tx, err = s.Insert(input(10, model.TypeExpense, "Misc", "z"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), tx.ID, "gaps below the max are not reused")
}

func TestSQLiteStoreGetAllKeepsInsertionOrder(t *testing.T) {
	s := newTestSQLiteStore(t)

	descriptions := []string{"first", "second", "third"}
	for _, d := range descriptions {
		_, err := s.Insert(input(1, model.TypeExpense, "Misc", d))
		require.NoError(t, err)
	}

	// Delete and re-add: the reused id must now sort last.
	require.NoError(t, s.Delete(3))
	_, err := s.Insert(input(1, model.TypeExpense, "Misc", "fourth"))
	require.NoError(t, err)

	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Description)
	assert.Equal(t, "second", all[1].Description)
	assert.Equal(t, "fourth", all[2].Description)
}

func TestSQLiteStoreUpdateAndDelete(t *testing.T) {
	s := newTestSQLiteStore(t)

	created, err := s.Insert(input(45.50, model.TypeExpense, "Food", "Grocery shopping"))
	require.NoError(t, err)

	updated, err := s.Update(created.ID, model.TransactionInput{
		Amount:      50,
		Type:        model.TypeExpense,
		Category:    "Food",
		Description: "Grocery shopping",
		Date:        "2026-01-14",
		Tags:        []string{"groceries"},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	stored, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)

	_, err = s.Update(99, input(1, model.TypeExpense, "Misc", "x"))
	assert.True(t, model.IsNotFound(err))

	require.NoError(t, s.Delete(created.ID))
	_, err = s.GetByID(created.ID)
	assert.True(t, model.IsNotFound(err))
	assert.True(t, model.IsNotFound(s.Delete(created.ID)))
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "tally.db")
	migrations := os.DirFS(filepath.Join("..", ".."))

	s, err := NewSQLiteStore(dbPath, migrations)
	require.NoError(t, err)
	created, err := s.Insert(input(120, model.TypeExpense, "Transport", "Gas station"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(dbPath, migrations)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}
