package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skuforge/backend/internal/domain/shared"
	"github.com/skuforge/backend/internal/domain/vocabulary"
)

func entryRows(entries ...*vocabulary.Entry) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "user_id", "category", "label"})
	for _, e := range entries {
		rows.AddRow(e.ID, e.CreatedAt, e.UpdatedAt, e.UserID, e.Category, e.Label)
	}
	return rows
}

func TestGormVocabularyRepository_Insert(t *testing.T) {
	t.Run("inserts new entry", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormVocabularyRepository(gormDB)

		entry, err := vocabulary.NewEntry(uuid.New(), vocabulary.CategoryProductType, "Ring Silver")
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "vocabulary_entries"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Insert(context.Background(), entry)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps storage failure", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormVocabularyRepository(gormDB)

		entry, err := vocabulary.NewEntry(uuid.New(), vocabulary.CategoryColor, "Polar Black")
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "vocabulary_entries"`).
			WillReturnError(assert.AnError)

		err = repo.Insert(context.Background(), entry)

		assert.ErrorIs(t, err, shared.ErrStorageUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVocabularyRepository_FindByIDForUser(t *testing.T) {
	t.Run("finds entry owned by user", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormVocabularyRepository(gormDB)

		userID := uuid.New()
		entry, err := vocabulary.NewEntry(userID, vocabulary.CategoryCollection, "Polar Bear")
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT \* FROM "vocabulary_entries" WHERE id = \$1 AND user_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(entry.ID, userID, 1).
			WillReturnRows(entryRows(entry))

		found, err := repo.FindByIDForUser(context.Background(), userID, entry.ID)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Polar Bear", found.Label)
		assert.Equal(t, vocabulary.CategoryCollection, found.Category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("entry of another user yields ErrNotFound", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormVocabularyRepository(gormDB)

		userID := uuid.New()
		foreignEntryID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vocabulary_entries" WHERE id = \$1 AND user_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(foreignEntryID, userID, 1).
			WillReturnRows(entryRows())

		found, err := repo.FindByIDForUser(context.Background(), userID, foreignEntryID)

		assert.Nil(t, found)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVocabularyRepository_ListByCategory(t *testing.T) {
	t.Run("lists entries oldest first", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormVocabularyRepository(gormDB)

		userID := uuid.New()
		first, err := vocabulary.NewEntry(userID, vocabulary.CategoryColor, "Polar Black")
		require.NoError(t, err)
		second, err := vocabulary.NewEntry(userID, vocabulary.CategoryColor, "Moss Green")
		require.NoError(t, err)
		second.CreatedAt = first.CreatedAt.Add(time.Second)

		mock.ExpectQuery(`SELECT \* FROM "vocabulary_entries" WHERE user_id = \$1 AND category = \$2 ORDER BY created_at ASC`).
			WithArgs(userID, vocabulary.CategoryColor).
			WillReturnRows(entryRows(first, second))

		entries, err := repo.ListByCategory(context.Background(), userID, vocabulary.CategoryColor)

		assert.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Polar Black", entries[0].Label)
		assert.Equal(t, "Moss Green", entries[1].Label)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice for empty category", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormVocabularyRepository(gormDB)

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vocabulary_entries" WHERE user_id = \$1 AND category = \$2 ORDER BY created_at ASC`).
			WithArgs(userID, vocabulary.CategoryProductType).
			WillReturnRows(entryRows())

		entries, err := repo.ListByCategory(context.Background(), userID, vocabulary.CategoryProductType)

		assert.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVocabularyRepository_ListForUser(t *testing.T) {
	t.Run("lists entries across categories", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormVocabularyRepository(gormDB)

		userID := uuid.New()
		productType, err := vocabulary.NewEntry(userID, vocabulary.CategoryProductType, "Ring Silver")
		require.NoError(t, err)
		color, err := vocabulary.NewEntry(userID, vocabulary.CategoryColor, "Polar Black")
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT \* FROM "vocabulary_entries" WHERE user_id = \$1 ORDER BY created_at ASC`).
			WithArgs(userID).
			WillReturnRows(entryRows(productType, color))

		entries, err := repo.ListForUser(context.Background(), userID)

		assert.NoError(t, err)
		require.Len(t, entries, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
