package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/oapi-codegen/nullable"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	reader := NewCollectionReadRepository(db, nil)
	writer := NewCollectionWriteRepository(db, nil)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	ardbeg := seedWhiskey(t, db, "Ardbeg 10", "Ardbeg", "Single Malt", "Scotland")
	talisker := seedWhiskey(t, db, "Talisker 10", "Talisker", "Single Malt", "Scotland")

	purchased := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	entryID, created, err := writer.Save(ctx, alice.ID, ardbeg.ID, models.CollectionAttrs{
		PurchaseDate:  nullable.NewNullableWithValue(purchased),
		PurchasePrice: nullable.NewNullableWithValue(59.9),
	})
	require.NoError(t, err)
	require.True(t, created)

	t.Run("defaults to sealed and joins whiskey", func(t *testing.T) {
		entry, err := reader.GetByID(ctx, entryID)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, models.BottleSealed, entry.BottleStatus)
		assert.Equal(t, alice.ID, entry.UserID)
		assert.True(t, purchased.Equal(*entry.PurchaseDate))
		require.NotNil(t, entry.Whiskey)
		assert.Equal(t, "Ardbeg 10", entry.Whiskey.Name)
	})

	t.Run("same whiskey twice is rejected", func(t *testing.T) {
		_, created, err := writer.Save(ctx, alice.ID, ardbeg.ID, models.CollectionAttrs{})
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("other user may own the same whiskey", func(t *testing.T) {
		_, created, err := writer.Save(ctx, bob.ID, ardbeg.ID, models.CollectionAttrs{})
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("list is scoped to owner", func(t *testing.T) {
		_, _, err := writer.Save(ctx, alice.ID, talisker.ID, models.CollectionAttrs{BottleStatus: ptr(models.BottleOpened)})
		require.NoError(t, err)

		entries, err := reader.ListByUserID(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, alice.ID, e.UserID)
		}
		assert.Equal(t, models.BottleOpened, entries[1].BottleStatus)
	})

	t.Run("update by non-owner leaves entry unchanged", func(t *testing.T) {
		updated, err := writer.Update(ctx, bob.ID, entryID, models.CollectionAttrs{Notes: nullable.NewNullableWithValue("mine now")})
		require.NoError(t, err)
		assert.False(t, updated)

		entry, err := reader.GetByID(ctx, entryID)
		require.NoError(t, err)
		assert.Nil(t, entry.Notes)
	})

	t.Run("update by owner keeps unset fields", func(t *testing.T) {
		updated, err := writer.Update(ctx, alice.ID, entryID, models.CollectionAttrs{
			Notes:        nullable.NewNullableWithValue("peaty"),
			BottleStatus: ptr(models.BottleEmpty),
		})
		require.NoError(t, err)
		assert.True(t, updated)

		entry, err := reader.GetByID(ctx, entryID)
		require.NoError(t, err)
		assert.Equal(t, "peaty", *entry.Notes)
		assert.Equal(t, models.BottleEmpty, entry.BottleStatus)
		assert.Equal(t, 59.9, *entry.PurchasePrice)
	})

	t.Run("update writes null for fields sent as null", func(t *testing.T) {
		updated, err := writer.Update(ctx, alice.ID, entryID, models.CollectionAttrs{
			PurchasePrice: nullable.NewNullNullable[float64](),
			PurchaseDate:  nullable.NewNullNullable[time.Time](),
		})
		require.NoError(t, err)
		assert.True(t, updated)

		entry, err := reader.GetByID(ctx, entryID)
		require.NoError(t, err)
		assert.Nil(t, entry.PurchasePrice)
		assert.Nil(t, entry.PurchaseDate)
		assert.Equal(t, "peaty", *entry.Notes)
		assert.Equal(t, models.BottleEmpty, entry.BottleStatus)
	})

	t.Run("delete is scoped to owner", func(t *testing.T) {
		_, deleted, err := writer.Delete(ctx, bob.ID, entryID)
		require.NoError(t, err)
		assert.False(t, deleted)

		whiskeyID, deleted, err := writer.Delete(ctx, alice.ID, entryID)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, ardbeg.ID, whiskeyID)

		entry, err := reader.GetByID(ctx, entryID)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})
}

func TestCollectionWriteRepository_SQL(t *testing.T) {
	db, mock := setupSQLMock(t)
	ctx := context.Background()
	writer := NewCollectionWriteRepository(db, nil)

	mock.ExpectQuery(`INSERT INTO collections .* ON CONFLICT \(user_id, whiskey_id\) DO NOTHING`).
		WithArgs(int64(1), int64(2), nil, nil, nil, "sealed").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, created, err := writer.Save(ctx, 1, 2, models.CollectionAttrs{})
	require.NoError(t, err)
	assert.False(t, created)

	mock.ExpectExec(`UPDATE collections SET bottle_status = \$3, updated_at = NOW\(\) WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(42), int64(1), "opened").
		WillReturnResult(sqlmock.NewResult(0, 1))
	updated, err := writer.Update(ctx, 1, 42, models.CollectionAttrs{BottleStatus: ptr(models.BottleOpened)})
	require.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec(`UPDATE collections SET purchase_price = \$3, notes = \$4, updated_at = NOW\(\) WHERE`).
		WithArgs(int64(42), int64(1), nil, "gift").
		WillReturnResult(sqlmock.NewResult(0, 1))
	updated, err = writer.Update(ctx, 1, 42, models.CollectionAttrs{
		PurchasePrice: nullable.NewNullNullable[float64](),
		Notes:         nullable.NewNullableWithValue("gift"),
	})
	require.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectQuery(`DELETE FROM collections WHERE id = \$1 AND user_id = \$2 RETURNING whiskey_id`).
		WithArgs(int64(42), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"whiskey_id"}).AddRow(int64(2)))
	whiskeyID, deleted, err := writer.Delete(ctx, 1, 42)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, int64(2), whiskeyID)

	mock.ExpectQuery(`DELETE FROM collections`).
		WithArgs(int64(42), int64(1)).
		WillReturnError(errors.New("connection refused"))
	_, _, err = writer.Delete(ctx, 1, 42)
	assert.ErrorContains(t, err, "delete collection entry")

	assert.NoError(t, mock.ExpectationsWereMet())
}
