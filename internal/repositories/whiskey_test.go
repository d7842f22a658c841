package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/oapi-codegen/nullable"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhiskeyRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	reader := NewWhiskeyReadRepository(db, nil)
	writer := NewWhiskeyWriteRepository(db, nil)

	ardbeg := seedWhiskey(t, db, "Ardbeg 10", "Ardbeg", "Single Malt", "Scotland")
	redbreast := seedWhiskey(t, db, "Redbreast 12", "Midleton", "Single Pot Still", "Ireland")
	laphroaig := seedWhiskey(t, db, "Laphroaig 10", "Laphroaig", "Single Malt", "Scotland")

	t.Run("get by id", func(t *testing.T) {
		got, err := reader.GetByID(ctx, ardbeg.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Ardbeg 10", got.Name)
		assert.Nil(t, got.Age)

		got, err = reader.GetByID(ctx, ardbeg.ID+1000)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list ordered by id", func(t *testing.T) {
		all, err := reader.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []int64{ardbeg.ID, redbreast.ID, laphroaig.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})
	})

	t.Run("search", func(t *testing.T) {
		tests := []struct {
			name   string
			filter models.WhiskeyFilter
			want   []int64
		}{
			{name: "query matches name case-insensitively", filter: models.WhiskeyFilter{Query: "ARDBEG"}, want: []int64{ardbeg.ID}},
			{name: "query matches distillery", filter: models.WhiskeyFilter{Query: "midle"}, want: []int64{redbreast.ID}},
			{name: "type", filter: models.WhiskeyFilter{Type: "Single Malt"}, want: []int64{ardbeg.ID, laphroaig.ID}},
			{name: "country and query", filter: models.WhiskeyFilter{Query: "10", Country: "Scotland"}, want: []int64{ardbeg.ID, laphroaig.ID}},
			{name: "no match", filter: models.WhiskeyFilter{Country: "Japan"}, want: []int64{}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := reader.Search(ctx, tt.filter)
				require.NoError(t, err)
				ids := []int64{}
				for _, w := range got {
					ids = append(ids, w.ID)
				}
				assert.Equal(t, tt.want, ids)
			})
		}
	})

	t.Run("update keeps unset fields", func(t *testing.T) {
		got, err := writer.Update(ctx, redbreast.ID, models.WhiskeyAttrs{
			Age:    nullable.NewNullableWithValue(12),
			Price:  nullable.NewNullableWithValue(65.5),
			Region: nullable.NewNullableWithValue("Cork"),
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Redbreast 12", got.Name)
		assert.Equal(t, 12, *got.Age)
		assert.Equal(t, 65.5, *got.Price)

		got, err = writer.Update(ctx, redbreast.ID+1000, models.WhiskeyAttrs{Age: nullable.NewNullableWithValue(12)})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update writes null for fields sent as null", func(t *testing.T) {
		got, err := writer.Update(ctx, redbreast.ID, models.WhiskeyAttrs{
			Region: nullable.NewNullNullable[string](),
			Price:  nullable.NewNullNullable[float64](),
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.Region)
		assert.Nil(t, got.Price)
		assert.Equal(t, 12, *got.Age)
		assert.Equal(t, "Midleton", got.Distillery)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := writer.Delete(ctx, laphroaig.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = writer.Delete(ctx, laphroaig.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestWhiskeyRepositories_UsesRequestTx(t *testing.T) {
	db, mock := setupSQLMock(t)
	ctx := context.Background()

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	mock.ExpectExec("DELETE FROM whiskies").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	writer := NewWhiskeyWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })
	deleted, err := writer.Delete(ctx, 3)
	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWhiskeyRepositories_DBErrors(t *testing.T) {
	db, mock := setupSQLMock(t)
	ctx := context.Background()
	reader := NewWhiskeyReadRepository(db, nil)
	writer := NewWhiskeyWriteRepository(db, nil)
	dbErr := errors.New("connection refused")

	mock.ExpectQuery("FROM whiskies w WHERE w.id").WithArgs(int64(1)).WillReturnError(dbErr)
	_, err := reader.GetByID(ctx, 1)
	assert.ErrorIs(t, err, dbErr)

	mock.ExpectQuery(`w.name ILIKE \$1 OR w.distillery ILIKE \$1\) AND w.type = \$2`).
		WithArgs("%peat%", "Single Malt").
		WillReturnError(dbErr)
	_, err = reader.Search(ctx, models.WhiskeyFilter{Query: "peat", Type: "Single Malt"})
	assert.ErrorContains(t, err, "search whiskies")

	mock.ExpectQuery("INSERT INTO whiskies").WillReturnError(dbErr)
	_, err = writer.Save(ctx, models.WhiskeyAttrs{Name: ptr("x")})
	assert.ErrorContains(t, err, "save whiskey")

	mock.ExpectQuery(`UPDATE whiskies AS w SET name = \$2, age = \$3, updated_at = NOW\(\) WHERE w.id = \$1`).
		WithArgs(int64(1), "x", nil).
		WillReturnError(dbErr)
	_, err = writer.Update(ctx, 1, models.WhiskeyAttrs{Name: ptr("x"), Age: nullable.NewNullNullable[int]()})
	assert.ErrorContains(t, err, "update whiskey")

	mock.ExpectExec("DELETE FROM whiskies").WithArgs(int64(1)).WillReturnError(dbErr)
	_, err = writer.Delete(ctx, 1)
	assert.ErrorContains(t, err, "delete whiskey")

	assert.NoError(t, mock.ExpectationsWereMet())
}
