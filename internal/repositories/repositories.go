package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/oapi-codegen/nullable"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one, otherwise the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs the query in a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// nullableArg binds a nullable attribute. Unspecified and null both bind NULL.
func nullableArg[T any](n nullable.Nullable[T]) any {
	if v, err := n.Get(); err == nil {
		return v
	}
	return nil
}

// setList builds the SET clause of a partial UPDATE. Placeholders continue
// after the leading args used by the WHERE clause.
type setList struct {
	assignments []string
	args        []any
}

func newSetList(whereArgs ...any) *setList {
	return &setList{args: whereArgs}
}

func (s *setList) add(column string, value any) {
	s.args = append(s.args, value)
	s.assignments = append(s.assignments, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func setIfNotNil[T any](s *setList, column string, v *T) {
	if v != nil {
		s.add(column, *v)
	}
}

// setIfSpecified assigns the column when the key was present, writing NULL for an explicit null.
func setIfSpecified[T any](s *setList, column string, n nullable.Nullable[T]) {
	if n.IsSpecified() {
		s.add(column, nullableArg(n))
	}
}

func (s *setList) clause() string {
	assignments := append([]string{}, s.assignments...)
	return strings.Join(append(assignments, "updated_at = NOW()"), ", ")
}

const whiskeyColumns = `
	w.id, w.name, w.distillery, w.type, w.country, w.region, w.age, w.abv,
	w.price, w.description, w.image_url, w.created_at, w.updated_at`

// joinedWhiskeyColumns maps whiskey columns onto a nested `db:"whiskey"` struct.
const joinedWhiskeyColumns = `
	w.id AS "whiskey.id", w.name AS "whiskey.name", w.distillery AS "whiskey.distillery",
	w.type AS "whiskey.type", w.country AS "whiskey.country", w.region AS "whiskey.region",
	w.age AS "whiskey.age", w.abv AS "whiskey.abv", w.price AS "whiskey.price",
	w.description AS "whiskey.description", w.image_url AS "whiskey.image_url",
	w.created_at AS "whiskey.created_at", w.updated_at AS "whiskey.updated_at"`
