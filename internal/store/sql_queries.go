package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const safesTable = "safes"

var safeColumns = []string{"name", "encrypted_safe_db", "created_at", "updated_at", "deleted_at"}

// activeSafe restricts a query to the non-deleted safe called name.
func activeSafe(name string) sq.Eq {
	return sq.Eq{"name": name, "deleted_at": nil}
}

func buildInsertSafeQuery(b sq.StatementBuilderType, name string, envelope []byte, createdAt time.Time) (string, []any, error) {
	return b.Insert(safesTable).
		Columns("name", "encrypted_safe_db", "created_at").
		Values(name, envelope, createdAt).
		ToSql()
}

func buildSelectSafeQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(safeColumns...).
		From(safesTable).
		Where(activeSafe(name)).
		ToSql()
}

func buildUpdateSafeQuery(b sq.StatementBuilderType, name string, envelope []byte, updatedAt time.Time) (string, []any, error) {
	return b.Update(safesTable).
		Set("encrypted_safe_db", envelope).
		Set("updated_at", updatedAt).
		Where(activeSafe(name)).
		ToSql()
}

func buildSoftDeleteSafeQuery(b sq.StatementBuilderType, name string, deletedAt time.Time) (string, []any, error) {
	return b.Update(safesTable).
		Set("deleted_at", deletedAt).
		Where(activeSafe(name)).
		ToSql()
}

func buildListSafesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("name").
		From(safesTable).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("name").
		ToSql()
}
