package store

import (
	sq "github.com/Masterminds/squirrel"
)

const configTable = "site_configs"

// buildSelectConfigQuery builds the lookup of one stored configuration
// document by key.
func buildSelectConfigQuery(placeholder sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.Select("value").
		From(configTable).
		Where(sq.Eq{"key": key}).
		PlaceholderFormat(placeholder).
		ToSql()
}

// buildUpsertConfigQuery builds the insert-or-replace of a configuration
// document. The ON CONFLICT form is understood by both backends.
func buildUpsertConfigQuery(placeholder sq.PlaceholderFormat, key string, value []byte) (string, []any, error) {
	return sq.Insert(configTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		PlaceholderFormat(placeholder).
		ToSql()
}
