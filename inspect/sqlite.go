package inspect

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the "sqlite" driver for Open.
	_ "modernc.org/sqlite"
)

// Open opens a SQLite database file for inspection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("draft: open sqlite database: %w", err)
	}
	return db, nil
}

// tables reads all user tables with their columns and constraints.
func (i *Inspector) tables(ctx context.Context) ([]Table, error) {
	rows, err := i.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("draft: list tables: %w", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("draft: scan table name: %w", err)
		}
		names = append(names, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("draft: list tables: %w", err)
	}

	tables := make([]Table, 0, len(names))
	for _, name := range names {
		t := Table{Name: name, uniqueCols: make(map[string]bool)}
		if err := i.readColumns(ctx, &t); err != nil {
			return nil, fmt.Errorf("draft: columns of %s: %w", name, err)
		}
		if err := i.readForeignKeys(ctx, &t); err != nil {
			return nil, fmt.Errorf("draft: foreign keys of %s: %w", name, err)
		}
		if err := i.readUniques(ctx, &t); err != nil {
			return nil, fmt.Errorf("draft: unique indexes of %s: %w", name, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func (i *Inspector) readColumns(ctx context.Context, t *Table) error {
	rows, err := i.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", t.Name))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notnull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notnull, &dflt, &pk); err != nil {
			return err
		}
		t.Columns = append(t.Columns, Column{Name: name, DataType: typ, Nullable: notnull == 0})
		if pk > 0 {
			t.PrimaryKeys = append(t.PrimaryKeys, name)
		}
	}
	return rows.Err()
}

func (i *Inspector) readForeignKeys(ctx context.Context, t *Table) error {
	rows, err := i.db.QueryContext(ctx, fmt.Sprintf("PRAGMA foreign_key_list(%q)", t.Name))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id, seq              int
			table, from          string
			to                   sql.NullString
			onUpdate, onDelete   string
			match                string
		)
		if err := rows.Scan(&id, &seq, &table, &from, &to, &onUpdate, &onDelete, &match); err != nil {
			return err
		}
		t.ForeignKeys = append(t.ForeignKeys, ForeignKey{
			FromColumn: from,
			ToTable:    table,
			ToColumn:   to.String,
		})
	}
	return rows.Err()
}

// readUniques marks columns covered by a single-column unique index, the
// signal for a one-to-one relationship.
func (i *Inspector) readUniques(ctx context.Context, t *Table) error {
	rows, err := i.db.QueryContext(ctx, fmt.Sprintf("PRAGMA index_list(%q)", t.Name))
	if err != nil {
		return err
	}
	type index struct {
		name   string
		unique bool
	}
	var indexes []index
	for rows.Next() {
		var (
			seq     int
			name    string
			unique  int
			origin  string
			partial int
		)
		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			rows.Close()
			return err
		}
		indexes = append(indexes, index{name: name, unique: unique == 1})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, idx := range indexes {
		if !idx.unique {
			continue
		}
		cols, err := i.indexColumns(ctx, idx.name)
		if err != nil {
			return err
		}
		if len(cols) == 1 {
			t.uniqueCols[cols[0]] = true
		}
	}
	return nil
}

func (i *Inspector) indexColumns(ctx context.Context, index string) ([]string, error) {
	rows, err := i.db.QueryContext(ctx, fmt.Sprintf("PRAGMA index_info(%q)", index))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cols []string
	for rows.Next() {
		var (
			seqno, cid int
			name       sql.NullString
		)
		if err := rows.Scan(&seqno, &cid, &name); err != nil {
			return nil, err
		}
		if name.Valid {
			cols = append(cols, name.String)
		}
	}
	return cols, rows.Err()
}
