package morph

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/pos"
)

// The compiled dictionary is a single table; rank preserves parse
// confidence order within a form.
const dictSchema = `
CREATE TABLE IF NOT EXISTS word_forms (
	form TEXT NOT NULL,
	lemma TEXT NOT NULL,
	category TEXT NOT NULL,
	rank INTEGER NOT NULL,
	PRIMARY KEY(form, rank)
);
`

// OpenSQLiteDictionary loads a compiled dictionary file fully into memory.
// The file is the underlying resource of the morphological engine: if it is
// missing or unreadable the engine is unavailable and the caller surfaces
// that as a server error.
func OpenSQLiteDictionary(ctx context.Context, path string) (*Dictionary, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dictionary file: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT form, lemma, category FROM word_forms ORDER BY form, rank`)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var form, lemma, category string
		if err := rows.Scan(&form, &lemma, &category); err != nil {
			return nil, fmt.Errorf("scan dictionary row: %w", err)
		}
		entries = append(entries, Entry{
			Form:  form,
			Parse: Parse{NormalForm: lemma, Category: pos.Parse(category)},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dictionary %s contains no word forms", path)
	}

	return NewDictionary(entries), nil
}

// CreateSQLiteDictionary writes entries into a compiled dictionary file,
// replacing any existing content. Used by cmd/dictgen and by tests.
func CreateSQLiteDictionary(ctx context.Context, path string, entries []Entry) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, dictSchema); err != nil {
		return fmt.Errorf("init dictionary schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM word_forms`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO word_forms(form, lemma, category, rank) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	rank := make(map[string]int, len(entries))
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			e.Form, e.Parse.NormalForm, string(e.Parse.Category), rank[e.Form]); err != nil {
			return fmt.Errorf("insert form %q: %w", e.Form, err)
		}
		rank[e.Form]++
	}

	return tx.Commit()
}
