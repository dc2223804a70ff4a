package export

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/btrfind/btrfind/btrieve"
)

// WriteSQLite renders the record set into a fresh SQLite database file at
// path, one "btrieve_records" table row per record, with the standard
// columns followed by one TEXT column per extracted-field key seen across
// records. All rows are inserted in a single transaction. path is
// truncated if it already exists.
func WriteSQLite(path string, records []*btrieve.Record) error {
	if err := os.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("export: remove existing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("export: open sqlite %s: %w", path, err)
	}
	defer db.Close()

	fieldKeys := sortedFieldKeys(records)

	schema := `CREATE TABLE btrieve_records (` +
		`record_num INTEGER, record_size INTEGER, raw_bytes TEXT, decoded_text TEXT, ` +
		`printable_chars INTEGER, has_digits BOOLEAN, has_alpha BOOLEAN`
	for _, name := range fieldKeys {
		schema += fmt.Sprintf(`, "%s" TEXT`, name)
	}
	schema += ")"

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("export: create schema: %w", err)
	}

	placeholders := "?, ?, ?, ?, ?, ?, ?"
	for range fieldKeys {
		placeholders += ", ?"
	}
	insert := fmt.Sprintf("INSERT INTO btrieve_records VALUES (%s)", placeholders)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("export: begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("export: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		args := make([]interface{}, 0, 7+len(fieldKeys))
		args = append(args,
			r.Index, r.Length, hex.EncodeToString(r.Raw), r.DecodedText,
			r.PrintableChars, r.HasDigits, r.HasAlpha,
		)
		for _, name := range fieldKeys {
			args = append(args, r.ExtractedFields[name])
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("export: insert record %d: %w", r.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export: commit transaction: %w", err)
	}
	return nil
}
