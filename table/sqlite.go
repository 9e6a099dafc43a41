package table

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tsawler/readmetrics"
)

// SQLiteStore keeps metrics rows of every run in a SQLite database.
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens the database at path and creates the schema if needed.
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db := &SQLiteStore{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *SQLiteStore) Close() error {
	return db.conn.Close()
}

func (db *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS metrics (
		run_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		url_id TEXT NOT NULL,
		url TEXT NOT NULL,
		positive_score INTEGER NOT NULL,
		negative_score INTEGER NOT NULL,
		polarity_score REAL NOT NULL,
		subjectivity_score REAL NOT NULL,
		avg_sentence_length REAL NOT NULL,
		pct_complex_words REAL NOT NULL,
		fog_index REAL NOT NULL,
		avg_word_length REAL NOT NULL,
		personal_pronoun_count INTEGER NOT NULL,
		PRIMARY KEY (run_id, position)
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRows stores rows under runID, replacing any rows already stored for it.
func (db *SQLiteStore) SaveRows(ctx context.Context, runID string, rows []readmetrics.MetricsRow) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM metrics WHERE run_id = ?`, runID); err != nil {
		return fmt.Errorf("clear run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO metrics (
			run_id, position, url_id, url, positive_score, negative_score,
			polarity_score, subjectivity_score, avg_sentence_length,
			pct_complex_words, fog_index, avg_word_length, personal_pronoun_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		args := append([]interface{}{runID, i}, r.Values()...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// Rows returns the rows stored for runID in input order.
func (db *SQLiteStore) Rows(ctx context.Context, runID string) ([]readmetrics.MetricsRow, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT url_id, url, positive_score, negative_score, polarity_score,
			subjectivity_score, avg_sentence_length, pct_complex_words,
			fog_index, avg_word_length, personal_pronoun_count
		FROM metrics WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	var out []readmetrics.MetricsRow
	for rows.Next() {
		var r readmetrics.MetricsRow
		if err := rows.Scan(
			&r.ID, &r.URL, &r.PositiveScore, &r.NegativeScore, &r.PolarityScore,
			&r.SubjectivityScore, &r.AvgSentenceLength, &r.PctComplexWords,
			&r.FogIndex, &r.AvgWordLength, &r.PersonalPronounCount,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
