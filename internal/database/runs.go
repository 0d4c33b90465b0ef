package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lawnchairsociety/questgen/internal/document"
	"github.com/lawnchairsociety/questgen/internal/quest"
)

// ErrRunNotFound is returned when a run lookup fails.
var ErrRunNotFound = errors.New("generation run not found")

// ErrRunExists is returned when a quest or document is recorded twice for one run.
var ErrRunExists = errors.New("run already recorded")

// Run represents one generator invocation.
type Run struct {
	ID            int64
	Seed          int64
	OutputDir     string
	QuestCount    int
	DocumentCount int
	CreatedAt     time.Time
}

// QuestRow is a quest as stored in the index.
type QuestRow struct {
	RunID            int64
	Position         int
	QuestID          string
	Category         string
	Kind             quest.Kind
	Subject          string
	RequiredProgress int
	Tier             quest.Tier
	Points           int
	Name             string
	Material         string
	AntiAbuse        bool
}

// DocumentRow is a written document as stored in the index.
type DocumentRow struct {
	RunID   int64
	Name    string
	Path    string
	Records int
	Digest  string
}

// RecordRun stores a run with every category quest and written document in one
// transaction. run.ID is set on success.
func (d *Database) RecordRun(run *Run, catalog *quest.Catalog, docs []document.Info) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	run.QuestCount = catalog.All.Len()
	run.DocumentCount = len(docs)

	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id, err := d.insertRun(tx, run)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	questStmt, err := tx.Prepare(d.qb.Build(`
		INSERT INTO generated_quests (run_id, position, quest_id, category, kind, subject,
			required_progress, tier, points, name, material, anti_abuse)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return err
	}
	defer questStmt.Close()

	position := 0
	for _, c := range catalog.Collections {
		for _, q := range c.Quests() {
			position++
			_, err := questStmt.Exec(id, position, q.ID, c.Category.Name, string(q.Kind), q.Subject,
				q.RequiredProgress, string(q.Tier), q.Points, q.Name, q.Item.Material, boolToInt(q.AntiAbuse))
			if err != nil {
				if d.dialect.IsDuplicateKeyError(err) {
					return fmt.Errorf("%w: quest %s", ErrRunExists, q.ID)
				}
				return fmt.Errorf("failed to insert quest %s: %w", q.ID, err)
			}
		}
	}

	docStmt, err := tx.Prepare(d.qb.Build(`
		INSERT INTO generated_documents (run_id, name, path, records, digest)
		VALUES (?, ?, ?, ?, ?)
	`))
	if err != nil {
		return err
	}
	defer docStmt.Close()

	for _, doc := range docs {
		if _, err := docStmt.Exec(id, doc.Name, doc.Path, doc.Records, doc.Digest); err != nil {
			if d.dialect.IsDuplicateKeyError(err) {
				return fmt.Errorf("%w: document %s", ErrRunExists, doc.Name)
			}
			return fmt.Errorf("failed to insert document %s: %w", doc.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	run.ID = id
	return nil
}

func (d *Database) insertRun(tx *sql.Tx, run *Run) (int64, error) {
	query := d.qb.BuildWithReturning(`
		INSERT INTO generation_runs (seed, output_dir, quest_count, document_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, "id")
	args := []any{run.Seed, run.OutputDir, run.QuestCount, run.DocumentCount, run.CreatedAt}

	if !d.dialect.SupportsLastInsertID() {
		var id int64
		err := tx.QueryRow(query, args...).Scan(&id)
		return id, err
	}

	result, err := tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const runColumns = `id, seed, output_dir, quest_count, document_count, created_at`

// GetRun returns a run by ID.
func (d *Database) GetRun(id int64) (*Run, error) {
	row := d.db.QueryRow(d.qb.Build(`SELECT `+runColumns+` FROM generation_runs WHERE id = ?`), id)
	return scanRun(row)
}

// LatestRun returns the most recently recorded run.
func (d *Database) LatestRun() (*Run, error) {
	row := d.db.QueryRow(`SELECT ` + runColumns + ` FROM generation_runs ORDER BY id DESC LIMIT 1`)
	return scanRun(row)
}

func scanRun(row *sql.Row) (*Run, error) {
	run := &Run{}
	err := row.Scan(&run.ID, &run.Seed, &run.OutputDir, &run.QuestCount, &run.DocumentCount, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListQuests returns a run's quests in generation order.
func (d *Database) ListQuests(runID int64) ([]QuestRow, error) {
	rows, err := d.db.Query(d.qb.Build(`
		SELECT run_id, position, quest_id, category, kind, subject, required_progress,
			tier, points, name, material, anti_abuse
		FROM generated_quests
		WHERE run_id = ?
		ORDER BY position ASC
	`), runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quests []QuestRow
	for rows.Next() {
		var q QuestRow
		var kind, tier string
		var antiAbuse int
		if err := rows.Scan(&q.RunID, &q.Position, &q.QuestID, &q.Category, &kind, &q.Subject,
			&q.RequiredProgress, &tier, &q.Points, &q.Name, &q.Material, &antiAbuse); err != nil {
			return nil, err
		}
		q.Kind = quest.Kind(kind)
		q.Tier = quest.Tier(tier)
		q.AntiAbuse = antiAbuse != 0
		quests = append(quests, q)
	}
	return quests, rows.Err()
}

// ListDocuments returns the documents written by a run.
func (d *Database) ListDocuments(runID int64) ([]DocumentRow, error) {
	rows, err := d.db.Query(d.qb.Build(`
		SELECT run_id, name, path, records, digest
		FROM generated_documents
		WHERE run_id = ?
		ORDER BY name ASC
	`), runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []DocumentRow
	for rows.Next() {
		var doc DocumentRow
		if err := rows.Scan(&doc.RunID, &doc.Name, &doc.Path, &doc.Records, &doc.Digest); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
