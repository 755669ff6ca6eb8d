package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/chuymedina96/chicago-3d-printworks/internal/errors"
)

// SavedQuote is one entry of the quote workspace: the parameters a
// customer accepted plus a JSON snapshot of the full result.
type SavedQuote struct {
	ID            string  `json:"id"`
	Filename      string  `json:"filename"`
	MaterialID    string  `json:"material_id"`
	InfillPct     int     `json:"infill_pct"`
	LayerHeightMM float64 `json:"layer_height_mm"`
	PriceUSD      float64 `json:"price_usd"`
	ResultJSON    string  `json:"result"`
	CreatedAt     string  `json:"created_at"`
}

// Save inserts a quote into the workspace. A missing ID is assigned;
// the assigned quote is returned.
func (s *Store) Save(ctx context.Context, q SavedQuote) (SavedQuote, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.CreatedAt == "" {
		q.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_quotes (id, filename, material_id, infill_pct, layer_height_mm, price_usd, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Filename, q.MaterialID, q.InfillPct, q.LayerHeightMM, q.PriceUSD, q.ResultJSON, q.CreatedAt,
	)
	if err != nil {
		return SavedQuote{}, errors.Storage("insert saved quote", err)
	}
	return q, nil
}

// List returns all saved quotes, newest first.
func (s *Store) List(ctx context.Context) ([]SavedQuote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, material_id, infill_pct, layer_height_mm, price_usd, result_json, created_at
		FROM saved_quotes
		ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, errors.Storage("list saved quotes", err)
	}
	defer rows.Close()

	var quotes []SavedQuote
	for rows.Next() {
		var q SavedQuote
		if err := rows.Scan(&q.ID, &q.Filename, &q.MaterialID, &q.InfillPct, &q.LayerHeightMM, &q.PriceUSD, &q.ResultJSON, &q.CreatedAt); err != nil {
			return nil, errors.Storage("scan saved quote", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage("iterate saved quotes", err)
	}
	return quotes, nil
}

// Delete removes one saved quote by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_quotes WHERE id = ?`, id)
	if err != nil {
		return errors.Storage("delete saved quote", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NotFound("saved quote", id)
	}
	return nil
}

// Clear removes every saved quote.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saved_quotes`); err != nil {
		return errors.Storage("clear saved quotes", err)
	}
	return nil
}

// Count returns the number of saved quotes.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saved_quotes`).Scan(&n)
	if err != nil && err != sql.ErrNoRows {
		return 0, errors.Storage("count saved quotes", err)
	}
	return n, nil
}
