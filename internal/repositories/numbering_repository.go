package repositories

import (
	"context"
	"errors"

	"gstbill-backend/internal/gst"
	"gstbill-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NumberingRepository stores the invoice numbering counter as a single
// row. Reads fall back to the built-in defaults when nothing has been
// stored yet, so the first invoice defaults to INV-1001.
type NumberingRepository struct {
	DB *pgxpool.Pool
}

func NewNumberingRepository(db *pgxpool.Pool) *NumberingRepository {
	return &NumberingRepository{DB: db}
}

func (r *NumberingRepository) Get(ctx context.Context) (*models.NumberingState, error) {
	var state models.NumberingState
	err := r.DB.QueryRow(ctx,
		`SELECT prefix, last_number, updated_at FROM invoice_settings WHERE id = 1`,
	).Scan(&state.Prefix, &state.LastNumber, &state.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &models.NumberingState{
			Prefix:     gst.DefaultNumberPrefix,
			LastNumber: gst.DefaultLastNumber,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Set overwrites the stored counter. The single-row upsert makes the
// write itself atomic; the surrounding read-then-write of two
// concurrent invoice saves is still last-write-wins, which is the
// accepted behavior for this counter.
func (r *NumberingRepository) Set(ctx context.Context, prefix string, lastNumber int) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO invoice_settings(id, prefix, last_number, updated_at)
		 VALUES(1, $1, $2, CURRENT_TIMESTAMP)
		 ON CONFLICT (id)
		 DO UPDATE SET prefix = $1, last_number = $2, updated_at = CURRENT_TIMESTAMP`,
		prefix, lastNumber)
	return err
}
