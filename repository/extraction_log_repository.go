package repository

import (
	"context"

	"fedfilter-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExtractionLogRepository handles database operations for extraction audit logs
type ExtractionLogRepository struct {
	db *pgxpool.Pool
}

// NewExtractionLogRepository creates a new extraction log repository
func NewExtractionLogRepository(db *pgxpool.Pool) *ExtractionLogRepository {
	return &ExtractionLogRepository{db: db}
}

// Create inserts an audit record
func (r *ExtractionLogRepository) Create(ctx context.Context, log *models.ExtractionLog) error {
	query := `
		INSERT INTO extraction_logs (
			id, query, temperature, attempts, success,
			error_code, error_detail, result, duration_ms
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at`

	err := r.db.QueryRow(
		ctx, query,
		log.ID,
		log.Query,
		log.Temperature,
		log.Attempts,
		log.Success,
		log.ErrorCode,
		log.ErrorDetail,
		log.Result,
		log.DurationMS,
	).Scan(&log.CreatedAt)

	return err
}

// GetByID retrieves one audit record
func (r *ExtractionLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ExtractionLog, error) {
	log := &models.ExtractionLog{}
	query := `
		SELECT id, query, temperature, attempts, success,
			error_code, error_detail, result, duration_ms, created_at
		FROM extraction_logs
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&log.ID,
		&log.Query,
		&log.Temperature,
		&log.Attempts,
		&log.Success,
		&log.ErrorCode,
		&log.ErrorDetail,
		&log.Result,
		&log.DurationMS,
		&log.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return log, nil
}

// ListRecent retrieves the most recent audit records
func (r *ExtractionLogRepository) ListRecent(ctx context.Context, limit int) ([]*models.ExtractionLog, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, query, temperature, attempts, success,
			error_code, error_detail, result, duration_ms, created_at
		FROM extraction_logs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.ExtractionLog
	for rows.Next() {
		log := &models.ExtractionLog{}
		err := rows.Scan(
			&log.ID,
			&log.Query,
			&log.Temperature,
			&log.Attempts,
			&log.Success,
			&log.ErrorCode,
			&log.ErrorDetail,
			&log.Result,
			&log.DurationMS,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
