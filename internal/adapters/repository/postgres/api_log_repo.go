package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miroslawsteblik/selene/internal/core/domain"
	"github.com/miroslawsteblik/selene/internal/core/port"
)

var _ port.APILogRepository = (*APILogRepository)(nil)

const apiLogSchema = `
	CREATE TABLE IF NOT EXISTS api_logs (
		id BIGSERIAL PRIMARY KEY,
		operation VARCHAR(100) NOT NULL,
		endpoint VARCHAR(255) NOT NULL,
		status_code INTEGER,
		success BOOLEAN NOT NULL DEFAULT FALSE,
		error_message TEXT,
		request_data JSONB,
		response_data JSONB,
		execution_time_ms INTEGER,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_api_logs_timestamp ON api_logs(timestamp);
	CREATE INDEX IF NOT EXISTS idx_api_logs_success ON api_logs(success);
	CREATE INDEX IF NOT EXISTS idx_api_logs_operation ON api_logs(operation);
`

// APILogRepository persists append-only audit entries in PostgreSQL.
type APILogRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewAPILogRepository(db *pgxpool.Pool, logger *slog.Logger) *APILogRepository {
	return &APILogRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the api_logs table and its indexes if absent.
func (r *APILogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, apiLogSchema); err != nil {
		return fmt.Errorf("creating api_logs schema: %w", err)
	}
	return nil
}

// Save inserts the entry and assigns its ID from the store.
func (r *APILogRepository) Save(ctx context.Context, entry *domain.APILog) (*domain.APILog, error) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	query := `
		INSERT INTO api_logs
			(operation, endpoint, status_code, success, error_message,
			 request_data, response_data, execution_time_ms, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		entry.Operation,
		entry.Endpoint,
		entry.StatusCode,
		entry.Success,
		nilIfEmpty(entry.ErrorMessage),
		entry.RequestData,
		entry.ResponseData,
		entry.ExecutionTimeMS,
		entry.Timestamp,
	).Scan(&entry.ID)
	if err != nil {
		r.logger.Error("failed to save api log",
			slog.String("operation", entry.Operation), slog.Any("error", err))
		return nil, fmt.Errorf("saving api log: %w", err)
	}

	return entry, nil
}

// FindRecentErrors lists failed entries recorded within the last hours.
func (r *APILogRepository) FindRecentErrors(ctx context.Context, hours int) ([]*domain.APILog, error) {
	query := `
		SELECT id, operation, endpoint, status_code, success, error_message,
			request_data, response_data, execution_time_ms, timestamp
		FROM api_logs
		WHERE success = FALSE AND timestamp >= $1
		ORDER BY timestamp DESC
	`

	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("finding recent api errors: %w", err)
	}
	defer rows.Close()

	var results []*domain.APILog
	for rows.Next() {
		var (
			entry        domain.APILog
			errorMessage *string
		)
		err := rows.Scan(
			&entry.ID,
			&entry.Operation,
			&entry.Endpoint,
			&entry.StatusCode,
			&entry.Success,
			&errorMessage,
			&entry.RequestData,
			&entry.ResponseData,
			&entry.ExecutionTimeMS,
			&entry.Timestamp,
		)
		if err != nil {
			r.logger.Error("failed to scan api log row", slog.Any("error", err))
			return nil, err
		}
		if errorMessage != nil {
			entry.ErrorMessage = *errorMessage
		}
		results = append(results, &entry)
	}

	return results, rows.Err()
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
