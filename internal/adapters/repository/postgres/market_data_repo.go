package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/miroslawsteblik/selene/internal/core/domain"
	"github.com/miroslawsteblik/selene/internal/core/port"
)

var _ port.MarketDataRepository = (*MarketDataRepository)(nil)

const marketDataSchema = `
	CREATE TABLE IF NOT EXISTS market_data (
		id BIGSERIAL PRIMARY KEY,
		symbol VARCHAR(20) NOT NULL,
		price DECIMAL(15,4) NOT NULL,
		volume BIGINT NOT NULL DEFAULT 0,
		market_cap DECIMAL(20,2),
		pe_ratio DECIMAL(10,2),
		data_timestamp TIMESTAMPTZ NOT NULL,
		source VARCHAR(20) NOT NULL DEFAULT 'API',
		status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
		raw_data JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_market_data_symbol ON market_data(symbol);
	CREATE INDEX IF NOT EXISTS idx_market_data_timestamp ON market_data(data_timestamp);
	CREATE INDEX IF NOT EXISTS idx_market_data_status ON market_data(status);
`

const marketDataColumns = `id, symbol, price::text, volume, market_cap::text, pe_ratio::text,
	data_timestamp, source, status, raw_data, created_at, updated_at`

// MarketDataRepository persists quote entities in PostgreSQL.
type MarketDataRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewMarketDataRepository(db *pgxpool.Pool, logger *slog.Logger) *MarketDataRepository {
	return &MarketDataRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the market_data table and its indexes if absent.
func (r *MarketDataRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, marketDataSchema); err != nil {
		return fmt.Errorf("creating market_data schema: %w", err)
	}
	return nil
}

// Save inserts the entity and assigns its ID from the store.
func (r *MarketDataRepository) Save(ctx context.Context, data *domain.MarketData) (*domain.MarketData, error) {
	query := `
		INSERT INTO market_data
			(symbol, price, volume, market_cap, pe_ratio, data_timestamp,
			 source, status, raw_data, created_at, updated_at)
		VALUES ($1, $2::numeric, $3, $4::numeric, $5::numeric, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		data.Symbol,
		data.Price.String(),
		data.Volume,
		decimalParam(data.MarketCap),
		decimalParam(data.PERatio),
		data.DataTimestamp,
		string(data.Source),
		string(data.Status),
		data.RawData,
		data.CreatedAt,
		data.UpdatedAt,
	).Scan(&data.ID)
	if err != nil {
		r.logger.Error("failed to save market data",
			slog.String("symbol", data.Symbol), slog.Any("error", err))
		return nil, fmt.Errorf("saving market data: %w", err)
	}

	return data, nil
}

// Update rewrites an existing row. The entity must already hold a
// store-assigned ID.
func (r *MarketDataRepository) Update(ctx context.Context, data *domain.MarketData) (*domain.MarketData, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("%w: cannot update market data without id", domain.ErrInvalidState)
	}

	data.UpdatedAt = time.Now()

	query := `
		UPDATE market_data
		SET price = $1::numeric, volume = $2, market_cap = $3::numeric, pe_ratio = $4::numeric,
			data_timestamp = $5, source = $6, status = $7, raw_data = $8, updated_at = $9
		WHERE id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		data.Price.String(),
		data.Volume,
		decimalParam(data.MarketCap),
		decimalParam(data.PERatio),
		data.DataTimestamp,
		string(data.Source),
		string(data.Status),
		data.RawData,
		data.UpdatedAt,
		data.ID,
	)
	if err != nil {
		r.logger.Error("failed to update market data",
			slog.Int64("id", data.ID), slog.Any("error", err))
		return nil, fmt.Errorf("updating market data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("updating market data: no row with id %d", data.ID)
	}

	return data, nil
}

// FindBySymbol returns the latest row for a symbol, or nil when none exists.
func (r *MarketDataRepository) FindBySymbol(ctx context.Context, symbol string) (*domain.MarketData, error) {
	query := `
		SELECT ` + marketDataColumns + `
		FROM market_data
		WHERE symbol = $1
		ORDER BY data_timestamp DESC
		LIMIT 1
	`

	data, err := scanMarketData(r.db.QueryRow(ctx, query, symbol))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding market data by symbol: %w", err)
	}
	return data, nil
}

// FindAllRecent lists rows whose data timestamp falls within the last hours.
func (r *MarketDataRepository) FindAllRecent(ctx context.Context, hours int) ([]*domain.MarketData, error) {
	query := `
		SELECT ` + marketDataColumns + `
		FROM market_data
		WHERE data_timestamp >= $1
		ORDER BY data_timestamp DESC
	`

	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("finding recent market data: %w", err)
	}
	defer rows.Close()

	var results []*domain.MarketData
	for rows.Next() {
		data, err := scanMarketData(rows)
		if err != nil {
			r.logger.Error("failed to scan market data row", slog.Any("error", err))
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMarketData(row rowScanner) (*domain.MarketData, error) {
	var (
		data      domain.MarketData
		price     string
		marketCap *string
		peRatio   *string
		source    string
		status    string
	)

	err := row.Scan(
		&data.ID,
		&data.Symbol,
		&price,
		&data.Volume,
		&marketCap,
		&peRatio,
		&data.DataTimestamp,
		&source,
		&status,
		&data.RawData,
		&data.CreatedAt,
		&data.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	data.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing stored price: %w", err)
	}
	if data.MarketCap, err = decimalField(marketCap); err != nil {
		return nil, fmt.Errorf("parsing stored market cap: %w", err)
	}
	if data.PERatio, err = decimalField(peRatio); err != nil {
		return nil, fmt.Errorf("parsing stored pe ratio: %w", err)
	}
	data.Source = domain.DataSource(source)
	data.Status = domain.DataStatus(status)

	return &data, nil
}

func decimalParam(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func decimalField(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
