package port

import (
	"context"

	"github.com/miroslawsteblik/selene/internal/core/domain"
)

//go:generate mockgen -source=ports.go -destination=mock/ports.go -package=mock

// MarketDataAPI is the outbound port for the external quote API. Ordinary
// call failures are encoded in the returned response (status >= 400), never
// as an error; an error return means the adapter itself is unusable.
type MarketDataAPI interface {
	Authenticate(ctx context.Context) error
	IsAuthenticated() bool
	GetMarketData(ctx context.Context, symbol string) (*domain.APIResponse, error)
	GetBulkMarketData(ctx context.Context, symbols []string) (*domain.APIResponse, error)
}

// DataMapper converts a raw API payload into a MarketData candidate. A
// *domain.MappingError is returned when the payload fails schema validation.
type DataMapper interface {
	MapToMarketData(raw map[string]any, symbol string) (*domain.MarketData, error)
	ValidateAPISchema(raw map[string]any) []string
}

// MarketDataRepository persists quote entities. Save assigns the ID; Update
// fails with domain.ErrInvalidState when the entity has none.
type MarketDataRepository interface {
	Save(ctx context.Context, data *domain.MarketData) (*domain.MarketData, error)
	Update(ctx context.Context, data *domain.MarketData) (*domain.MarketData, error)
	FindBySymbol(ctx context.Context, symbol string) (*domain.MarketData, error)
	FindAllRecent(ctx context.Context, hours int) ([]*domain.MarketData, error)
}

// APILogRepository persists append-only audit entries.
type APILogRepository interface {
	Save(ctx context.Context, entry *domain.APILog) (*domain.APILog, error)
	FindRecentErrors(ctx context.Context, hours int) ([]*domain.APILog, error)
}

// QuoteCache holds the most recently saved quote per symbol. A nil entity
// with a nil error means a cache miss.
type QuoteCache interface {
	SetLatest(ctx context.Context, data *domain.MarketData) error
	GetLatest(ctx context.Context, symbol string) (*domain.MarketData, error)
}
