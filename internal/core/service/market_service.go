package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/miroslawsteblik/selene/internal/core/domain"
	"github.com/miroslawsteblik/selene/internal/core/port"
)

// FailedSymbol records one symbol whose pipeline could not complete.
type FailedSymbol struct {
	Symbol string `json:"symbol"`
	Error  string `json:"error,omitempty"`
}

// ValidationFailure records one symbol whose mapped entity broke business
// rules. It carries the full list of rule violations, not a single message.
type ValidationFailure struct {
	Symbol string   `json:"symbol"`
	Errors []string `json:"errors"`
}

// Result aggregates one fetch run. Every requested symbol lands in exactly
// one of the three buckets.
type Result struct {
	Successful       []*domain.MarketData `json:"successful"`
	Failed           []FailedSymbol       `json:"failed"`
	ValidationErrors []ValidationFailure  `json:"validation_errors"`
}

// MarketDataService orchestrates the fetch -> log -> map -> validate ->
// persist pipeline. Symbols are processed strictly in order, one at a time,
// and a failure for one symbol never aborts the rest of the run.
type MarketDataService struct {
	api        port.MarketDataAPI
	mapper     port.DataMapper
	marketRepo port.MarketDataRepository
	logRepo    port.APILogRepository
	cache      port.QuoteCache
	logger     *slog.Logger
}

// NewMarketDataService wires the service. cache may be nil; caching is then
// skipped entirely.
func NewMarketDataService(
	api port.MarketDataAPI,
	mapper port.DataMapper,
	marketRepo port.MarketDataRepository,
	logRepo port.APILogRepository,
	cache port.QuoteCache,
	logger *slog.Logger,
) *MarketDataService {
	return &MarketDataService{
		api:        api,
		mapper:     mapper,
		marketRepo: marketRepo,
		logRepo:    logRepo,
		cache:      cache,
		logger:     logger,
	}
}

// FetchAndStoreMarketData runs the pipeline for each symbol and aggregates
// the outcomes. It never returns an error: every per-symbol failure mode is
// captured in one of the result buckets.
func (s *MarketDataService) FetchAndStoreMarketData(ctx context.Context, symbols []string) *Result {
	s.logger.Info("starting market data fetch",
		slog.Int("symbols", len(symbols)),
		slog.Any("list", symbols))

	results := &Result{
		Successful:       []*domain.MarketData{},
		Failed:           []FailedSymbol{},
		ValidationErrors: []ValidationFailure{},
	}

	for _, symbol := range symbols {
		s.logger.Debug("processing symbol", slog.String("symbol", symbol))
		if err := s.processSymbol(ctx, symbol, results); err != nil {
			s.handleUnexpectedError(ctx, symbol, err, results)
		}
	}

	s.logger.Info("fetch completed",
		slog.Int("successful", len(results.Successful)),
		slog.Int("failed", len(results.Failed)),
		slog.Int("validation_errors", len(results.ValidationErrors)))

	return results
}

// processSymbol runs one symbol through the pipeline. A returned error means
// the single fallback handler takes over; every other outcome is bucketed
// in place.
func (s *MarketDataService) processSymbol(ctx context.Context, symbol string, results *Result) error {
	resp, err := s.api.GetMarketData(ctx, symbol)
	if err != nil {
		return err
	}
	if resp == nil {
		// Defensive boundary: the API port contract promises a response
		// object for every completed call. Record the symbol as failed
		// without an audit entry.
		results.Failed = append(results.Failed, FailedSymbol{Symbol: symbol, Error: "no API response"})
		return nil
	}

	// The call is audited before its success is examined.
	if err := s.logAPICall(ctx, symbol, resp); err != nil {
		return err
	}

	if !resp.IsSuccessful() {
		errMsg := fmt.Sprintf("API returned %d", resp.StatusCode)
		s.logger.Warn("API error", slog.String("symbol", symbol), slog.String("error", errMsg))
		results.Failed = append(results.Failed, FailedSymbol{Symbol: symbol, Error: errMsg})
		return nil
	}

	data, err := s.mapAndValidate(symbol, resp, results)
	if err != nil {
		var mapErr *domain.MappingError
		if errors.As(err, &mapErr) {
			s.handleMappingError(ctx, symbol, mapErr, resp, results)
			return nil
		}
		return err
	}
	if data == nil {
		// Bucketed as a validation failure inside mapAndValidate.
		return nil
	}

	return s.saveMarketData(ctx, symbol, data, results)
}

func (s *MarketDataService) logAPICall(ctx context.Context, symbol string, resp *domain.APIResponse) error {
	statusCode := resp.StatusCode
	execMS := resp.ExecutionTimeMS

	entry := &domain.APILog{
		Operation:       "fetch_market_data",
		Endpoint:        "/market/" + symbol,
		StatusCode:      &statusCode,
		Success:         resp.IsSuccessful(),
		ResponseData:    resp.Data,
		ExecutionTimeMS: &execMS,
		Timestamp:       time.Now(),
	}

	_, err := s.logRepo.Save(ctx, entry)
	return err
}

func (s *MarketDataService) mapAndValidate(symbol string, resp *domain.APIResponse, results *Result) (*domain.MarketData, error) {
	data, err := s.mapper.MapToMarketData(resp.Data, symbol)
	if err != nil {
		return nil, err
	}

	if errs := data.Validate(); len(errs) > 0 {
		s.logger.Warn("validation failed",
			slog.String("symbol", symbol),
			slog.Any("errors", errs))
		results.ValidationErrors = append(results.ValidationErrors, ValidationFailure{Symbol: symbol, Errors: errs})
		return nil, nil
	}

	if err := data.MarkAsValidated(); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *MarketDataService) handleMappingError(ctx context.Context, symbol string, mapErr *domain.MappingError, resp *domain.APIResponse, results *Result) {
	errMsg := "Data mapping failed: " + mapErr.Error()
	s.logger.Error("mapping error", slog.String("symbol", symbol), slog.String("error", errMsg))

	results.Failed = append(results.Failed, FailedSymbol{Symbol: symbol, Error: errMsg})

	entry := &domain.APILog{
		Operation:    "data_mapping",
		Endpoint:     "/market/" + symbol,
		Success:      false,
		ErrorMessage: mapErr.Error(),
		ResponseData: resp.Data,
		Timestamp:    time.Now(),
	}
	if _, err := s.logRepo.Save(ctx, entry); err != nil {
		s.logger.Warn("failed to write mapping audit entry",
			slog.String("symbol", symbol), slog.Any("error", err))
	}
}

// saveMarketData persists the entity in two steps: Save assigns the ID, then
// the SAVED status is written with Update. A crash between the two leaves a
// VALIDATED row behind; that intermediate state is accepted and observable.
func (s *MarketDataService) saveMarketData(ctx context.Context, symbol string, data *domain.MarketData, results *Result) error {
	saved, err := s.marketRepo.Save(ctx, data)
	if err != nil {
		return err
	}

	if err := saved.MarkAsSaved(); err != nil {
		return err
	}

	updated, err := s.marketRepo.Update(ctx, saved)
	if err != nil {
		return err
	}

	s.cacheLatest(ctx, updated)

	results.Successful = append(results.Successful, updated)
	s.logger.Debug("saved market data",
		slog.String("symbol", symbol), slog.Int64("id", updated.ID))
	return nil
}

func (s *MarketDataService) cacheLatest(ctx context.Context, data *domain.MarketData) {
	if s.cache == nil {
		return
	}
	// Cache writes are best effort and never fail the pipeline.
	if err := s.cache.SetLatest(ctx, data); err != nil {
		s.logger.Warn("failed to cache latest quote",
			slog.String("symbol", data.Symbol), slog.Any("error", err))
	}
}

// handleUnexpectedError is the single fallback for every error kind the
// pipeline can surface: transport adapter misuse, persistence failures,
// lifecycle violations. All of them land in the failed bucket with an audit
// entry, and the run continues with the next symbol.
func (s *MarketDataService) handleUnexpectedError(ctx context.Context, symbol string, err error, results *Result) {
	s.logger.Error("error processing symbol",
		slog.String("symbol", symbol), slog.Any("error", err))

	results.Failed = append(results.Failed, FailedSymbol{Symbol: symbol, Error: err.Error()})

	entry := &domain.APILog{
		Operation:    "fetch_and_store",
		Endpoint:     "/market/" + symbol,
		Success:      false,
		ErrorMessage: err.Error(),
		Timestamp:    time.Now(),
	}
	if _, logErr := s.logRepo.Save(ctx, entry); logErr != nil {
		s.logger.Warn("failed to write error audit entry",
			slog.String("symbol", symbol), slog.Any("error", logErr))
	}
}

// LatestMarketData returns the most recently stored quote for symbol,
// preferring the cache and falling back to the repository.
func (s *MarketDataService) LatestMarketData(ctx context.Context, symbol string) (*domain.MarketData, error) {
	if s.cache != nil {
		data, err := s.cache.GetLatest(ctx, symbol)
		if err != nil {
			s.logger.Warn("cache lookup failed",
				slog.String("symbol", symbol), slog.Any("error", err))
		} else if data != nil {
			return data, nil
		}
	}
	return s.marketRepo.FindBySymbol(ctx, symbol)
}

// RecentMarketData lists quotes stored within the last hours.
func (s *MarketDataService) RecentMarketData(ctx context.Context, hours int) ([]*domain.MarketData, error) {
	return s.marketRepo.FindAllRecent(ctx, hours)
}

// RecentErrors lists failed audit entries within the last hours.
func (s *MarketDataService) RecentErrors(ctx context.Context, hours int) ([]*domain.APILog, error) {
	return s.logRepo.FindRecentErrors(ctx, hours)
}
