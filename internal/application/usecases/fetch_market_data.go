package usecases

import (
	"context"
	"log/slog"

	"github.com/miroslawsteblik/selene/internal/core/domain"
	"github.com/miroslawsteblik/selene/internal/core/service"
)

// MarketDataFetcher is the slice of the domain service the use case needs.
type MarketDataFetcher interface {
	FetchAndStoreMarketData(ctx context.Context, symbols []string) *service.Result
}

// Summary condenses one run into counts and a success rate.
type Summary struct {
	TotalRequested       int     `json:"total_requested"`
	SuccessfulCount      int     `json:"successful_count"`
	FailedCount          int     `json:"failed_count"`
	ValidationErrorCount int     `json:"validation_error_count"`
	SuccessRate          float64 `json:"success_rate"`
}

// Report is the full outcome handed to the CLI boundary.
type Report struct {
	Successful       []*domain.MarketData        `json:"successful"`
	Failed           []service.FailedSymbol      `json:"failed"`
	ValidationErrors []service.ValidationFailure `json:"validation_errors"`
	Summary          Summary                     `json:"summary"`
}

// FetchMarketDataUseCase drives one fetch run and computes its summary.
type FetchMarketDataUseCase struct {
	fetcher MarketDataFetcher
	logger  *slog.Logger
}

func NewFetchMarketDataUseCase(fetcher MarketDataFetcher, logger *slog.Logger) *FetchMarketDataUseCase {
	return &FetchMarketDataUseCase{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Execute fetches and stores quotes for the given symbols. The per-symbol
// outcomes come back untouched; only the summary is added here.
func (uc *FetchMarketDataUseCase) Execute(ctx context.Context, symbols []string) *Report {
	results := uc.fetcher.FetchAndStoreMarketData(ctx, symbols)
	if results == nil {
		// Defensive: the service always returns a result aggregate.
		uc.logger.Error("fetch produced no result aggregate")
		return &Report{
			Successful:       []*domain.MarketData{},
			Failed:           []service.FailedSymbol{},
			ValidationErrors: []service.ValidationFailure{},
			Summary:          Summary{TotalRequested: len(symbols)},
		}
	}

	summary := Summary{
		TotalRequested:       len(symbols),
		SuccessfulCount:      len(results.Successful),
		FailedCount:          len(results.Failed),
		ValidationErrorCount: len(results.ValidationErrors),
	}
	if summary.TotalRequested > 0 {
		summary.SuccessRate = float64(summary.SuccessfulCount) / float64(summary.TotalRequested)
	}

	return &Report{
		Successful:       results.Successful,
		Failed:           results.Failed,
		ValidationErrors: results.ValidationErrors,
		Summary:          summary,
	}
}
