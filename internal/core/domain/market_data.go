package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DataSource identifies where a quote originated.
type DataSource string

const (
	SourceAPI    DataSource = "API"
	SourceCSV    DataSource = "CSV"
	SourceManual DataSource = "MANUAL"
)

// DataStatus is the lifecycle state of a MarketData entity. The only legal
// forward path is PENDING -> VALIDATED -> SAVED.
type DataStatus string

const (
	StatusPending   DataStatus = "PENDING"
	StatusValidated DataStatus = "VALIDATED"
	StatusFailed    DataStatus = "FAILED"
	StatusSaved     DataStatus = "SAVED"
)

// MarketData is the domain entity for one fetched quote. ID stays zero until
// a repository assigns it. RawData keeps the original payload for debugging.
type MarketData struct {
	ID            int64            `json:"id,omitempty"`
	Symbol        string           `json:"symbol"`
	Price         decimal.Decimal  `json:"price"`
	Volume        int64            `json:"volume"`
	MarketCap     *decimal.Decimal `json:"market_cap,omitempty"`
	PERatio       *decimal.Decimal `json:"pe_ratio,omitempty"`
	DataTimestamp time.Time        `json:"data_timestamp"`
	Source        DataSource       `json:"source"`
	Status        DataStatus       `json:"status"`
	RawData       map[string]any   `json:"raw_data,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewMarketData builds a PENDING entity and stamps created_at/updated_at.
func NewMarketData(symbol string, price decimal.Decimal, volume int64, dataTimestamp time.Time, source DataSource, raw map[string]any) *MarketData {
	now := time.Now()
	return &MarketData{
		Symbol:        symbol,
		Price:         price,
		Volume:        volume,
		DataTimestamp: dataTimestamp,
		Source:        source,
		Status:        StatusPending,
		RawData:       raw,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate applies the business rules and returns every violation. It never
// mutates the entity and every rule is checked independently.
func (m *MarketData) Validate() []string {
	var errs []string

	if strings.TrimSpace(m.Symbol) == "" {
		errs = append(errs, "Symbol is required")
	}
	if !m.Price.IsPositive() {
		errs = append(errs, "Price must be positive")
	}
	if m.Volume < 0 {
		errs = append(errs, "Volume cannot be negative")
	}
	if m.MarketCap != nil && !m.MarketCap.IsPositive() {
		errs = append(errs, "Market cap must be positive if provided")
	}
	if m.PERatio != nil && !m.PERatio.IsPositive() {
		errs = append(errs, "PE ratio must be positive if provided")
	}
	if m.DataTimestamp.IsZero() {
		errs = append(errs, "Data timestamp is required")
	}

	return errs
}

func (m *MarketData) IsValid() bool {
	return len(m.Validate()) == 0
}

// MarkAsValidated advances PENDING -> VALIDATED. It fails when the entity does
// not currently pass validation.
func (m *MarketData) MarkAsValidated() error {
	if errs := m.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w: cannot validate: %s", ErrInvalidState, strings.Join(errs, "; "))
	}
	m.Status = StatusValidated
	m.UpdatedAt = time.Now()
	return nil
}

// MarkAsSaved advances VALIDATED -> SAVED. Calling it from any other status
// is an invalid transition.
func (m *MarketData) MarkAsSaved() error {
	if m.Status != StatusValidated {
		return fmt.Errorf("%w: only validated data can be marked as saved", ErrInvalidState)
	}
	m.Status = StatusSaved
	m.UpdatedAt = time.Now()
	return nil
}
