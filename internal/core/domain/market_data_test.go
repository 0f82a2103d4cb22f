package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuote() *MarketData {
	return NewMarketData(
		"AAPL",
		decimal.NewFromFloat(189.30),
		55_000_000,
		time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC),
		SourceAPI,
		map[string]any{"Global Quote": map[string]any{"05. price": "189.30"}},
	)
}

func TestNewMarketData(t *testing.T) {
	m := validQuote()

	assert.Equal(t, int64(0), m.ID)
	assert.Equal(t, StatusPending, m.Status)
	assert.Equal(t, SourceAPI, m.Source)
	assert.False(t, m.CreatedAt.IsZero())
	assert.Equal(t, m.CreatedAt, m.UpdatedAt)
	assert.Contains(t, m.RawData, "Global Quote")
}

func TestValidate(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	zero := decimal.Zero

	tests := []struct {
		name    string
		mutate  func(*MarketData)
		wantErr string
	}{
		{
			name:    "blank symbol",
			mutate:  func(m *MarketData) { m.Symbol = "   " },
			wantErr: "Symbol is required",
		},
		{
			name:    "zero price",
			mutate:  func(m *MarketData) { m.Price = decimal.Zero },
			wantErr: "Price must be positive",
		},
		{
			name:    "negative price",
			mutate:  func(m *MarketData) { m.Price = decimal.NewFromFloat(-0.01) },
			wantErr: "Price must be positive",
		},
		{
			name:    "negative volume",
			mutate:  func(m *MarketData) { m.Volume = -1 },
			wantErr: "Volume cannot be negative",
		},
		{
			name:    "non-positive market cap",
			mutate:  func(m *MarketData) { m.MarketCap = &zero },
			wantErr: "Market cap must be positive if provided",
		},
		{
			name:    "non-positive pe ratio",
			mutate:  func(m *MarketData) { m.PERatio = &negative },
			wantErr: "PE ratio must be positive if provided",
		},
		{
			name:    "zero data timestamp",
			mutate:  func(m *MarketData) { m.DataTimestamp = time.Time{} },
			wantErr: "Data timestamp is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validQuote()
			tt.mutate(m)

			errs := m.Validate()
			assert.Contains(t, errs, tt.wantErr)
			assert.False(t, m.IsValid())
		})
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	m := &MarketData{}

	errs := m.Validate()
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "Symbol is required")
	assert.Contains(t, errs, "Price must be positive")
	assert.Contains(t, errs, "Data timestamp is required")
}

func TestValidateIsIdempotent(t *testing.T) {
	m := validQuote()
	m.Price = decimal.NewFromInt(-1)
	m.Volume = -5

	first := m.Validate()
	second := m.Validate()
	assert.Equal(t, first, second)
	assert.Equal(t, StatusPending, m.Status)
}

func TestValidateZeroVolumeIsAllowed(t *testing.T) {
	m := validQuote()
	m.Volume = 0

	assert.True(t, m.IsValid())
}

func TestMarkAsValidated(t *testing.T) {
	m := validQuote()

	require.NoError(t, m.MarkAsValidated())
	assert.Equal(t, StatusValidated, m.Status)
}

func TestMarkAsValidatedRejectsInvalidData(t *testing.T) {
	m := validQuote()
	m.Price = decimal.Zero

	err := m.MarkAsValidated()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Contains(t, err.Error(), "Price must be positive")
	assert.Equal(t, StatusPending, m.Status)
}

func TestMarkAsSaved(t *testing.T) {
	m := validQuote()
	require.NoError(t, m.MarkAsValidated())

	require.NoError(t, m.MarkAsSaved())
	assert.Equal(t, StatusSaved, m.Status)
}

func TestMarkAsSavedRequiresValidatedStatus(t *testing.T) {
	for _, status := range []DataStatus{StatusPending, StatusFailed, StatusSaved} {
		t.Run(string(status), func(t *testing.T) {
			m := validQuote()
			m.Status = status

			err := m.MarkAsSaved()
			assert.ErrorIs(t, err, ErrInvalidState)
		})
	}
}
