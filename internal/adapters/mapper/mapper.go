package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/miroslawsteblik/selene/internal/core/domain"
	"github.com/miroslawsteblik/selene/internal/core/port"
)

var _ port.DataMapper = (*SchemaMapper)(nil)

// Schema describes where each logical field lives inside the raw payload.
// A nil path means the source schema cannot populate that field.
type Schema struct {
	PricePath      []string
	VolumePath     []string
	MarketCapPath  []string
	PERatioPath    []string
	TimestampPath  []string
	ValidationKeys []string
}

// AlphaVantageGlobalQuote is the schema for the GLOBAL_QUOTE endpoint.
// Market cap and PE ratio are not available from it.
func AlphaVantageGlobalQuote() Schema {
	return Schema{
		PricePath:      []string{"Global Quote", "05. price"},
		VolumePath:     []string{"Global Quote", "06. volume"},
		TimestampPath:  []string{"Global Quote", "07. latest trading day"},
		ValidationKeys: []string{"Global Quote"},
	}
}

// SchemaMapper converts raw API payloads into MarketData entities following
// a configured path schema. Extraction is null-safe: a missing or malformed
// field yields "absent", never an error.
type SchemaMapper struct {
	schema Schema
}

func NewSchemaMapper(schema Schema) *SchemaMapper {
	return &SchemaMapper{schema: schema}
}

// MapToMarketData maps a payload to a PENDING entity. It returns a
// *domain.MappingError carrying the full issue list when the payload fails
// schema validation; no partial entity is produced in that case.
func (m *SchemaMapper) MapToMarketData(raw map[string]any, symbol string) (*domain.MarketData, error) {
	if issues := m.ValidateAPISchema(raw); len(issues) > 0 {
		return nil, &domain.MappingError{Symbol: symbol, Issues: issues}
	}

	// Absent fields fall back here, at the call site, never inside the
	// extraction helpers.
	price := decimal.Zero
	if p := extractDecimal(raw, m.schema.PricePath); p != nil {
		price = *p
	}

	var volume int64
	if v := extractInt(raw, m.schema.VolumePath); v != nil {
		volume = *v
	}

	timestamp := time.Now()
	if t := extractTimestamp(raw, m.schema.TimestampPath); t != nil {
		timestamp = *t
	}

	data := domain.NewMarketData(strings.ToUpper(symbol), price, volume, timestamp, domain.SourceAPI, raw)
	data.MarketCap = extractDecimal(raw, m.schema.MarketCapPath)
	data.PERatio = extractDecimal(raw, m.schema.PERatioPath)
	return data, nil
}

// ValidateAPISchema checks the payload structure: every configured required
// key must be present, and the provider's error and rate-limit markers must
// be absent.
func (m *SchemaMapper) ValidateAPISchema(raw map[string]any) []string {
	var issues []string

	for _, key := range m.schema.ValidationKeys {
		if _, ok := raw[key]; !ok {
			issues = append(issues, fmt.Sprintf("Missing '%s' in API response", key))
		}
	}

	if msg, ok := raw["Error Message"]; ok {
		issues = append(issues, fmt.Sprintf("API Error: %v", msg))
	}
	if note, ok := raw["Note"]; ok {
		issues = append(issues, fmt.Sprintf("API Limit: %v", note))
	}

	return issues
}

// navigate walks the payload along path. Any missing key or non-mapping node
// yields nil.
func navigate(raw map[string]any, path []string) any {
	if len(path) == 0 {
		return nil
	}
	var value any = raw
	for _, key := range path {
		node, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		value, ok = node[key]
		if !ok {
			return nil
		}
	}
	return value
}

func extractDecimal(raw map[string]any, path []string) *decimal.Decimal {
	value := navigate(raw, path)
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case decimal.Decimal:
		return &v
	case float64:
		d := decimal.NewFromFloat(v)
		return &d
	case int:
		d := decimal.NewFromInt(int64(v))
		return &d
	case int64:
		d := decimal.NewFromInt(v)
		return &d
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil
		}
		return &d
	default:
		d, err := decimal.NewFromString(fmt.Sprint(v))
		if err != nil {
			return nil
		}
		return &d
	}
}

func extractInt(raw map[string]any, path []string) *int64 {
	value := navigate(raw, path)
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case int:
		n := int64(v)
		return &n
	case int64:
		return &v
	case float64:
		n := int64(v) // truncate toward zero
		return &n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		n := int64(f)
		return &n
	default:
		f, err := strconv.ParseFloat(fmt.Sprint(v), 64)
		if err != nil {
			return nil
		}
		n := int64(f)
		return &n
	}
}

// timestampLayouts are tried in order; the first successful parse wins.
var timestampLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006/01/02",
	"02/01/2006",
}

func extractTimestamp(raw map[string]any, path []string) *time.Time {
	value := navigate(raw, path)
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		return &v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		return nil
	case float64:
		t := time.Unix(int64(v), 0)
		return &t
	case int:
		t := time.Unix(int64(v), 0)
		return &t
	case int64:
		t := time.Unix(v, 0)
		return &t
	default:
		return nil
	}
}
