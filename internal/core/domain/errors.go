package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidState signals an illegal entity lifecycle transition or an
	// operation on an entity missing required persistence state.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotSupported marks operations the external API cannot perform.
	ErrNotSupported = errors.New("operation not supported")

	// ErrNotAuthenticated is returned when the API client is used before a
	// successful Authenticate call.
	ErrNotAuthenticated = errors.New("API not authenticated")
)

// MappingError reports that a raw payload could not be turned into a
// MarketData entity. Issues carries the schema validation messages verbatim
// so callers can surface the full list.
type MappingError struct {
	Symbol string
	Issues []string
}

func (e *MappingError) Error() string {
	if len(e.Issues) > 0 {
		return fmt.Sprintf("API schema validation failed: %s", strings.Join(e.Issues, "; "))
	}
	return fmt.Sprintf("failed to map API data for symbol %s", e.Symbol)
}
