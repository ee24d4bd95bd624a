package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeSuggestions parses a JSON array and checks it holds exactly
// SuggestionCount items that satisfy their struct tags.
func decodeSuggestions[T any](raw string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &items); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrSuggestionUnavailable, err)
	}

	if len(items) != SuggestionCount {
		return nil, fmt.Errorf("%w: expected %d items, got %d", ErrSuggestionUnavailable, SuggestionCount, len(items))
	}

	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrSuggestionUnavailable, i, err)
		}
	}

	return items, nil
}
