package postserver

import (
	"slices"
	"strings"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return engine.Errorf(engine.KindValidation, "%s is required", field)
	}
	return nil
}

// oneOf fills an empty value with def, then checks it against allowed.
func oneOf(field string, value *string, def string, allowed []string) error {
	*value = strings.TrimSpace(*value)
	if *value == "" {
		*value = def
	}
	if slices.Contains(allowed, *value) {
		return nil
	}
	return engine.Errorf(engine.KindValidation, "invalid %s %q: must be one of %s",
		field, *value, strings.Join(allowed, ", "))
}

func wordCount(n *int) (int, error) {
	if n == nil {
		return engine.DefaultWordCount, nil
	}
	if *n < engine.MinWordCount || *n > engine.MaxWordCount {
		return 0, engine.Errorf(engine.KindValidation, "wordCount must be between %d and %d, got %d",
			engine.MinWordCount, engine.MaxWordCount, *n)
	}
	return *n, nil
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
