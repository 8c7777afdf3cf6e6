// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks option correctness.
// It performs declarative validation only.
// It MUST NOT mutate options.
func Validate(opts *Options) error {
	if opts.RepeaterID == 0 {
		return fmt.Errorf("config: repeater id is required and must be a positive integer")
	}

	if opts.WarnMinutes < 0 {
		return fmt.Errorf("config: warn minutes must be >= 0, got %d", opts.WarnMinutes)
	}

	if opts.CritMinutes < 0 {
		return fmt.Errorf("config: critical minutes must be >= 0, got %d", opts.CritMinutes)
	}

	if opts.APIURL == "" {
		return fmt.Errorf("config: api url must not be empty")
	}

	// warn > critical is NOT rejected: the evaluator checks CRITICAL first,
	// so the critical threshold wins at the boundary. That precedence is the
	// contract.

	return nil
}
