// internal/check/evaluate.go
package check

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimestamp means the API timestamp did not match TimestampLayout.
var ErrInvalidTimestamp = errors.New("check: invalid timestamp")

// Evaluate performs exactly one threshold evaluation.
// "now" is an explicit input so the function has no clock dependence;
// production callers pass time.Now().UTC().
//
// Elapsed minutes truncate toward zero. Negative elapsed (remote clock ahead
// of local) is a valid value and passes through unclamped.
//
// CRITICAL is checked before WARNING. When warn > crit the critical threshold
// still wins at the boundary; that precedence is the contract, do not reorder.
func Evaluate(repeaterID uint32, lastSeen string, warnMin, critMin int64, now time.Time) (Result, error) {
	res := Result{
		RepeaterID:  repeaterID,
		WarnMinutes: warnMin,
		CritMinutes: critMin,
	}

	ts, err := time.ParseInLocation(TimestampLayout, lastSeen, time.UTC)
	if err != nil {
		return res, fmt.Errorf("%w: %q", ErrInvalidTimestamp, lastSeen)
	}

	res.ElapsedMinutes = int64(now.Sub(ts) / time.Minute)

	switch {
	case res.ElapsedMinutes >= critMin:
		res.Status = StatusCritical
	case res.ElapsedMinutes >= warnMin:
		res.Status = StatusWarning
	default:
		res.Status = StatusOK
	}

	return res, nil
}
