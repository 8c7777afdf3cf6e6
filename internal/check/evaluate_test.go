// internal/check/evaluate_test.go
package check

import (
	"errors"
	"testing"
	"time"
)

// helper to build a fixed UTC instant quickly
func at(value string, t *testing.T) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation(TimestampLayout, value, time.UTC)
	if err != nil {
		t.Fatalf("bad test instant %q: %v", value, err)
	}
	return ts
}

// ---- tests ----

func TestEvaluate_ElapsedTenMinutes(t *testing.T) {
	now := at("2024-01-01 00:10:00", t)

	res, err := Evaluate(270107, "2024-01-01 00:00:00", 10, 15, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ElapsedMinutes != 10 {
		t.Fatalf("elapsed=%d, want 10", res.ElapsedMinutes)
	}
}

func TestEvaluate_TruncatesTowardZero(t *testing.T) {
	now := at("2024-01-01 00:10:59", t)

	res, err := Evaluate(270107, "2024-01-01 00:00:00", 60, 90, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ElapsedMinutes != 10 {
		t.Fatalf("elapsed=%d, want 10 (truncated, not rounded)", res.ElapsedMinutes)
	}
}

func TestEvaluate_BelowWarnIsOK(t *testing.T) {
	now := at("2024-01-01 00:05:00", t)

	res, err := Evaluate(270107, "2024-01-01 00:00:00", 10, 15, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusOK {
		t.Fatalf("status=%v, want OK", res.Status)
	}
}

func TestEvaluate_WarningBand(t *testing.T) {
	now := at("2024-01-01 00:12:00", t)

	res, err := Evaluate(270107, "2024-01-01 00:00:00", 10, 15, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusWarning {
		t.Fatalf("status=%v, want WARNING", res.Status)
	}
	if res.Status.ExitCode() != 1 {
		t.Fatalf("exit=%d, want 1", res.Status.ExitCode())
	}
}

func TestEvaluate_WarnBoundaryIsWarning(t *testing.T) {
	now := at("2024-01-01 00:10:00", t)

	res, err := Evaluate(270107, "2024-01-01 00:00:00", 10, 15, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusWarning {
		t.Fatalf("status=%v, want WARNING at warn boundary", res.Status)
	}
}

func TestEvaluate_CriticalBand(t *testing.T) {
	now := at("2024-01-01 00:20:00", t)

	res, err := Evaluate(270107, "2024-01-01 00:00:00", 10, 15, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusCritical {
		t.Fatalf("status=%v, want CRITICAL", res.Status)
	}
	if res.Status.ExitCode() != 2 {
		t.Fatalf("exit=%d, want 2", res.Status.ExitCode())
	}
}

func TestEvaluate_CriticalWinsWhenWarnAboveCrit(t *testing.T) {
	// warn=30 > crit=15: critical is still checked first.
	now := at("2024-01-01 00:20:00", t)

	res, err := Evaluate(270107, "2024-01-01 00:00:00", 30, 15, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusCritical {
		t.Fatalf("status=%v, want CRITICAL (critical precedence)", res.Status)
	}
}

func TestEvaluate_NegativeElapsedIsOK(t *testing.T) {
	// Remote clock ahead of local: elapsed is negative, not an error.
	now := at("2024-01-01 00:00:00", t)

	res, err := Evaluate(270107, "2024-01-01 00:05:00", 10, 15, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ElapsedMinutes != -5 {
		t.Fatalf("elapsed=%d, want -5 (unclamped)", res.ElapsedMinutes)
	}
	if res.Status != StatusOK {
		t.Fatalf("status=%v, want OK", res.Status)
	}
}

func TestEvaluate_InvalidTimestamp(t *testing.T) {
	now := at("2024-01-01 00:00:00", t)

	_, err := Evaluate(270107, "not-a-date", 10, 15, now)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Fatalf("err=%v, want ErrInvalidTimestamp", err)
	}
	if StatusUnknown.ExitCode() != 3 {
		t.Fatalf("unknown exit=%d, want 3", StatusUnknown.ExitCode())
	}
}
