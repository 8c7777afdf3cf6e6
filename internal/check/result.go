// internal/check/result.go
package check

// Result represents exactly what the encoder is allowed to print.
// It contains no logic and no memory beyond the single evaluation.
type Result struct {
	RepeaterID     uint32
	Status         Status
	ElapsedMinutes int64
	WarnMinutes    int64
	CritMinutes    int64
}
