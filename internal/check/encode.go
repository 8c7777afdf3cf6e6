// internal/check/encode.go
package check

import "fmt"

// Encode converts a Result into the full plugin status line.
// Format is protocol-locked:
//
//	<name> repeater <id> is <STATUS>: online status| 'last_seen_min'=<elapsed>;<warn>;<crit>;;
//
// No IO. No side effects.
func Encode(r Result) string {
	return fmt.Sprintf(
		"%s repeater %d is %s: online status| '%s'=%d;%d;%d;;",
		PluginName,
		r.RepeaterID,
		r.Status,
		PerfLabel,
		r.ElapsedMinutes,
		r.WarnMinutes,
		r.CritMinutes,
	)
}

// EncodeUnknown builds the UNKNOWN status line for a failed check.
// No perfdata token is emitted: the framework must never graph a failed run.
func EncodeUnknown(repeaterID uint32, msg string) string {
	return fmt.Sprintf(
		"%s repeater %d is %s: %s",
		PluginName,
		repeaterID,
		StatusUnknown,
		msg,
	)
}
