// internal/check/constants.go
package check

// Plugin output constants.
// These values define the nagios plugin contract and MUST NOT be configurable.

// ---- PLUGIN IDENTITY ----

// PluginName is the network name printed at the start of every status line.
const PluginName = "BrandMeister"

// PerfLabel is the perfdata metric label.
const PerfLabel = "last_seen_min"

// ---- TIMESTAMP ----

// TimestampLayout is the fixed layout of the API's last_updated field.
// Interpreted as UTC; the API encodes no offset.
const TimestampLayout = "2006-01-02 15:04:05"

// ---- STATUS CODES ----

// Status is a nagios plugin state. Its integer value IS the process exit code.
type Status int

// StatusOK means the repeater was seen recently enough.
const StatusOK Status = 0

// StatusWarning means elapsed minutes reached the warning threshold.
const StatusWarning Status = 1

// StatusCritical means elapsed minutes reached the critical threshold.
const StatusCritical Status = 2

// StatusUnknown means the check itself failed (fetch or parse).
const StatusUnknown Status = 3

// String returns the uppercase status word used in the output line.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the nagios exit code for the status.
func (s Status) ExitCode() int {
	if s < StatusOK || s > StatusUnknown {
		return int(StatusUnknown)
	}
	return int(s)
}
