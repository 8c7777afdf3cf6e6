// internal/config/resolve.go
package config

// Resolve merges defaults-file values into options.
// Precedence: flag explicitly set on the command line > file value > built-in
// default. "explicit" reports whether the named flag was set by the caller.
// It is allowed to mutate options.
// It MUST be called before Validate().
func Resolve(opts *Options, f *File, explicit func(name string) bool) {
	if opts == nil || f == nil {
		return
	}

	if f.Check.APIURL != "" && !explicit("api-url") {
		opts.APIURL = f.Check.APIURL
	}

	if f.Check.WarnMinutes != nil && !explicit("warn") {
		opts.WarnMinutes = *f.Check.WarnMinutes
	}

	if f.Check.CriticalMinutes != nil && !explicit("critical") {
		opts.CritMinutes = *f.Check.CriticalMinutes
	}

	// The file carries defaults only. Repeater id, host, and anything that
	// would change the transport contract stay flag-only.
}
