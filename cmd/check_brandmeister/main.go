// cmd/check_brandmeister/main.go
package main

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/tamzrod/check-brandmeister/internal/brandmeister"
	"github.com/tamzrod/check-brandmeister/internal/check"
	"github.com/tamzrod/check-brandmeister/internal/config"
)

const version = "0.1.0"

const usageLine = "usage: check_brandmeister [OPTIONS] --repeater <id>"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("check_brandmeister", flag.ContinueOnError)
	fs.SortFlags = false

	var opts config.Options
	var showHelp, showVersion bool

	fs.Uint32VarP(&opts.RepeaterID, "repeater", "r", 0, "BM repeater id, e.g. 270107")
	fs.Int64VarP(&opts.WarnMinutes, "warn", "w", config.DefaultWarnMinutes, "Inactive time in minutes before Warning state")
	fs.Int64VarP(&opts.CritMinutes, "critical", "c", config.DefaultCritMinutes, "Inactive time in minutes before Critical state")
	fs.StringVarP(&opts.Host, "host", "H", "", "Ignored. For compatibility with nagios Host")
	fs.StringVar(&opts.APIURL, "api-url", brandmeister.DefaultBaseURL, "BrandMeister API base URL")
	fs.StringVar(&opts.ConfigPath, "config", "", "Optional YAML file with default thresholds")
	fs.BoolVarP(&showHelp, "help", "h", false, "Print help information")
	fs.BoolVarP(&showVersion, "version", "V", false, "Print version information")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageLine)
		return check.StatusUnknown.ExitCode()
	}

	// --------------------
	// Informational exits
	// --------------------

	if showHelp {
		fmt.Println(usageLine)
		fmt.Println()
		fmt.Print(fs.FlagUsages())
		return 0
	}

	if showVersion {
		fmt.Printf("check_brandmeister %s\n", version)
		return 0
	}

	// --------------------
	// Resolve + validate options
	// --------------------

	if opts.ConfigPath != "" {
		f, err := config.Load(opts.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
			return check.StatusUnknown.ExitCode()
		}
		config.Resolve(&opts, f, fs.Changed)
	}

	if err := config.Validate(&opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageLine)
		return check.StatusUnknown.ExitCode()
	}

	// --------------------
	// One fetch, one evaluation, one line
	// --------------------

	client, err := brandmeister.NewClient(brandmeister.Config{BaseURL: opts.APIURL})
	if err != nil {
		fmt.Println(check.EncodeUnknown(opts.RepeaterID, err.Error()))
		return check.StatusUnknown.ExitCode()
	}

	lastSeen, err := client.LastUpdated(opts.RepeaterID)
	if err != nil {
		fmt.Println(check.EncodeUnknown(opts.RepeaterID, err.Error()))
		return check.StatusUnknown.ExitCode()
	}

	res, err := check.Evaluate(opts.RepeaterID, lastSeen, opts.WarnMinutes, opts.CritMinutes, time.Now().UTC())
	if err != nil {
		fmt.Println(check.EncodeUnknown(opts.RepeaterID, err.Error()))
		return check.StatusUnknown.ExitCode()
	}

	fmt.Println(check.Encode(res))
	return res.Status.ExitCode()
}
