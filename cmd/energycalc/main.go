package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/levenlabs/go-lflag"
	"github.com/raterudder/energyusage/pkg/energy"
	"github.com/raterudder/energyusage/pkg/log"
	"github.com/raterudder/energyusage/pkg/types"
)

func main() {
	calc := energy.Configured()
	profilePath := lflag.String("profile", "-", "Path to the profile JSON file, - reads from stdin")
	day := lflag.String("day", "", "Treat the profile as a multi-day profile and report on this 1-based day")
	lflag.Configure()
	// stdout is reserved for the report
	logger := log.ConfigureFromFlags(os.Stderr)

	ctx := log.With(context.Background(), logger)

	if err := runFile(ctx, calc, *profilePath, os.Stdout, *day); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to calculate", slog.String("path", *profilePath), slog.Any("error", err))
		os.Exit(1)
	}
}

// runFile runs against the profile at path, or stdin when path is "-". The
// file is closed before returning.
func runFile(ctx context.Context, calc *energy.Calculator, path string, w io.Writer, day string) error {
	if path == "-" {
		return run(ctx, calc, os.Stdin, w, day)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open profile: %w", err)
	}
	defer f.Close()
	return run(ctx, calc, f, w, day)
}

// run reads a profile from r and writes its report to w. If day is not
// empty the profile is treated as a multi-day profile.
func run(ctx context.Context, calc *energy.Calculator, r io.Reader, w io.Writer, day string) error {
	var profile types.Profile
	if err := json.NewDecoder(r).Decode(&profile); err != nil {
		return fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	var report types.Report
	if day == "" {
		var err error
		report, err = calc.Report(profile)
		if err != nil {
			return err
		}
	} else {
		dayNum, err := strconv.ParseFloat(day, 64)
		if err != nil {
			return fmt.Errorf("invalid day %q: %w", day, err)
		}
		d, err := calc.ValidateDay(dayNum)
		if err != nil {
			return err
		}
		report, err = calc.ReportForDay(profile, d)
		if err != nil {
			return err
		}
	}

	log.Ctx(ctx).DebugContext(ctx, "calculated report", slog.Int("usage", report.Usage), slog.Int("savings", report.Savings))

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
