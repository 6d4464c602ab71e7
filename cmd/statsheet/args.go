package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/fantasy-stats/internal/config"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
)

type cliArgs struct {
	snapshot      string
	format        string
	decimalPlaces int
	color         bool
	options       filter.Options
}

// parseArgs reads flags over the configured defaults. -options takes a JSON
// object with filter option keys; explicit flags win over it.
func parseArgs(args []string, cfg config.Config, stderr io.Writer) (cliArgs, error) {
	fs := flag.NewFlagSet("statsheet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: statsheet [flags] snapshot.json")
		fs.PrintDefaults()
	}

	out := cliArgs{}
	fs.StringVar(&out.format, "format", cfg.OutputFormat, "output format: table or json")
	fs.IntVar(&out.decimalPlaces, "places", cfg.DecimalPlaces, "decimal places to render")
	fs.BoolVar(&out.color, "color", cfg.ColorEnabled, "color owners in table output")

	rawOptions := fs.String("options", "", "filter options as a JSON object")
	yearStart := fs.Int("year-start", 0, "first year to include")
	yearEnd := fs.Int("year-end", 0, "last year to include")
	weekStart := fs.Int("week-start", 0, "first week to include")
	weekEnd := fs.Int("week-end", 0, "last week to include")
	onlyRegularSeason := fs.Bool("only-regular-season", false, "only regular season matchups")
	onlyPostSeason := fs.Bool("only-post-season", false, "only playoff and championship matchups")
	onlyChampionship := fs.Bool("only-championship", false, "only championship matchups")
	includeMultiWeek := fs.Bool("include-multi-week", true, "include multi-week matchups")
	against := fs.String("against", "", "comma separated team ids to calculate against")
	onlyOngoing := fs.Bool("only-ongoing", false, "only list ongoing streaks")

	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cliArgs{}, errors.New("exactly one snapshot path is required")
	}
	out.snapshot = fs.Arg(0)

	if *rawOptions != "" {
		var raw map[string]any
		if err := sonic.UnmarshalString(*rawOptions, &raw); err != nil {
			return cliArgs{}, fmt.Errorf("parse -options: %w", err)
		}
		opts, err := filter.ParseOptions(raw)
		if err != nil {
			return cliArgs{}, err
		}
		out.options = opts
	}

	var errs []error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "year-start":
			out.options.YearNumberStart = filter.Int(*yearStart)
		case "year-end":
			out.options.YearNumberEnd = filter.Int(*yearEnd)
		case "week-start":
			out.options.WeekNumberStart = filter.Int(*weekStart)
		case "week-end":
			out.options.WeekNumberEnd = filter.Int(*weekEnd)
		case "only-regular-season":
			out.options.OnlyRegularSeason = *onlyRegularSeason
		case "only-post-season":
			out.options.OnlyPostSeason = *onlyPostSeason
		case "only-championship":
			out.options.OnlyChampionship = *onlyChampionship
		case "include-multi-week":
			out.options.IncludeMultiWeekMatchups = filter.Bool(*includeMultiWeek)
		case "against":
			out.options.CalculateAgainstTeamIDs = splitCSV(*against)
		case "only-ongoing":
			out.options.OnlyOngoing = *onlyOngoing
		case "places":
			if out.decimalPlaces < 0 || out.decimalPlaces > 10 {
				errs = append(errs, fmt.Errorf("-places must be between 0 and 10, got %d", out.decimalPlaces))
			}
		}
	})
	if err := errors.Join(errs...); err != nil {
		return cliArgs{}, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
