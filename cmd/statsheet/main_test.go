package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/fantasy-stats/internal/config"
	"github.com/riskibarqy/fantasy-stats/internal/filter"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

const snapshotJSON = `{
  "name": "Office League",
  "owners": [{"id": "o1", "name": "Ana"}, {"id": "o2", "name": "Ben"}],
  "years": [{
    "yearNumber": 2023,
    "teams": [
      {"id": "t1", "ownerId": "o1", "name": "Aces"},
      {"id": "t2", "ownerId": "o2", "name": "Bees"}
    ],
    "weeks": [
      {"weekNumber": 1, "matchups": [{"teamAId": "t1", "teamBId": "t2", "teamAScore": 100, "teamBScore": 90}]},
      {"weekNumber": 2, "matchups": [{"teamAId": "t1", "teamBId": "t2", "teamAScore": 80, "teamBScore": 95}]}
    ]
  }]
}`

func defaultConfig() config.Config {
	return config.Config{OutputFormat: config.FormatTable, DecimalPlaces: 2}
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	got, err := parseArgs([]string{
		"-format", "json",
		"-places", "3",
		"-year-start", "2021",
		"-week-end", "4",
		"-only-regular-season",
		"-include-multi-week=false",
		"-against", "t1, t2,",
		"league.json",
	}, defaultConfig(), io.Discard)
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}

	if got.snapshot != "league.json" || got.format != "json" || got.decimalPlaces != 3 {
		t.Fatalf("unexpected args: %+v", got)
	}
	want := filter.Options{
		OnlyRegularSeason:        true,
		WeekNumberEnd:            filter.Int(4),
		YearNumberStart:          filter.Int(2021),
		IncludeMultiWeekMatchups: filter.Bool(false),
		CalculateAgainstTeamIDs:  []string{"t1", "t2"},
	}
	gotJSON, _ := sonic.Marshal(got.options)
	wantJSON, _ := sonic.Marshal(want)
	if string(gotJSON) != string(wantJSON) {
		t.Fatalf("unexpected options:\n got=%s\nwant=%s", gotJSON, wantJSON)
	}
}

func TestParseArgs_UnsetFlagsStayNil(t *testing.T) {
	t.Parallel()

	got, err := parseArgs([]string{"league.json"}, defaultConfig(), io.Discard)
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if got.options.YearNumberStart != nil || got.options.WeekNumberStart != nil || got.options.IncludeMultiWeekMatchups != nil {
		t.Fatalf("unset flags leaked into options: %+v", got.options)
	}
	if got.format != config.FormatTable || got.decimalPlaces != 2 {
		t.Fatalf("config defaults not applied: %+v", got)
	}
}

func TestParseArgs_OptionsJSONWithFlagOverride(t *testing.T) {
	t.Parallel()

	got, err := parseArgs([]string{
		"-options", `{"yearNumberStart": 2019, "onlyOngoing": true}`,
		"-year-start", "2020",
		"league.json",
	}, defaultConfig(), io.Discard)
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if got.options.YearNumberStart == nil || *got.options.YearNumberStart != 2020 {
		t.Fatalf("flag did not override -options: %+v", got.options.YearNumberStart)
	}
	if !got.options.OnlyOngoing {
		t.Fatalf("expected onlyOngoing from -options")
	}
}

func TestParseArgs_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"no snapshot":        {},
		"two snapshots":      {"a.json", "b.json"},
		"bad places":         {"-places", "11", "a.json"},
		"bad options json":   {"-options", "{", "a.json"},
		"bad options type":   {"-options", `{"weekNumberStart": "two"}`, "a.json"},
		"unknown flag":       {"-nope", "a.json"},
		"non numeric option": {"-year-start", "soon", "a.json"},
	}
	for name, args := range cases {
		name, args := name, args
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := parseArgs(args, defaultConfig(), io.Discard); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

// Not parallel: run installs the process-wide logger and reads the environment.
func TestRun(t *testing.T) {
	previous := logging.Default()
	t.Cleanup(func() { logging.SetDefault(previous) })
	t.Setenv("APP_ENV", "dev")
	t.Setenv("REPORT_OUTPUT_FORMAT", "table")
	t.Setenv("REPORT_COLOR", "false")

	path := filepath.Join(t.TempDir(), "league.json")
	if err := os.WriteFile(path, []byte(snapshotJSON), 0o600); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"Office League 2023", "Office League all-time 2023-2023", "Aces", "Ana", "Win Streaks"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	stdout.Reset()
	if code := run(context.Background(), []string{"-format", "json", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("json exit code %d", code)
	}
	var doc map[string]any
	if err := sonic.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if doc["league"] != "Office League" {
		t.Fatalf("unexpected league in json: %v", doc["league"])
	}

	if code := run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.json")}, &stdout, &stderr); code != 2 {
		t.Fatalf("missing snapshot exit code %d, want 2", code)
	}
}
