package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/dateformat"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

// magh1 is 2026-01-15, Magh 1 2082, a Thursday.
var magh1 = bikram.FixedClock(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))

// runCLI executes the command against a settings file in a temp dir.
func runCLI(t *testing.T, clock bikram.Clock, args ...string) (int, string, string) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), config.SettingsFileName)
	return runWithConfig(t, cfg, clock, args...)
}

func runWithConfig(t *testing.T, cfg string, clock bikram.Clock, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-" + config.FlagConfig, cfg}, args...), &stdout, &stderr, clock)
	return code, stdout.String(), stderr.String()
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-version"}, &stdout, &stderr, magh1)

	assert.Equal(t, config.ExitCodeSuccess, code)
	assert.Contains(t, stdout.String(), config.AppName+" version "+config.Version)
}

func TestRun_TodayUsesSettings(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "nested", config.SettingsFileName)

	code, out, _ := runWithConfig(t, cfg, magh1)
	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, "२०८२ माघ १\n", out, "Defaults are Nepali with the Medium preset")

	_, err := os.Stat(cfg)
	assert.NoError(t, err, "First run writes the settings file")

	require.NoError(t, config.SaveSettings(cfg, config.Settings{
		Language:      locale.English,
		FormatType:    dateformat.Custom,
		CustomPattern: "D MMMM",
	}))
	code, out, _ = runWithConfig(t, cfg, magh1)
	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, "1 Magh\n", out)
}

func TestRun_Conversions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"today english", []string{"-lang", "en", "-format", "Long"}, "Magh 1, 2082\n"},
		{"to bs", []string{"-lang", "en", "-format", "Short", "-to-bs", "2025-04-14"}, "2082/01/01\n"},
		{"to bs devanagari input", []string{"-lang", "en", "-format", "short", "-to-bs", "२०२५-०४-१४"}, "2082/01/01\n"},
		{"to bs nepali output", []string{"-lang", "ne", "-format", "Long", "-to-bs", "2025-04-13"}, "चैत ३०, २०८१\n"},
		{"to ad slashes", []string{"-to-ad", "2082/10/01"}, "2026-01-15\n"},
		{"to ad dashes", []string{"-to-ad", "2082-10-1"}, "2026-01-15\n"},
		{"to ad devanagari", []string{"-to-ad", "२०८२.०१.०१"}, "2025-04-14\n"},
		{"custom pattern", []string{"-lang", "en", "-format", "'Day' D 'of' MMMM"}, "Day 1 of Magh\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := runCLI(t, magh1, tt.args...)
			require.Equal(t, config.ExitCodeSuccess, code, stderr)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"both directions", []string{"-to-bs", "2025-04-14", "-to-ad", "2082/01/01"}, config.ExitCodeUsage},
		{"bad gregorian", []string{"-to-bs", "14/04/2025"}, config.ExitCodeUsage},
		{"bad bs", []string{"-to-ad", "2082/01"}, config.ExitCodeUsage},
		{"bad bs digits", []string{"-to-ad", "2082/x/01"}, config.ExitCodeUsage},
		{"unknown language", []string{"-lang", "###"}, config.ExitCodeUsage},
		{"agenda too long", []string{"-agenda", "5000"}, config.ExitCodeUsage},
		{"unknown flag", []string{"-nope"}, config.ExitCodeUsage},
		{"invalid bs month", []string{"-to-ad", "2082/13/01"}, config.ExitCodeError},
		{"bs year out of table", []string{"-to-ad", "1990/01/01"}, config.ExitCodeError},
		{"gregorian out of table", []string{"-to-bs", "2040-01-01"}, config.ExitCodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, magh1, tt.args...)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestRun_UnsupportedTodayPrintsPlaceholder(t *testing.T) {
	code, out, stderr := runCLI(t, bikram.FixedClock(time.Date(2040, 1, 1, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, config.ExitCodeError, code)
	assert.Equal(t, dateformat.Placeholder+"\n", out)
	assert.Contains(t, stderr, config.ErrConvert)
}

func TestRun_BrokenSettingsFallsBack(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), config.SettingsFileName)
	require.NoError(t, os.WriteFile(cfg, []byte("language: [unterminated"), config.FilePermUserRW))

	code, out, stderr := runWithConfig(t, cfg, magh1)
	assert.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, "२०८२ माघ १\n", out)
	assert.Contains(t, stderr, config.ErrSettingsLoad)
}

func TestRun_MonthGrid(t *testing.T) {
	code, out, _ := runCLI(t, magh1, "-lang", "en", "-format", "Long", "-month")
	require.Equal(t, config.ExitCodeSuccess, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Magh 1, 2082", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "Magh 2082", lines[2])
	assert.Equal(t, "  S   M   T   W   T   F   S", lines[3])
	assert.Equal(t, "                  1*  2   3", lines[4], "Magh 2082 starts on a Thursday")
	assert.Equal(t, "  4   5   6   7   8   9  10", lines[5])
	assert.Equal(t, " 25  26  27  28  29", lines[8])
}

func TestRun_MonthGridForConvertedDate(t *testing.T) {
	code, out, _ := runCLI(t, magh1, "-lang", "ne", "-to-ad", "2082/01/15", "-month")
	require.Equal(t, config.ExitCodeSuccess, code)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "2025-04-28", lines[0])
	assert.Equal(t, "बैशाख २०८२", lines[2])
	assert.NotContains(t, out, todayMarker, "Today is not in Baishakh")
	assert.Contains(t, out, "३१")
}

func TestRun_Agenda(t *testing.T) {
	code, out, _ := runCLI(t, magh1, "-lang", "en", "-format", "Long", "-to-bs", "2025-04-12", "-agenda", "3")
	require.Equal(t, config.ExitCodeSuccess, code)

	assert.Equal(t, strings.Join([]string{
		"Chaitra 29, 2081",
		"",
		"Sat, 12 Apr 2025  Chaitra 29, 2081",
		"Sun, 13 Apr 2025  Chaitra 30, 2081",
		"Mon, 14 Apr 2025  Baishakh 1, 2082",
		"",
	}, "\n"), out)
}

func TestRun_AgendaPastTableEnd(t *testing.T) {
	pr := printer{conv: bikram.Default(), clock: magh1, pattern: dateformat.Long.Pattern()}
	var buf bytes.Buffer
	pr.out = &buf

	require.NoError(t, pr.agenda(time.Date(2034, 4, 12, 0, 0, 0, 0, time.UTC), 2))
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.True(t, strings.HasSuffix(line, "  "+gapMarker), line)
	}
}

func TestParseBSDate(t *testing.T) {
	tests := []struct {
		in      string
		want    bikram.NepaliDate
		wantErr bool
	}{
		{"2082/10/01", bikram.Date(2082, 10, 1), false},
		{" 2082-1-5 ", bikram.Date(2082, 1, 5), false},
		{"२०८१.१२.३०", bikram.Date(2081, 12, 30), false},
		{"2082/10", bikram.NepaliDate{}, true},
		{"2082/10/01/02", bikram.NepaliDate{}, true},
		{"2082/ab/01", bikram.NepaliDate{}, true},
		{"", bikram.NepaliDate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBSDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), config.ErrParseBSDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
