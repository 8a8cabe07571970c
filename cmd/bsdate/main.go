// Command bsdate converts between Gregorian and Bikram Sambat dates and
// prints BS month grids. Output language and format follow the YAML
// settings file unless overridden by flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/dateformat"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, bikram.RealClock{}))
}

type options struct {
	version    bool
	debug      bool
	configPath string
	lang       string
	format     string
	toBS       string
	toAD       string
	month      bool
	agenda     int
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet(config.CLIName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&o.version, config.FlagVersion, false, config.FlagDescVersion)
	fs.BoolVar(&o.debug, config.FlagDebug, false, config.FlagDescDebug)
	fs.StringVar(&o.configPath, config.FlagConfig, "", config.FlagDescConfig)
	fs.StringVar(&o.lang, config.FlagLang, "", config.FlagDescLang)
	fs.StringVar(&o.format, config.FlagFormat, "", config.FlagDescFormat)
	fs.StringVar(&o.toBS, config.FlagToBS, "", config.FlagDescToBS)
	fs.StringVar(&o.toAD, config.FlagToAD, "", config.FlagDescToAD)
	fs.BoolVar(&o.month, config.FlagMonth, false, config.FlagDescMonth)
	fs.IntVar(&o.agenda, config.FlagAgenda, 0, config.FlagDescAgenda)

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.toBS != "" && o.toAD != "" {
		return o, errors.New(config.ErrFlagConflict)
	}
	if o.agenda < 0 || o.agenda > config.MaxFeedDays {
		return o, errors.New(config.ErrAgendaCount)
	}
	return o, nil
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer, clock bikram.Clock) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return config.ExitCodeUsage
	}

	if opts.version {
		fmt.Fprint(stdout, config.VersionString())
		return config.ExitCodeSuccess
	}

	config.SetupLogging(stderr, opts.debug, false)
	log := slog.With(config.LogKeyComponent, config.CompCLI)

	settings := loadSettings(opts.configPath, log)
	if err := applyOverrides(&settings, opts); err != nil {
		fmt.Fprintln(stderr, err)
		return config.ExitCodeUsage
	}

	conv := bikram.Default()
	p := printer{out: stdout, conv: conv, clock: clock, lang: settings.Language, pattern: settings.Pattern()}

	var (
		target bikram.NepaliDate
		start  time.Time
	)
	switch {
	case opts.toAD != "":
		d, err := parseBSDate(opts.toAD)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return config.ExitCodeUsage
		}
		g, err := conv.ToGregorian(d)
		if err != nil {
			log.Error(config.ErrConvert, config.LogKeyDate, d.String(), config.LogKeyError, err)
			return config.ExitCodeError
		}
		fmt.Fprintln(stdout, g.Format(config.DateFormatGregorian))
		target, start = d, g

	default:
		start = clock.Now()
		if opts.toBS != "" {
			t, err := time.Parse(config.DateFormatGregorian, locale.ToLatin(strings.TrimSpace(opts.toBS)))
			if err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", config.ErrParseADDate, err)
				return config.ExitCodeUsage
			}
			start = t
		}
		nd, err := conv.ToNepaliTime(start)
		if err != nil {
			log.Error(config.ErrConvert, config.LogKeyGregorian, start.Format(config.DateFormatGregorian), config.LogKeyError, err)
			fmt.Fprintln(stdout, dateformat.Placeholder)
			return config.ExitCodeError
		}
		fmt.Fprintln(stdout, dateformat.Format(nd, p.pattern, p.lang))
		target = nd
	}

	if opts.month {
		fmt.Fprintln(stdout)
		if err := p.month(target); err != nil {
			log.Error(config.ErrConvert, config.LogKeyDate, target.String(), config.LogKeyError, err)
			return config.ExitCodeError
		}
	}

	if opts.agenda > 0 {
		fmt.Fprintln(stdout)
		if err := p.agenda(start, opts.agenda); err != nil {
			log.Error(config.ErrConvert, config.LogKeyDays, opts.agenda, config.LogKeyError, err)
			return config.ExitCodeError
		}
	}
	return config.ExitCodeSuccess
}

// loadSettings reads the settings file, falling back to defaults when it
// cannot be read. A missing file is created on first use.
func loadSettings(path string, log *slog.Logger) config.Settings {
	if path == "" {
		p, err := config.DefaultSettingsPath()
		if err != nil {
			log.Warn(config.ErrSettingsLoad, config.LogKeyError, err)
			return config.DefaultSettings()
		}
		path = p
	}

	s, err := config.LoadSettings(path)
	if err != nil {
		log.Warn(config.ErrSettingsLoad, config.LogKeyPath, path, config.LogKeyError, err)
		if s == (config.Settings{}) {
			return config.DefaultSettings()
		}
	}
	return s
}

// applyOverrides applies -lang and -format. A -format value that is not a
// preset name is used as a custom pattern.
func applyOverrides(s *config.Settings, opts options) error {
	if opts.lang != "" {
		lang, err := locale.ParseLanguage(opts.lang)
		if err != nil {
			return err
		}
		s.Language = lang
	}
	if opts.format != "" {
		if t, err := dateformat.ParseType(opts.format); err == nil {
			s.FormatType = t
		} else {
			s.FormatType = dateformat.Custom
			s.CustomPattern = opts.format
		}
	}
	return nil
}

// parseBSDate reads YYYY/MM/DD. Dashes or dots may separate the fields and
// digits may be Devanagari.
func parseBSDate(s string) (bikram.NepaliDate, error) {
	fields := strings.FieldsFunc(locale.ToLatin(strings.TrimSpace(s)), func(r rune) bool {
		return strings.ContainsRune(config.BSDateSeparators, r)
	})
	if len(fields) != 3 {
		return bikram.NepaliDate{}, fmt.Errorf("%s: %q", config.ErrParseBSDate, s)
	}

	var parts [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return bikram.NepaliDate{}, fmt.Errorf("%s: %q", config.ErrParseBSDate, s)
		}
		parts[i] = n
	}
	return bikram.Date(parts[0], parts[1], parts[2]), nil
}
