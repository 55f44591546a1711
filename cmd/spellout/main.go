package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	spellout "github.com/goliatone/go-spellout"
)

type cliConfig struct {
	locale      string
	mode        string
	separator   string
	calendar    string
	overrides   []string
	listLocales bool
	echoDigits  bool
	args        []string
}

type pathFlag struct {
	items []string
}

func (f *pathFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *pathFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "spellout: %v\n", err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig
	var overrideList pathFlag

	flag.StringVar(&cfg.locale, "locale", "en", "locale code for the output words (e.g. en, de, fa, zh)")
	flag.StringVar(&cfg.mode, "mode", "number", "what to spell: number, group, date, or time")
	flag.StringVar(&cfg.separator, "separator", "", "override the separator placed between magnitude groups")
	flag.StringVar(&cfg.calendar, "calendar", "", "calendar for date mode (gregorian or jalali)")
	flag.Var(&overrideList, "overrides", "path to a JSON or YAML locale override file. Repeat flag to layer more.")
	flag.BoolVar(&cfg.listLocales, "locales", false, "print the registered locales and exit")
	flag.BoolVar(&cfg.echoDigits, "digits", false, "echo the parsed value as locale-formatted digits before the words")

	flag.Parse()

	cfg.overrides = overrideList.items
	cfg.args = flag.Args()

	if cfg.listLocales {
		return cfg, nil
	}

	if len(cfg.args) == 0 {
		return cliConfig{}, errors.New("at least one value to spell is required")
	}

	return cfg, nil
}

func run(cfg cliConfig) error {
	if len(cfg.overrides) > 0 {
		loader := spellout.NewFileLoader(cfg.overrides...)
		if err := loader.Apply(spellout.DefaultRegistry); err != nil {
			return err
		}
	}

	if cfg.listLocales {
		return listLocales(os.Stdout)
	}

	conv, err := spellout.New(cfg.locale)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	for _, arg := range cfg.args {
		words, err := spell(conv, cfg.mode, arg, opts)
		if err != nil {
			return fmt.Errorf("spell %q: %w", arg, err)
		}
		if cfg.echoDigits && cfg.mode == "number" {
			digits, err := conv.Digits(arg)
			if err != nil {
				return fmt.Errorf("spell %q: %w", arg, err)
			}
			fmt.Printf("%s\t%s\n", digits, words)
			continue
		}
		fmt.Println(words)
	}

	return nil
}

func listLocales(out *os.File) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tNATIVE\tWIDTH\tCALENDARS")
	for _, code := range spellout.DefaultRegistry.Locales() {
		info, ok := spellout.DescribeLocale(code)
		if !ok {
			fmt.Fprintf(w, "%s\t\t\t\t\n", code)
			continue
		}
		calendars := make([]string, 0, len(info.Calendars))
		for _, calendar := range info.Calendars {
			calendars = append(calendars, string(calendar))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			code, info.Name, info.NativeName, info.GroupWidth, strings.Join(calendars, ","))
	}
	return w.Flush()
}

func buildOptions(cfg cliConfig) ([]spellout.ConvertOption, error) {
	var opts []spellout.ConvertOption

	if cfg.separator != "" {
		opts = append(opts, spellout.WithSeparator(cfg.separator))
	}

	if cfg.calendar != "" {
		switch strings.ToLower(strings.TrimSpace(cfg.calendar)) {
		case "gregorian":
			opts = append(opts, spellout.WithCalendar(spellout.CalendarGregorian))
		case "jalali":
			opts = append(opts, spellout.WithCalendar(spellout.CalendarJalali))
		default:
			return nil, fmt.Errorf("unknown calendar %q", cfg.calendar)
		}
	}

	return opts, nil
}

func spell(conv *spellout.Converter, mode, arg string, opts []spellout.ConvertOption) (string, error) {
	switch mode {
	case "number":
		return conv.Number(arg, opts...)
	case "group":
		v, err := strconv.Atoi(arg)
		if err != nil {
			return "", fmt.Errorf("group value must be an integer: %w", err)
		}
		return conv.Group(v, opts...)
	case "date":
		return conv.Date(arg, opts...)
	case "time":
		return conv.Time(arg, opts...)
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}
