// Command basenames prints the systematic names of numeral bases.
//
//	basenames                  list every base from 1 upward until interrupted
//	basenames 60               print the name of base 60
//	basenames -from 1 -count 36 -format yaml
//	basenames -rational 2/3
//	basenames -symbol tau -gt6 -one-syllable
//	basenames -parse "baker's dozenal"
//	basenames -serve           run the HTTP API
//
// Configuration is read from the environment and an optional .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/dmitrymomot/basenames/pkg/config"
	"github.com/dmitrymomot/basenames/pkg/listing"
	"github.com/dmitrymomot/basenames/pkg/logger"
	"github.com/dmitrymomot/basenames/pkg/namingapi"
	"github.com/dmitrymomot/basenames/pkg/numeral"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

type options struct {
	from        int64
	count       int
	format      string
	rational    string
	symbol      string
	gt6         bool
	oneSyllable bool
	parse       string
	serve       bool
	envFile     string
}

func newFlagSet(o *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("basenames", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64Var(&o.from, "from", 1, "first base of the listing")
	fs.IntVar(&o.count, "count", 0, "number of bases to list (0 lists until interrupted)")
	fs.StringVar(&o.format, "format", "text", "listing format: text, json or yaml")
	fs.StringVar(&o.rational, "rational", "", "name the fractional base `num/den`")
	fs.StringVar(&o.symbol, "symbol", "", "name a non-rational base with the given stem")
	fs.BoolVar(&o.gt6, "gt6", false, "the symbolic base is greater than six")
	fs.BoolVar(&o.oneSyllable, "one-syllable", false, "the symbol's stem has one syllable")
	fs.StringVar(&o.parse, "parse", "", "print the value of a root base name")
	fs.BoolVar(&o.serve, "serve", false, "run the HTTP API")
	fs.StringVar(&o.envFile, "env-file", "", "load configuration from this file instead of ./.env")
	return fs
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var o options
	fs := newFlagSet(&o, stderr)
	flagArgs, bases := splitNegativeBases(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return o, nil, err
	}
	return o, append(fs.Args(), bases...), nil
}

// splitNegativeBases pulls bare negative integers such as "-2" out of args,
// which the flag package would otherwise reject as unknown flags. Values of
// flags that take an argument ("-from -5") and everything after "--" are left
// in place.
func splitNegativeBases(fs *flag.FlagSet, args []string) (flagArgs, bases []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(flagArgs, args[i:]...), bases
		}
		if _, err := strconv.ParseInt(arg, 10, 64); err == nil && strings.HasPrefix(arg, "-") {
			bases = append(bases, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if takesValue(fs, arg) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	return flagArgs, bases
}

func takesValue(fs *flag.FlagSet, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}
	f := fs.Lookup(strings.TrimLeft(arg, "-"))
	if f == nil {
		return false
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return false
	}
	return true
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	modes := 0
	for _, set := range []bool{opts.serve, opts.parse != "", opts.rational != "", opts.symbol != "", len(rest) > 0} {
		if set {
			modes++
		}
	}
	if modes > 1 || len(rest) > 1 {
		fmt.Fprintln(stderr, "basenames: choose one of a base argument, -rational, -symbol, -parse or -serve")
		return exitUsage
	}

	var envFiles []string
	if opts.envFile != "" {
		envFiles = append(envFiles, opts.envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		fmt.Fprintf(stderr, "basenames: %v\n", err)
		return exitError
	}
	log := newLogger(cfg, stderr, opts.serve)

	c := numeral.NewCache()
	defer func() {
		factors, abbreviations := c.Stats()
		log.Debug("naming cache", logger.CacheStats(factors, abbreviations))
	}()

	switch {
	case opts.serve:
		err = serve(ctx, cfg, c, log)
	case opts.parse != "":
		err = printParsed(stdout, opts.parse)
	case opts.rational != "":
		err = printRational(stdout, c, opts.rational)
	case opts.symbol != "":
		_, err = fmt.Fprintln(stdout, numeral.SymbolName(opts.symbol, opts.gt6, opts.oneSyllable))
	case len(rest) == 1:
		err = printName(stdout, c, rest[0])
	default:
		err = printListing(ctx, stdout, c, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "basenames: %v\n", err)
		return exitError
	}
	return exitOK
}

// newLogger writes to stderr so stdout carries only results. Outside the
// server only warnings are shown unless LOG_LEVEL says otherwise.
func newLogger(cfg config.Config, stderr io.Writer, serving bool) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(stderr),
		logger.WithEnvironment(cfg.Env, cfg.Service),
	}
	switch {
	case cfg.LogLevel != "":
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	case !serving:
		opts = append(opts, logger.WithLevel(slog.LevelWarn))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	if serving {
		opts = append(opts, logger.WithContextExtractors(namingapi.RequestIDExtractor()))
	}
	return logger.New(opts...)
}

// parseBase rejects math.MinInt64, which has no negative-base name.
func parseBase(what, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n == math.MinInt64 {
		return 0, fmt.Errorf("cannot parse %s%q as an integer", what, s)
	}
	return n, nil
}

func printName(w io.Writer, c *numeral.Cache, arg string) error {
	n, err := parseBase("", arg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, numeral.Name(c, n))
	return err
}

func printRational(w io.Writer, c *numeral.Cache, arg string) error {
	numText, denText, ok := strings.Cut(arg, "/")
	if !ok {
		return fmt.Errorf("rational %q must look like num/den", arg)
	}
	num, err := parseBase("numerator ", numText)
	if err != nil {
		return err
	}
	den, err := parseBase("denominator ", denText)
	if err != nil {
		return err
	}
	if den == 0 {
		return errors.New("denominator must not be zero")
	}
	_, err = fmt.Fprintln(w, numeral.RationalName(c, num, den))
	return err
}

func printParsed(w io.Writer, name string) error {
	n, err := numeral.ParseFold(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, n)
	return err
}

func printListing(ctx context.Context, w io.Writer, c *numeral.Cache, opts options) error {
	format, err := listing.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	err = listing.Stream(ctx, c, w, format, opts.from, opts.count)
	if opts.count == 0 && errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serve(ctx context.Context, cfg config.Config, c *numeral.Cache, log *slog.Logger) error {
	svc := namingapi.NewService(c,
		namingapi.WithMaxListing(cfg.Naming.MaxListing),
		namingapi.WithMaxBase(cfg.Naming.MaxBase),
	)
	if cfg.Naming.Prewarm > 0 {
		svc.Prewarm(cfg.Naming.Prewarm)
		factors, abbreviations := svc.Stats()
		log.Info("cache prewarmed", logger.CacheStats(factors, abbreviations))
	}
	srv := namingapi.NewServer(cfg.HTTP, log)
	return srv.Run(ctx, namingapi.NewRouter(svc, log))
}
