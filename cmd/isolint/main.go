package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/jacoelho/iso8601"
	isoerrors "github.com/jacoelho/iso8601/errors"
)

const (
	formatExtended = "extended"
	formatBasic    = "basic"
	formatRFC3339  = "rfc3339"
	formatJSON     = "json"
)

var (
	lenientFlag = &cli.BoolFlag{
		Name:  "lenient",
		Usage: "accept extended groups without leading zeroes (e.g. 1981-4-5T1:2)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: formatExtended,
		Usage: "output format: extended, basic, rfc3339 or json",
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colored error output",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log each parsed value to stderr",
	}
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := &cli.App{
		Name:            "isolint",
		Usage:           "parse ISO-8601 timestamps and print them normalized",
		ArgsUsage:       "[timestamp...]",
		Description:     "Reads timestamps from the arguments, or one per line from stdin when none are given.",
		HideHelpCommand: true,
		Flags:           []cli.Flag{lenientFlag, formatFlag, noColorFlag, verboseFlag},
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		ExitErrHandler:  func(*cli.Context, error) {},
		Action: func(ctx *cli.Context) error {
			return lint(ctx, stdin, stdout, stderr)
		},
	}

	err := app.Run(append([]string{"isolint"}, args...))
	if err == nil {
		return 0
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			_ = writeln(stderr, msg)
		}
		return exitErr.ExitCode()
	}
	_ = writef(stderr, "error: %v\n", err)
	return 2
}

func lint(ctx *cli.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	format := ctx.String(formatFlag.Name)
	switch format {
	case formatExtended, formatBasic, formatRFC3339, formatJSON:
	default:
		return cli.Exit(fmt.Sprintf("error: unknown format %q", format), 2)
	}

	level := slog.LevelWarn
	if ctx.Bool(verboseFlag.Name) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	failure := color.New(color.FgRed)
	if ctx.Bool(noColorFlag.Name) {
		failure.DisableColor()
	}

	opts := iso8601.NewOptions().WithForceLeadingZeroes(!ctx.Bool(lenientFlag.Name))

	inputs := ctx.Args().Slice()
	if len(inputs) == 0 {
		var err error
		inputs, err = readLines(stdin)
		if err != nil {
			return cli.Exit(fmt.Sprintf("error reading stdin: %v", err), 1)
		}
	}

	var enc *json.Encoder
	if format == formatJSON {
		enc = json.NewEncoder(stdout)
	}

	failed := 0
	for _, in := range inputs {
		ts, err := iso8601.ParseWithOptions(in, opts)
		if enc != nil {
			if encErr := enc.Encode(newReport(in, ts, err)); encErr != nil {
				return cli.Exit(fmt.Sprintf("error writing output: %v", encErr), 1)
			}
		}
		if err != nil {
			failed++
			logger.Debug("parse failed", "input", in, "err", err)
			if enc == nil {
				if _, werr := failure.Fprintf(stderr, "error: %s: %v\n", in, err); werr != nil {
					return cli.Exit("", 1)
				}
			}
			continue
		}
		logger.Debug("parsed", "input", in, "timestamp", ts.String())
		if enc != nil {
			continue
		}
		if err := writeln(stdout, render(ts, format)); err != nil {
			return cli.Exit("", 1)
		}
	}

	if failed > 0 {
		logger.Warn("some timestamps failed to parse", "failed", failed, "total", len(inputs))
		return cli.Exit("", 1)
	}
	return nil
}

func render(ts iso8601.Timestamp, format string) string {
	switch format {
	case formatBasic:
		return ts.Format(iso8601.LayoutBasic)
	case formatRFC3339:
		return ts.Time().Format(time.RFC3339Nano)
	default:
		return ts.String()
	}
}

type errorReport struct {
	Kind    string `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type report struct {
	Error     *errorReport `json:"error,omitempty"`
	Input     string       `json:"input"`
	Timestamp string       `json:"timestamp,omitempty"`
	Zone      string       `json:"zone,omitempty"`
	Unix      *int64       `json:"unix,omitempty"`
}

func newReport(in string, ts iso8601.Timestamp, err error) report {
	r := report{Input: in}
	if err != nil {
		er := &errorReport{Message: err.Error()}
		if pe, ok := isoerrors.AsParseError(err); ok {
			er.Kind = pe.Kind.String()
			er.Code = pe.Code
			er.Message = pe.Message
		}
		r.Error = er
		return r
	}
	r.Timestamp = ts.String()
	r.Zone = ts.Zone().String()
	if !ts.Zone().IsNaive() {
		unix := ts.Time().Unix()
		r.Unix = &unix
	}
	return r
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return lines, nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
