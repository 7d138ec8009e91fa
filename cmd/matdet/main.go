// Command matdet builds a matrix from a literal or a factory, optionally
// prints it, reads one element and computes its determinant.
//
// Usage:
//
//	matdet -literal '[[1,2,3],[4,8,6],[7,8,9]]' -det
//	matdet -factory identity -rows 10 -print -at 1,10
//	matdet -factory zeros -rows 4 -cols 6 -storage dense -print -item-sep ', '
//
// Errors are reported on stderr by kind ("Out of range error", "Logical
// error", "Standard error") and the exit status is 1. Flag errors exit with 2.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lvmat/matrix"
)

const loggerName = "matdet"

var (
	log      = logging.Logger(loggerName)
	exitFunc = os.Exit
)

type config struct {
	literal  string
	factory  string
	rows     int
	cols     int
	storage  string
	float    bool
	det      bool
	at       string
	print    bool
	logLevel string
	format   matrix.Format
}

func main() {
	exitFunc(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable entry point; it returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := logging.SetLogLevel(loggerName, cfg.logLevel); err != nil {
		fmt.Fprintf(stderr, "invalid -log-level %q: %v\n", cfg.logLevel, err)
		return 2
	}

	if cfg.float {
		err = execute[float64](cfg, stdout)
	} else {
		err = execute[int64](cfg, stdout)
	}
	if err != nil {
		fmt.Fprintln(stderr, describe(err))
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	def := matrix.DefaultFormat()
	cfg := config{}

	fs := flag.NewFlagSet("matdet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.literal, "literal", "", "nested JSON array, e.g. [[1,2],[3,4]]; ragged rows are zero-padded")
	fs.StringVar(&cfg.factory, "factory", "identity", "zeros | ones | identity (ignored with -literal)")
	fs.IntVar(&cfg.rows, "rows", 3, "row count for -factory")
	fs.IntVar(&cfg.cols, "cols", 0, "column count for -factory (0 = same as -rows)")
	fs.StringVar(&cfg.storage, "storage", "auto", "auto | dense | sparse")
	fs.BoolVar(&cfg.float, "float", false, "use float64 elements instead of int64")
	fs.BoolVar(&cfg.det, "det", false, "print the determinant")
	fs.StringVar(&cfg.at, "at", "", "print element at row,col")
	fs.BoolVar(&cfg.print, "print", false, "print the matrix")
	fs.StringVar(&cfg.logLevel, "log-level", "error", "debug | info | warn | error")
	fs.StringVar(&cfg.format.ItemSep, "item-sep", def.ItemSep, "separator between items")
	fs.StringVar(&cfg.format.RowOpen, "row-open", def.RowOpen, "printed before each row")
	fs.StringVar(&cfg.format.RowClose, "row-close", def.RowClose, "printed after each row")
	fs.StringVar(&cfg.format.RowSep, "row-sep", def.RowSep, "printed between rows")
	fs.StringVar(&cfg.format.MatrixOpen, "matrix-open", def.MatrixOpen, "printed before the matrix")
	fs.StringVar(&cfg.format.MatrixClose, "matrix-close", def.MatrixClose, "printed after the matrix")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if cfg.cols == 0 {
		cfg.cols = cfg.rows
	}

	return cfg, nil
}

func execute[T matrix.Element](cfg config, w io.Writer) error {
	kind, err := matrix.ParseKind(cfg.storage)
	if err != nil {
		return err
	}
	m, err := construct[T](cfg, matrix.WithStorage(kind))
	if err != nil {
		return err
	}
	log.Debugf("built %dx%d %s matrix with %d nonzeros", m.Rows(), m.Cols(), m.Kind(), m.NNZ())

	if cfg.print {
		if err := matrix.Fprint[T](w, m, cfg.format); err != nil {
			return err
		}
	}
	if cfg.at != "" {
		row, col, err := parseCoords(cfg.at)
		if err != nil {
			return err
		}
		v, err := m.At(row, col)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "at(%d,%d) = %v\n", row, col, v)
	}
	if cfg.det {
		d, err := m.Det()
		if err != nil {
			return err
		}
		log.Infof("determinant computed on %s storage", m.Kind())
		fmt.Fprintf(w, "det = %v\n", d)
	}

	return nil
}

func construct[T matrix.Element](cfg config, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	if cfg.literal != "" {
		var lit [][]T
		if err := json.Unmarshal([]byte(cfg.literal), &lit); err != nil {
			return nil, fmt.Errorf("parse -literal: %w", err)
		}
		return matrix.FromRows(lit, opts...)
	}

	switch strings.ToLower(cfg.factory) {
	case "zeros":
		return matrix.Zeros[T](cfg.rows, cfg.cols, opts...)
	case "ones":
		return matrix.Ones[T](cfg.rows, cfg.cols, opts...)
	case "identity", "eye":
		return matrix.Identity[T](cfg.rows, cfg.cols, opts...)
	default:
		return nil, fmt.Errorf("unknown -factory %q", cfg.factory)
	}
}

// parseCoords parses "row,col".
func parseCoords(s string) (int, int, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("-at %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return 0, 0, fmt.Errorf("-at %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return 0, 0, fmt.Errorf("-at %q: %w", s, err)
	}

	return row, col, nil
}

// describe prefixes err with its kind.
func describe(err error) string {
	switch {
	case errors.Is(err, matrix.ErrOutOfRange):
		return "Out of range error: " + err.Error()
	case errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrNonSquare),
		errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrStaleCell),
		errors.Is(err, matrix.ErrNilMatrix):
		return "Logical error: " + err.Error()
	default:
		return "Standard error: " + err.Error()
	}
}
