// SPDX-License-Identifier: MIT

// Command linalg runs a single matrix computation from the command line.
//
//	linalg -op det -rows 2 -cols 2 -data "1,2,3,4"
//	linalg -op pow -rows 2 -cols 3 -data "1,2,3,4,5,6" -exp 2
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

	"github.com/katalvlaran/linalg/matrix"
)

var errUsage = errors.New("linalg: usage")

const ops = "det|inv|lu|lup|eig|eigsym|t|pow|qr|svd|cov"

type config struct {
	op         string
	rows, cols int
	data       []float64
	exp        float64
	verbose    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("linalg failed", slog.Any("err", err))
		}
		os.Exit(1)
	}
}

// run parses args, computes and prints the result to out.
func run(args []string, out, errOut io.Writer) error {
	cfg, err := parseFlags(args, errOut)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	m, err := matrix.NewDense(cfg.rows, cfg.cols, cfg.data)
	if err != nil {
		return fmt.Errorf("build input: %w", err)
	}
	logger.Debug("input parsed", slog.String("op", cfg.op), slog.Int("rows", cfg.rows), slog.Int("cols", cfg.cols))

	return compute(cfg, m, out, logger)
}

func parseFlags(args []string, errOut io.Writer) (config, error) {
	var (
		cfg  config
		data string
	)
	fs := flag.NewFlagSet("linalg", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.op, "op", "det", "operation: "+ops)
	fs.IntVar(&cfg.rows, "rows", 0, "number of rows")
	fs.IntVar(&cfg.cols, "cols", 0, "number of columns")
	fs.StringVar(&data, "data", "", "comma-separated row-major values")
	fs.Float64Var(&cfg.exp, "exp", 2, "exponent for -op pow")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	values, err := parseValues(data)
	if err != nil {
		return cfg, err
	}
	cfg.data = values

	return cfg, nil
}

// parseValues splits "1, 2,3" into floats; an empty string means no data.
func parseValues(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d %q: %w", i, p, err)
		}
		out[i] = v
	}

	return out, nil
}

func compute(cfg config, m *matrix.Dense, out io.Writer, logger *slog.Logger) error {
	switch cfg.op {
	case "det":
		det, err := matrix.Determinant(m)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, det)
	case "inv":
		inv, ok, err := matrix.Inverse(m)
		if err != nil {
			return err
		}
		if !ok {
			logger.Warn("matrix is singular")
			fmt.Fprintln(out, "singular")
			return nil
		}
		fmt.Fprint(out, inv)
	case "lu":
		l, u, err := matrix.LU(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "L:\n%vU:\n%v", l, u)
	case "lup":
		f, err := matrix.LUP(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "P:\n%vL:\n%vU:\n%v", f.P(), f.L, f.U)
	case "eig":
		eig, err := matrix.Eigenvalues(m)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, eig[0], eig[1])
	case "eigsym":
		vals, vecs, err := matrix.EigenSym(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "values: %v\nvectors:\n%v", vals, vecs)
	case "t":
		t, err := matrix.Transpose(m)
		if err != nil {
			return err
		}
		fmt.Fprint(out, t)
	case "pow":
		p, err := matrix.Power(m, cfg.exp)
		if err != nil {
			return err
		}
		fmt.Fprint(out, p)
	case "qr":
		q, r, err := matrix.QR(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Q:\n%vR:\n%v", q, r)
	case "svd":
		_, sigma, _, err := matrix.SVD(m)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sigma)
	case "cov":
		cov, _, err := matrix.Covariance(m)
		if err != nil {
			return err
		}
		fmt.Fprint(out, cov)
	default:
		return fmt.Errorf("%w: unknown op %q (want %s)", errUsage, cfg.op, ops)
	}
	logger.Debug("done", slog.String("op", cfg.op))

	return nil
}
