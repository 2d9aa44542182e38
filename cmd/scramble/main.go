package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zeebo/scramble"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// buildLogger constructs the logger for a command invocation.
var buildLogger = newLogger

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, errs.New("failed to initialize logger: %v", err)
	}
	return logger, nil
}

func newRootCmd(cfg config) *cobra.Command {
	logger := zap.NewNop()

	cmd := &cobra.Command{
		Use:   "scramble [PATH]",
		Short: "Turn puzzle solutions into cryptograms",
		Long: `Reads a puzzle file from PATH, or stdin when PATH is absent or "-", and
writes it back with every plain solution replaced by a letter substitution
cryptogram and the sha256 of the solution. Puzzles that are already scrambled
are written unchanged.

The same seed and skip always produce the same output.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			logger, err = buildLogger(cfg.Verbose)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() { _ = logger.Sync() }()

			var path string
			if len(args) == 1 && args[0] != "-" {
				path = args[0]
			}

			// the output is only touched once the whole input has been
			// scrambled, so it may name the input file.
			var buf bytes.Buffer
			if err := runPath(logger, cfg, path, cmd.InOrStdin(), &buf); err != nil {
				return err
			}

			if cfg.Output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return errs.Wrap(err)
			}
			return writeFile(cfg.Output, buf.Bytes())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Seed, "seed", cfg.Seed, `generator seed as "high:low", 0x-prefixed hex, or decimal`)
	flags.StringVar(&cfg.SeedPhrase, "seed-phrase", cfg.SeedPhrase, "derive the generator seed from a phrase")
	flags.StringVar(&cfg.Skip, "skip", cfg.Skip, "number of generator outputs to skip before scrambling")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "puzzle file format: json or yaml")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "write to this file instead of stdout")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	return cmd
}

// runPath runs with the file at path as input, or stdin if path is empty.
func runPath(logger *zap.Logger, cfg config, path string, stdin io.Reader, out io.Writer) (err error) {
	if path == "" {
		return run(logger, cfg, stdin, out)
	}

	fh, err := os.Open(path)
	if err != nil {
		return errs.Wrap(err)
	}
	defer func() { err = errs.Combine(err, errs.Wrap(fh.Close())) }()

	return run(logger, cfg, fh, out)
}

// writeFile replaces the file at path with data by renaming a temporary file
// from the same directory over it. An existing file keeps its permissions.
func writeFile(path string, data []byte) (err error) {
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	fh, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errs.Wrap(err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(fh.Name())
		}
	}()

	if _, err := fh.Write(data); err != nil {
		_ = fh.Close()
		return errs.Wrap(err)
	}
	if err := fh.Chmod(mode); err != nil {
		_ = fh.Close()
		return errs.Wrap(err)
	}
	if err := fh.Close(); err != nil {
		return errs.Wrap(err)
	}
	return errs.Wrap(os.Rename(fh.Name(), path))
}

// run scrambles the puzzle file read from in and writes it to out.
func run(logger *zap.Logger, cfg config, in io.Reader, out io.Writer) error {
	format, err := scramble.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	rng, err := cfg.generator()
	if err != nil {
		return err
	}
	logger.Debug("Generator ready",
		zap.Stringer("state", rng.State()),
		zap.String("format", format.String()))

	f, err := scramble.Decode(in, format)
	if err != nil {
		return err
	}

	for _, w := range f.Warnings() {
		logger.Warn("Puzzle date problem",
			zap.Stringer("kind", w.Kind),
			zap.String("date", w.Date))
	}

	plain := 0
	for _, p := range f.Puzzles {
		if p.Kind == scramble.Plain {
			plain++
		}
	}
	f.Scramble(rng)
	logger.Info("Scrambled puzzles",
		zap.Int("puzzles", len(f.Puzzles)),
		zap.Int("scrambled", plain))

	return scramble.Encode(out, f, format)
}
