package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/hydrate-format/go-hydrate"
	"github.com/hydrate-format/go-hydrate/format"
)

type MainConfig struct {
	Debug bool `cli:"name=d aliases=debug desc='trace traversal steps on stderr'"`
	Color bool `cli:"name=color desc='force colored output'"`

	OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) rootOpts() []hydrate.Option {
	opts := []hydrate.Option{hydrate.WithDebug(cfg.Debug)}
	if cfg.Debug {
		opts = append(opts, hydrate.WithLogger(log.NewWithOptions(os.Stderr, log.Options{
			Level: log.DebugLevel,
		})))
	}
	return opts
}

func (cfg *MainConfig) colorized(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Selector string `cli:"name=s aliases=selector desc='selector: value, element, type, depth, map, json, yaml, toml'"`

	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

// readSource reads a document from a file path, or stdin for "-".
func readSource(file string) (string, error) {
	if file == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("could not read %q: %w", file, err)
	}
	return string(d), nil
}
