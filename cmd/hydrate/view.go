package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/hydrate-format/go-hydrate"
	"github.com/hydrate-format/go-hydrate/encode"
	"github.com/hydrate-format/go-hydrate/format"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			fmt.Fprintln(cc.Out, "---")
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	text, err := readSource(file)
	if err != nil {
		return err
	}
	root := hydrate.New(text, cfg.rootOpts()...)
	rendered, err := encode.Encode(root.Value(), cfg.outFormat())
	if err != nil {
		return err
	}
	if cfg.colorized(cc.Out) {
		rendered = colorizeKeys(rendered, cfg.outFormat())
	}
	fmt.Fprintln(cc.Out, rendered)
	return nil
}

var keyColor = color.New(color.FgCyan).SprintFunc()

// colorizeKeys highlights the key part of each line. JSON output keeps
// its keys quoted, so only yaml and toml lines are touched.
func colorizeKeys(rendered string, f format.Format) string {
	sep := ": "
	switch f {
	case format.TOMLFormat:
		sep = " = "
	case format.JSONFormat:
		return rendered
	}
	lines := strings.Split(rendered, "\n")
	for i, ln := range lines {
		key, rest, found := strings.Cut(ln, sep)
		if !found || strings.TrimSpace(key) == "" {
			continue
		}
		lines[i] = keyColor(key) + sep + rest
	}
	return strings.Join(lines, "\n")
}
