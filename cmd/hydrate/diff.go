package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hydrate-format/go-hydrate"
	"github.com/hydrate-format/go-hydrate/encode"
	"github.com/hydrate-format/go-hydrate/format"
)

// diff compares the normalized renderings of two documents. Because both
// sides are cleaned and re-rendered, documents that differ only in key
// spelling or in source format come out equal.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs exactly two files", cli.ErrUsage)
	}
	a, err := normalized(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := normalized(cfg, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.colorized(cc.Out) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			fmt.Fprintf(cc.Out, "%s %s\n", prefix, ln)
		}
	}
	return nil
}

func normalized(cfg *DiffConfig, file string) (string, error) {
	text, err := readSource(file)
	if err != nil {
		return "", err
	}
	root := hydrate.New(text, cfg.rootOpts()...)
	return encode.Encode(root.Value(), format.YAMLFormat)
}
