package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/hydrate-format/go-hydrate"
	"github.com/hydrate-format/go-hydrate/encode"
	"github.com/hydrate-format/go-hydrate/format"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get needs a path", cli.ErrUsage)
	}
	path := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	text, err := readSource(file)
	if err != nil {
		return err
	}
	root := hydrate.New(text, cfg.rootOpts()...)
	n, err := root.At(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	if cfg.Selector != "" {
		out := n.Resolve(cfg.Selector)
		if s, ok := out.(string); ok {
			fmt.Fprintln(cc.Out, s)
			return nil
		}
		rendered, err := encode.Encode(out, format.YAMLFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, rendered)
		return nil
	}
	rendered, err := encode.Encode(n.Value(), cfg.outFormat())
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, rendered)
	return nil
}
