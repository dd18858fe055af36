package main

import (
	"fmt"

	"github.com/signadot/lvlx/element"
	"github.com/signadot/lvlx/encode"

	"github.com/scott-cotton/cli"
)

func encodeLevels(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	sep := len(args) > 1 && cfg.format().IsCompact()
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		doc, err := element.ParseBytes(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if sep {
			fmt.Fprintf(cc.Out, "## %s\n", arg)
		}
		s := encode.NewSession()
		if err := encode.Encode(doc, cc.Out, append(opts, encode.WithSession(s))...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if cfg.IDs {
			for id, orig := range s.IDs().Originals() {
				fmt.Fprintf(cc.Out, "# %d <- %q\n", id, orig)
			}
		}
	}
	return nil
}
