package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/lvlx/split"

	"github.com/scott-cotton/cli"
)

func extract(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extract.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: extract requires one argument, the data blob", cli.ErrUsage)
	}
	blob, err := readArg(cc, args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	n, err := split.Extract(bytes.NewReader(blob), cc.Out)
	if err != nil {
		return err
	}
	theLog.Debug("extract", "levels", n)
	return nil
}
