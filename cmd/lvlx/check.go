package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/lvlx/element"
	"github.com/signadot/lvlx/encode"
	"github.com/signadot/lvlx/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires a level document and its encoding", cli.ErrUsage)
	}
	d, err := readArg(cc, args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	doc, err := element.ParseBytes(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	want, err := readArg(cc, args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	got := bytes.NewBuffer(nil)
	err = encode.Encode(doc, got,
		encode.EncodeFormat(cfg.format()),
		encode.EncodeComments(!cfg.NoComments))
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", args[0], err)
	}
	diffs := libdiff.Lines(string(want), got.String())
	if libdiff.Equal(diffs) {
		return nil
	}
	if err := libdiff.Write(cc.Out, diffs, cfg.Context, cfg.colored(cc.Out)); err != nil {
		return err
	}
	del, ins := libdiff.Stats(diffs)
	theLog.Info("encodings differ", "level", args[0], "deleted", del, "inserted", ins)
	return cli.ExitCodeErr(1)
}
