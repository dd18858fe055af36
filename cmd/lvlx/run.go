package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/signadot/lvlx/corpus"

	"github.com/scott-cotton/cli"
)

func runCorpus(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: run takes no arguments, got %v", cli.ErrUsage, args)
	}
	ccfg := corpus.DefaultConfig()
	if cfg.Config != "" {
		ccfg, err = corpus.LoadConfig(cfg.Config)
		if err != nil {
			return err
		}
	}
	if cfg.Jobs > 0 {
		ccfg.Jobs = cfg.Jobs
	}
	if cfg.OutFormat != nil {
		ccfg.Format = *cfg.OutFormat
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	res, err := corpus.Run(ctx, ccfg, theLog)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%d levels, %d aliases, %d records\n", res.Encoded, res.Split.Aliases, res.Records)
	return err
}
