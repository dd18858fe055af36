package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/signadot/lvlx/split"

	"github.com/scott-cotton/cli"
)

func splitLevels(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: split requires one argument, the level catalogue", cli.ErrUsage)
	}
	catalogue, err := readArg(cc, args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	aliases := &split.Aliases{}
	if cfg.Worlds != "" {
		d, err := os.ReadFile(cfg.Worlds)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", cfg.Worlds, err)
		}
		aliases = split.ParseAliases(string(d))
	}
	var store split.Store
	mem := split.NewMemStore()
	if cfg.DryRun {
		store = mem
	} else {
		store, err = split.NewDirStore(cfg.Dir)
		if err != nil {
			return err
		}
	}
	s := &split.Splitter{Store: store, Aliases: aliases, Log: theLog}
	st, err := s.Split(bytes.NewReader(catalogue))
	if err != nil {
		return err
	}
	if cfg.DryRun {
		return listMem(cc, mem)
	}
	theLog.Info("split", "levels", st.Levels, "aliases", st.Aliases, "dir", cfg.Dir)
	return nil
}

func listMem(cc *cli.Context, mem *split.MemStore) error {
	byLevel := map[string][]string{}
	for alias, name := range mem.Aliases {
		byLevel[name] = append(byLevel[name], alias)
	}
	names := make([]string, 0, len(mem.Bodies))
	for name := range mem.Bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(cc.Out, "%s\t%d bytes", name, len(mem.Bodies[name])); err != nil {
			return err
		}
		sort.Strings(byLevel[name])
		for _, alias := range byLevel[name] {
			fmt.Fprintf(cc.Out, "\t%q", alias)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
