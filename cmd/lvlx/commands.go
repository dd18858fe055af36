package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: compact/c, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "lvlx").
		WithSynopsis("lvlx [opts] command [opts]").
		WithDescription("lvlx splits level catalogues and encodes levels to compact records.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lvlxMain(cfg, cc, args)
		}).
		WithSubs(
			ExtractCommand(cfg),
			SplitCommand(cfg),
			EncodeCommand(cfg),
			RunCommand(cfg),
			CheckCommand(cfg),
			TypesCommand(cfg))
}

func ExtractCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Extract, "extract").
		WithAliases("x").
		WithSynopsis("extract blob").
		WithDescription(extractDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return extract(cfg, cc, args)
		})
}

const extractDescription = `extract writes the level catalogue embedded in a game data blob.

Every <level version=...>...</level> span is written on its own line after
a marker carrying the name found in the entry header before it, ready for
'lvlx split'.`

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg, Dir: "levels"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("split [-worlds worlds.xml] [-d dir] [-n] levels.xml").
		WithDescription(splitDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return splitLevels(cfg, cc, args)
		})
}

const splitDescription = `split cuts a level catalogue into one document per level.

Levels are introduced by marker lines of the form

  <!-- level-name -->

and stored as <dir>/data/<level-name>.xml. When a world lookup document is
given, the first line quoting the level name provides a name="..." alias,
linked as <dir>/<alias>.xml. Aliases which cannot be linked are skipped.`

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithOpts(opts...).
		WithSynopsis("encode [-nc] [-where expr] [-ids] [files]").
		WithDescription(encodeDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeLevels(cfg, cc, args)
		})
}

const encodeDescription = `encode writes one fixed column record per level element.

  {id} {type} {position}        {fields...}  # {source element}

Identities are renumbered from 0 per document in first-seen order.
Transmitters, receivers, boosters, swappers and cells come first, then
objectives and blocks. An element type outside the type enumeration
aborts the document. See 'lvlx types' for the enumerations.

-where takes an expr expression over id, orig, kind, kindIndex, group,
position, useful, fields, Attr(name) and HasAttr(name).`

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Run, "run").
		WithAliases("r").
		WithOpts(opts...).
		WithSynopsis("run [-config lvlx.yaml] [-j jobs]").
		WithDescription("split the catalogue and encode every level of the corpus").
		WithRun(func(cc *cli.Context, args []string) error {
			return runCorpus(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check [-nc] [-U n] level.xml encoded").
		WithDescription("re-encode a level and compare it to a stored encoding").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithAliases("t").
		WithSynopsis("types").
		WithDescription("list the type and group enumerations").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}
