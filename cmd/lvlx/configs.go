package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/lvlx/encode"
	"github.com/signadot/lvlx/format"
	"github.com/signadot/lvlx/query"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	V     bool `cli:"name=v desc='log debug messages'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.CompactFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether to color output to w: -color forces it either way,
// otherwise colors follow whether w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if !cfg.format().IsCompact() {
		return false
	}
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ExtractConfig struct {
	*MainConfig

	Extract *cli.Command
}

type SplitConfig struct {
	*MainConfig
	Worlds string `cli:"name=worlds desc='world lookup document providing level aliases'"`
	Dir    string `cli:"name=d desc='directory receiving the levels'"`
	DryRun bool   `cli:"name=n desc='list levels and aliases without writing them'"`

	Split *cli.Command
}

type EncodeConfig struct {
	*MainConfig
	NoComments bool   `cli:"name=nc desc='omit the source element comments'"`
	Where      string `cli:"name=where desc='only emit elements matching an expr expression'"`
	IDs        bool   `cli:"name=ids desc='print the identity table of each document'"`

	Encode *cli.Command
}

func (cfg *EncodeConfig) encOpts(w io.Writer) ([]encode.EncodeOption, error) {
	res := append(cfg.MainConfig.encOpts(w), encode.EncodeComments(!cfg.NoComments))
	if cfg.Where == "" {
		return res, nil
	}
	p, err := query.Compile(cfg.Where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return append(res, encode.Where(p)), nil
}

type RunConfig struct {
	*MainConfig
	Config string `cli:"name=config desc='corpus config file (yaml)'"`
	Jobs   int    `cli:"name=j desc='number of levels encoded concurrently'"`

	Run *cli.Command
}

type CheckConfig struct {
	*MainConfig
	NoComments bool `cli:"name=nc desc='compare without the source element comments'"`
	Context    int  `cli:"name=U desc='lines of context around differences, -1 for all'"`

	Check *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}
