package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/signadot/lvlx/element"

	"github.com/scott-cotton/cli"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: types takes no arguments", cli.ErrUsage)
	}
	w := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tINDEX\tPASS")
	for _, t := range element.Types() {
		pass := 2
		if t.IsUseful() {
			pass = 1
		}
		fmt.Fprintf(w, "%s\t%d\t%d\n", t, int(t), pass)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "GROUP\tINDEX")
	for _, g := range element.Groups() {
		fmt.Fprintf(w, "%s\t%d\n", g, int(g))
	}
	fmt.Fprintf(w, "(none)\t%d\n", int(element.NoGroup))
	return w.Flush()
}
