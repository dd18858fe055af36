// Package query compiles element filters written in the expr language.
//
//	kind == "Receiver" && group == "Wave"
//	useful && Attr("amount") != "-1"
//	id < 10 || HasAttr("flip")
//	attrs["minRadius"] == "2"
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/lvlx/debug"
	"github.com/signadot/lvlx/element"
	"github.com/signadot/lvlx/encode"
)

// Env is what a filter expression sees of one encoded element.
type Env struct {
	ID        int      `expr:"id"`
	Orig      string   `expr:"orig"`
	Type      string   `expr:"kind"`
	TypeIndex int      `expr:"kindIndex"`
	Group     string   `expr:"group"`
	Position  string   `expr:"position"`
	Useful    bool     `expr:"useful"`
	Fields    []string `expr:"fields"`
	// Attrs holds every raw attribute of the element.
	Attrs map[string]string `expr:"attrs"`

	el *element.Element
}

// Attr returns the raw attribute, or "-1" when it is absent.
func (e Env) Attr(name string) string {
	if e.el == nil {
		return "-1"
	}
	return e.el.AttrOr(name, "-1")
}

func (e Env) HasAttr(name string) bool {
	if e.el == nil {
		return false
	}
	_, ok := e.el.Attr(name)
	return ok
}

func NewEnv(el *element.Element, rec *encode.Record) Env {
	return Env{
		ID:        rec.ID,
		Orig:      rec.Orig,
		Type:      rec.Type.String(),
		TypeIndex: int(rec.Type),
		Group:     el.Group().String(),
		Position:  rec.Position,
		Useful:    rec.Type.IsUseful(),
		Fields:    rec.Fields,
		Attrs:     el.Attrs(),
		el:        el,
	}
}

// Compile compiles src into a record predicate.
func Compile(src string) (encode.Predicate, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return predicate(src, prg), nil
}

func predicate(src string, prg *vm.Program) encode.Predicate {
	return func(el *element.Element, rec *encode.Record) (bool, error) {
		res, err := expr.Run(prg, NewEnv(el, rec))
		if err != nil {
			return false, fmt.Errorf("error evaluating %q on %s: %w", src, rec.Orig, err)
		}
		ok, _ := res.(bool)
		if debug.Encode() {
			debug.Logf("where %q on %s: %t\n", src, rec.Orig, ok)
		}
		return ok, nil
	}
}
