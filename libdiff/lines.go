package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs two texts line by line.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Equal reports whether diffs contain no insertion or deletion.
func Equal(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Stats counts deleted and inserted lines.
func Stats(diffs []diffpatch.Diff) (deleted, inserted int) {
	for i := range diffs {
		n := len(splitLines(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			deleted += n
		case diffpatch.DiffInsert:
			inserted += n
		}
	}
	return deleted, inserted
}

// Write prints diffs with a one character prefix per line: '-' for lines
// of from only, '+' for lines of to only and ' ' for common lines. With
// context < 0 every common line is printed, otherwise at most context
// common lines around each change.
func Write(w io.Writer, diffs []diffpatch.Diff, context int, colored bool) error {
	del, ins := fmtFunc(colored, color.FgRed), fmtFunc(colored, color.FgGreen)
	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		lines := splitLines(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, ln := range lines {
				sb.WriteString(del("-"+ln) + "\n")
			}
		case diffpatch.DiffInsert:
			for _, ln := range lines {
				sb.WriteString(ins("+"+ln) + "\n")
			}
		case diffpatch.DiffEqual:
			for _, j := range keep(len(lines), context, i > 0, i < len(diffs)-1) {
				if j < 0 {
					sb.WriteString("...\n")
					continue
				}
				sb.WriteString(" " + lines[j] + "\n")
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// keep returns the indices of common lines to print; -1 marks elided lines.
func keep(n, context int, before, after bool) []int {
	if context < 0 || n <= 2*context {
		res := make([]int, n)
		for i := range res {
			res[i] = i
		}
		return res
	}
	var res []int
	if before {
		for i := 0; i < context; i++ {
			res = append(res, i)
		}
	}
	res = append(res, -1)
	if after {
		for i := n - context; i < n; i++ {
			res = append(res, i)
		}
	}
	return res
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func fmtFunc(colored bool, attr color.Attribute) func(string) string {
	if !colored {
		return func(s string) string { return s }
	}
	c := color.New(attr)
	return func(s string) string { return c.Sprint(s) }
}
