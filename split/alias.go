package split

import (
	"regexp"
	"strings"
)

// Aliases resolves display names from the world lookup document, a line
// oriented listing such as
//
//	<level id="tutorial-1" name="First Steps" />
type Aliases struct {
	lines []string
}

func ParseAliases(text string) *Aliases {
	if text == "" {
		return &Aliases{}
	}
	return &Aliases{lines: strings.Split(text, "\n")}
}

var nameAttrRe = regexp.MustCompile(`\bname="([^"]*)"`)

// Lookup finds the first line mentioning the quoted level name and returns
// the name attribute on that line.
func (a *Aliases) Lookup(level string) (string, bool) {
	if a == nil || level == "" {
		return "", false
	}
	quoted := `"` + level + `"`
	for _, ln := range a.lines {
		if !strings.Contains(ln, quoted) {
			continue
		}
		m := nameAttrRe.FindStringSubmatch(ln)
		if m == nil || m[1] == "" {
			return "", false
		}
		return m[1], true
	}
	return "", false
}
