package split

import (
	"regexp"
	"strings"
)

type LineKind int

const (
	ContentLine LineKind = iota
	BoundaryLine
)

func (k LineKind) String() string {
	switch k {
	case ContentLine:
		return "content"
	case BoundaryLine:
		return "boundary"
	default:
		return "<unknown line kind>"
	}
}

// Line is a classified catalogue line. Name is set for boundaries only.
type Line struct {
	Kind LineKind
	Name string
	Text string
}

// The name may not contain "--", so a line holding two comments is content.
var markerRe = regexp.MustCompile(`^\s*<!--\s*((?:[^-]|-[^-])*?)\s*-->\s*$`)

// Classify reports whether text is a level name marker, a line consisting
// of nothing but a comment holding the level name.
func Classify(text string) Line {
	m := markerRe.FindStringSubmatch(text)
	if m == nil {
		return Line{Kind: ContentLine, Text: text}
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return Line{Kind: ContentLine, Text: text}
	}
	return Line{Kind: BoundaryLine, Name: name, Text: text}
}

// Unit is the body of one level: its marker line and every line up to the
// next marker.
type Unit struct {
	Name  string
	Lines []string
}

// Body joins the lines of u with newlines, without a trailing newline.
func (u *Unit) Body() []byte {
	return []byte(strings.Join(u.Lines, "\n"))
}
