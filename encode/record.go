package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/lvlx/element"
)

const (
	// HeaderWidth is the column at which type specific fields start.
	HeaderWidth = 30
	// RecordWidth is the column at which the trailing comment starts.
	RecordWidth = 42
)

// Record is one encoded element.
type Record struct {
	ID       int          `json:"id" yaml:"id"`
	Orig     string       `json:"orig" yaml:"orig"`
	Type     element.Type `json:"type" yaml:"type"`
	Position string       `json:"position" yaml:"position"`
	Fields   []string     `json:"fields,omitempty" yaml:"fields,omitempty"`
	Raw      string       `json:"raw,omitempty" yaml:"raw,omitempty"`
}

func (r *Record) header() string {
	return strconv.Itoa(r.ID) + " " + strconv.Itoa(int(r.Type)) + " " + r.Position + " "
}

// Line renders the record in the compact format without colors.
func (r *Record) Line() string {
	var sb strings.Builder
	writeLine(&sb, r, nil)
	return sb.String()
}

func (r *Record) String() string {
	return r.Line()
}

type colorFunc func(ColorAttr, string) string

func writeLine(sb *strings.Builder, r *Record, color colorFunc) {
	if color == nil {
		color = func(_ ColorAttr, s string) string { return s }
	}
	head := r.header()
	sb.WriteString(color(IDColor, strconv.Itoa(r.ID)))
	sb.WriteByte(' ')
	sb.WriteString(color(TypeColor, strconv.Itoa(int(r.Type))))
	sb.WriteByte(' ')
	sb.WriteString(color(PositionColor, r.Position))
	sb.WriteByte(' ')
	sb.WriteString(pad(len(head), HeaderWidth))
	n := max(len(head), HeaderWidth)
	if len(r.Fields) != 0 {
		fields := strings.Join(r.Fields, " ")
		sb.WriteString(color(FieldColor, fields))
		n += len(fields)
	}
	if r.Raw == "" {
		return
	}
	sb.WriteString(pad(n, RecordWidth))
	sb.WriteString("  ")
	sb.WriteString(color(CommentColor, "# "+r.Raw))
}

func pad(n, width int) string {
	if n >= width {
		return ""
	}
	return strings.Repeat(" ", width-n)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func attrOrNone(el *element.Element, name string) string {
	return el.AttrOr(name, none)
}

const none = "-1"

func groupField(g element.Group) string {
	return itoa(int(g))
}

func errUnimplemented(t string) error {
	return fmt.Errorf("%w: %s", element.ErrUnimplementedType, t)
}
