package element

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

const (
	AttrID           = "id"
	AttrType         = "type"
	AttrPosition     = "position"
	AttrElementGroup = "elementGroup"
	AttrBlockGroup   = "blockGroup"
)

// Element is one `element` node of a level document.
type Element struct {
	node *etree.Element
}

// New wraps a markup node. It is mostly useful to tests and callers building
// documents by hand.
func New(node *etree.Element) *Element {
	return &Element{node: node}
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	a := e.node.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// AttrOr returns the attribute value or dflt when it is absent.
func (e *Element) AttrOr(name, dflt string) string {
	return e.node.SelectAttrValue(name, dflt)
}

// Attrs returns all attributes keyed by name.
func (e *Element) Attrs() map[string]string {
	res := make(map[string]string, len(e.node.Attr))
	for _, a := range e.node.Attr {
		res[a.FullKey()] = a.Value
	}
	return res
}

// ID is the original, document scoped identity. A missing id reads as "".
func (e *Element) ID() string {
	return e.AttrOr(AttrID, "")
}

func (e *Element) TypeName() string {
	return e.AttrOr(AttrType, "")
}

// Type resolves the type name, failing on names outside the enumeration.
func (e *Element) Type() (Type, error) {
	return ParseType(e.TypeName())
}

// Position returns the position attribute with a trailing zero third
// coordinate removed.
func (e *Element) Position() string {
	return TrimPosition(e.AttrOr(AttrPosition, ""))
}

// TrimPosition drops a zero third coordinate, so "3,4,0" becomes "3,4".
// Two component positions are returned unchanged.
func TrimPosition(pos string) string {
	x, rest, ok := strings.Cut(pos, ",")
	if !ok {
		return pos
	}
	y, z, ok := strings.Cut(rest, ",")
	if !ok || z != "0" {
		return pos
	}
	return x + "," + y
}

// Group resolves elementGroup, falling back to blockGroup.
func (e *Element) Group() Group {
	if g, ok := e.Attr(AttrElementGroup); ok {
		return ParseGroup(g)
	}
	if g, ok := e.Attr(AttrBlockGroup); ok {
		return ParseGroup(g)
	}
	return NoGroup
}

// Useful reports whether the element's type name indicates neither an
// objective nor a block shape. Unknown type names are classified by name too.
func (e *Element) Useful() bool {
	return usefulName(e.TypeName())
}

// Raw renders the element back to markup on a single line.
func (e *Element) Raw() string {
	doc := etree.NewDocument()
	doc.SetRoot(e.node.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return fmt.Sprintf("<%s>", e.node.Tag)
	}
	return strings.TrimSpace(s)
}

func (e *Element) String() string {
	return e.Raw()
}

// Document is a parsed level document.
type Document struct {
	// Elements holds every `element` node in document order.
	Elements []*Element
}

func Parse(r io.Reader) (*Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return ParseBytes(d)
}

// ParseBytes parses a level document. A level cut from a catalogue wrapped in
// a root element carries that root's close tag; end tags closing nothing are
// dropped before a second attempt.
func ParseBytes(d []byte) (*Document, error) {
	doc := etree.NewDocument()
	err := doc.ReadFromBytes(d)
	if err == nil {
		return fromDoc(doc), nil
	}
	if trimmed, ok := dropStrayEnds(d); ok {
		doc = etree.NewDocument()
		if doc.ReadFromBytes(trimmed) == nil {
			return fromDoc(doc), nil
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrParse, err)
}

// dropStrayEnds removes end tags found outside any element. It reports false
// when there are none or the markup cannot be tokenized.
func dropStrayEnds(d []byte) ([]byte, bool) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	var (
		res   []byte
		last  int64
		depth int
	)
	for {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth > 0 {
				depth--
				continue
			}
			res = append(res, d[last:start]...)
			last = dec.InputOffset()
		}
	}
	if last == 0 {
		return nil, false
	}
	return append(res, d[last:]...), true
}

func fromDoc(doc *etree.Document) *Document {
	nodes := doc.FindElements("//element")
	res := &Document{Elements: make([]*Element, len(nodes))}
	for i, n := range nodes {
		res.Elements[i] = New(n)
	}
	return res
}
