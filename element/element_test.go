package element

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const levelDoc = `<!-- tutorial-1 -->
<level version="3">
  <elements>
    <element id="a" type="Transmitter" position="3,4,0" elementGroup="Wave" amount="2"/>
    <element id="b" type="SignalBlock" position="1,1" blockGroup="Cable" sx="0" sy="0" ex="1" ey="1"/>
    <group>
      <element id="c" type="Receiver" position="5,5,0" target="a"/>
    </group>
  </elements>
</level>`

func TestParse(t *testing.T) {
	doc, err := ParseBytes([]byte(levelDoc))
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, el := range doc.Elements {
		ids = append(ids, el.ID())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids); diff != "" {
		t.Errorf("element order (-want +got):\n%s", diff)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse(strings.NewReader("<level><element></level>"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestParseStrayEndTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ids  []string
	}{
		{"catalogue root", levelDoc + "\n</levels>", []string{"a", "b", "c"}},
		{"two roots", `<level><element id="x" type="Receiver"/></level></levels></catalogue>`, []string{"x"}},
		{"self closing", `<!-- bonus -->` + "\n" + `<level version="3"/>` + "\n</levels>", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			var ids []string
			for _, el := range doc.Elements {
				ids = append(ids, el.ID())
			}
			if diff := cmp.Diff(tt.ids, ids); diff != "" {
				t.Errorf("elements (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDropStrayEnds(t *testing.T) {
	got, ok := dropStrayEnds([]byte("<a><b/></a>\n</root>\n"))
	if !ok || string(got) != "<a><b/></a>\n\n" {
		t.Errorf("dropStrayEnds = %q, %t", got, ok)
	}
	if _, ok := dropStrayEnds([]byte("<a></a>")); ok {
		t.Error("balanced markup reported stray end tags")
	}
}

func TestElementAccessors(t *testing.T) {
	doc, err := ParseBytes([]byte(levelDoc))
	if err != nil {
		t.Fatal(err)
	}
	a, b, c := doc.Elements[0], doc.Elements[1], doc.Elements[2]
	if got := a.Position(); got != "3,4" {
		t.Errorf("a.Position() = %q", got)
	}
	if got := b.Position(); got != "1,1" {
		t.Errorf("b.Position() = %q", got)
	}
	if got := a.Group(); got != WaveGroup {
		t.Errorf("a.Group() = %v", got)
	}
	if got := b.Group(); got != CableGroup {
		t.Errorf("b.Group() = %v", got)
	}
	if got := c.Group(); got != NoGroup {
		t.Errorf("c.Group() = %v", got)
	}
	if !a.Useful() || b.Useful() || !c.Useful() {
		t.Errorf("useful: a=%t b=%t c=%t", a.Useful(), b.Useful(), c.Useful())
	}
	if v, ok := c.Attr("target"); !ok || v != "a" {
		t.Errorf("c.Attr(target) = %q, %t", v, ok)
	}
	if _, ok := c.Attr("amount"); ok {
		t.Error("c has no amount")
	}
	typ, err := c.Type()
	if err != nil || typ != ReceiverType {
		t.Errorf("c.Type() = %v, %v", typ, err)
	}
	raw := a.Raw()
	if !strings.HasPrefix(raw, "<element") || !strings.Contains(raw, `id="a"`) || strings.Contains(raw, "\n") {
		t.Errorf("a.Raw() = %q", raw)
	}
}

func TestTrimPosition(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"3,4,0", "3,4"},
		{"3,4", "3,4"},
		{"3,0", "3,0"},
		{"3,4,1", "3,4,1"},
		{"-1.5,2.25,0", "-1.5,2.25"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TrimPosition(tt.in); got != tt.want {
			t.Errorf("TrimPosition(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTypes(t *testing.T) {
	types := Types()
	if len(types) != 14 {
		t.Fatalf("got %d types", len(types))
	}
	for i, typ := range types {
		if int(typ) != i {
			t.Errorf("type %s at %d has value %d", typ, i, int(typ))
		}
		parsed, err := ParseType(typ.String())
		if err != nil || parsed != typ {
			t.Errorf("ParseType(%q) = %v, %v", typ.String(), parsed, err)
		}
	}
	if ReceiverType != 6 || TransmitterType != 13 || CellTransmitterType != 0 {
		t.Error("type enumeration order changed")
	}
	_, err := ParseType("Unknown")
	if !errors.Is(err, ErrUnimplementedType) {
		t.Errorf("ParseType(Unknown) error = %v", err)
	}
}

func TestTypeMarshalText(t *testing.T) {
	d, err := SignalBoosterType.MarshalText()
	if err != nil || string(d) != "SignalBooster" {
		t.Errorf("MarshalText = %q, %v", d, err)
	}
	for _, typ := range []Type{UnknownType, Type(-7), Type(len(Types())), Type(99)} {
		if _, err := typ.MarshalText(); !errors.Is(err, ErrUnimplementedType) {
			t.Errorf("Type(%d).MarshalText() error = %v", int(typ), err)
		}
	}
}

func TestTypeIsUseful(t *testing.T) {
	var useful []string
	for _, typ := range Types() {
		if typ.IsUseful() {
			useful = append(useful, typ.String())
		}
	}
	want := []string{
		"CellTransmitter",
		"PlacedSignal",
		"RadialTransmitter",
		"Receiver",
		"SignalBooster",
		"SwapperTransmitter",
		"Transceiver",
		"Transmitter",
	}
	if diff := cmp.Diff(want, useful); diff != "" {
		t.Errorf("useful types (-want +got):\n%s", diff)
	}
}

func TestParseGroup(t *testing.T) {
	for i, g := range Groups() {
		if int(g) != i || ParseGroup(g.String()) != g {
			t.Errorf("group %d: %v", i, g)
		}
	}
	if ParseGroup("") != NoGroup || ParseGroup("Copper") != NoGroup {
		t.Error("unknown groups must be NoGroup")
	}
}
