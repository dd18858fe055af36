package split

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const catalogue = `<?xml version="1.0"?>
<levels>
<!-- tutorial-1 -->
<level version="3">
  <element id="1" type="Transmitter" position="0,0,0"/>
</level>
<!-- tutorial-2 -->
<level version="3">
</level>
<!-- bonus -->
<level version="3"/>
</levels>`

const worlds = `<worlds>
  <world name="Intro">
    <level id="tutorial-1" name="First Steps"/>
    <level id="tutorial-2" name="Second Steps"/>
    <level id="tutorial-3" name="Third Steps"/>
  </world>
</worlds>`

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		kind LineKind
		name string
	}{
		{"<!-- tutorial-1 -->", BoundaryLine, "tutorial-1"},
		{"  <!-- level two -->  ", BoundaryLine, "level two"},
		{"<!--x-->", BoundaryLine, "x"},
		{"<!--  -->", ContentLine, ""},
		{"<!-- a --> <!-- b -->", ContentLine, ""},
		{"<!-- a--b -->", ContentLine, ""},
		{"<!-- tail- -->", BoundaryLine, "tail-"},
		{`<level name="a"> <!-- note -->`, ContentLine, ""},
		{"<level>", ContentLine, ""},
		{"", ContentLine, ""},
	}
	for _, tt := range tests {
		got := Classify(tt.in)
		if got.Kind != tt.kind || got.Name != tt.name || got.Text != tt.in {
			t.Errorf("Classify(%q) = %+v", tt.in, got)
		}
	}
}

func TestAliases(t *testing.T) {
	a := ParseAliases(worlds)
	tests := []struct {
		level, alias string
		ok           bool
	}{
		{"tutorial-1", "First Steps", true},
		{"tutorial-2", "Second Steps", true},
		{"tutorial", "", false},
		{"bonus", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		alias, ok := a.Lookup(tt.level)
		if alias != tt.alias || ok != tt.ok {
			t.Errorf("Lookup(%q) = %q, %t", tt.level, alias, ok)
		}
	}
	var none *Aliases
	if _, ok := none.Lookup("tutorial-1"); ok {
		t.Error("nil aliases resolved a name")
	}
	if _, ok := ParseAliases(`<level id="x" title="no name"/>`).Lookup("x"); ok {
		t.Error("line without name attribute resolved")
	}
}

func TestSplit(t *testing.T) {
	store := NewMemStore()
	s := &Splitter{Store: store, Aliases: ParseAliases(worlds)}
	st, err := s.Split(strings.NewReader(catalogue))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"tutorial-1": "<!-- tutorial-1 -->\n<level version=\"3\">\n  <element id=\"1\" type=\"Transmitter\" position=\"0,0,0\"/>\n</level>",
		"tutorial-2": "<!-- tutorial-2 -->\n<level version=\"3\">\n</level>",
		"bonus":      "<!-- bonus -->\n<level version=\"3\"/>\n</levels>",
	}
	got := map[string]string{}
	for k, v := range store.Bodies {
		got[k] = string(v)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bodies (-want +got):\n%s", diff)
	}
	wantAliases := map[string]string{"First Steps": "tutorial-1", "Second Steps": "tutorial-2"}
	if diff := cmp.Diff(wantAliases, store.Aliases); diff != "" {
		t.Errorf("aliases (-want +got):\n%s", diff)
	}
	wantStats := Stats{Levels: 3, Aliases: 2, Lines: 12, Skipped: 2}
	if diff := cmp.Diff(wantStats, st); diff != "" {
		t.Errorf("stats (-want +got):\n%s", diff)
	}
}

func TestSplitNoMarkers(t *testing.T) {
	store := NewMemStore()
	s := &Splitter{Store: store}
	st, err := s.Split(strings.NewReader("<levels>\n</levels>\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(store.Bodies) != 0 || st.Levels != 0 || st.Skipped != 2 {
		t.Errorf("stored %d levels, stats %+v", len(store.Bodies), st)
	}
}

func TestSplitDuplicateAlias(t *testing.T) {
	store := NewMemStore()
	s := &Splitter{
		Store:   store,
		Aliases: ParseAliases(`<a id="x" name="Same"/>` + "\n" + `<a id="y" name="Same"/>`),
	}
	st, err := s.Split(strings.NewReader("<!-- x -->\n<level/>\n<!-- y -->\n<level/>"))
	if err != nil {
		t.Fatal(err)
	}
	if st.Levels != 2 || st.Aliases != 1 || store.Aliases["Same"] != "x" {
		t.Errorf("stats %+v aliases %v", st, store.Aliases)
	}
}

func TestSplitBadName(t *testing.T) {
	s := &Splitter{Store: NewMemStore()}
	_, err := s.Split(strings.NewReader("<!-- ../escape -->\n<level/>"))
	if !errors.Is(err, ErrBadName) {
		t.Fatalf("expected ErrBadName, got %v", err)
	}
}

func TestDirStore(t *testing.T) {
	root := filepath.Join(t.TempDir(), "levels")
	store, err := NewDirStore(root)
	if err != nil {
		t.Fatal(err)
	}
	s := &Splitter{Store: store, Aliases: ParseAliases(worlds)}
	if _, err := s.Split(strings.NewReader(catalogue)); err != nil {
		t.Fatal(err)
	}
	levels, err := store.Levels()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"bonus", "tutorial-1", "tutorial-2"}, levels); diff != "" {
		t.Errorf("levels (-want +got):\n%s", diff)
	}
	d, err := os.ReadFile(store.Path("tutorial-2"))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "<!-- tutorial-2 -->\n<level version=\"3\">\n</level>" {
		t.Errorf("tutorial-2 = %q", d)
	}
	aliased, err := os.ReadFile(filepath.Join(root, "First Steps.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(aliased), "<!-- tutorial-1 -->") {
		t.Errorf("alias content %q", aliased)
	}
	target, err := os.Readlink(filepath.Join(root, "First Steps.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if target != filepath.Join(DataDir, "tutorial-1.xml") {
		t.Errorf("link target %q", target)
	}

	// a second run overwrites levels and keeps the existing aliases
	st, err := s.Split(strings.NewReader(catalogue))
	if err != nil {
		t.Fatal(err)
	}
	if st.Levels != 3 || st.Aliases != 0 {
		t.Errorf("rerun stats %+v", st)
	}
	if err := store.Link("bonus", "First Steps"); !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected ErrExist, got %v", err)
	}
}

func entry(name, level string) string {
	return "\x0f\x00\x00\x00" + name + "\x00\x6b\x06\x00\x00" + level
}

func TestExtract(t *testing.T) {
	blob := "\x89PNG junk" +
		entry("tutorial-1", `<level version="3"><element id="1" type="Transmitter" position="0,0,0"/></level>`) +
		"\x00\x01\x0e\x00\x00\x00worlds\x00\x00\x77\x4b\x00\x00<levels><world/></levels>" +
		entry("bonus_2", `<level version="3">`+"\n"+`</level>`) +
		`<level version="1"></level>` +
		`<level version="9">never closed`
	var out strings.Builder
	n, err := Extract(strings.NewReader(blob), &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "<!-- tutorial-1 -->\n" +
		`<level version="3"><element id="1" type="Transmitter" position="0,0,0"/></level>` + "\n" +
		"<!-- bonus_2 -->\n" +
		`<level version="3">` + "\n</level>\n" +
		"<!-- level-2 -->\n" +
		`<level version="1"></level>` + "\n"
	if n != 3 {
		t.Errorf("extracted %d levels", n)
	}
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("catalogue (-want +got):\n%s", diff)
	}

	store := NewMemStore()
	st, err := (&Splitter{Store: store}).Split(strings.NewReader(out.String()))
	if err != nil {
		t.Fatal(err)
	}
	if st.Levels != 3 || len(store.Bodies["bonus_2"]) == 0 {
		t.Errorf("split of extracted catalogue: %+v", st)
	}
}

func TestApproxName(t *testing.T) {
	tests := []struct {
		header, want string
	}{
		{"\x0f\x00\x00\x00first-steps\x00\x6b\x06\x00\x00", "first-steps"},
		{"\x0e\x00\x00\x00abcd\x00\x00\x77\x4b\x00\x00", "abcd"},
		{"\x00\x00\x00\x00\x00\x00\x00\x00\x00", ""},
		{"short", ""},
	}
	for _, tt := range tests {
		if got := ApproxName([]byte(tt.header)); got != tt.want {
			t.Errorf("ApproxName(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
