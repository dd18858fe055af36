package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/lvlx/element"
	"github.com/signadot/lvlx/encode"
)

const level = `<level>
  <element id="t" type="Transmitter" position="1,1,0" elementGroup="Wave" amount="2"/>
  <element id="r" type="Receiver" position="2,2,0" elementGroup="Cable" target="1"/>
  <element id="h" type="SignalBlockHexagon" position="3,3,0" blockGroup="Wave" radius="1" flip="True"/>
</level>`

func TestCompile(t *testing.T) {
	doc, err := element.ParseBytes([]byte(level))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		src  string
		want []string
	}{
		{`kind == "Receiver"`, []string{"r"}},
		{`group == "Wave"`, []string{"t", "h"}},
		{`useful`, []string{"t", "r"}},
		{`HasAttr("flip")`, []string{"h"}},
		{`Attr("amount") == "2"`, []string{"t"}},
		{`id >= 1 && kindIndex != 9`, []string{"r"}},
		{`position == "2,2"`, []string{"r"}},
		{`len(fields) == 3`, []string{"h"}},
		{`attrs["target"] == "1"`, []string{"r"}},
		{`"radius" in attrs`, []string{"h"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			recs, err := encodeWhere(doc, p)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, rec := range recs {
				got = append(got, rec.Orig)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("matches (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	for _, src := range []string{`type ==`, `id + 1`, `nosuch == 1`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) succeeded", src)
		}
	}
}

func encodeWhere(doc *element.Document, p encode.Predicate) ([]encode.Record, error) {
	var res []encode.Record
	s := encode.NewSession()
	recs, err := s.Records(doc)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		el := findElement(doc, recs[i].Orig)
		ok, err := p(el, &recs[i])
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, recs[i])
		}
	}
	return res, nil
}

func findElement(doc *element.Document, id string) *element.Element {
	for _, el := range doc.Elements {
		if el.ID() == id {
			return el
		}
	}
	return nil
}
