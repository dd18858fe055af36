package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/lvlx/element"
	"github.com/signadot/lvlx/format"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	comments bool
	format   format.Format
	where    Predicate
	session  *Session

	Color func(ColorAttr, string) string
}

// Encode writes one record per encodable element of doc to w. All records
// are built before anything is written, so a document containing an
// unimplemented element type produces no output.
func Encode(doc *element.Document, w io.Writer, opts ...EncodeOption) error {
	_, err := EncodeRecords(doc, w, opts...)
	return err
}

// EncodeRecords is Encode, also returning the records written.
func EncodeRecords(doc *element.Document, w io.Writer, opts ...EncodeOption) ([]Record, error) {
	es := newEncState(opts...)
	s := es.session
	if s == nil {
		s = NewSession()
	}
	s.where = es.where
	s.comments = es.comments
	recs, err := s.Records(doc)
	if err != nil {
		return nil, err
	}
	return recs, writeRecords(w, recs, es)
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{comments: true}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func writeRecords(w io.Writer, recs []Record, es *EncState) error {
	switch es.format {
	case format.CompactFormat:
		return writeCompact(w, recs, es)
	case format.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nonNil(recs)); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return nil
	case format.YAMLFormat:
		d, err := yaml.Marshal(nonNil(recs))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

func writeCompact(w io.Writer, recs []Record, es *EncState) error {
	var sb strings.Builder
	for i := range recs {
		writeLine(&sb, &recs[i], es.Color)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func nonNil(recs []Record) []Record {
	if recs == nil {
		return []Record{}
	}
	return recs
}

// MustString encodes doc in the compact format and panics on error.
func MustString(doc *element.Document, opts ...EncodeOption) string {
	var sb strings.Builder
	if err := Encode(doc, &sb, opts...); err != nil {
		panic(err)
	}
	return sb.String()
}
