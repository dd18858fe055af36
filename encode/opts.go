package encode

import "github.com/signadot/lvlx/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeComments controls the trailing raw element comment of compact
// records and the raw field of structured ones. It defaults to true.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// Where only emits records for which p holds.
func Where(p Predicate) EncodeOption {
	return func(es *EncState) { es.where = p }
}

// WithSession encodes using s, so the caller can inspect its identity table
// afterwards.
func WithSession(s *Session) EncodeOption {
	return func(es *EncState) { es.session = s }
}
