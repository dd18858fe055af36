package encode

import (
	"github.com/signadot/lvlx/debug"
	"github.com/signadot/lvlx/element"
)

// Predicate selects which records are emitted. Identities are allocated for
// every element regardless of the outcome.
type Predicate func(el *element.Element, rec *Record) (bool, error)

// Session encodes one document. It owns the identity table of that document
// and must not be reused for another one.
type Session struct {
	ids      *IDs
	where    Predicate
	comments bool
}

func NewSession() *Session {
	return &Session{ids: NewIDs(), comments: true}
}

func (s *Session) IDs() *IDs {
	return s.ids
}

// Records encodes the elements of doc. Useful elements come first, then
// objectives and block shapes, each group in document order. The first
// element with an unimplemented type aborts the whole document.
func (s *Session) Records(doc *element.Document) ([]Record, error) {
	res := make([]Record, 0, len(doc.Elements))
	for _, useful := range []bool{true, false} {
		for _, el := range doc.Elements {
			if el.Useful() != useful {
				continue
			}
			rec, ok, err := s.record(el)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if s.where != nil {
				keep, err := s.where(el, &rec)
				if err != nil {
					return nil, err
				}
				if !keep {
					continue
				}
			}
			res = append(res, rec)
		}
	}
	if debug.IDs() {
		for id, orig := range s.ids.Originals() {
			debug.Logf("id %d <- %q\n", id, orig)
		}
	}
	return res, nil
}

func (s *Session) record(el *element.Element) (Record, bool, error) {
	rec := Record{
		Orig:     el.ID(),
		ID:       s.ids.Resolve(el.ID()),
		Position: el.Position(),
	}
	t, err := el.Type()
	if err != nil {
		return rec, false, err
	}
	rec.Type = t
	fields, ok, err := s.fields(t, el)
	if err != nil || !ok {
		return rec, false, err
	}
	rec.Fields = fields
	if s.comments {
		rec.Raw = el.Raw()
	}
	if debug.Encode() {
		debug.Logf("%s %q -> %d\n", t, rec.Orig, rec.ID)
	}
	return rec, true, nil
}

// fields builds the type specific suffix of a record. ok is false for types
// which are recognized but produce no record.
func (s *Session) fields(t element.Type, el *element.Element) (fields []string, ok bool, err error) {
	group := groupField(el.Group())
	switch t {
	case element.ReceiverType:
		return []string{group, attrOrNone(el, "target")}, true, nil
	case element.TransceiverType:
		return []string{group, attrOrNone(el, "target"), attrOrNone(el, "amount")}, true, nil
	case element.TransmitterType:
		return []string{group, attrOrNone(el, "amount")}, true, nil
	case element.PlacedSignalType:
		return nil, false, nil
	case element.RadialTransmitterType:
		// targetAmount is always sufficient and extraRadius always 0
		return []string{group, attrOrNone(el, "minRadius")}, true, nil
	case element.SignalBlockType:
		return []string{
			group,
			attrOrNone(el, "sx"),
			attrOrNone(el, "sy"),
			attrOrNone(el, "ex"),
			attrOrNone(el, "ey"),
		}, true, nil
	case element.SignalBlockCircleType:
		return []string{group, attrOrNone(el, "radius")}, true, nil
	case element.SwapperTransmitterType:
		// elementGroup and transmitterGroup are always Cable
		return []string{
			groupField(element.ParseGroup(el.AttrOr("swapGroup1", ""))),
			groupField(element.ParseGroup(el.AttrOr("swapGroup2", ""))),
			attrOrNone(el, "target"),
			attrOrNone(el, "amount"),
		}, true, nil
	case element.CellTransmitterType:
		return []string{group}, true, nil
	case element.SignalBlockHexagonType:
		flip := "0"
		if el.AttrOr("flip", "") == "True" {
			flip = "1"
		}
		return []string{group, attrOrNone(el, "radius"), flip}, true, nil
	case element.SignalBoosterType:
		return []string{group}, true, nil
	case element.ObjectiveSignalCountType:
		return []string{attrOrNone(el, "signalTarget")}, true, nil
	case element.ObjectiveTargetValueType:
		target, ok := el.Attr("informationTarget")
		if !ok {
			return []string{none}, true, nil
		}
		return []string{itoa(s.ids.Resolve(target))}, true, nil
	case element.ObjectiveCrossedWiresType:
		return nil, true, nil
	default:
		return nil, false, errUnimplemented(t.String())
	}
}
