package split

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/signadot/lvlx/debug"
)

// MaxLineSize bounds a single catalogue line.
const MaxLineSize = 16 << 20

type Splitter struct {
	Store   Store
	Aliases *Aliases
	Log     *slog.Logger
}

// Stats summarizes a split.
type Stats struct {
	Levels  int
	Aliases int
	Lines   int
	// Skipped counts lines before the first marker, which belong to no level.
	Skipped int
}

// Split partitions the catalogue read from r into levels and stores each of
// them, together with its alias when the lookup knows one.
func (s *Splitter) Split(r io.Reader) (Stats, error) {
	st := Stats{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), MaxLineSize)
	var unit *Unit
	for sc.Scan() {
		st.Lines++
		ln := Classify(sc.Text())
		if ln.Kind == BoundaryLine {
			if err := s.flush(unit, &st); err != nil {
				return st, err
			}
			unit = &Unit{Name: ln.Name}
		}
		if unit == nil {
			st.Skipped++
			continue
		}
		unit.Lines = append(unit.Lines, ln.Text)
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("error reading catalogue: %w", err)
	}
	if err := s.flush(unit, &st); err != nil {
		return st, err
	}
	if st.Skipped != 0 {
		s.log().Debug("lines before first level", "count", st.Skipped)
	}
	return st, nil
}

func (s *Splitter) flush(u *Unit, st *Stats) error {
	if u == nil || u.Name == "" || len(u.Lines) == 0 {
		return nil
	}
	if err := s.Store.Put(u.Name, u.Body()); err != nil {
		return fmt.Errorf("error storing level %q: %w", u.Name, err)
	}
	st.Levels++
	if debug.Split() {
		debug.Logf("level %q: %d lines\n", u.Name, len(u.Lines))
	}
	alias, ok := s.Aliases.Lookup(u.Name)
	if !ok {
		return nil
	}
	if err := s.Store.Link(u.Name, alias); err != nil {
		s.log().Debug("alias skipped", "level", u.Name, "alias", alias, "error", err)
		return nil
	}
	st.Aliases++
	return nil
}

func (s *Splitter) log() *slog.Logger {
	if s.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Log
}
