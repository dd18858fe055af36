package split

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

var (
	levelStart = []byte("<level ver")
	levelEnd   = []byte("/level>")
)

// nameWindow is how many bytes before a level are searched for its name.
const nameWindow = 64

// Extract scans a game data blob for level documents and writes them to w as
// a catalogue: each level on its own line, preceded by a marker naming it.
// A level runs from "<level ver" to the next "/level>". Its name is the run
// of name characters recorded shortly before it in the blob's entry header,
// or level-<n> when there is none. It returns the number of levels written.
func Extract(r io.Reader, w io.Writer) (int, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("error reading blob: %w", err)
	}
	bw := bufio.NewWriter(w)
	n := 0
	off := 0
	for {
		i := bytes.Index(d[off:], levelStart)
		if i < 0 {
			break
		}
		start := off + i
		j := bytes.Index(d[start+len(levelStart):], levelEnd)
		if j < 0 {
			break
		}
		end := start + len(levelStart) + j + len(levelEnd)
		name := ApproxName(d[max(0, start-nameWindow):start])
		if name == "" {
			name = fmt.Sprintf("level-%d", n)
		}
		if _, err := fmt.Fprintf(bw, "<!-- %s -->\n%s\n", name, d[start:end]); err != nil {
			return n, err
		}
		n++
		off = end
	}
	return n, bw.Flush()
}

// ApproxName recovers a level name from the header bytes preceding a level.
// Entry headers end with the name followed by five bytes, so the ninth byte
// from the end falls inside any name of four characters or more.
func ApproxName(header []byte) string {
	i := len(header) - 9
	if i < 0 {
		return ""
	}
	start := i
	if isNameByte(header[i]) {
		for start > 0 && isNameByte(header[start-1]) {
			start--
		}
	} else {
		start++
	}
	end := start
	for end < len(header) && isNameByte(header[end]) {
		end++
	}
	return string(header[start:end])
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_':
		return true
	}
	return false
}
