package split

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var ErrBadName = errors.New("bad level name")

// Store keeps the split levels.
type Store interface {
	// Put stores the body of a level under its canonical name.
	Put(name string, body []byte) error
	// Link makes the level stored as name also reachable as alias.
	Link(name, alias string) error
}

const (
	DataDir = "data"
	Suffix  = ".xml"
)

// DirStore lays levels out as
//
//	<root>/data/<name>.xml
//	<root>/<alias>.xml -> data/<name>.xml
type DirStore struct {
	root  string
	permF os.FileMode
	permD os.FileMode
}

func NewDirStore(root string) (*DirStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("%w: empty store root", os.ErrInvalid)
	}
	d := &DirStore{root: root, permF: 0o644, permD: 0o755}
	if err := os.MkdirAll(filepath.Join(root, DataDir), d.permD); err != nil {
		return nil, err
	}
	return d, nil
}

// Path returns where the level stored as name lives.
func (d *DirStore) Path(name string) string {
	return filepath.Join(d.root, DataDir, name+Suffix)
}

// Put writes the level atomically through a temporary file in the same
// directory.
func (d *DirStore) Put(name string, body []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	dest := d.Path(name)
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+name+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing %s: %w", dest, err)
	}
	if err := tmp.Chmod(d.permF); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, dest)
}

// Link creates a relative symlink, so the store directory can be moved.
// An existing alias is an error.
func (d *DirStore) Link(name, alias string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := checkName(alias); err != nil {
		return err
	}
	target := filepath.Join(DataDir, name+Suffix)
	return os.Symlink(target, filepath.Join(d.root, alias+Suffix))
}

// Levels lists the canonical names of the stored levels, sorted.
func (d *DirStore) Levels() ([]string, error) {
	ents, err := os.ReadDir(filepath.Join(d.root, DataDir))
	if err != nil {
		return nil, err
	}
	var res []string
	for _, ent := range ents {
		n := ent.Name()
		if !ent.Type().IsRegular() || strings.HasPrefix(n, ".") || !strings.HasSuffix(n, Suffix) {
			continue
		}
		res = append(res, strings.TrimSuffix(n, Suffix))
	}
	sort.Strings(res)
	return res, nil
}

func checkName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrBadName, name)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}

// MemStore keeps levels in memory.
type MemStore struct {
	mu      sync.Mutex
	Bodies  map[string][]byte
	Aliases map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{
		Bodies:  map[string][]byte{},
		Aliases: map[string]string{},
	}
}

func (m *MemStore) Put(name string, body []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Bodies[name] = body
	return nil
}

func (m *MemStore) Link(name, alias string) error {
	if err := checkName(alias); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Aliases[alias]; ok {
		return fmt.Errorf("%w: alias %q", fs.ErrExist, alias)
	}
	m.Aliases[alias] = name
	return nil
}
