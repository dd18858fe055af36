package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/signadot/lvlx/element"
	"github.com/signadot/lvlx/encode"
	"github.com/signadot/lvlx/query"
	"github.com/signadot/lvlx/split"
	"golang.org/x/sync/errgroup"
)

// Result summarizes a corpus run.
type Result struct {
	Split   split.Stats
	Encoded int
	Records int
}

// Run splits the catalogue into cfg.Out and then encodes the levels it
// stored into cfg.CompactDir(). Levels left in cfg.Out by earlier catalogues
// are reported but not encoded.
func Run(ctx context.Context, cfg *Config, log *slog.Logger) (*Result, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	store, err := split.NewDirStore(cfg.Out)
	if err != nil {
		return nil, err
	}
	rs := &runStore{DirStore: store}
	st, err := Split(cfg, rs, log)
	if err != nil {
		return nil, err
	}
	log.Info("split", "levels", st.Levels, "aliases", st.Aliases, "out", cfg.Out)
	if stale, err := rs.stale(); err != nil {
		return nil, err
	} else if len(stale) != 0 {
		log.Info("levels not in catalogue", "count", len(stale), "levels", stale)
	}
	res := &Result{Split: st}
	res.Encoded, res.Records, err = EncodeStore(ctx, cfg, store, rs.names, log)
	if err != nil {
		return res, err
	}
	log.Info("encoded", "levels", res.Encoded, "records", res.Records, "out", cfg.CompactDir())
	return res, nil
}

// Split runs the splitter over the configured catalogue and lookup.
func Split(cfg *Config, store split.Store, log *slog.Logger) (split.Stats, error) {
	aliases := &split.Aliases{}
	if cfg.Worlds != "" {
		d, err := os.ReadFile(cfg.Worlds)
		if err != nil {
			return split.Stats{}, fmt.Errorf("error reading worlds: %w", err)
		}
		aliases = split.ParseAliases(string(d))
	}
	f, err := os.Open(cfg.Levels)
	if err != nil {
		return split.Stats{}, fmt.Errorf("error opening levels: %w", err)
	}
	defer f.Close()
	sp := &split.Splitter{Store: store, Aliases: aliases, Log: log}
	return sp.Split(f)
}

// runStore records the names stored during one split, in catalogue order.
type runStore struct {
	*split.DirStore
	names []string
	seen  map[string]bool
}

func (r *runStore) Put(name string, body []byte) error {
	if err := r.DirStore.Put(name, body); err != nil {
		return err
	}
	if r.seen == nil {
		r.seen = map[string]bool{}
	}
	if !r.seen[name] {
		r.seen[name] = true
		r.names = append(r.names, name)
	}
	return nil
}

// stale lists stored levels this split did not write.
func (r *runStore) stale() ([]string, error) {
	all, err := r.Levels()
	if err != nil {
		return nil, err
	}
	var res []string
	for _, name := range all {
		if !r.seen[name] {
			res = append(res, name)
		}
	}
	return res, nil
}

// EncodeStore encodes the named levels of store, cfg.Jobs at a time. Each
// level gets its own session. The first failing level stops the run.
func EncodeStore(ctx context.Context, cfg *Config, store *split.DirStore, names []string, log *slog.Logger) (levels, records int, err error) {
	opts := []encode.EncodeOption{
		encode.EncodeFormat(cfg.Format),
		encode.EncodeComments(cfg.comments()),
	}
	if cfg.Where != "" {
		p, err := query.Compile(cfg.Where)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		opts = append(opts, encode.Where(p))
	}
	outDir := cfg.CompactDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, 0, err
	}
	var nLevels, nRecords atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Jobs, 1))
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dest := filepath.Join(outDir, name+cfg.Format.Suffix())
			n, err := EncodeFile(store.Path(name), dest, opts...)
			if err != nil {
				return fmt.Errorf("error encoding level %q: %w", name, err)
			}
			log.Debug("encoded level", "level", name, "records", n)
			nLevels.Add(1)
			nRecords.Add(int64(n))
			return nil
		})
	}
	err = g.Wait()
	return int(nLevels.Load()), int(nRecords.Load()), err
}

// EncodeFile encodes the level document at src into dest, replacing dest
// only when the whole document encoded.
func EncodeFile(src, dest string, opts ...encode.EncodeOption) (int, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	doc, err := element.Parse(f)
	if err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())
	recs, err := encode.EncodeRecords(doc, tmp, opts...)
	if err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	return len(recs), os.Rename(tmp.Name(), dest)
}
