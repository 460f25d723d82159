package directory

import (
	"context"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"

	"github.com/Jib667/Watchdog/pkg/authority"
	"github.com/Jib667/Watchdog/pkg/errors"
	"github.com/Jib667/Watchdog/pkg/logging"
	"github.com/Jib667/Watchdog/pkg/reconcile"
)

// Store holds the current directory snapshot and swaps it atomically on
// reload. Readers never block; a reload builds the new snapshot off to the
// side and publishes it in one pointer swap.
type Store struct {
	current atomic.Pointer[Directory]
	reload  sync.Mutex

	fsys fs.FS
	auth authority.Authority
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithFS sets the filesystem the datasets are loaded from.
func WithFS(fsys fs.FS) StoreOption {
	return func(s *Store) { s.fsys = fsys }
}

// WithPath sets the directory path the datasets are loaded from.
func WithPath(path string) StoreOption {
	return func(s *Store) { s.fsys = os.DirFS(path) }
}

// WithAuthority sets the curated committee name authority.
func WithAuthority(auth authority.Authority) StoreOption {
	return func(s *Store) { s.auth = auth }
}

// NewStore creates a Store. Call Load to build the first snapshot.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load builds a fresh snapshot from the datasets and publishes it. Reloads
// are serialized; concurrent readers keep the previous snapshot until the
// new one is published.
func (s *Store) Load(ctx context.Context) error {
	s.reload.Lock()
	defer s.reload.Unlock()

	if s.fsys == nil {
		return errors.NewConfigError("directory", "no dataset filesystem configured", nil)
	}

	in := reconcile.LoadInputs(ctx, s.fsys)
	result, err := reconcile.Build(ctx, in, s.auth)
	if err != nil {
		return errors.WrapResource("build", "directory", "", err)
	}

	s.current.Store(New(result))

	logging.FromContext(ctx).Info().
		Int("representatives", result.Stats.Representatives).
		Int("senators", result.Stats.Senators).
		Msg("Directory snapshot published")

	return nil
}

// Directory returns the current snapshot, or ErrNotLoaded before the first
// successful Load.
func (s *Store) Directory() (*Directory, error) {
	d := s.current.Load()
	if d == nil {
		return nil, errors.ErrNotLoaded
	}
	return d, nil
}

// Loaded reports whether a snapshot has been published.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}
