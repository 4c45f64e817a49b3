// Package snapshotwkr watches the local dataset files and records when the batch
// process last rewrote each of them.
package snapshotwkr

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
	"github.com/msb-dashboard/backend/internal/constant"
	"github.com/msb-dashboard/backend/internal/pkg/observability"
	"github.com/msb-dashboard/backend/internal/repo"
)

type WorkerDeps struct {
	fx.In

	SnapshotRepo repo.Snapshot
}

type Worker struct {
	watcher *fsnotify.Watcher

	// files maps the cleaned absolute path of every watched dataset file to its kind
	files map[string]constant.DatasetKind

	wg sync.WaitGroup
}

func Start(conf *appconfig.Config, deps WorkerDeps, lc fx.Lifecycle) error {
	if !conf.WatcherEnabled || conf.StorageBackend != appconfig.StorageBackendLocal {
		log.Info().
			Str("evt.name", "worker.snapshot.disabled").
			Str("backend", string(conf.StorageBackend)).
			Msg("snapshot watcher is disabled")
		return nil
	}

	files := make(map[string]constant.DatasetKind)
	for kind, name := range conf.DatasetFiles() {
		files[deps.SnapshotRepo.Locate(name)] = kind
	}

	w, err := New(files)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			w.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Close()
		},
	})
	return nil
}

// New watches the parent directories of files. Directories that do not exist yet
// are skipped with a warning.
func New(files map[string]constant.DatasetKind) (*Worker, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create snapshot watcher")
	}

	w := &Worker{
		watcher: watcher,
		files:   make(map[string]constant.DatasetKind, len(files)),
	}
	for p, kind := range files {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		w.files[filepath.Clean(abs)] = kind
	}

	dirs := lo.Uniq(lo.Map(lo.Keys(w.files), func(p string, _ int) string { return filepath.Dir(p) }))
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			log.Warn().
				Err(err).
				Str("evt.name", "worker.snapshot.skip").
				Str("dir", dir).
				Msg("cannot watch snapshot directory")
		}
	}

	return w, nil
}

// Run records the current modification times and then follows file events until Close.
func (w *Worker) Run() {
	for p, kind := range w.files {
		w.observe(p, kind)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case evt, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.handle(evt)
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Error().
					Err(err).
					Str("evt.name", "worker.snapshot.error").
					Msg("snapshot watcher error")
			}
		}
	}()
}

func (w *Worker) Close() error {
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Worker) handle(evt fsnotify.Event) {
	p := filepath.Clean(evt.Name)
	kind, ok := w.files[p]
	if !ok {
		return
	}

	switch {
	case evt.Has(fsnotify.Create), evt.Has(fsnotify.Write):
		if w.observe(p, kind) {
			log.Info().
				Str("evt.name", "worker.snapshot.changed").
				Str("kind", string(kind)).
				Str("file", p).
				Str("op", evt.Op.String()).
				Msg("snapshot file changed")
		}
	case evt.Has(fsnotify.Remove), evt.Has(fsnotify.Rename):
		log.Warn().
			Str("evt.name", "worker.snapshot.removed").
			Str("kind", string(kind)).
			Str("file", p).
			Msg("snapshot file removed")
	}
}

func (w *Worker) observe(p string, kind constant.DatasetKind) bool {
	fi, err := os.Stat(p)
	if err != nil {
		return false
	}
	observability.SnapshotLastModified.WithLabelValues(string(kind)).Set(float64(fi.ModTime().Unix()))
	return true
}
