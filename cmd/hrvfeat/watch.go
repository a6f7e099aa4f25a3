package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-hrv/dataset"
	"github.com/cwbudde/algo-hrv/internal/cliconfig"
)

// featureSuffix marks output files so the watcher never reprocesses
// its own results.
const featureSuffix = "_features.csv"

const debounceDelay = 200 * time.Millisecond

// runWatch processes recordings dropped into a directory until
// interrupted.
func runWatch(log zerolog.Logger, cfg cliconfig.Config, bcfg dataset.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("received signal, stopping...")
		cancel()
	}()

	return newWatchRunner(log, cfg, bcfg).run(ctx)
}

// watchRunner turns each recording in a watched directory into its
// own feature matrix file.
type watchRunner struct {
	log     zerolog.Logger
	cfg     cliconfig.Config
	builder *dataset.Builder

	mu       sync.Mutex
	debounce map[string]*time.Timer
}

func newWatchRunner(log zerolog.Logger, cfg cliconfig.Config, bcfg dataset.Config) *watchRunner {
	return &watchRunner{
		log:      log,
		cfg:      cfg,
		builder:  dataset.NewBuilder(bcfg),
		debounce: map[string]*time.Timer{},
	}
}

// run processes recordings already present in the watched directory,
// then handles filesystem events until the context is cancelled.
func (w *watchRunner) run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.cfg.Watch); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.Watch, err)
	}

	w.log.Info().Str("dir", w.cfg.Watch).Str("run_id", w.builder.RunID()).Msg("watching for recordings")

	if err := w.processExisting(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.wantsFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watcher error")
		}
	}
}

// wantsFile reports whether a path is an input recording rather than
// one of our own outputs.
func (w *watchRunner) wantsFile(path string) bool {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".csv") {
		return false
	}

	return !strings.HasSuffix(base, featureSuffix)
}

func (w *watchRunner) processExisting() error {
	entries, err := os.ReadDir(w.cfg.Watch)
	if err != nil {
		return fmt.Errorf("read %s: %w", w.cfg.Watch, err)
	}

	for _, e := range entries {
		if e.IsDir() || !w.wantsFile(e.Name()) {
			continue
		}

		w.process(filepath.Join(w.cfg.Watch, e.Name()))
	}

	return nil
}

// schedule debounces rapid write events so a recording is processed
// once after its writer settles.
func (w *watchRunner) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.debounce[path]; ok {
		t.Stop()
	}

	w.debounce[path] = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		delete(w.debounce, path)
		w.mu.Unlock()

		w.process(path)
	})
}

func (w *watchRunner) process(path string) {
	series, err := dataset.ReadRRFile(path)
	if err != nil {
		w.log.Warn().Err(err).Str("file", path).Msg("skipping unreadable recording")
		return
	}

	subject := dataset.Subject{
		ID:     subjectID(path),
		Age:    w.cfg.Age,
		Gender: w.cfg.Gender,
		RR:     series,
	}

	rows, err := w.builder.Build([]dataset.Subject{subject})
	if err != nil {
		w.log.Warn().Err(err).Str("file", path).Msg("skipping recording")
		return
	}

	if len(rows) == 0 {
		w.log.Warn().Str("file", path).Msg("no complete windows, skipping")
		return
	}

	out := filepath.Join(w.cfg.OutDir, subject.ID+featureSuffix)
	if err := dataset.WriteMatrixFile(out, rows); err != nil {
		w.log.Error().Err(err).Str("file", out).Msg("write failed")
		return
	}

	w.log.Info().
		Str("file", path).
		Int("rows", len(rows)).
		Str("output", out).
		Msg("processed recording")
}
