package schedule

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kilianp07/timegrid/core/logger"
)

// DefaultDebounce absorbs the burst of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// Handler receives each successfully decoded revision of the watched file.
type Handler func(*Schedule)

// Watcher reloads a schedule file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	log      logger.Logger
	handler  Handler

	mu       sync.Mutex
	timer    *time.Timer
	lastHash [sha256.Size]byte
	loaded   bool
}

// NewWatcher returns a watcher for path. A non-positive debounce uses
// DefaultDebounce.
func NewWatcher(path string, debounce time.Duration, log logger.Logger, h Handler) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: path, debounce: debounce, log: log, handler: h}
}

// Watch delivers the current file content, then every changed revision,
// until ctx is canceled. Parse failures are logged and skipped so the last
// good revision stays in effect. The parent directory is watched so editors
// that replace the file on save are followed.
func (w *Watcher) Watch(ctx context.Context) error {
	if _, err := FormatFromPath(w.path); err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("schedule watcher: %w", err)
	}
	defer fw.Close()
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.stopTimer()

	w.reload()
	file := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.schedule()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnf("schedule watch error on %s: %v", w.path, err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.log.Debugf("change detected on %s; scheduling reload", w.path)
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.log.Warnf("read schedule %s: %v", w.path, err)
		return
	}
	sum := sha256.Sum256(data)
	w.mu.Lock()
	unchanged := w.loaded && sum == w.lastHash
	w.mu.Unlock()
	if unchanged {
		w.log.Debugf("schedule %s unchanged; skipping", w.path)
		return
	}
	s, err := parse(w.path, data)
	if err != nil {
		w.log.Warnf("schedule %s rejected: %v", w.path, err)
		return
	}
	w.mu.Lock()
	w.lastHash = sum
	w.loaded = true
	w.mu.Unlock()
	w.handler(s)
}
