// Package watch converts SVG files as they appear or change in a
// directory, after an initial full batch pass.
package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/farisv/iconmill/internal/batch"
)

// editors fire bursts of write events per save; collapse them per path
const debounceDelay = 200 * time.Millisecond

// Watcher converts single files on filesystem events.
type Watcher struct {
	Driver *batch.Driver

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// Run performs one full batch over dir, then blocks converting files as
// create/write events arrive, until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, dir string) error {
	if _, err := w.Driver.Run(ctx, dir); err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		return err
	}
	w.pending = map[string]*time.Timer{}

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !w.wantsFile(event.Name) {
				continue
			}
			w.schedule(ctx, event.Name, dir)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Println("watcher error:", err)
		}
	}
}

// wantsFile filters events down to source files, skipping the _temp copies
// the fallback path writes so degraded runs don't loop on their own output.
func (w *Watcher) wantsFile(path string) bool {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, w.Driver.Cfg.SourceExt) {
		return false
	}
	base := strings.TrimSuffix(name, w.Driver.Cfg.SourceExt)
	return !strings.HasSuffix(base, "_temp")
}

func (w *Watcher) schedule(ctx context.Context, path, dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[path]; ok {
		t.Reset(debounceDelay)
		return
	}
	w.pending[path] = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		w.convertOne(ctx, path, dir)
	})
}

func (w *Watcher) convertOne(ctx context.Context, path, dir string) {
	conv := &batch.Converter{Cfg: w.Driver.Cfg, Renderer: w.Driver.Renderer}
	fmt.Printf("Converting %s\n", filepath.Base(path))
	res, err := conv.ConvertFile(ctx, path, dir)
	if err != nil {
		log.Printf("Skipping %s: %v", filepath.Base(path), err)
		return
	}
	if n := res.Successes(); n < len(res.Variants) {
		log.Printf("%s: %d of %d variants converted", filepath.Base(path), n, len(res.Variants))
	}
}
