package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reloads a tuning file whenever it changes on disk.
// Parsed results are delivered on Updates; the receiver applies them
// between ticks.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewTuningWatcher watches the directory holding path, since editors often
// replace files instead of writing them in place.
func NewTuningWatcher(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Updates: make(chan Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

// settleDelay lets an editor finish writing before the file is read.
const settleDelay = 100 * time.Millisecond

func (tw *TuningWatcher) run() {
	var settle *time.Timer
	var settled <-chan time.Time
	defer func() {
		if settle != nil {
			settle.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if settle == nil {
				settle = time.NewTimer(settleDelay)
			} else {
				settle.Reset(settleDelay)
			}
			settled = settle.C
		case <-settled:
			settled = nil
			tw.reload()
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.sendErr(err)
		case <-tw.closeCh:
			return
		}
	}
}

// reload parses against the defaults captured at startup so a removed key
// falls back instead of sticking.
func (tw *TuningWatcher) reload() {
	data, err := os.ReadFile(tw.path)
	if err != nil {
		tw.sendErr(fmt.Errorf("config: reload tuning %s: %w", tw.path, err))
		return
	}
	t, err := ParseTuning(data, defaultTuning)
	if err != nil {
		tw.sendErr(err)
		return
	}
	select {
	case tw.Updates <- t:
	default:
		// Drop the stale pending update in favour of the newest one.
		select {
		case <-tw.Updates:
		default:
		}
		tw.Updates <- t
	}
}

func (tw *TuningWatcher) sendErr(err error) {
	select {
	case tw.Errors <- err:
	default:
	}
}
