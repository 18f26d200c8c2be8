package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"droidsweep/backend/app/models"
	"droidsweep/backend/app/services"
	"droidsweep/backend/global"
)

// settleDelay gives the producer time to finish writing a manifest before we
// read it; audit tools drop whole files, not streams.
const settleDelay = 200 * time.Millisecond

// Watcher ingests audit manifests dropped into a directory as JSON files.
// Each file becomes one MobileAudit row; applying it remains a separate,
// user-confirmed step.
type Watcher struct {
	dir     string
	audits  *services.AuditService
	watcher *fsnotify.Watcher

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

type manifestFile struct {
	ID           string               `json:"id"`
	DeviceModel  string               `json:"device_model"`
	CreatedAt    time.Time            `json:"created_at"`
	ManifestData models.AuditManifest `json:"manifest_data"`
}

func NewWatcher(dir string, audits *services.AuditService) (*Watcher, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(abs); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &Watcher{dir: abs, audits: audits, watcher: w, stop: make(chan struct{})}, nil
}

func (w *Watcher) Start() {
	// pick up anything already sitting in the directory
	if entries, err := os.ReadDir(w.dir); err == nil {
		for _, e := range entries {
			if !e.IsDir() {
				w.ingest(filepath.Join(w.dir, e.Name()))
			}
		}
	}
	w.wg.Add(1)
	go w.loop()
}

func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.stop)
		_ = w.watcher.Close()
	})
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.stop:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			path := ev.Name
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				select {
				case <-time.After(settleDelay):
					w.ingest(path)
				case <-w.stop:
				}
			}()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			global.Logger.Error().Err(err).Msg("audit watcher error")
		}
	}
}

func (w *Watcher) ingest(path string) {
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		global.Logger.Error().Err(err).Str("path", path).Msg("read audit manifest failed")
		return
	}
	var mf manifestFile
	if err := json.Unmarshal(data, &mf); err != nil {
		global.Logger.Error().Err(err).Str("path", path).Msg("invalid audit manifest")
		return
	}
	if mf.ID == "" {
		mf.ID = uuid.NewString()
	}
	raw, err := json.Marshal(mf.ManifestData)
	if err != nil {
		global.Logger.Error().Err(err).Str("path", path).Msg("re-encode audit manifest failed")
		return
	}
	rec := models.MobileAudit{
		ID:           mf.ID,
		DeviceModel:  mf.DeviceModel,
		ManifestData: string(raw),
		CreatedAt:    mf.CreatedAt,
	}
	if err := w.audits.Ingest(&rec); err != nil {
		global.Logger.Error().Err(err).Str("audit", mf.ID).Msg("persist audit manifest failed")
		return
	}
	global.Logger.Info().Str("audit", mf.ID).Str("model", mf.DeviceModel).
		Int("results", len(mf.ManifestData.AuditResults)).Msg("audit manifest ingested")
}
