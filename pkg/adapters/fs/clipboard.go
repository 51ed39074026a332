package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/tint/pkg/core"
)

// clipboardEntry is the persisted clipboard slot.
type clipboardEntry struct {
	Version  int         `json:"version"`
	Color    *core.Color `json:"color,omitempty"`
	CopiedAt time.Time   `json:"copiedAt,omitempty"`
}

// ClipboardFile keeps the clipboard slot on disk so that separate CLI
// invocations share it. The file is per user, not per project.
type ClipboardFile struct {
	Path string
	mu   sync.Mutex
}

// NewClipboardFile returns a clipboard persisted at path.
func NewClipboardFile(path string) *ClipboardFile {
	return &ClipboardFile{Path: path}
}

// DefaultClipboardPath returns {UserConfigDir}/tint/clipboard.json.
func DefaultClipboardPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "tint", "clipboard.json"), nil
}

// Load reads the slot. A missing or corrupted file is an empty clipboard.
func (f *ClipboardFile) Load() (core.Color, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return core.Color{}, false, nil
	}
	if err != nil {
		return core.Color{}, false, fmt.Errorf("failed to read clipboard: %w", err)
	}

	var entry clipboardEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Color == nil {
		// Self-heal: treat corruption as nothing copied.
		return core.Color{}, false, nil
	}
	return *entry.Color, true, nil
}

// Save overwrites the slot with c.
func (f *ClipboardFile) Save(c core.Color) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(clipboardEntry{Version: 1, Color: &c, CopiedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return err
	}
	if err := writeFileAtomic(f.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to save clipboard: %w", err)
	}
	return nil
}
