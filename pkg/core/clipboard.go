package core

import "sync"

// Clipboard is the single slot holding the last copied color.
// Paste reads it without consuming it; Copy overwrites it. It never expires.
type Clipboard struct {
	mu    sync.RWMutex
	color Color
	full  bool
}

// NewClipboard returns an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy stores c, replacing whatever was there.
func (cb *Clipboard) Copy(c Color) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.color = c
	cb.full = true
}

// Paste returns the stored color. The slot keeps its content.
func (cb *Clipboard) Paste() (Color, bool) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.color, cb.full
}

// IsEmpty reports whether nothing has been copied yet.
func (cb *Clipboard) IsEmpty() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return !cb.full
}
