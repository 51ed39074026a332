package tint

import (
	"log/slog"

	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/tint"
)

// Version exposes the version of the library.
const Version = tint.Version

// --- Types ---

// Session is a public alias for an open project.
type Session = tint.Session

// Color is a public alias for a node color.
type Color = core.Color

// NodeID is a public alias for a node identity.
type NodeID = core.NodeID

// --- Configuration ---

// Option defines a functional option for configuring a session.
type Option = tint.Option

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return tint.WithLogger(logger)
}

// WithPrompter sets the host's contrast warning and color picker.
func WithPrompter(p core.Prompter) Option {
	return tint.WithPrompter(p)
}

// WithClipboardPath persists the clipboard at path.
func WithClipboardPath(path string) Option {
	return tint.WithClipboardPath(path)
}

// WithEphemeralClipboard keeps the clipboard in memory only.
func WithEphemeralClipboard() Option {
	return tint.WithEphemeralClipboard()
}

// WithReadOnly forbids saving.
func WithReadOnly(enabled bool) Option {
	return tint.WithReadOnly(enabled)
}

// WithStrict keeps JSON numbers of foreign properties exact.
func WithStrict(strict bool) Option {
	return tint.WithStrict(strict)
}

// --- Factory ---

// Open loads a project and restores its colors.
func Open(path string, opts ...Option) (*Session, error) {
	return tint.Open(path, opts...)
}

// Create writes a new empty project.
func Create(path, name string, opts ...Option) (*Session, error) {
	return tint.Create(path, name, opts...)
}

// ParseColor reads #rrggbb, rrggbb or #rgb.
func ParseColor(s string) (Color, error) {
	return core.ParseColor(s)
}
