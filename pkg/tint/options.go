package tint

import (
	"log/slog"

	"github.com/aretw0/tint/pkg/core"
)

// options holds the internal configuration for a Session.
type options struct {
	logger        *slog.Logger
	prompter      core.Prompter
	clipboardPath string
	noClipboard   bool
	readOnly      bool
	strict        bool
}

// Option defines a functional option for configuring a Session.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: nil, // discard unless WithLogger is given
	}
}

// WithLogger sets the logger for the session and every component it wires.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPrompter sets the host's modal prompts (contrast warning, color picker).
// Without one, low contrast colors are applied after a logged warning.
func WithPrompter(p core.Prompter) Option {
	return func(o *options) {
		o.prompter = p
	}
}

// WithClipboardPath persists the clipboard slot at path so that it survives
// across processes. Defaults to the per-user config directory.
func WithClipboardPath(path string) Option {
	return func(o *options) {
		o.clipboardPath = path
	}
}

// WithEphemeralClipboard keeps the clipboard in memory only.
func WithEphemeralClipboard() Option {
	return func(o *options) {
		o.noClipboard = true
	}
}

// WithReadOnly makes Save fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithStrict keeps JSON numbers of foreign properties as json.Number.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
