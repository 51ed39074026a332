package core

import "errors"

// Common errors.
var (
	// ErrClipboardEmpty is returned by paste when nothing was copied yet.
	ErrClipboardEmpty = errors.New("no color available on the clipboard")

	// ErrNoColorToCopy is returned by copy when the reference node has no color.
	ErrNoColorToCopy = errors.New("no color assigned to the selected item")

	// ErrStaleNode marks a saved record whose node no longer exists.
	// Load discards such records; the error only shows up in debug logs.
	ErrStaleNode = errors.New("stale node reference")

	// ErrEmptySelection is returned when an operation receives no nodes.
	ErrEmptySelection = errors.New("no layer or group selected")

	// ErrInvalidColor is returned for values that do not parse as a color.
	ErrInvalidColor = errors.New("invalid color")

	// ErrReadOnly is returned when saving a session opened read-only.
	ErrReadOnly = errors.New("project is in read-only mode")
)
