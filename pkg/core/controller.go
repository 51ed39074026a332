package core

import (
	"context"
	"fmt"
	"log/slog"
)

// Prompter is the host's modal user interaction. Both calls block until the
// user answers.
type Prompter interface {
	// ConfirmLowContrast tells the user that c reaches only ratio against black
	// text and asks whether to apply it anyway.
	ConfirmLowContrast(ctx context.Context, c Color, ratio float64) (bool, error)

	// PickColor shows a color picker seeded with initial (nil for none).
	// ok is false when the user cancels.
	PickColor(ctx context.Context, initial *Color) (c Color, ok bool, err error)
}

// Outcome describes what a batch operation did.
type Outcome struct {
	Color     Color
	Verdict   Verdict
	Ratio     float64
	Applied   []NodeID
	Cancelled bool
}

// Controller runs the color operations over a multi-selection.
// Every batch is gated by the contrast check before the first mutation, so
// either all selected nodes change or none do.
type Controller struct {
	store     *Store
	clipboard *Clipboard
	prompter  Prompter
	logger    *slog.Logger
}

// NewController wires a controller. A nil prompter proceeds past contrast
// warnings after logging them and never picks a color.
func NewController(store *Store, clipboard *Clipboard, prompter Prompter, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if prompter == nil {
		prompter = logPrompter{logger: logger}
	}
	return &Controller{
		store:     store,
		clipboard: clipboard,
		prompter:  prompter,
		logger:    logger,
	}
}

// SetBackgroundColor applies c to every selected node, asking for
// confirmation first when c fails the contrast check.
func (ctl *Controller) SetBackgroundColor(ctx context.Context, nodes []NodeID, c Color) (Outcome, error) {
	sel := uniqueIDs(nodes)
	if len(sel) == 0 {
		return Outcome{}, fmt.Errorf("core.Controller.SetBackgroundColor: %w", ErrEmptySelection)
	}
	return ctl.apply(ctx, "SetBackgroundColor", sel, c)
}

// PickBackgroundColor asks the prompter for a color, seeded with the color of
// the first selected node that has one, and applies it like
// SetBackgroundColor. A cancelled picker leaves everything untouched.
func (ctl *Controller) PickBackgroundColor(ctx context.Context, nodes []NodeID) (Outcome, error) {
	sel := uniqueIDs(nodes)
	if len(sel) == 0 {
		return Outcome{}, fmt.Errorf("core.Controller.PickBackgroundColor: %w", ErrEmptySelection)
	}

	var initial *Color
	for _, id := range sel {
		if c, ok := ctl.store.Get(id); ok {
			initial = &c
			break
		}
	}

	c, ok, err := ctl.prompter.PickColor(ctx, initial)
	if err != nil {
		return Outcome{}, fmt.Errorf("core.Controller.PickBackgroundColor: %w", err)
	}
	if !ok {
		ctl.logger.Info("color selection cancelled")
		return Outcome{Cancelled: true}, nil
	}
	return ctl.apply(ctx, "PickBackgroundColor", sel, c)
}

// CopyHighlightColor copies the color of the reference node, which is the
// first node of the selection (the host's primary selection).
func (ctl *Controller) CopyHighlightColor(ctx context.Context, nodes []NodeID) (Color, error) {
	if len(nodes) == 0 {
		return Color{}, fmt.Errorf("core.Controller.CopyHighlightColor: %w", ErrEmptySelection)
	}

	ref := nodes[0]
	c, ok := ctl.store.Get(ref)
	if !ok {
		ctl.logger.Info("no color assigned to the selected item", "node", ref)
		return Color{}, fmt.Errorf("core.Controller.CopyHighlightColor: %s: %w", ref, ErrNoColorToCopy)
	}

	ctl.clipboard.Copy(c)
	ctl.logger.Info("color copied to the clipboard", "node", ref, "color", c.Hex())
	return c, nil
}

// PasteHighlightColor applies the clipboard color to the selection with the
// same contrast check as SetBackgroundColor.
func (ctl *Controller) PasteHighlightColor(ctx context.Context, nodes []NodeID) (Outcome, error) {
	c, ok := ctl.clipboard.Paste()
	if !ok {
		ctl.logger.Info("no color available on the clipboard to paste")
		return Outcome{}, fmt.Errorf("core.Controller.PasteHighlightColor: %w", ErrClipboardEmpty)
	}

	sel := uniqueIDs(nodes)
	if len(sel) == 0 {
		return Outcome{}, fmt.Errorf("core.Controller.PasteHighlightColor: %w", ErrEmptySelection)
	}
	return ctl.apply(ctx, "PasteHighlightColor", sel, c)
}

// RemoveBackgroundColor clears every selected node. Uncolored nodes are
// skipped silently.
func (ctl *Controller) RemoveBackgroundColor(ctx context.Context, nodes []NodeID) (Outcome, error) {
	sel := uniqueIDs(nodes)
	if len(sel) == 0 {
		return Outcome{}, fmt.Errorf("core.Controller.RemoveBackgroundColor: %w", ErrEmptySelection)
	}

	var out Outcome
	for _, id := range sel {
		if !ctl.store.HasColor(id) {
			continue
		}
		ctl.store.Clear(id)
		out.Applied = append(out.Applied, id)
		ctl.logger.Info("color removed from the layer or group", "node", id)
	}
	return out, nil
}

func (ctl *Controller) apply(ctx context.Context, op string, sel []NodeID, c Color) (Outcome, error) {
	ratio := ContrastRatio(c)
	out := Outcome{Color: c, Verdict: verdictFor(ratio), Ratio: ratio}

	if out.Verdict == Warn {
		ctl.logger.Warn("low contrast color", "color", c.Hex(), "ratio", ratio, "min", MinContrastRatio)

		proceed, err := ctl.prompter.ConfirmLowContrast(ctx, c, ratio)
		if err != nil {
			return out, fmt.Errorf("core.Controller.%s: confirm: %w", op, err)
		}
		if !proceed {
			out.Cancelled = true
			ctl.logger.Info("color not applied", "color", c.Hex(), "nodes", len(sel))
			return out, nil
		}
	}

	for _, id := range sel {
		ctl.store.Set(id, c)
		out.Applied = append(out.Applied, id)
		ctl.logger.Info("color applied", "node", id, "color", c.Hex())
	}
	return out, nil
}

// uniqueIDs drops empty and repeated identities, keeping selection order.
func uniqueIDs(nodes []NodeID) []NodeID {
	seen := make(map[NodeID]bool, len(nodes))
	out := make([]NodeID, 0, len(nodes))
	for _, id := range nodes {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// logPrompter is used when the host supplies no prompter.
type logPrompter struct {
	logger *slog.Logger
}

func (p logPrompter) ConfirmLowContrast(ctx context.Context, c Color, ratio float64) (bool, error) {
	p.logger.Warn("the selected color may make the text difficult to read; applying anyway",
		"color", c.Hex(), "ratio", ratio)
	return true, nil
}

func (p logPrompter) PickColor(ctx context.Context, initial *Color) (Color, bool, error) {
	return Color{}, false, nil
}
