package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/tint/pkg/core"
)

// terminalPrompter asks on the terminal, one line per answer.
type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
	yes bool
}

func newTerminalPrompter(in io.Reader, out io.Writer, yes bool) *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out, yes: yes}
}

// ConfirmLowContrast defaults to No.
func (p *terminalPrompter) ConfirmLowContrast(ctx context.Context, c core.Color, ratio float64) (bool, error) {
	if p.yes {
		return true, nil
	}

	fmt.Fprintf(p.out, "Color %s reaches %.2f:1 against black text.\n", c.Hex(), ratio)
	fmt.Fprintf(p.out, "According to WCAG AA (%.1f:1) Standard, the selected color may make the text difficult to read. Do you want to continue anyway? [y/N] ", core.MinContrastRatio)

	answer, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PickColor reads a hex color. An empty answer keeps initial, or cancels
// when there is none.
func (p *terminalPrompter) PickColor(ctx context.Context, initial *core.Color) (core.Color, bool, error) {
	if initial != nil {
		fmt.Fprintf(p.out, "Background color [%s]: ", initial.Hex())
	} else {
		fmt.Fprint(p.out, "Background color (#rrggbb, empty to cancel): ")
	}

	answer, err := p.readLine(ctx)
	if err != nil {
		return core.Color{}, false, err
	}
	if answer == "" {
		if initial != nil {
			return *initial, true, nil
		}
		return core.Color{}, false, nil
	}

	c, err := core.ParseColor(answer)
	if err != nil {
		return core.Color{}, false, err
	}
	return c, true, nil
}

// readLine returns the next trimmed line. EOF counts as an empty answer.
func (p *terminalPrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ComponentType names the prompter in status output.
func (p *terminalPrompter) ComponentType() string {
	if p.yes {
		return "terminal-prompter (auto-accept)"
	}
	return "terminal-prompter"
}
