package tint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/tint/pkg/adapters/fs"
	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/render"
	"github.com/aretw0/tint/pkg/tree"
)

// Session is one open project with its colors loaded.
type Session struct {
	Project    *fs.Project
	Store      *core.Store
	Clipboard  *core.Clipboard
	Controller *core.Controller
	Bridge     *core.Bridge
	View       *render.View

	clipFile *fs.ClipboardFile
	logger   *slog.Logger
	opts     *options
}

// Create starts a new empty project at path and writes it.
func Create(path, name string, opts ...Option) (*Session, error) {
	o := resolve(opts)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("tint.Create: %s already exists", path)
	}

	p, err := fs.NewProject(path, name, o.projectConfig())
	if err != nil {
		return nil, fmt.Errorf("tint.Create: %w", err)
	}
	s, err := assemble(p, o)
	if err != nil {
		return nil, err
	}
	if err := s.Save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open loads the project at path and restores its saved colors.
func Open(path string, opts ...Option) (*Session, error) {
	o := resolve(opts)

	p, err := fs.LoadProject(path, o.projectConfig())
	if err != nil {
		return nil, fmt.Errorf("tint.Open: %w", err)
	}
	s, err := assemble(p, o)
	if err != nil {
		return nil, err
	}
	if _, err := s.restore(); err != nil {
		return nil, fmt.Errorf("tint.Open: %w", err)
	}
	return s, nil
}

func resolve(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

func (o *options) projectConfig() fs.Config {
	return fs.Config{Logger: o.logger, Strict: o.strict}
}

func assemble(p *fs.Project, o *options) (*Session, error) {
	view := render.NewView(p.Tree)
	store := core.NewStore(view, o.logger)
	view.Attach(store)

	clipboard := core.NewClipboard()
	s := &Session{
		Project:    p,
		Store:      store,
		Clipboard:  clipboard,
		Controller: core.NewController(store, clipboard, o.prompter, o.logger),
		Bridge:     core.NewBridge(store, o.logger),
		View:       view,
		logger:     o.logger,
		opts:       o,
	}

	if !o.noClipboard {
		path := o.clipboardPath
		if path == "" {
			var err error
			if path, err = fs.DefaultClipboardPath(); err != nil {
				return nil, err
			}
		}
		s.clipFile = fs.NewClipboardFile(path)
		c, ok, err := s.clipFile.Load()
		if err != nil {
			return nil, err
		}
		if ok {
			clipboard.Copy(c)
		}
	}
	return s, nil
}

// restore runs the load hook with the project's saved records.
func (s *Session) restore() (core.LoadReport, error) {
	records, err := s.Project.Records()
	if err != nil {
		return core.LoadReport{}, err
	}
	report := s.Bridge.OnLoad(records, s.Project.Tree.IDs())
	s.logger.Info("all colors were successfully restored",
		"restored", report.Restored, "stale", report.Stale)
	return report, nil
}

// Reload re-reads the project from disk and restores its colors, keeping the
// same store, view and clipboard.
func (s *Session) Reload() (core.LoadReport, error) {
	p, err := fs.LoadProject(s.Project.Path, s.opts.projectConfig())
	if err != nil {
		return core.LoadReport{}, fmt.Errorf("tint.Session.Reload: %w", err)
	}
	s.Project = p
	s.View.SetTree(p.Tree)

	report, err := s.restore()
	if err != nil {
		return core.LoadReport{}, fmt.Errorf("tint.Session.Reload: %w", err)
	}
	return report, nil
}

// Save runs the save hook and writes the project.
func (s *Session) Save() error {
	if s.opts.readOnly {
		return fmt.Errorf("tint.Session.Save: %w", core.ErrReadOnly)
	}

	records := s.Bridge.OnSave(s.Project.Tree.IDs())
	s.Project.SetRecords(records)
	if err := s.Project.Save(); err != nil {
		return err
	}
	s.logger.Info("all colors were successfully saved in the project", "count", len(records))
	return nil
}

// Select resolves the host selection: explicit identities, in order,
// followed by the nodes whose path matches pattern. Unknown identities are
// an error.
func (s *Session) Select(ids []string, pattern string) ([]core.NodeID, error) {
	var sel []core.NodeID
	for _, raw := range ids {
		id := core.NodeID(raw)
		if _, ok := s.Project.Tree.Find(id); !ok {
			return nil, fmt.Errorf("tint.Session.Select: %s: %w", id, tree.ErrNodeNotFound)
		}
		sel = append(sel, id)
	}

	if pattern != "" {
		matched, err := s.Project.Tree.Match(pattern)
		if err != nil {
			return nil, fmt.Errorf("tint.Session.Select: %w", err)
		}
		sel = append(sel, matched...)
	}

	if len(sel) == 0 {
		return nil, fmt.Errorf("tint.Session.Select: %w", core.ErrEmptySelection)
	}
	return sel, nil
}

// Copy copies the reference node's color and persists the clipboard.
func (s *Session) Copy(ctx context.Context, nodes []core.NodeID) (core.Color, error) {
	c, err := s.Controller.CopyHighlightColor(ctx, nodes)
	if err != nil {
		return core.Color{}, err
	}
	if s.clipFile != nil {
		if err := s.clipFile.Save(c); err != nil {
			return c, fmt.Errorf("tint.Session.Copy: %w", err)
		}
	}
	return c, nil
}

// AddNode creates a group or layer under parent ("" for the top level).
func (s *Session) AddNode(kind tree.Kind, parent core.NodeID, name string) (*tree.Node, error) {
	var (
		n   *tree.Node
		err error
	)
	switch kind {
	case tree.KindGroup:
		n, err = s.Project.Tree.AddGroup(parent, name)
	case tree.KindLayer:
		n, err = s.Project.Tree.AddLayer(parent, name)
	default:
		err = fmt.Errorf("unknown node kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("tint.Session.AddNode: %w", err)
	}
	s.View.Invalidate()
	return n, nil
}

// Move relocates a node. Its color travels with it.
func (s *Session) Move(id, parent core.NodeID, index int) error {
	if err := s.Project.Tree.Move(id, parent, index); err != nil {
		return fmt.Errorf("tint.Session.Move: %w", err)
	}
	s.View.Invalidate()
	return nil
}

// RemoveNode deletes a node with its descendants. Their colors go with them.
func (s *Session) RemoveNode(id core.NodeID) ([]core.NodeID, error) {
	removed, err := s.Project.Tree.Remove(id)
	if err != nil {
		return nil, fmt.Errorf("tint.Session.RemoveNode: %w", err)
	}
	for _, r := range removed {
		s.Store.Clear(r)
	}
	s.View.Invalidate()
	return removed, nil
}

// Render writes the tinted tree.
func (s *Session) Render(w io.Writer) error {
	return s.View.Render(w)
}

// Watch reloads the session whenever its project file changes and calls
// onReload after each reload. It returns once watching has started.
func (s *Session) Watch(ctx context.Context, onReload func(core.LoadReport)) (*fs.Watcher, error) {
	w := fs.NewWatcher(s.Project.Path, func(ctx context.Context) error {
		report, err := s.Reload()
		if err != nil {
			return err
		}
		if onReload != nil {
			onReload(report)
		}
		return nil
	}, s.logger)

	if err := w.Start(ctx); err != nil {
		return nil, fmt.Errorf("tint.Session.Watch: %w", err)
	}
	return w, nil
}

// States returns the introspection state of each component, keyed by
// component type.
func (s *Session) States() map[string]any {
	return map[string]any{
		s.Project.ComponentType():    s.Project.State(),
		s.Store.ComponentType():      s.Store.State(),
		s.Controller.ComponentType(): s.Controller.State(),
	}
}

// IsNotFound reports whether err means a node identity is unknown.
func IsNotFound(err error) bool {
	return errors.Is(err, tree.ErrNodeNotFound)
}
