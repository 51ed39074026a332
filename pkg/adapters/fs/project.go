package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/tree"
)

// PropertyHighlightColors is the project property holding the saved colors.
const PropertyHighlightColors = "highlight_colors"

// Project is a layer tree plus its custom properties, stored as one file.
type Project struct {
	Path       string
	Name       string
	Tree       *tree.Tree
	Properties map[string]any

	serializer Serializer
	logger     *slog.Logger
	loadedAt   time.Time
	savedAt    time.Time
}

// Config holds the configuration for opening or creating a project file.
type Config struct {
	Logger      *slog.Logger
	Serializers map[string]Serializer // defaults to DefaultSerializers(Strict)
	Strict      bool
}

func (c Config) serializers() map[string]Serializer {
	if c.Serializers != nil {
		return c.Serializers
	}
	return DefaultSerializers(c.Strict)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// NewProject returns an empty, unsaved project at path.
func NewProject(path, name string, cfg Config) (*Project, error) {
	s, err := serializerFor(path, cfg.serializers())
	if err != nil {
		return nil, fmt.Errorf("fs.NewProject: %w", err)
	}
	if name == "" {
		name = projectName(path)
	}
	return &Project{
		Path:       path,
		Name:       name,
		Tree:       tree.New(),
		Properties: make(map[string]any),
		serializer: s,
		logger:     cfg.logger(),
	}, nil
}

// LoadProject reads and validates the project at path.
func LoadProject(path string, cfg Config) (*Project, error) {
	s, err := serializerFor(path, cfg.serializers())
	if err != nil {
		return nil, fmt.Errorf("fs.LoadProject: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fs.LoadProject: %w", err)
	}

	doc, err := s.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fs.LoadProject: %s: %w", path, err)
	}

	t := tree.New(doc.Tree...)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("fs.LoadProject: %s: %w", path, err)
	}

	props := doc.Properties
	if props == nil {
		props = make(map[string]any)
	}

	p := &Project{
		Path:       path,
		Name:       doc.Name,
		Tree:       t,
		Properties: props,
		serializer: s,
		logger:     cfg.logger(),
		loadedAt:   time.Now(),
	}
	if p.Name == "" {
		p.Name = projectName(path)
	}

	p.logger.Debug("project loaded", "path", path, "nodes", len(t.IDs()))
	return p, nil
}

// Save writes the project atomically.
func (p *Project) Save() error {
	doc := Document{
		Name:       p.Name,
		Tree:       p.Tree.Roots,
		Properties: p.Properties,
	}
	if len(doc.Properties) == 0 {
		doc.Properties = nil
	}

	data, err := p.serializer.Serialize(doc)
	if err != nil {
		return fmt.Errorf("fs.Project.Save: %w", err)
	}
	if err := writeFileAtomic(p.Path, data, 0644); err != nil {
		return fmt.Errorf("fs.Project.Save: %w", err)
	}

	p.savedAt = time.Now()
	p.logger.Debug("project saved", "path", p.Path)
	return nil
}

// Records decodes the saved colors from the properties blob.
func (p *Project) Records() ([]core.Record, error) {
	raw, ok := p.Properties[PropertyHighlightColors]
	if !ok || raw == nil {
		return nil, nil
	}

	// The blob is untyped after parsing (maps from YAML/JSON), so it goes
	// through JSON once to land in typed records.
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("fs.Project.Records: %w", err)
	}
	var records []core.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("fs.Project.Records: malformed %s: %w", PropertyHighlightColors, err)
	}
	return records, nil
}

// SetRecords stores records in the properties blob, dropping the key when
// there is nothing to save.
func (p *Project) SetRecords(records []core.Record) {
	if len(records) == 0 {
		delete(p.Properties, PropertyHighlightColors)
		return
	}
	p.Properties[PropertyHighlightColors] = records
}

func projectName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
