package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/tint/pkg/tree"
)

// Document is the on-disk shape of a project.
type Document struct {
	Name       string         `json:"name" yaml:"name"`
	Tree       []*tree.Node   `json:"tree" yaml:"tree"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Serializer defines how to read and write a specific file format.
type Serializer interface {
	// Parse reads a project document from r.
	Parse(r io.Reader) (*Document, error)
	// Serialize converts the document to bytes.
	Serialize(doc Document) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers(strict bool) map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(strict),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// serializerFor picks the serializer matching the extension of path.
func serializerFor(path string, serializers map[string]Serializer) (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	s, ok := serializers[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported project format %q (use .yaml, .yml or .json)", ext)
	}
	return s, nil
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON projects.
type JSONSerializer struct {
	// Strict keeps numbers in foreign properties as json.Number to avoid
	// precision loss on large integers.
	Strict bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(strict bool) *JSONSerializer {
	return &JSONSerializer{Strict: strict}
}

func (s *JSONSerializer) Parse(r io.Reader) (*Document, error) {
	decoder := json.NewDecoder(r)
	if s.Strict {
		decoder.UseNumber()
	}

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return &doc, nil
}

func (s *JSONSerializer) Serialize(doc Document) ([]byte, error) {
	if doc.Tree == nil {
		doc.Tree = []*tree.Node{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Serializer ---

// YAMLSerializer handles reading and writing YAML projects.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return &doc, nil
}

func (s *YAMLSerializer) Serialize(doc Document) ([]byte, error) {
	if doc.Tree == nil {
		doc.Tree = []*tree.Node{}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
