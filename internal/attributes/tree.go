package attributes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyTree is returned when a tree carries no scalaris_PIC entry.
	ErrEmptyTree = errors.New("attribute tree has no scalaris_PIC entry")

	// ErrMultipleEntries is returned for a tree with more than one
	// scalaris_PIC entry. A node has exactly one attribute record.
	ErrMultipleEntries = errors.New("attribute tree has more than one scalaris_PIC entry")

	// ErrTrailingData is returned when a document is followed by another
	// document or stray content.
	ErrTrailingData = errors.New("unexpected content after the first document")
)

// Tree is the attribute tree the configuration engine merges:
//
//	REC -> PICs -> scalaris_PIC -> [ {attributes: NodeDefaultConfig} ]
type Tree struct {
	REC RECNode `json:"REC" yaml:"REC"`
}

// RECNode is the top-level REC namespace.
type RECNode struct {
	PICs PICsNode `json:"PICs" yaml:"PICs"`
}

// PICsNode holds the per-component attribute lists.
type PICsNode struct {
	ScalarisPIC []PICEntry `json:"scalaris_PIC" yaml:"scalaris_PIC"`
}

// PICEntry wraps one attribute record.
type PICEntry struct {
	Attributes NodeDefaultConfig `json:"attributes" yaml:"attributes"`
}

// NewTree places a copy of cfg as the single scalaris_PIC entry.
func NewTree(cfg NodeDefaultConfig) Tree {
	return Tree{
		REC: RECNode{
			PICs: PICsNode{
				ScalarisPIC: []PICEntry{{Attributes: cfg.Clone()}},
			},
		},
	}
}

// Attributes returns a copy of the single scalaris_PIC record.
func (t Tree) Attributes() (NodeDefaultConfig, error) {
	switch len(t.REC.PICs.ScalarisPIC) {
	case 0:
		return NodeDefaultConfig{}, ErrEmptyTree
	case 1:
	default:
		return NodeDefaultConfig{}, fmt.Errorf("%w: found %d", ErrMultipleEntries, len(t.REC.PICs.ScalarisPIC))
	}
	return t.REC.PICs.ScalarisPIC[0].Attributes.Clone(), nil
}

// DecodeDocument parses a JSON or YAML document holding either a full tree
// (top-level REC key) or a bare attribute record, and returns the record.
// Unknown keys, trailing documents and trees with more than one scalaris_PIC
// entry are rejected.
//
// JSON goes through encoding/json rather than the YAML parser: yaml.v3 does
// not accept every JSON string escape (for example "\/").
func DecodeDocument(data []byte) (NodeDefaultConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NodeDefaultConfig{}, fmt.Errorf("document is empty")
	}
	format := DetectFormat(data)

	var keys map[string]any
	if err := unmarshal(data, format, &keys); err != nil {
		return NodeDefaultConfig{}, fmt.Errorf("failed to parse document: %w", err)
	}
	if len(keys) == 0 {
		return NodeDefaultConfig{}, fmt.Errorf("document is empty")
	}

	if _, ok := keys["REC"]; ok {
		var tree Tree
		if err := decodeStrict(data, format, &tree); err != nil {
			return NodeDefaultConfig{}, err
		}
		return tree.Attributes()
	}

	var cfg NodeDefaultConfig
	if err := decodeStrict(data, format, &cfg); err != nil {
		return NodeDefaultConfig{}, err
	}
	return cfg.Clone(), nil
}

// unmarshal reads the first document only; decodeStrict checks for trailers.
func unmarshal(data []byte, format Format, out any) error {
	if format == FormatJSON {
		return json.NewDecoder(bytes.NewReader(data)).Decode(out)
	}
	return yaml.Unmarshal(data, out)
}

// decodeStrict decodes exactly one document into out, rejecting unknown keys.
func decodeStrict(data []byte, format Format, out any) error {
	if format == FormatJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			return fmt.Errorf("failed to decode document: %w", err)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return ErrTrailingData
		}
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
