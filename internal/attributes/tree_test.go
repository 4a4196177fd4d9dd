package attributes

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// TestNewTree verifies the record lands at REC.PICs.scalaris_PIC[0].attributes
func TestNewTree(t *testing.T) {
	cfg := Defaults("10.0.0.1")
	tree := NewTree(cfg)

	if len(tree.REC.PICs.ScalarisPIC) != 1 {
		t.Fatalf("expected one entry, got %d", len(tree.REC.PICs.ScalarisPIC))
	}

	got, err := tree.Attributes()
	if err != nil {
		t.Fatalf("Attributes() error = %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("Attributes() = %+v, want %+v", got, cfg)
	}

	cfg.KnownHosts[0].IP4 = "changed"
	if tree.REC.PICs.ScalarisPIC[0].Attributes.KnownHosts[0].IP4 != "10.0.0.1" {
		t.Error("NewTree shares slices with its argument")
	}
}

// TestEmptyTree tests the error for a tree with no entries
func TestEmptyTree(t *testing.T) {
	_, err := (Tree{}).Attributes()
	if !errors.Is(err, ErrEmptyTree) {
		t.Errorf("Attributes() error = %v, want ErrEmptyTree", err)
	}
}

// TestDecodeDocumentRoundTrip decodes what Encode produced in both formats
func TestDecodeDocumentRoundTrip(t *testing.T) {
	cfg := Defaults("192.168.1.10")
	cfg.Users = []User{{User: "admin", Password: "pw"}}

	for _, format := range []Format{FormatJSON, FormatYAML} {
		for _, doc := range []any{NewTree(cfg), cfg} {
			var buf bytes.Buffer
			if err := Encode(&buf, doc, format); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			got, err := DecodeDocument(buf.Bytes())
			if err != nil {
				t.Fatalf("DecodeDocument(%s %T) error = %v", format, doc, err)
			}
			if !reflect.DeepEqual(got, cfg) {
				t.Errorf("DecodeDocument(%s %T) = %+v, want %+v", format, doc, got, cfg)
			}
		}
	}
}

// TestDecodeDocumentErrors covers malformed and empty inputs
func TestDecodeDocumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "empty"},
		{"not a mapping", "- 1\n- 2\n", "parse"},
		{"unknown attribute", "scalaris_port: 1\nscalaris_bogus: 2\n", "decode"},
		{"tree without entries", `{"REC": {"PICs": {"scalaris_PIC": []}}}`, "no scalaris_PIC"},
		{"json unknown attribute", `{"scalaris_port": 1, "scalaris_bogus": 2}`, "decode"},
		{"malformed json", `{"scalaris_port": `, "parse"},
		{"trailing yaml document", "scalaris_port: 1\n---\nbogus: 1\n", "after the first document"},
		{"trailing json value", `{"scalaris_port": 1} {"scalaris_port": 2}`, "after the first document"},
		{
			"tree with two entries",
			`{"REC": {"PICs": {"scalaris_PIC": [{"attributes": {"scalaris_port": 1}}, {"attributes": {"scalaris_port": 0}}]}}}`,
			"more than one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.input))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// TestDecodeDocumentJSONEscapes decodes JSON that YAML parsers reject
func TestDecodeDocumentJSONEscapes(t *testing.T) {
	cfg := Defaults("10.0.0.7")
	cfg.Users = []User{{User: "ops/admin", Password: "a/b"}}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	escaped := strings.ReplaceAll(string(data), "/", `\/`)
	if !json.Valid([]byte(escaped)) {
		t.Fatalf("test document is not valid JSON: %s", escaped)
	}

	for name, doc := range map[string]string{
		"record": escaped,
		"tree":   `{"REC": {"PICs": {"scalaris_PIC": [{"attributes": ` + escaped + `}]}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := DecodeDocument([]byte(doc))
			if err != nil {
				t.Fatalf("DecodeDocument() error = %v", err)
			}
			if !reflect.DeepEqual(got, cfg) {
				t.Errorf("DecodeDocument() = %+v, want %+v", got, cfg)
			}
		})
	}
}

// TestMultipleEntries tests that a tree with several records is rejected
func TestMultipleEntries(t *testing.T) {
	tree := NewTree(Defaults("10.0.0.1"))
	tree.REC.PICs.ScalarisPIC = append(tree.REC.PICs.ScalarisPIC, PICEntry{})

	if _, err := tree.Attributes(); !errors.Is(err, ErrMultipleEntries) {
		t.Errorf("Attributes() error = %v, want ErrMultipleEntries", err)
	}
}

// TestDetectFormat tests document format sniffing
func TestDetectFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{`{"scalaris_port": 1}`, FormatJSON},
		{"\n  \t{\"REC\": {}}", FormatJSON},
		{`[1, 2]`, FormatJSON},
		{"scalaris_port: 1\n", FormatYAML},
		{"---\nREC: {}\n", FormatYAML},
		{"", FormatYAML},
	}

	for _, tt := range tests {
		if got := DetectFormat([]byte(tt.input)); got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// TestParseFormat tests format name parsing
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"toml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}

	if err := Encode(&bytes.Buffer{}, Defaults("10.0.0.1"), Format("xml")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode with unknown format error = %v", err)
	}
}

// TestEncodeYAMLShape spot checks the YAML layout
func TestEncodeYAMLShape(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, NewTree(Defaults("10.0.0.1")), FormatYAML); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"REC:\n  PICs:\n    scalaris_PIC:\n",
		"scalaris_node: node@10.0.0.1",
		"scalaris_max_json_req_size: 1048576",
		"scalaris_users: []",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}
