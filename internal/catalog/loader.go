package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
)

// Document is catalog configuration read from a source but not yet
// validated
type Document struct {
	Records    RecordSet
	Unknown    []string
	Unreadable []string
}

func newDocument() *Document {
	return &Document{Records: make(RecordSet)}
}

func (d *Document) finish() *Document {
	sort.Strings(d.Unknown)
	sort.Strings(d.Unreadable)
	return d
}

// LoadFile reads a catalog file and builds the catalog from it
func LoadFile(path string) (*Catalog, *Report, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	c, report := FromDocument(doc)
	return c, report, nil
}

// ReadFile reads a .yaml, .yml or .json catalog file
func ReadFile(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".json" {
		return nil, traiterr.InvalidArgumentf("unsupported catalog file type %q", ext).WithMeta("path", path)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, traiterr.NotFoundf("catalog file %s not found", path)
		}
		return nil, traiterr.WrapWithCode(err, traiterr.CodeInternal, "failed to open catalog file")
	}
	defer f.Close()

	if ext == ".json" {
		return ReadJSON(f)
	}
	return ReadYAML(f)
}

// ReadYAML reads a YAML document keyed by category key or name, each
// value a list of rule records:
//
//	equip_armor:
//	  - name: Light Armor
//	    talent_key: armor
//	    start_rank: 2
//	    end_rank: 100
//	    armor_id: 2
//
// Categories are merged in document order, so a category listed under both
// its key and its name keeps the order the file gives it.
func ReadYAML(r io.Reader) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return newDocument(), nil
		}
		return nil, traiterr.WrapWithCode(err, traiterr.CodeInvalidArgument, "failed to parse catalog yaml")
	}

	doc := newDocument()
	if len(root.Content) == 0 {
		return doc, nil
	}

	mapping := root.Content[0]
	if mapping.Kind == yaml.ScalarNode && mapping.Tag == "!!null" {
		return doc, nil
	}
	if mapping.Kind != yaml.MappingNode {
		return nil, traiterr.InvalidArgument("catalog yaml must map categories to rule lists")
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		category, ok := traits.Lookup(name)
		if !ok {
			doc.Unknown = append(doc.Unknown, name)
			continue
		}

		var items []yaml.Node
		if err := mapping.Content[i+1].Decode(&items); err != nil {
			doc.Unreadable = append(doc.Unreadable, name)
			continue
		}

		records := make([]Record, 0, len(items))
		for _, item := range items {
			var record Record
			if err := item.Decode(&record); err != nil {
				record = nil
			}
			records = append(records, record)
		}
		doc.Records[category] = append(doc.Records[category], records...)
	}

	return doc.finish(), nil
}

// ReadJSON reads the JSON form of the YAML document, also in document
// order. Lists and their items may be JSON-encoded strings, as produced by
// plugin parameter editors.
func ReadJSON(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return newDocument(), nil
		}
		return nil, traiterr.WrapWithCode(err, traiterr.CodeInvalidArgument, "failed to parse catalog json")
	}
	if tok == nil {
		return newDocument(), nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, traiterr.InvalidArgument("catalog json must map categories to rule lists")
	}

	doc := newDocument()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, traiterr.WrapWithCode(err, traiterr.CodeInvalidArgument, "failed to parse catalog json")
		}
		name, _ := keyTok.(string)

		var payload json.RawMessage
		if err := dec.Decode(&payload); err != nil {
			return nil, traiterr.WrapWithCode(err, traiterr.CodeInvalidArgument, "failed to parse catalog json")
		}

		doc.add(name, payload)
	}
	if _, err := dec.Token(); err != nil {
		return nil, traiterr.WrapWithCode(err, traiterr.CodeInvalidArgument, "failed to parse catalog json")
	}

	return doc.finish(), nil
}

// ReadPluginParameters reads the plugin parameter shape: keys are
// category names ("Element Rate") and each value is a JSON string holding
// an array of JSON-encoded records. Parameters with empty values are
// section headers and are ignored. Parameters carry no order of their own,
// so they are merged in sorted name order.
func ReadPluginParameters(params map[string]string) *Document {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := newDocument()
	for _, name := range names {
		payload := params[name]
		if strings.TrimSpace(payload) == "" {
			continue
		}
		doc.add(name, json.RawMessage(payload))
	}
	return doc.finish()
}

func (d *Document) add(name string, payload json.RawMessage) {
	category, ok := traits.Lookup(name)
	if !ok {
		d.Unknown = append(d.Unknown, name)
		return
	}

	records, ok := decodeJSONList(payload)
	if !ok {
		d.Unreadable = append(d.Unreadable, name)
		return
	}
	d.Records[category] = append(d.Records[category], records...)
}

func decodeJSONList(payload json.RawMessage) ([]Record, bool) {
	payload = bytes.TrimSpace(payload)
	if len(payload) > 0 && payload[0] == '"' {
		var encoded string
		if err := json.Unmarshal(payload, &encoded); err != nil {
			return nil, false
		}
		payload = json.RawMessage(encoded)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, decodeJSONRecord(item))
	}
	return records, true
}

// decodeJSONRecord returns nil for items that are not objects, which
// Decode reports as malformed
func decodeJSONRecord(item json.RawMessage) Record {
	item = bytes.TrimSpace(item)
	if len(item) > 0 && item[0] == '"' {
		var encoded string
		if err := json.Unmarshal(item, &encoded); err != nil {
			return nil
		}
		item = json.RawMessage(encoded)
	}

	dec := json.NewDecoder(bytes.NewReader(item))
	dec.UseNumber()

	var record Record
	if err := dec.Decode(&record); err != nil {
		return nil
	}
	return record
}
