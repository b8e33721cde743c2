package model

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/foundation/utils/filex"
)

// Format selects the on-disk encoding of a diagram.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type diagramDoc struct {
	Classes       []classDoc        `json:"classes" yaml:"classes"`
	Relationships []relationshipDoc `json:"relationships" yaml:"relationships"`
}

type classDoc struct {
	Name     string      `json:"name" yaml:"name"`
	Fields   []memberDoc `json:"fields" yaml:"fields"`
	Methods  []methodDoc `json:"methods" yaml:"methods"`
	Position pointDoc    `json:"position" yaml:"position"`
}

type memberDoc struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type methodDoc struct {
	Name       string      `json:"name" yaml:"name"`
	ReturnType string      `json:"return_type" yaml:"return_type"`
	Params     []memberDoc `json:"params" yaml:"params"`
}

type pointDoc struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type relationshipDoc struct {
	Source      string           `json:"source" yaml:"source"`
	Destination string           `json:"destination" yaml:"destination"`
	Type        RelationshipType `json:"type" yaml:"type"`
}

// MarshalYAML writes the type by name.
func (t RelationshipType) MarshalYAML() (interface{}, error) {
	b, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// UnmarshalYAML reads the type by name.
func (t *RelationshipType) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(name))
}

func (d *Diagram) toDoc() diagramDoc {
	doc := diagramDoc{
		Classes:       make([]classDoc, 0, len(d.classes)),
		Relationships: make([]relationshipDoc, 0, len(d.relationships)),
	}
	for _, c := range d.classes {
		cd := classDoc{
			Name:     c.name,
			Fields:   make([]memberDoc, 0, len(c.fields)),
			Methods:  make([]methodDoc, 0, len(c.methods)),
			Position: pointDoc{X: c.position.X, Y: c.position.Y},
		}
		for _, f := range c.fields {
			cd.Fields = append(cd.Fields, memberDoc{Name: f.name, Type: f.typ})
		}
		for _, m := range c.methods {
			md := methodDoc{Name: m.name, ReturnType: m.returnType, Params: make([]memberDoc, 0, len(m.params))}
			for _, p := range m.params {
				md.Params = append(md.Params, memberDoc{Name: p.name, Type: p.typ})
			}
			cd.Methods = append(cd.Methods, md)
		}
		doc.Classes = append(doc.Classes, cd)
	}
	for _, r := range d.relationships {
		doc.Relationships = append(doc.Relationships, relationshipDoc{
			Source:      r.source,
			Destination: r.destination,
			Type:        r.typ,
		})
	}
	return doc
}

// fromDoc builds a diagram through the validating constructors so a loaded
// document satisfies the same invariants as one built by commands.
func fromDoc(doc diagramDoc) (*Diagram, error) {
	d := New()
	for _, cd := range doc.Classes {
		c, err := NewClass(cd.Name)
		if err != nil {
			return nil, err
		}
		if d.findClass(cd.Name) >= 0 {
			return nil, alreadyExists("Duplicate class exist")
		}
		for _, fd := range cd.Fields {
			if err := c.AddField(fd.Name, fd.Type); err != nil {
				return nil, err
			}
		}
		for _, md := range cd.Methods {
			params := make([]Parameter, 0, len(md.Params))
			for _, pd := range md.Params {
				p, err := NewParameter(pd.Name, pd.Type)
				if err != nil {
					return nil, err
				}
				params = append(params, p)
			}
			m, err := NewMethod(md.Name, md.ReturnType, params)
			if err != nil {
				return nil, err
			}
			if err := c.AddMethod(m); err != nil {
				return nil, err
			}
		}
		c.Move(cd.Position.X, cd.Position.Y)
		d.classes = append(d.classes, c)
		d.sortClasses()
	}
	for _, rd := range doc.Relationships {
		r, err := NewRelationship(rd.Source, rd.Destination, rd.Type)
		if err != nil {
			return nil, err
		}
		if d.findClass(r.source) < 0 || d.findClass(r.destination) < 0 {
			return nil, dangling("Relationship(s) contain nonexistent class(es)")
		}
		if d.findRelationship(r.source, r.destination) >= 0 {
			return nil, alreadyExists("Duplicate relationship exist")
		}
		d.relationships = append(d.relationships, r)
	}
	d.sortRelationships()
	return d, nil
}

// Encode serializes the diagram. JSON output is indented by two spaces.
func (d *Diagram) Encode(format Format) ([]byte, error) {
	doc := d.toDoc()
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, mumlerr.Wrap(err, "encode diagram").WithCode(mumlerr.CodeIO)
		}
		if err := enc.Close(); err != nil {
			return nil, mumlerr.Wrap(err, "encode diagram").WithCode(mumlerr.CodeIO)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, mumlerr.Wrap(err, "encode diagram").WithCode(mumlerr.CodeIO)
		}
		return data, nil
	}
}

// Decode parses a document and validates it into a new diagram.
func Decode(data []byte, format Format) (*Diagram, error) {
	var doc diagramDoc
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		if mumlerr.HasCode(err, mumlerr.CodeInvalidInput) {
			return nil, err
		}
		return nil, mumlerr.Wrap(err, "decode diagram").WithCode(mumlerr.CodeIO)
	}
	return fromDoc(doc)
}

// Save writes the diagram to path, replacing any existing file. The
// document is written to a temporary file first and renamed into place.
func (d *Diagram) Save(path string) error {
	data, err := d.Encode(FormatForPath(path))
	if err != nil {
		return mumlerr.Wrap(err, "Error")
	}
	if err := filex.WriteAtomic(path, data, 0644); err != nil {
		return mumlerr.Wrap(err, "Error").WithCode(mumlerr.CodeIO).WithOperation("save")
	}
	return nil
}

// Load replaces the contents of d with the diagram stored at path. On any
// failure d is left unchanged.
func (d *Diagram) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return mumlerr.Wrap(err, "Error").WithCode(mumlerr.CodeIO).WithOperation("load")
	}
	loaded, err := Decode(data, FormatForPath(path))
	if err != nil {
		return mumlerr.Wrap(err, "Error").WithOperation("load")
	}
	*d = *loaded
	return nil
}
