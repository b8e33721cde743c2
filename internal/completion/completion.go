// Package completion answers "what may come next" for a partially typed
// command line. It only reads the diagram.
package completion

import (
	"strings"
	"unicode"

	"github.com/msto63/mUML/foundation/utils/slicex"
	"github.com/msto63/mUML/foundation/utils/stringx"
	"github.com/msto63/mUML/internal/command"
	"github.com/msto63/mUML/internal/model"
)

// Completer produces completion candidates from the command tree and the
// current diagram.
type Completer struct {
	diagram *model.Diagram
}

// New returns a Completer reading d.
func New(d *model.Diagram) *Completer {
	return &Completer{diagram: d}
}

// scope remembers the values already typed for placeholders that later
// placeholders depend on.
type scope struct {
	class  string
	source string
	sig    string
}

// Complete splits line into finished words and the word under the cursor
// (empty when line ends in whitespace) and returns the candidates for it.
func (c *Completer) Complete(line string) []string {
	words := stringx.Words(line)
	prefix := ""
	if len(words) > 0 && line != "" && !unicode.IsSpace(rune(line[len(line)-1])) {
		prefix = words[len(words)-1]
		words = words[:len(words)-1]
	}
	return c.Candidates(words, prefix)
}

// Candidates returns the legal next words after words that start with
// prefix. Literal words come first in catalog order, followed by values
// drawn from the diagram for placeholder positions.
func (c *Completer) Candidates(words []string, prefix string) []string {
	root := command.Tree()
	path := root.Path(words)
	if len(path) != len(words) {
		return nil
	}

	var sc scope
	for i, n := range path {
		switch n.Word() {
		case command.PlaceholderClassName:
			sc.class = words[i]
		case command.PlaceholderClassSource:
			sc.source = words[i]
		case command.PlaceholderMethodSignature:
			sc.sig = words[i]
		}
	}

	node := root
	if len(path) > 0 {
		node = path[len(path)-1]
	}

	hasPrefix := func(s string) bool { return strings.HasPrefix(s, prefix) }
	var all []string
	for _, child := range node.Children() {
		if !child.Placeholder() {
			if hasPrefix(child.Word()) {
				all = append(all, child.Word())
			}
			continue
		}
		match := hasPrefix
		if child.Word() == command.PlaceholderRelationshipType {
			// type names are capitalized, any case is accepted while typing
			match = func(s string) bool { return stringx.HasPrefixFold(s, prefix) }
		}
		all = append(all, slicex.Filter(c.values(child.Word(), sc), match)...)
	}
	out := slicex.Unique(all)
	if len(out) == 0 {
		return nil
	}
	return out
}

// Next returns the template words that may follow words, placeholders
// included, for hints.
func (c *Completer) Next(words []string) []string {
	node := command.Tree().Lookup(words)
	if node == nil {
		return nil
	}
	var out []string
	for _, child := range node.Children() {
		out = append(out, child.Word())
	}
	return out
}

func (c *Completer) values(placeholder string, sc scope) []string {
	switch placeholder {
	case command.PlaceholderClassName:
		return c.diagram.ClassNames()
	case command.PlaceholderClassSource:
		return c.sources()
	case command.PlaceholderClassDestination:
		return c.destinations(sc.source)
	case command.PlaceholderFieldName:
		return c.fields(sc.class)
	case command.PlaceholderMethodSignature:
		return c.signatures(sc.class)
	case command.PlaceholderParamName:
		return c.parameters(sc.class, sc.sig)
	case command.PlaceholderRelationshipType:
		return slicex.Map(model.RelationshipTypes(), model.RelationshipType.String)
	default:
		return nil
	}
}

func (c *Completer) sources() []string {
	return slicex.Unique(slicex.Map(c.diagram.Relationships(), model.Relationship.Source))
}

func (c *Completer) destinations(source string) []string {
	var out []string
	for _, r := range c.diagram.Relationships() {
		if r.Source() == source {
			out = append(out, r.Destination())
		}
	}
	return out
}

func (c *Completer) fields(class string) []string {
	cls, err := c.diagram.Class(class)
	if err != nil {
		return nil
	}
	return slicex.Map(cls.Fields(), model.Field.Name)
}

func (c *Completer) signatures(class string) []string {
	cls, err := c.diagram.Class(class)
	if err != nil {
		return nil
	}
	return slicex.Map(cls.Methods(), model.Method.SignatureString)
}

func (c *Completer) parameters(class, signature string) []string {
	cls, err := c.diagram.Class(class)
	if err != nil {
		return nil
	}
	sig, err := model.ParseMethodSignature(signature)
	if err != nil {
		return nil
	}
	m, err := cls.Method(sig)
	if err != nil {
		return nil
	}
	return slicex.Map(m.Parameters(), model.Parameter.Name)
}
