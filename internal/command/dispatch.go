package command

import (
	"strings"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/foundation/utils/stringx"
)

// Parse tokenizes a raw line on runs of whitespace and dispatches it.
func Parse(line string) (*Command, error) {
	return Build(stringx.Words(line))
}

// Build matches tokens against the catalog and constructs the single
// command they select.
func Build(tokens []string) (*Command, error) {
	if len(tokens) == 0 {
		return nil, dispatchError("Empty command")
	}

	candidates := make([]int, len(catalog))
	for i := range catalog {
		candidates[i] = i
	}

	for pos, token := range tokens {
		candidates = narrow(candidates, pos, token)
		if len(candidates) == 1 {
			return bind(catalog[candidates[0]], tokens)
		}
		if len(candidates) == 0 {
			break
		}
	}

	if len(candidates) == 0 {
		return nil, dispatchError("Invalid command. View a list of commands with 'help'")
	}
	var b strings.Builder
	b.WriteString("Command requires subcommand:")
	for _, i := range candidates {
		b.WriteString("\n  ")
		b.WriteString(catalog[i].template)
	}
	return nil, mumlerr.New(b.String()).
		WithCode(mumlerr.CodeDispatch).
		WithDetail("candidates", len(candidates))
}

// Candidates returns the templates still consistent with a token prefix.
func Candidates(tokens []string) []string {
	candidates := make([]int, len(catalog))
	for i := range catalog {
		candidates[i] = i
	}
	for pos, token := range tokens {
		candidates = narrow(candidates, pos, token)
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = catalog[c].template
	}
	return out
}

func narrow(candidates []int, pos int, token string) []int {
	kept := candidates[:0]
	for _, i := range candidates {
		words := catalog[i].words
		if pos < len(words) && (words[pos] == token || IsPlaceholder(words[pos])) {
			kept = append(kept, i)
		}
	}
	return kept
}

// bind checks the token count against the template and parses every
// placeholder. Only the first failing placeholder is reported.
func bind(e entry, tokens []string) (*Command, error) {
	if len(tokens) != len(e.words) {
		return nil, dispatchError("Invalid number of arguments: got %d but expected %d", len(tokens), len(e.words)).
			WithDetail("template", e.template)
	}

	values := make([]interface{}, 0, len(e.words))
	for i, word := range e.words {
		if !IsPlaceholder(word) {
			continue
		}
		v, err := parseArg(word, tokens[i])
		if err != nil {
			code := mumlerr.GetCode(err)
			if code == mumlerr.CodeUnknown {
				code = mumlerr.CodeGrammar
			}
			return nil, mumlerr.Newf("Error: %s. Usage: '%s'", err.Error(), e.template).
				WithCode(code).
				WithDetail("template", e.template).
				WithDetail("placeholder", word)
		}
		values = append(values, v)
	}

	return &Command{
		kind:   e.kind,
		tokens: append([]string(nil), tokens...),
		action: e.build(&args{values: values}),
	}, nil
}

func dispatchError(format string, a ...interface{}) *mumlerr.Error {
	return mumlerr.Newf(format, a...).WithCode(mumlerr.CodeDispatch)
}
