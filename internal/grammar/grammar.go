package grammar

import (
	"strconv"
)

var closers = map[byte]byte{
	'(': ')',
	'[': ']',
	'<': '>',
}

func isAlpha(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || c == '_'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || ('0' <= c && c <= '9')
}

// ParseIdentifier recognizes [A-Za-z_][A-Za-z0-9_]* starting at start.
func ParseIdentifier(text string, start int) (int, error) {
	if start >= len(text) {
		return start, syntaxError(text, start, "expected identifier but was empty")
	}
	if !isAlpha(text[start]) {
		return start, syntaxError(text, start, "expected identifier saw non-alphabetic '%c' at index %d", text[start], start)
	}
	end := start + 1
	for end < len(text) && isAlnum(text[end]) {
		end++
	}
	return end, nil
}

// ParseType recognizes a Type expression starting at start.
func ParseType(text string, start int) (int, error) {
	pos, err := ParseIdentifier(text, start)
	if err != nil {
		return pos, err
	}
	if pos == len(text) {
		return pos, nil
	}

	closing, ok := closers[text[pos]]
	if !ok {
		return skipStars(text, pos), nil
	}

	pos++
	if pos == len(text) {
		return pos, syntaxError(text, pos, "Expected more after type specifier")
	}
	for {
		pos, err = ParseType(text, pos)
		if err != nil {
			return pos, err
		}
		if pos == len(text) {
			return pos, syntaxError(text, pos, "Unexpected end to type list")
		}
		if text[pos] == closing {
			break
		}
		if text[pos] != ',' {
			return pos, syntaxError(text, pos, "Expected ',' but got '%c' at index %d", text[pos], pos)
		}
		pos++
	}
	return skipStars(text, pos+1), nil
}

func skipStars(text string, pos int) int {
	for pos < len(text) && text[pos] == '*' {
		pos++
	}
	return pos
}

// ParseTypeList recognizes zero or more comma separated types. It stops
// without error when no type starts at start, or at the first character
// after a type that is not a comma.
func ParseTypeList(text string, start int) ([]string, int, error) {
	types := []string{}
	end, err := ParseType(text, start)
	if err != nil {
		return types, start, nil
	}
	types = append(types, text[start:end])

	pos := end
	for pos < len(text) && text[pos] == ',' {
		pos++
		if pos == len(text) {
			return types, pos, syntaxError(text, pos, "Unexpected end of type list after comma")
		}
		end, err = ParseType(text, pos)
		if err != nil {
			return types, pos, err
		}
		types = append(types, text[pos:end])
		pos = end
	}
	return types, pos, nil
}

// ParamSpec is a parsed "name:type" pair.
type ParamSpec struct {
	Name string
	Type string
}

// ParseParameter recognizes Identifier ':' Type starting at start.
func ParseParameter(text string, start int) (ParamSpec, int, error) {
	colon, err := ParseIdentifier(text, start)
	if err != nil {
		return ParamSpec{}, colon, err
	}
	if colon == len(text) || text[colon] != ':' {
		return ParamSpec{}, colon, syntaxError(text, colon, "missing colon at index %d", colon)
	}
	end, err := ParseType(text, colon+1)
	if err != nil {
		return ParamSpec{}, end, err
	}
	return ParamSpec{Name: text[start:colon], Type: text[colon+1 : end]}, end, nil
}

// ParseParameterList recognizes zero or more comma separated parameters.
// Like ParseTypeList it stops silently if the first element does not parse.
func ParseParameterList(text string, start int) ([]ParamSpec, int, error) {
	params := []ParamSpec{}
	p, end, err := ParseParameter(text, start)
	if err != nil {
		return params, start, nil
	}
	params = append(params, p)

	pos := end
	for pos < len(text) && text[pos] == ',' {
		pos++
		p, end, err = ParseParameter(text, pos)
		if err != nil {
			return params, end, err
		}
		params = append(params, p)
		pos = end
	}
	return params, pos, nil
}

// SignatureSpec is a parsed method signature.
type SignatureSpec struct {
	Name  string
	Types []string
}

// MethodSpec is a parsed method definition.
type MethodSpec struct {
	Name       string
	Params     []ParamSpec
	ReturnType string
}

// ValidateIdentifier checks that all of text is one Identifier.
func ValidateIdentifier(text string) error {
	end, err := ParseIdentifier(text, 0)
	if err != nil {
		return err
	}
	if end != len(text) {
		return extraCharacters(text, end)
	}
	return nil
}

// ValidateType checks that all of text is one Type expression.
func ValidateType(text string) error {
	end, err := ParseType(text, 0)
	if err != nil {
		return err
	}
	if end != len(text) {
		return extraCharacters(text, end)
	}
	return nil
}

// ParseSignature parses Identifier '(' TypeList ')' covering all of text.
func ParseSignature(text string) (SignatureSpec, error) {
	pos, err := ParseIdentifier(text, 0)
	if err != nil {
		return SignatureSpec{}, err
	}
	name := text[:pos]
	if pos == len(text) || text[pos] != '(' {
		return SignatureSpec{}, syntaxError(text, pos, "missing left parenthesis")
	}

	types, pos, err := ParseTypeList(text, pos+1)
	if err != nil {
		return SignatureSpec{}, err
	}
	if pos == len(text) || text[pos] != ')' {
		return SignatureSpec{}, syntaxError(text, pos, "missing right parenthesis")
	}
	pos++
	if pos != len(text) {
		return SignatureSpec{}, extraCharacters(text, pos)
	}
	return SignatureSpec{Name: name, Types: types}, nil
}

// ParseMethod parses Identifier '(' ParameterList ')' '->' Type covering all of text.
func ParseMethod(text string) (MethodSpec, error) {
	pos, err := ParseIdentifier(text, 0)
	if err != nil {
		return MethodSpec{}, err
	}
	name := text[:pos]
	if pos == len(text) || text[pos] != '(' {
		return MethodSpec{}, syntaxError(text, pos, "missing left parenthesis")
	}

	params, pos, err := ParseParameterList(text, pos+1)
	if err != nil {
		return MethodSpec{}, err
	}
	if pos == len(text) || text[pos] != ')' {
		return MethodSpec{}, syntaxError(text, pos, "missing right parenthesis")
	}
	pos++
	if pos+1 >= len(text) || text[pos] != '-' || text[pos+1] != '>' {
		return MethodSpec{}, syntaxError(text, pos, "missing arrow")
	}
	pos += 2

	end, err := ParseType(text, pos)
	if err != nil {
		return MethodSpec{}, err
	}
	if end != len(text) {
		return MethodSpec{}, extraCharacters(text, end)
	}
	return MethodSpec{Name: name, Params: params, ReturnType: text[pos:end]}, nil
}

// ParseParameters parses a ParameterList covering all of text.
func ParseParameters(text string) ([]ParamSpec, error) {
	params, end, err := ParseParameterList(text, 0)
	if err != nil {
		return nil, err
	}
	if end != len(text) {
		return nil, extraCharacters(text, end)
	}
	return params, nil
}

// ParseInt parses a base-10 integer covering all of text. A leading '-' is
// allowed, a leading '+' or any whitespace is not.
func ParseInt(text string) (int, error) {
	fail := syntaxError(text, 0, "Couldn't parse number from string: %s", text)
	if text == "" || text[0] == '+' {
		return 0, fail
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, fail
	}
	return int(n), nil
}
