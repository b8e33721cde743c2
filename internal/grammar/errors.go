package grammar

import (
	"fmt"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
)

// SyntaxError is a grammar failure at a byte offset of Input.
type SyntaxError struct {
	Message string
	Offset  int
	Input   string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

func syntaxError(input string, offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		Input:   input,
	}
}

func extraCharacters(input string, offset int) *SyntaxError {
	return syntaxError(input, offset, "extra characters encountered: %s", input[offset:])
}

// Check runs a whole-input validator and rephrases its failure as
// "Invalid <tag>: '<value>'. Reason: <reason>".
func Check(tag, value string, validate func(string) error) error {
	if err := validate(value); err != nil {
		return mumlerr.Newf("Invalid %s: '%s'. Reason: %s", tag, value, err.Error()).
			WithCode(mumlerr.CodeGrammar).
			WithDetail("tag", tag)
	}
	return nil
}

// CheckIdentifier validates value as an Identifier.
func CheckIdentifier(tag, value string) error {
	return Check(tag, value, ValidateIdentifier)
}

// CheckType validates value as a Type expression.
func CheckType(tag, value string) error {
	return Check(tag, value, ValidateType)
}
