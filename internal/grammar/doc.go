// Package grammar implements the recursive-descent recognizers of the
// diagram command language: identifiers, type expressions, type lists,
// named parameter lists, method signatures and method definitions.
//
// Every function works on byte offsets into the original text and never
// skips whitespace. The Parse* functions that take a start offset return the
// offset just past what they consumed; the whole-input entry points fail with
// "extra characters encountered: <suffix>" when anything is left over.
//
//	Type     := Identifier [ Open TypeList Close ] '*'*
//	TypeList := Type ( ',' Type )*
//	Param    := Identifier ':' Type
//	Sig      := Identifier '(' [ TypeList ] ')'
//	Method   := Identifier '(' [ Param ( ',' Param )* ] ')' '->' Type
package grammar
