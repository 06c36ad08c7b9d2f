package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota
	INVALID

	// Identifier
	ID

	// Literals
	NUMBER_LITERAL
	TEXT_LITERAL

	// # until the end of the line
	COMMENT

	// \n
	NEWLINE

	// Keywords
	LET
	IF
	ELSE
	ECHO
	NOT
	AND
	OR
	TRUE_BOOL_LITERAL
	FALSE_BOOL_LITERAL
	NULL_LITERAL

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY

	// ;
	SEMICOLON

	// =
	EQUAL
	// !=
	BANG_EQUAL
	// ==
	EQUAL_EQUAL

	// >
	GREATER
	// >=
	GREATER_EQ
	// <
	LESS
	// <=
	LESS_EQ

	// +
	PLUS
	// -
	MINUS
	// *
	STAR
	// /
	SLASH
	// %
	PERCENT
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"let":  LET,
	"if":   IF,
	"else": ELSE,
	"echo": ECHO,
	"not":  NOT,
	"and":  AND,
	"or":   OR,

	"true":  TRUE_BOOL_LITERAL,
	"false": FALSE_BOOL_LITERAL,
	"null":  NULL_LITERAL,
}

var LITERAL_KIND map[Kind]bool = map[Kind]bool{
	NUMBER_LITERAL:     true,
	TEXT_LITERAL:       true,
	TRUE_BOOL_LITERAL:  true,
	FALSE_BOOL_LITERAL: true,
	NULL_LITERAL:       true,
}

func (kind Kind) IsLiteral() bool {
	_, ok := LITERAL_KIND[kind]
	return ok
}

func (kind Kind) IsKeyword() bool {
	_, ok := KEYWORDS[kind.String()]
	return ok
}

// Statement separators recognized by blocks
func (kind Kind) IsSeparator() bool {
	return kind == NEWLINE || kind == SEMICOLON
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of file"
	case INVALID:
		return "INVALID"
	case ID:
		return "identifier"
	case NUMBER_LITERAL:
		return "number literal"
	case TEXT_LITERAL:
		return "text literal"
	case COMMENT:
		return "comment"
	case NEWLINE:
		return "newline"
	case LET:
		return "let"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case ECHO:
		return "echo"
	case NOT:
		return "not"
	case AND:
		return "and"
	case OR:
		return "or"
	case TRUE_BOOL_LITERAL:
		return "true"
	case FALSE_BOOL_LITERAL:
		return "false"
	case NULL_LITERAL:
		return "null"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case SEMICOLON:
		return ";"
	case EQUAL:
		return "="
	case BANG_EQUAL:
		return "!="
	case EQUAL_EQUAL:
		return "=="
	case GREATER:
		return ">"
	case GREATER_EQ:
		return ">="
	case LESS:
		return "<"
	case LESS_EQ:
		return "<="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	default:
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
}
