package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/HicaroD/brush/internal/diagnostics"
	"github.com/HicaroD/brush/internal/lexer/token"
)

// Returned by peekChar past the end of the source. A NUL byte inside the
// source is told apart through atEnd.
const eof = '\000'

type Lexer struct {
	Collector *diagnostics.Collector

	src    []byte
	offset int
	pos    token.Pos
}

func New(filename string, src []byte, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Collector = collector
	lexer.pos = token.NewPosition(filename, 1, 1)
	lexer.src = src
	lexer.offset = 0

	return lexer
}

func (lex *Lexer) Peek() *token.Token {
	prevPos := lex.pos
	prevOffset := lex.offset

	token := lex.Next()

	lex.pos = prevPos
	lex.offset = prevOffset
	return token
}

func (lex *Lexer) Next() *token.Token {
	lex.skipWhitespace()
	character := lex.peekChar()

	tok := &token.Token{}
	tok.Kind = token.INVALID

	if lex.atEnd() {
		lex.consumeTokenNoLex(tok, token.EOF)
		return tok
	}

	token := lex.getToken(tok, character)
	return token
}

// Tokenize lexes the whole source. The token stream always ends with a
// single EOF token.
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		if tok.Kind == token.INVALID {
			return nil, diagnostics.COMPILER_ERROR_FOUND
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, nil
}

func (lex *Lexer) getToken(tok *token.Token, ch byte) *token.Token {
	switch ch {
	case '\n':
		lex.consumeTokenNoLex(tok, token.NEWLINE)
		lex.nextChar()
	case '(':
		lex.consumeTokenNoLex(tok, token.OPEN_PAREN)
		lex.nextChar()
	case ')':
		lex.consumeTokenNoLex(tok, token.CLOSE_PAREN)
		lex.nextChar()
	case '{':
		lex.consumeTokenNoLex(tok, token.OPEN_CURLY)
		lex.nextChar()
	case '}':
		lex.consumeTokenNoLex(tok, token.CLOSE_CURLY)
		lex.nextChar()
	case '"':
		lex.getTextLit(tok)
	case ';':
		lex.consumeTokenNoLex(tok, token.SEMICOLON)
		lex.nextChar()
	case '+':
		lex.consumeTokenNoLex(tok, token.PLUS)
		lex.nextChar()
	case '-':
		lex.consumeTokenNoLex(tok, token.MINUS)
		lex.nextChar()
	case '*':
		lex.consumeTokenNoLex(tok, token.STAR)
		lex.nextChar()
	case '/':
		lex.consumeTokenNoLex(tok, token.SLASH)
		lex.nextChar()
	case '%':
		lex.consumeTokenNoLex(tok, token.PERCENT)
		lex.nextChar()
	case '#':
		lex.getComment(tok)
	case '!':
		tok.Pos = lex.pos
		lex.nextChar() // !

		next := lex.peekChar()
		if next == '=' {
			lex.nextChar() // =
			tok.Kind = token.BANG_EQUAL
			return tok
		}
		lex.reportInvalidCharacter(tok.Pos, '!')
	case '>':
		tok.Pos = lex.pos

		tok.Kind = token.GREATER
		lex.nextChar() // >

		next := lex.peekChar()
		if next != '=' {
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.GREATER_EQ
	case '<':
		tok.Kind = token.LESS
		tok.Pos = lex.pos
		lex.nextChar() // <

		next := lex.peekChar()
		if next != '=' {
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.LESS_EQ
	case '=':
		tok.Kind = token.EQUAL
		tok.Pos = lex.pos
		lex.nextChar() // =

		next := lex.peekChar()
		if next != '=' {
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.EQUAL_EQUAL
	default:
		if isIdentStart(ch) {
			lex.getIdOrKeyword(tok)
		} else if isDigit(ch) {
			lex.getNumberLit(tok)
		} else {
			lex.reportInvalidRune(lex.pos)
		}
	}
	return tok
}

func (lex *Lexer) reportInvalidCharacter(pos token.Pos, ch byte) {
	lex.reportInvalid(pos, rune(ch))
}

// reportInvalidRune reports the whole UTF-8 sequence at the cursor
func (lex *Lexer) reportInvalidRune(pos token.Pos) {
	r, _ := utf8.DecodeRune(lex.src[lex.offset:])
	lex.reportInvalid(pos, r)
}

func (lex *Lexer) reportInvalid(pos token.Pos, r rune) {
	message := fmt.Sprintf("invalid character %c", r)
	if !unicode.IsPrint(r) || r == utf8.RuneError {
		message = fmt.Sprintf("invalid character %U", r)
	}
	invalidCharacter := diagnostics.Diag{
		Pos:     pos,
		Message: message,
	}
	lex.Collector.ReportAndSave(invalidCharacter)
}

// Shell variable names are ASCII only
func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (lex *Lexer) getComment(tok *token.Token) {
	tok.Pos = lex.pos
	tok.Kind = token.COMMENT
	tok.Lexeme = lex.readWhile(func(ch byte) bool { return ch != '\n' })
}

func (lex *Lexer) getTextLit(tok *token.Token) *token.Token {
	tok.Pos = lex.pos
	lex.nextChar() // "

	str := []byte{}
	for {
		ch := lex.peekChar()
		if lex.atEnd() || ch == '"' {
			break
		}
		if ch == 0 {
			lex.reportInvalidCharacter(lex.pos, ch)
			return tok
		}

		if ch == '\\' {
			escapePos := lex.pos
			lex.nextChar()
			if lex.atEnd() {
				break
			}
			escapeSym := lex.peekChar()

			var escape byte

			switch escapeSym {
			case 'n':
				escape = '\n'
			case 't':
				escape = '\t'
			case '\\':
				escape = '\\'
			case '"':
				escape = '"'
			case '$':
				escape = '$'
			default:
				invalidEscape := diagnostics.Diag{
					Pos:     escapePos,
					Message: fmt.Sprintf("invalid escape sequence \\%c", escapeSym),
				}
				lex.Collector.ReportAndSave(invalidEscape)
				return tok
			}
			str = append(str, escape)
		} else {
			str = append(str, ch)
		}

		lex.nextChar()
	}

	if lex.atEnd() || lex.peekChar() != '"' {
		unterminatedTextLiteral := diagnostics.Diag{
			Pos:     tok.Pos,
			Message: "unterminated text literal",
		}
		lex.Collector.ReportAndSave(unterminatedTextLiteral)
		return tok
	}
	lex.nextChar() // "

	tok.Kind = token.TEXT_LITERAL
	tok.Lexeme = str
	return tok
}

func (lex *Lexer) getNumberLit(tok *token.Token) {
	tok.Pos = lex.pos
	var dotFound, dotRepeated bool

	number := lex.readWhile(
		func(chr byte) bool {
			if chr == '.' {
				if dotFound {
					dotRepeated = true
					return false
				}
				dotFound = true
				return true
			}
			return isDigit(chr)
		},
	)

	if dotRepeated || number[len(number)-1] == '.' {
		invalidNumber := diagnostics.Diag{
			Pos:     tok.Pos,
			Message: fmt.Sprintf("invalid number format %s", number),
		}
		lex.Collector.ReportAndSave(invalidNumber)
		return
	}

	tok.Kind = token.NUMBER_LITERAL
	tok.Lexeme = number
}

func (lex *Lexer) getIdOrKeyword(tok *token.Token) {
	tok.Pos = lex.pos
	identifier := lex.readWhile(
		isIdentPart,
	)
	tok.Kind = token.ID
	tok.Lexeme = identifier
	keyword, ok := token.KEYWORDS[string(identifier)]
	if ok {
		tok.Kind = keyword
	}
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	tok.Lexeme = nil
	tok.Kind = kind
	tok.Pos = lex.pos
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(func(ch byte) bool {
		return ch == ' ' || ch == '\t' || ch == '\r'
	})
}

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	var start, end int
	start = lex.offset

	for {
		if lex.atEnd() {
			break
		}

		if isValid(lex.peekChar()) {
			lex.nextChar()
		} else {
			break
		}
	}

	end = lex.offset

	return lex.src[start:end]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) atEnd() bool {
	return lex.offset >= len(lex.src)
}

func (lex *Lexer) peekChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	return character
}
