package compiler

import (
	"github.com/HicaroD/brush/internal/lexer/token"
	"github.com/HicaroD/brush/internal/modules"
)

const SESSION_FILENAME = "<repl>"

// Session compiles snippets one after another, keeping the declarations of
// previously accepted snippets visible to the next ones. Only the statements
// of the latest snippet are returned.
//
// Every snippet is lexed on its own, so diagnostics carry positions relative
// to the snippet being evaluated.
type Session struct {
	compiler *Compiler
	history  []*token.Token
	emitted  int
}

func NewSession(c *Compiler) *Session {
	return &Session{compiler: c}
}

// Eval compiles snippet on top of the accepted history. A failing snippet is
// discarded and leaves the session unchanged.
func (s *Session) Eval(snippet string) (string, error) {
	tokens, err := s.compiler.Tokenize(SESSION_FILENAME, []byte(snippet))
	if err != nil {
		return "", err
	}

	stream := make([]*token.Token, 0, len(s.history)+len(tokens))
	stream = append(stream, s.history...)
	stream = append(stream, tokens...)

	block, err := s.compiler.ParseTokens(SESSION_FILENAME, stream)
	if err != nil {
		return "", err
	}

	fresh := modules.NewBlock()
	fresh.SetScopeless()
	for _, statement := range block.Statements()[s.emitted:] {
		fresh.PushStatement(statement)
	}

	// the snippet's EOF becomes the separator before the next snippet
	eof := tokens[len(tokens)-1]
	s.history = append(s.history, tokens[:len(tokens)-1]...)
	s.history = append(s.history, token.New(nil, token.NEWLINE, eof.Pos))
	s.emitted = len(block.Statements())

	if fresh.IsEmpty() {
		return "", nil
	}
	return s.compiler.Translate(fresh), nil
}

// Reset forgets every accepted snippet
func (s *Session) Reset() {
	s.history = nil
	s.emitted = 0
}
