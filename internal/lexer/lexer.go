// Package lexer tokenizes golisp source text for internal/reader.
//
// The whole tokenizer is one greedy regular expression (spec.md §4.1):
// applying it repeatedly against the remaining input produces the token
// stream in priority order -- whitespace/commas, the two-character
// `~@`, single bracket/quote punctuation, double-quoted strings (escapes
// honored, unterminated forms still captured), `;` comments, and finally
// any other run of non-whitespace, non-bracket, non-quote characters.
// This mirrors the teacher's hand-written state-machine lexer in spirit
// (internal/lexer/lexer.go in the teacher repo) but, per spec.md, is
// regex-driven rather than character-by-character.
package lexer

import (
	"regexp"
	"strings"

	"github.com/golisp-lang/golisp/internal/token"
)

// tokenRegexp captures, per alternative in priority order:
//  1. [\s,]*                         leading run of whitespace/commas (skipped)
//  2. ~@                             two-char splice-unquote punctuation
//  3. [\[\]{}()'`~^@]                single bracket/quote punctuation
//  4. "(?:\\.|[^\\"])*"?             a double-quoted string, escapes honored,
//                                    closing quote optional (unterminated form)
//  5. ;.*                            a comment through end of line
//  6. [^\s\[\]{}('"`,;)]*            anything else: a "word" run
var tokenRegexp = regexp.MustCompile(`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`)

// Lexer produces the token stream for one source text. It tokenizes the
// entire input up front (the spec's regex is applied repeatedly over the
// whole string) and then serves tokens one at a time via NextToken, the
// same streaming shape as the teacher's lexer.Lexer.
type Lexer struct {
	tokens []token.Token
	pos    int
}

// New tokenizes input and returns a Lexer ready to stream it.
func New(input string) *Lexer {
	return &Lexer{tokens: tokenize(input)}
}

// NextToken returns the next token, or an EOF token once exhausted.
func (l *Lexer) NextToken() token.Token {
	if l.pos >= len(l.tokens) {
		return token.Token{Type: token.EOF}
	}
	t := l.tokens[l.pos]
	l.pos++
	return t
}

// Tokens returns every token without consuming the Lexer's own cursor.
// The slice holds no trailing EOF token.
func (l *Lexer) Tokens() []token.Token {
	return l.tokens
}

func tokenize(input string) []token.Token {
	var out []token.Token
	line, col := 1, 1

	advance := func(s string) {
		for _, r := range s {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
	}

	matches := tokenRegexp.FindAllStringSubmatchIndex(input, -1)
	for _, m := range matches {
		whole := input[m[0]:m[1]]
		capStart, capEnd := m[2], m[3]
		if capStart < 0 || capStart == capEnd {
			// Pure whitespace/comma run with no captured token, or an
			// empty match at end of input; consume and move on.
			advance(whole)
			continue
		}
		leading := input[m[0]:capStart]
		lit := input[capStart:capEnd]
		advance(leading)
		pos := token.Position{Line: line, Column: col}
		out = append(out, classify(lit, pos))
		advance(lit)
	}
	return out
}

func classify(lit string, pos token.Position) token.Token {
	switch lit {
	case "(":
		return token.Token{Type: token.LParen, Literal: lit, Pos: pos}
	case ")":
		return token.Token{Type: token.RParen, Literal: lit, Pos: pos}
	case "[":
		return token.Token{Type: token.LBracket, Literal: lit, Pos: pos}
	case "]":
		return token.Token{Type: token.RBracket, Literal: lit, Pos: pos}
	case "{":
		return token.Token{Type: token.LBrace, Literal: lit, Pos: pos}
	case "}":
		return token.Token{Type: token.RBrace, Literal: lit, Pos: pos}
	case "'":
		return token.Token{Type: token.Quote, Literal: lit, Pos: pos}
	case "`":
		return token.Token{Type: token.Backtick, Literal: lit, Pos: pos}
	case "~":
		return token.Token{Type: token.Tilde, Literal: lit, Pos: pos}
	case "~@":
		return token.Token{Type: token.TildeSplice, Literal: lit, Pos: pos}
	case "@":
		return token.Token{Type: token.At, Literal: lit, Pos: pos}
	}
	if strings.HasPrefix(lit, ";") {
		return token.Token{Type: token.Comment, Literal: lit, Pos: pos}
	}
	if strings.HasPrefix(lit, `"`) {
		return token.Token{Type: token.Str, Literal: lit, Pos: pos}
	}
	return token.Token{Type: token.Word, Literal: lit, Pos: pos}
}
