// Package reader implements the recursive-descent parser that turns a
// lexer.Lexer's token stream into a single Value tree (spec.md §4.1).
package reader

import (
	"strconv"
	"strings"

	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/lexer"
	"github.com/golisp-lang/golisp/internal/runtime"
	"github.com/golisp-lang/golisp/internal/token"
)

// Reader consumes a queue of tokens with peek/pop operations and returns
// a single Value per call to Read.
type Reader struct {
	tokens []token.Token
	pos    int
}

// New wraps a pre-tokenized stream for reading.
func New(tokens []token.Token) *Reader {
	return &Reader{tokens: tokens}
}

// ReadString tokenizes src and reads exactly one top-level Value from it.
func ReadString(src string) (runtime.Value, error) {
	r := New(lexer.New(src).Tokens())
	return r.Read()
}

func (r *Reader) peek() token.Token {
	if r.pos >= len(r.tokens) {
		return token.Token{Type: token.EOF}
	}
	return r.tokens[r.pos]
}

func (r *Reader) next() token.Token {
	t := r.peek()
	if r.pos < len(r.tokens) {
		r.pos++
	}
	return t
}

// Read parses one top-level form, skipping leading comments, and returns
// a ParseError("empty") if the token stream holds only comments or
// nothing at all.
func (r *Reader) Read() (runtime.Value, error) {
	for {
		t := r.peek()
		if t.Type == token.EOF {
			return nil, errors.NewParseError("empty")
		}
		if t.Type == token.Comment {
			r.next()
			continue
		}
		return r.readForm()
	}
}

func (r *Reader) readForm() (runtime.Value, error) {
	t := r.peek()
	switch t.Type {
	case token.EOF:
		return nil, errors.NewParseError("empty")
	case token.Comment:
		r.next()
		return runtime.Comment{}, nil
	case token.LParen:
		r.next()
		items, err := r.readSequence(token.RParen, ")")
		if err != nil {
			return nil, err
		}
		return &runtime.List{Items: items}, nil
	case token.LBracket:
		r.next()
		items, err := r.readSequence(token.RBracket, "]")
		if err != nil {
			return nil, err
		}
		return &runtime.Vector{Items: items}, nil
	case token.LBrace:
		r.next()
		return r.readDictionary()
	case token.RParen, token.RBracket, token.RBrace:
		r.next()
		return nil, errors.NewParseErrorAt("unexpected '"+t.Literal+"'", t.Pos.Line, t.Pos.Column)
	case token.Quote:
		r.next()
		return r.readWrapped("quote")
	case token.Backtick:
		r.next()
		return r.readWrapped("quasiquote")
	case token.Tilde:
		r.next()
		return r.readWrapped("unquote")
	case token.TildeSplice:
		r.next()
		return r.readWrapped("splice-unquote")
	case token.At:
		r.next()
		return r.readDeref()
	case token.Str:
		r.next()
		return r.readString(t)
	default: // token.Word
		r.next()
		return r.readAtom(t)
	}
}

// readWrapped reads the one following form and wraps it as
// (sym <form>), for the quote/quasiquote/unquote/splice-unquote readers.
func (r *Reader) readWrapped(sym string) (runtime.Value, error) {
	inner, err := r.readForm()
	if err != nil {
		return nil, err
	}
	return runtime.NewList(runtime.Symbol(sym), inner), nil
}

// readDeref handles `@atom`: a deliberate asymmetry (spec.md §4.1) where
// only a single non-delimited token is read, not a full form.
func (r *Reader) readDeref() (runtime.Value, error) {
	t := r.next()
	if t.Type != token.Word {
		return nil, errors.NewParseErrorAt("expected atom name after '@'", t.Pos.Line, t.Pos.Column)
	}
	atom, err := r.readAtom(t)
	if err != nil {
		return nil, err
	}
	return runtime.NewList(runtime.Symbol("deref"), atom), nil
}

func (r *Reader) readSequence(term token.Type, termLit string) ([]runtime.Value, error) {
	var items []runtime.Value
	for {
		t := r.peek()
		if t.Type == token.EOF {
			return nil, errors.NewParseError("unclosed bracket")
		}
		if t.Type == term {
			r.next()
			return items, nil
		}
		if t.Type == token.Comment {
			r.next()
			continue
		}
		v, err := r.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (r *Reader) readDictionary() (runtime.Value, error) {
	dict := runtime.NewDictionary()
	for {
		t := r.peek()
		if t.Type == token.EOF {
			return nil, errors.NewParseError("unclosed bracket")
		}
		if t.Type == token.RBrace {
			r.next()
			return dict, nil
		}
		if t.Type == token.Comment {
			r.next()
			continue
		}
		key, err := r.readForm()
		if err != nil {
			return nil, err
		}
		// Skip the ":" separator that the canonical print form writes
		// after a String key. A colon glued to any other key token is
		// part of that token's word.
		if sep := r.peek(); sep.Type == token.Word && sep.Literal == ":" {
			r.next()
		}
		valTok := r.peek()
		if valTok.Type == token.RBrace || valTok.Type == token.EOF {
			return nil, errors.NewParseError("odd number of forms in dictionary literal")
		}
		val, err := r.readForm()
		if err != nil {
			return nil, err
		}
		dict.Set(runtime.DictKey(key), val)
	}
}

func (r *Reader) readString(t token.Token) (runtime.Value, error) {
	lit := t.Literal
	if len(lit) < 2 || lit[len(lit)-1] != '"' {
		return nil, errors.NewParseErrorAt("unterminated string", t.Pos.Line, t.Pos.Column)
	}
	inner := lit[1 : len(lit)-1]
	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				sb.WriteByte('\n')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(inner[i])
			}
			continue
		}
		sb.WriteByte(c)
	}
	return runtime.String(sb.String()), nil
}

func (r *Reader) readAtom(t token.Token) (runtime.Value, error) {
	txt := t.Literal
	switch txt {
	case "true":
		return runtime.Bool(true), nil
	case "false":
		return runtime.Bool(false), nil
	case "nil":
		return runtime.Nil{}, nil
	}
	if txt == "" {
		return nil, errors.NewParseErrorAt("unparseable atom", t.Pos.Line, t.Pos.Column)
	}
	if i, err := strconv.ParseInt(txt, 10, 64); err == nil {
		return runtime.Integer(i), nil
	}
	if looksFloat(txt) {
		if f, err := strconv.ParseFloat(txt, 64); err == nil {
			return runtime.Float(f), nil
		}
	}
	return runtime.Symbol(txt), nil
}

// looksFloat reports whether txt contains a '.', which is the spec's
// signal to attempt a decimal parse rather than falling through to a
// Symbol for things like "1.2.3".
func looksFloat(txt string) bool {
	for _, r := range txt {
		if r == '.' {
			return true
		}
	}
	return false
}
