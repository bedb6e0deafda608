package surface

import (
	"fmt"
	"math/big"

	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/srcspan"
)

// Parser is a recursive-descent, single-token-lookahead parser over the
// grammar in §6.1. Syntax errors are collected into a diag.Sink rather
// than aborting the whole parse, mirroring the diagnostic-collection
// discipline the elaborator uses — but unlike elaboration, a malformed
// item is simply dropped rather than replaced with an error node, since
// surface syntax has no ErrorTerm equivalent to recover into.
type Parser struct {
	lex  *Lexer
	file string
	sink *diag.Sink

	cur  Token
	peek Token
}

// NewParser builds a parser over src, which must already have been run
// through Normalize.
func NewParser(src []byte, file string, sink *diag.Sink) *Parser {
	p := &Parser{lex: New(string(src), file), file: file, sink: sink}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) pos(t Token) srcspan.Pos {
	return srcspan.Pos{File: p.file, Line: t.Line, Column: t.Column}
}

func (p *Parser) spanFrom(start Token) srcspan.Span {
	return srcspan.Span{Start: p.pos(start), End: p.pos(p.cur)}
}

func (p *Parser) errorf(t Token, format string, args ...interface{}) {
	sp := srcspan.Span{Start: p.pos(t), End: p.pos(t)}
	msg := fmt.Sprintf(format, args...)
	p.sink.Add(diag.New(diag.SYNUnexpectedToken, "parse", msg, &sp))
}

func (p *Parser) expect(k TokenKind, what string) (Token, bool) {
	if p.cur.Kind != k {
		p.errorf(p.cur, "expected %s, found %q", what, p.cur.Literal)
		return p.cur, false
	}
	t := p.cur
	p.next()
	return t, true
}

// synchronize skips tokens until the next item boundary (ALIAS, STRUCT,
// or EOF) after a syntax error, the same recovery point the teacher's
// parser resynchronizes on after a bad declaration.
func (p *Parser) synchronize() {
	for p.cur.Kind != EOF && p.cur.Kind != ALIAS && p.cur.Kind != STRUCT {
		p.next()
	}
}

// ParseTerm parses a single standalone term and reports a trailing-token
// error if anything besides EOF follows it. Exported for collaborators
// that work one term at a time rather than a whole module (the REPL's
// :elab/:eval commands).
func (p *Parser) ParseTerm() Term {
	t := p.parseTerm()
	if t == nil {
		return nil
	}
	if p.cur.Kind != EOF {
		p.errorf(p.cur, "unexpected trailing input %q", p.cur.Literal)
		return nil
	}
	return t
}

// ParseModule parses a whole file into an ordered Module. Items that fail
// to parse are skipped (after resynchronizing) rather than aborting the
// rest of the file, so a single syntax error doesn't hide every other
// diagnostic a caller might want in one pass.
func (p *Parser) ParseModule() *Module {
	var items []Item
	for p.cur.Kind != EOF {
		doc := p.lex.TakeDoc()
		before := p.cur
		item := p.parseItem(doc)
		if item == nil {
			p.synchronize()
			if p.cur == before {
				p.next() // guarantee forward progress on a token synchronize can't skip past
			}
			continue
		}
		items = append(items, item)
	}
	return &Module{Items: items}
}

func parseBigInt(lit string) *big.Int {
	n := new(big.Int)
	n.SetString(lit, 10)
	return n
}
