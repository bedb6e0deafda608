package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStripsBOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("alias X : Int = 1;")...)
	got := Normalize(src)
	assert.Equal(t, "alias X : Int = 1;", string(got))
}

func TestLexerTokenizesPunctuationAndKeywords(t *testing.T) {
	l := New(`alias X : Int = if true then 1 else 2;`, "t.ddl")
	var kinds []TokenKind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EOF {
			break
		}
	}
	want := []TokenKind{ALIAS, IDENT, COLON, IDENT, ASSIGN, IF, IDENT, THEN, INT, ELSE, INT, SEMI, EOF}
	assert.Equal(t, want, kinds)
}

func TestLexerCapturesDocCommentNotOrdinaryComment(t *testing.T) {
	l := New("// ordinary\n/// doc line\nalias X : Int = 1;", "t.ddl")
	for l.NextToken().Kind != ALIAS {
	}
	require.Equal(t, "doc line", l.TakeDoc())
}

func TestLexerDistinguishesIntAndFloat(t *testing.T) {
	l := New("1 1.5", "t.ddl")
	tok := l.NextToken()
	assert.Equal(t, INT, tok.Kind)
	tok = l.NextToken()
	assert.Equal(t, FLOAT, tok.Kind)
	assert.Equal(t, "1.5", tok.Literal)
}
