package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestREPL() (*REPL, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&buf), &buf
}

func TestCmdEvalReportsSyntaxErrorForOperator(t *testing.T) {
	r, buf := newTestREPL()
	r.dispatch(":eval 1 + 1")
	// The language has no arithmetic operator, so the parser rejects the
	// trailing '+' as a syntax error (SYN001) — confirms parse errors
	// surface through the REPL rather than panicking.
	assert.Contains(t, buf.String(), "SYN001")
}

func TestCmdEvalBareExpression(t *testing.T) {
	r, buf := newTestREPL()
	r.dispatch("true")
	assert.Contains(t, buf.String(), "=")
	assert.Contains(t, buf.String(), "true")
	assert.Contains(t, buf.String(), "Bool")
}

func TestCmdElabPrintsCoreAndType(t *testing.T) {
	r, buf := newTestREPL()
	r.dispatch(":elab U8")
	assert.Contains(t, buf.String(), "core:")
	assert.Contains(t, buf.String(), "U8")
	assert.Contains(t, buf.String(), "Format")
}

func TestCmdParseDecodesHexAgainstType(t *testing.T) {
	r, buf := newTestREPL()
	r.dispatch(":parse U8 07")
	assert.Contains(t, buf.String(), "= 7")
}

func TestCmdParseInvalidHexReportsError(t *testing.T) {
	r, buf := newTestREPL()
	r.dispatch(":parse U8 zz")
	assert.Contains(t, buf.String(), "invalid hex")
}

func TestUnknownCommandReportsError(t *testing.T) {
	r, buf := newTestREPL()
	r.dispatch(":bogus")
	assert.Contains(t, buf.String(), "unknown command")
}

func TestHelpListsCommands(t *testing.T) {
	r, buf := newTestREPL()
	r.dispatch(":help")
	assert.Contains(t, buf.String(), ":parse")
	assert.Contains(t, buf.String(), ":elab")
	assert.Contains(t, buf.String(), ":eval")
}
