package elab

import (
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/surface"
)

// inferAnn implements "Annotations (e : τ) switch infer into
// check(e, eval(τ))" (§4.3). τ itself is elaborated first, checked
// against Kind so both Type- and Format-classified annotations are
// accepted (an alias can be annotated either with a host type or a
// format), then used as the expected type for the body.
func inferAnn(c Ctx, n *surface.Ann) (core.Term, core.Term, error) {
	typ, err := Check(c, n.Type, universeTerm(core.UKind, n.Type.Span()))
	if err != nil {
		return nil, nil, err
	}
	body, err := Check(c, n.Expr, typ)
	if err != nil {
		return nil, nil, err
	}
	return body, typ, nil
}
