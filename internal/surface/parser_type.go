package surface

import "strconv"

// There is no separate type grammar: alias annotations, struct field
// types, and Array's element argument are all ordinary Term productions
// per §6.1 (a dependently-typed language has no syntactic type/term
// split at the surface level — the elaborator's universe checks do that
// work instead). This file exists for the teacher-style one-concern-per-
// file split and holds the small amount of literal-parsing plumbing that
// would otherwise clutter parser_term.go.

func parseFloat(lit string) (float64, error) {
	return strconv.ParseFloat(lit, 64)
}
