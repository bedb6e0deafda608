// Package diag provides the centralized diagnostic taxonomy for ddlc.
// All error codes follow a consistent scheme grouped by compiler phase,
// the same layout the pack's language-implementation teacher uses for its
// own error codes.
package diag

// Error code constants, grouped by the phase that raises them.
const (
	// ============================================================
	// Syntax errors (SYN###)
	// ============================================================

	// SYNUnexpectedToken indicates the parser found a token that cannot
	// start or continue the production it was attempting.
	SYNUnexpectedToken = "SYN001"

	// ============================================================
	// Scope errors (SCP###)
	// ============================================================

	// SCPUnboundName indicates a name resolves to neither a bound
	// binder nor a module global.
	SCPUnboundName = "SCP001"

	// ============================================================
	// Kinding errors (KND###)
	// ============================================================

	// KNDExpectedFormat indicates a term used where a Format-kinded
	// type was required turned out to have a different type.
	KNDExpectedFormat = "KND001"

	// KNDExpectedType indicates a term used where a Type-kinded type
	// was required turned out to have a different type.
	KNDExpectedType = "KND002"

	// ============================================================
	// Typing errors (TYP###)
	// ============================================================

	// TYPMismatch indicates check(e, expected) failed because the
	// inferred/checked type is not definitionally equal to expected.
	TYPMismatch = "TYP001"

	// TYPLiteralOutOfRange indicates a numeric literal, when retyped
	// against a concrete host numeric type, falls outside its range.
	TYPLiteralOutOfRange = "TYP002"

	// TYPDuplicateField indicates a record type repeats a field label.
	TYPDuplicateField = "TYP003"

	// ============================================================
	// Evaluator errors (EVL###)
	// ============================================================

	// EVLUnexpectedBoundVar indicates a bound variable escaped its
	// scope during evaluation — a scoping bug, never expected to fire
	// on well-typed input.
	EVLUnexpectedBoundVar = "EVL001"

	// ============================================================
	// Format-interpreter errors (FMT###)
	// ============================================================

	// FMTInvalidFormat indicates a value was asked to be used as a
	// Format but its head is not one the interpreter can dispatch on.
	FMTInvalidFormat = "FMT001"

	// FMTBadArrayLength indicates an Array's decoded length is
	// negative or exceeds the platform's representable count.
	FMTBadArrayLength = "FMT002"

	// FMTIo indicates the underlying byte source returned an error.
	FMTIo = "FMT003"

	// ============================================================
	// Module errors (MOD###)
	// ============================================================

	// MODCircularReference indicates an item referenced a later item,
	// directly or transitively.
	MODCircularReference = "MOD001"
)
