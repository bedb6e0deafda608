// Package bytesource supplies the byte-source abstraction the format
// interpreter reads through (§6.4): a plain io.ReadSeeker contract with
// no buffering guarantee beyond "bytes already consumed are reproducible
// on re-seek." Acquisition and release are the caller's responsibility;
// internal/format never closes a Source.
package bytesource

import "io"

// Source is the read+seek contract internal/format parses against.
// Anything satisfying io.ReadSeeker already satisfies this interface;
// it is named separately so a caller's intent — "this is a format byte
// source," not an arbitrary stream — is visible in signatures.
type Source interface {
	io.Reader
	io.Seeker
}

// FromReadSeeker adapts any io.ReadSeeker (an *os.File, a *bytes.Reader,
// ...) to Source. Since the interfaces are structurally identical this
// is an identity function kept for call-site clarity at construction
// sites (bytesource.FromReadSeeker(f) reads better than a bare cast).
func FromReadSeeker(rs io.ReadSeeker) Source {
	return rs
}
