package bytesource

import "bytes"

// Memory returns an in-memory Source over data, the byte source used by
// unit tests and by callers that have already loaded a file (or a
// network payload) into a buffer. *bytes.Reader already satisfies
// Source's Read+Seek contract and reproduces prior bytes exactly on
// re-seek, so no wrapper state is needed.
func Memory(data []byte) Source {
	return bytes.NewReader(data)
}
