package bytesource

import "os"

// Open returns a file-backed Source for path. The caller owns the
// returned *os.File and is responsible for closing it once parsing
// finishes — format.Interpret never closes the Source it is given.
func Open(path string) (*os.File, error) {
	return os.Open(path)
}
