package model

// Path represents a file system path.
type Path string

// ModuleLength is the fixed bit length of an EAN-13 symbol:
// 3 (left guard) + 42 + 5 (center guard) + 42 + 3 (right guard).
const ModuleLength = 95

// EncodeResult holds the outcome of encoding one digit sequence.
// On failure Modules is empty and Err carries the error kind.
type EncodeResult struct {
	Sequence string
	Checksum int
	Modules  string
	Err      error
}
