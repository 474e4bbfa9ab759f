package graph

import "errors"

// Sentinel errors for graph construction and DIMACS parsing.
var (
	// ErrNegativeOrder indicates a requested vertex count below zero.
	ErrNegativeOrder = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop indicates an edge (u, u); self-loops are not permitted.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates the same unordered pair was supplied twice.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrDIMACSOpenFailed indicates the DIMACS source could not be read.
	ErrDIMACSOpenFailed = errors.New("graph: could not read DIMACS source")

	// ErrDIMACSHeaderMissing indicates no "p edges N M" header line was found.
	ErrDIMACSHeaderMissing = errors.New("graph: DIMACS header missing")

	// ErrDIMACSHeaderDuplicate indicates more than one header line was found.
	ErrDIMACSHeaderDuplicate = errors.New("graph: duplicate DIMACS header")

	// ErrDIMACSMalformedLine indicates a header or edge line with the wrong shape.
	ErrDIMACSMalformedLine = errors.New("graph: malformed DIMACS line")

	// ErrDIMACSEdgeCountMismatch indicates the number of "e i j" lines read
	// differs from the M declared in the header.
	ErrDIMACSEdgeCountMismatch = errors.New("graph: DIMACS edge count mismatch")
)
