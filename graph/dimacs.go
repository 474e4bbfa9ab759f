package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadDIMACS parses the DIMACS graph-colouring edge format from r:
//
//	p edges N M
//	e i j
//
// Vertex indices in the file are 1-based; the returned Graph is 0-indexed.
// Lines not starting with "p" or "e" are ignored (this covers "c" comment
// lines and blank lines). The header must appear exactly once, and the
// number of "e" lines read must equal the declared M.
//
// Complexity: O(n + m) time and space in the file's declared N and M.
func ReadDIMACS(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		haveHeader bool
		n, m       int
		edges      [][2]int
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line[0] {
		case 'p':
			if haveHeader {
				return nil, ErrDIMACSHeaderDuplicate
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "edges" {
				return nil, fmt.Errorf("%w: %q", ErrDIMACSMalformedLine, line)
			}
			var err error
			n, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrDIMACSMalformedLine, line)
			}
			m, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrDIMACSMalformedLine, line)
			}
			edges = make([][2]int, 0, m)
			haveHeader = true

		case 'e':
			if !haveHeader {
				return nil, ErrDIMACSHeaderMissing
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: %q", ErrDIMACSMalformedLine, line)
			}
			i, erri := strconv.Atoi(fields[1])
			j, errj := strconv.Atoi(fields[2])
			if erri != nil || errj != nil {
				return nil, fmt.Errorf("%w: %q", ErrDIMACSMalformedLine, line)
			}
			edges = append(edges, [2]int{i - 1, j - 1})

		default:
			// Comment or unrecognised line; ignored per the format's spec.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDIMACSOpenFailed, err)
	}
	if !haveHeader {
		return nil, ErrDIMACSHeaderMissing
	}
	if len(edges) != m {
		return nil, fmt.Errorf("%w: declared %d, read %d", ErrDIMACSEdgeCountMismatch, m, len(edges))
	}

	return New(n, edges)
}
