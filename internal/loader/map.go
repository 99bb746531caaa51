// Package loader decodes the MovingAI-style map format, the control-set
// format, and the type-table format described in the core's external
// interfaces, into the pkg/gridmap, pkg/primitive, and pkg/typegraph data
// structures the search core operates on. Parsing is explicitly external to
// the search core per the design notes; this package is the repo's own
// supplemental collaborator, grounded in original_source's
// KC_searching.cpp/KC_structs.cpp loader routines and tokenized the way
// pkg/board/fen tokenizes FEN strings in the teacher engine.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadMap decodes a MovingAI-style ASCII grid. The header's first line is
// expected to begin with "type"; the following three header lines are
// skipped. Body rows contain '.', '#', '@', 'T' ('.' free, '#', '@' and 'T'
// blocked), all of equal length; any other character is an error. If
// obstacles is false, every cell is reported free regardless of its
// character, and characters are not checked.
func LoadMap(r io.Reader, obstacles bool) (height, width int, cells [][]bool, err error) {
	scanner := bufio.NewScanner(r)

	var header []string
	var rows []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(header) < 4 {
			header = append(header, line)
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, nil, fmt.Errorf("loader: read map: %w", err)
	}
	if len(header) == 0 || !strings.HasPrefix(header[0], "type") {
		return 0, 0, nil, fmt.Errorf("loader: map missing \"type\" header")
	}
	if len(rows) == 0 {
		return 0, 0, nil, fmt.Errorf("loader: map has no body rows")
	}

	width = len(rows[0])
	cells = make([][]bool, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return 0, 0, nil, fmt.Errorf("loader: map row %d has length %d, want %d", i, len(row), width)
		}
		cells[i] = make([]bool, width)
		for j, c := range row {
			if !obstacles {
				continue
			}
			switch c {
			case '.':
				// free
			case '#', '@', 'T':
				cells[i][j] = true
			default:
				return 0, 0, nil, fmt.Errorf("loader: map row %d has unrecognized cell %q at col %d", i, c, j)
			}
		}
	}
	return len(rows), width, cells, nil
}
