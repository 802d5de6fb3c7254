package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads newline-separated rows of decimal digits from r and builds a
// Grid with FromLines. Surrounding whitespace on each line is trimmed and
// blank lines at the end of the input are ignored; a blank line followed by
// more digits is reported as ErrNonRectangular.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	blank := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			blank++
			continue
		}
		for ; blank > 0 && len(lines) > 0; blank-- {
			lines = append(lines, "")
		}
		blank = 0
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading input: %w", err)
	}
	return FromLines(lines)
}
