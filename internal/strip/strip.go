package strip

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"
)

// Pattern matches one strippable fragment. The inner run is greedy, so a
// match extends to the last comma before the next ']' (or end of line).
var Pattern = regexp.MustCompile(`"(body|population)",[^\]]*,`)

// Stats counts what a rewrite did.
type Stats struct {
	Lines     int `json:"lines"`
	Changed   int `json:"changed"`
	Fragments int `json:"fragments"`
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Lines += o.Lines
	s.Changed += o.Changed
	s.Fragments += o.Fragments
}

// Line returns line with every fragment stripped down to its last two characters.
func Line(line string) string {
	out, _ := LineCount(line)
	return out
}

// LineCount is Line plus the number of fragments removed. Each pass searches
// the already-shortened line, so a removal can expose a new match.
func LineCount(line string) (string, int) {
	n := 0
	for {
		loc := Pattern.FindStringIndex(line)
		if loc == nil {
			return line, n
		}
		line = line[:loc[0]] + tail(line[loc[0]:loc[1]]) + line[loc[1]:]
		n++
	}
}

// tail returns the last two characters of a match: the terminating comma and
// whatever character precedes it. A match is never shorter than `"body",,`.
func tail(match string) string {
	_, size := utf8.DecodeLastRuneInString(match[:len(match)-1])
	return match[len(match)-1-size:]
}

// Lines copies r to w line by line, stripping each line. Line order and each
// line's terminator (or lack of one on the last line) are kept as read.
func Lines(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			out, n := LineCount(line)
			stats.Lines++
			stats.Fragments += n
			if n > 0 {
				stats.Changed++
			}
			if _, werr := bw.WriteString(out); werr != nil {
				return stats, fmt.Errorf("writing line %d: %w", stats.Lines, werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("reading line %d: %w", stats.Lines+1, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("flushing output: %w", err)
	}
	return stats, nil
}
