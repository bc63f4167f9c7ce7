package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/joshyorko/mansion/common"
	"github.com/joshyorko/mansion/pretty"
)

const (
	newline = '\n'
)

var (
	errMalformed = errors.New("malformed input")
)

func colored(out io.Writer, color, form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	fmt.Fprintf(out, "%s%s%s\n", color, message, pretty.Reset)
}

// keyReader hands out one key at a time. Every non-blank character of a
// line is a key of its own, so "eee" is three moves; the next line is read
// only after the queued keys are used up.
type keyReader struct {
	source  *bufio.Reader
	pending []rune
}

func newKeyReader(in io.Reader) *keyReader {
	return &keyReader{source: bufio.NewReader(in)}
}

// next returns the next key. A line that is not valid text is dropped whole
// and reported as errMalformed. End of input is io.EOF.
func (it *keyReader) next() (rune, error) {
	for {
		for len(it.pending) > 0 {
			key := it.pending[0]
			it.pending = it.pending[1:]
			if !unicode.IsSpace(key) {
				return key, nil
			}
		}
		line, err := it.source.ReadString(newline)
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if len(line) == 0 {
			return 0, io.EOF
		}
		if !utf8.ValidString(line) {
			common.Trace("Discarding malformed input %q.", line)
			return 0, errMalformed
		}
		it.pending = []rune(line)
	}
}
