package censor

import (
	"bufio"
	"io"
)

// maxLineBytes caps the scanner buffer for a Reader's underlying input.
const maxLineBytes = 1024 * 1024

var _ io.Reader = &Reader{}

// Reader censors another reader's text as it is consumed, line by line.
// Because Reader implements io.Reader, readers with different requests can
// be chained, each applying its own masking passes to the previous one's
// output. Every line comes back newline-terminated, including a final line
// that was not.
type Reader struct {
	censorer *Censorer
	req      Request
	scanner  *bufio.Scanner
	buf      []byte
	err      error
}

// NewReader wraps r so every line read through it is censored according to
// req. A nil censorer falls back to the stock pipeline. Request errors
// surface on the first Read, before any bytes are delivered.
func NewReader(r io.Reader, c *Censorer, req Request) *Reader {
	if c == nil {
		c = New(nil)
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{censorer: c, req: req, scanner: scanner}
}

func (r *Reader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				r.err = err
			} else {
				r.err = io.EOF
			}
			continue
		}
		r.req.Text = r.scanner.Text()
		res, err := r.censorer.Censor(r.req)
		if err != nil {
			r.err = err
			continue
		}
		r.buf = append([]byte(res.Censored), '\n')
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
