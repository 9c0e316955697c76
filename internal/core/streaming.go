package core

// streaming.go provides the reader chain every sheet and SQL file passes
// through before it is parsed:
//
//   - BOMSkippingReader: Removes the UTF-8 BOM (0xEF 0xBB 0xBF) Excel writes
//   - UTF8Sanitizer: Replaces invalid UTF-8 bytes with '?'
//   - LimitedReader: Fails with ErrFileTooLarge once a byte limit is passed
//
// Use WrapInput to apply all three in the correct order.

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM if present.
type BOMSkippingReader struct {
	br      *bufio.Reader
	checked bool
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{br: bufio.NewReader(r)}
}

// Read implements io.Reader. On the first read, it checks for and skips the BOM.
func (r *BOMSkippingReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true
		head, err := r.br.Peek(len(utf8BOM))
		if bytes.Equal(head, utf8BOM) {
			_, _ = r.br.Discard(len(utf8BOM))
		} else if err != nil && err != io.EOF {
			return 0, err
		}
	}
	return r.br.Read(p)
}

// UTF8Sanitizer wraps an io.Reader and replaces every byte that is not part
// of a valid UTF-8 sequence with '?'. Multi-byte runes split across reads are
// decoded whole.
type UTF8Sanitizer struct {
	br  *bufio.Reader
	buf []byte // encoded output not yet returned
	err error  // sticky error from the source
}

// NewUTF8Sanitizer creates a new streaming UTF-8 sanitizer.
func NewUTF8Sanitizer(r io.Reader) *UTF8Sanitizer {
	return &UTF8Sanitizer{br: bufio.NewReader(r)}
}

// Read implements io.Reader.
func (s *UTF8Sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for len(s.buf) < len(p) && s.err == nil {
		r, size, err := s.br.ReadRune()
		if err != nil {
			s.err = err
			break
		}
		if r == utf8.RuneError && size == 1 {
			s.buf = append(s.buf, '?')
			continue
		}
		s.buf = utf8.AppendRune(s.buf, r)
		if s.br.Buffered() == 0 {
			break
		}
	}

	if len(s.buf) == 0 && s.err != nil {
		return 0, s.err
	}
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

// LimitedReader wraps an io.Reader and returns ErrFileTooLarge as soon as
// more than Limit bytes have been read. A Limit of zero or less disables the
// check. BytesRead is available for run summaries.
type LimitedReader struct {
	reader    io.Reader
	Limit     int64
	BytesRead int64
}

// NewLimitedReader creates a size-checking reader.
func NewLimitedReader(r io.Reader, limit int64) *LimitedReader {
	return &LimitedReader{reader: r, Limit: limit}
}

// Read implements io.Reader.
func (r *LimitedReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	if r.Limit > 0 && r.BytesRead > r.Limit {
		return n, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, r.Limit)
	}
	return n, err
}

// WrapInput wraps a reader with size limiting, BOM skipping and UTF-8
// sanitization.
//
// The order matters:
//  1. The limit counts raw bytes from the source
//  2. The BOM must be stripped before any decoding
//  3. Sanitization sees BOM-free text
func WrapInput(r io.Reader, maxSize int64) io.Reader {
	return NewUTF8Sanitizer(NewBOMSkippingReader(NewLimitedReader(r, maxSize)))
}
