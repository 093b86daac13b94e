// SPDX-License-Identifier: MIT

package textfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsegraph/format"
)

// tokenizer yields whitespace-separated tokens from a buffered reader.
type tokenizer struct {
	r   *bufio.Reader
	buf []byte
}

func newTokenizer(r *bufio.Reader) *tokenizer {
	return &tokenizer{r: r, buf: make([]byte, 0, 24)}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

// headerLine reads the first line and compares it with format.Header.
// At most len(Header)+2 bytes are consumed, so a binary file fails fast.
func (t *tokenizer) headerLine() error {
	limit := len(format.Header) + 2 // room for "\r\n"
	line := t.buf[:0]
	for len(line) < limit {
		c, err := t.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				break
			}
			return fmt.Errorf("header: %w", format.NoEOF(err))
		}
		if c == '\n' {
			break
		}
		line = append(line, c)
	}
	t.buf = line
	if got := strings.TrimSuffix(string(line), "\r"); got != format.Header {
		return fmt.Errorf("header %q: %w", got, format.ErrHeaderMismatch)
	}
	return nil
}

// next returns the next token. The slice is only valid until the next call.
// Running out of input is io.ErrUnexpectedEOF: every caller needs a token.
func (t *tokenizer) next() ([]byte, error) {
	t.buf = t.buf[:0]
	for {
		c, err := t.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(t.buf) > 0 {
				return t.buf, nil
			}
			return nil, format.NoEOF(err)
		}
		if isSpace(c) {
			if len(t.buf) > 0 {
				return t.buf, nil
			}
			continue
		}
		t.buf = append(t.buf, c)
	}
}

// uint parses the next token as an unsigned integer of the given bit size.
func (t *tokenizer) uint(what string, bitSize int) (uint64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	v, err := strconv.ParseUint(string(tok), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, tok, numErr(err))
	}
	return v, nil
}

// int parses the next token as a signed integer of the given bit size.
func (t *tokenizer) int(what string, bitSize int) (int64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	v, err := strconv.ParseInt(string(tok), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, tok, numErr(err))
	}
	return v, nil
}

// numErr maps strconv failures onto the format sentinels.
func numErr(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return format.ErrValueRange
	}
	return format.ErrMalformedNumber
}
