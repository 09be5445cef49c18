package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
)

// Tape provides sequential I/O over an io.Reader and io.Writer.
// Values are decimal tokens, one per line on output. In Ascii mode each
// input byte is one value, and output values in 0..255 are written as bytes.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Ascii  bool

	Err error // First malformed input token, if any.

	reader  *bufio.Reader
	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields values from the input stream,
// reading as needed. Iteration stops at end of input or a malformed token.
func (tc *Tape) Receive() iter.Seq[int64] {
	if tc.Ascii {
		return tc.receiveBytes()
	}

	return tc.receiveTokens()
}

func (tc *Tape) receiveBytes() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.Input == nil {
			return
		}
		if tc.reader == nil {
			tc.reader = bufio.NewReader(tc.Input)
		}
		for {
			one, err := tc.reader.ReadByte()
			if err != nil {
				return
			}
			if !yield(int64(one)) {
				return
			}
		}
	}
}

func (tc *Tape) receiveTokens() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.Input == nil || tc.Err != nil {
			return
		}
		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			tc.scanner.Split(bufio.ScanWords)
		}
		for tc.scanner.Scan() {
			token := tc.scanner.Text()
			value, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				tc.Err = ErrParseNumber(token)
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Ascii && value >= 0 && value <= 255 {
		_, err = tc.Output.Write([]byte{byte(value)})
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)

	return
}
