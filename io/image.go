package io

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ReadImage loads a program image of comma or whitespace separated
// decimal integers.
func ReadImage(file io.Reader) (cells []int64, err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	tokens := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	cells = make([]int64, 0, len(tokens))
	for _, token := range tokens {
		var value int64
		value, err = strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, ErrParseNumber(token)
		}
		cells = append(cells, value)
	}

	return
}

// WriteImage writes cells as a comma separated line.
func WriteImage(file io.Writer, cells []int64) (err error) {
	words := make([]string, len(cells))
	for n, cell := range cells {
		words[n] = strconv.FormatInt(cell, 10)
	}

	_, err = fmt.Fprintln(file, strings.Join(words, ","))

	return
}
