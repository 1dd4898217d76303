// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package compressed packs small-valued grids, such as classification grids,
// into a compact run length encoding.
package compressed

import (
	"errors"
	"io"
)

// ErrOverflow is returned when writing a value that does not fit in 4 bits.
var ErrOverflow = errors.New("compressed: value does not fit in 4 bits")

const maxCount = 15

// Buffer stores 4 bit values using run length encoding.
// Each byte is 4 bits of value followed by 4 bits of count - 1.
type Buffer struct {
	buf []byte
	off int // read position
	run int // values already read from buf[off]
}

// Reset makes buf the contents of the buffer, positioned at the start.
func (buffer *Buffer) Reset(buf []byte) {
	buffer.buf = buf
	buffer.off = 0
	buffer.run = 0
}

func (buffer *Buffer) writeNibble(v byte) {
	buf := buffer.buf
	end := len(buf) - 1

	if end >= 0 && buf[end]>>4 == v && buf[end]&maxCount < maxCount {
		// Add 1 to count
		buf[end]++
	} else {
		// Start new tuple
		buf = append(buf, v<<4)
	}

	buffer.buf = buf
}

// Write appends values, each of which must be less than 16.
func (buffer *Buffer) Write(values []byte) (int, error) {
	for i, v := range values {
		if v > maxCount {
			return i, ErrOverflow
		}
		buffer.writeNibble(v)
	}
	return len(values), nil
}

// Read decodes values into buf without consuming the encoded bytes, so the
// same data can be Reset and read again.
func (buffer *Buffer) Read(buf []byte) (int, error) {
	i := 0
	for i < len(buf) && buffer.off < len(buffer.buf) {
		tuple := buffer.buf[buffer.off]
		buf[i] = tuple >> 4
		i++

		buffer.run++
		if buffer.run > int(tuple&maxCount) {
			buffer.off++
			buffer.run = 0
		}
	}

	if i == 0 && len(buf) > 0 {
		return 0, io.EOF
	}
	return i, nil
}

// Grow makes space for about n values.
func (buffer *Buffer) Grow(n int) {
	compressed := n / 4
	if old := buffer.buf; cap(old)-len(old) < compressed {
		buf := make([]byte, len(old), len(old)+compressed)
		copy(buf, old)
		buffer.buf = buf
	}
}

// Buffer returns the encoded bytes.
func (buffer *Buffer) Buffer() []byte {
	return buffer.buf
}
