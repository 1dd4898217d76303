// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package handoff encodes a finished heightmap and its classification for a
// renderer. Heights are clamped to [0, 1] and stored as float32; classes are
// run length encoded.
package handoff

import (
	"errors"
	"fmt"
	"io"

	"github.com/SoftbearStudios/terragen/terrain"
	"github.com/SoftbearStudios/terragen/terrain/basin"
	"github.com/SoftbearStudios/terragen/terrain/compressed"
	"github.com/chewxy/math32"
	jsoniter "github.com/json-iterator/go"
)

// ErrMismatch is returned when heights and classes have different dimensions.
var ErrMismatch = errors.New("handoff: heights and classes differ in size")

// ErrInvalidClass is returned when a decoded class is not one of Unassigned,
// Land, Lake, Ocean or KeptLake.
var ErrInvalidClass = errors.New("handoff: invalid class")

// Heights are written with full float32 precision, since 6 digits can move a
// height across sea level.
var json = jsoniter.Config{
	IndentionStep:                 0,
	MarshalFloatWith6Digits:       false,
	EscapeHTML:                    false,
	SortMapKeys:                   true,
	UseNumber:                     false,
	DisallowUnknownFields:         false,
	TagKey:                        "json",
	OnlyTaggedField:               false,
	ValidateJsonRawMessage:        false,
	ObjectFieldMustBeSimpleString: true,
	CaseSensitive:                 true,
}.Froze()

// Bundle is everything a renderer needs to draw one map.
type Bundle struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Topology string        `json:"topology"`
	SeaLevel float64       `json:"seaLevel"`
	Heights  []float32     `json:"heights"` // Heights is row major, clamped to [0, 1].
	Classes  []byte        `json:"classes"` // Classes is the compressed classification grid.
	Length   int           `json:"length"`  // Length is the uncompressed length of Classes.
	Summary  basin.Summary `json:"summary"`
}

// NewBundle packs h and c. h is expected to be in [0, 1] already; values
// outside are clamped.
func NewBundle(h *terrain.Heights, c *terrain.Classes, seaLevel float64) (*Bundle, error) {
	if h.Width != c.Width || h.Height != c.Height || len(h.Values) != len(c.Values) {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrMismatch, h.Width, h.Height, c.Width, c.Height)
	}

	b := &Bundle{
		Width:    h.Width,
		Height:   h.Height,
		Topology: h.Topology.String(),
		SeaLevel: seaLevel,
		Heights:  make([]float32, len(h.Values)),
		Length:   len(c.Values),
		Summary:  basin.Summarize(c),
	}

	for i, v := range h.Values {
		b.Heights[i] = clamp(float32(v))
	}

	raw := make([]byte, len(c.Values))
	for i, class := range c.Values {
		raw[i] = byte(class)
	}
	var buffer compressed.Buffer
	buffer.Grow(len(raw))
	if _, err := buffer.Write(raw); err != nil {
		return nil, err
	}
	b.Classes = buffer.Buffer()

	return b, nil
}

// DecodeClasses unpacks the classification grid.
func (b *Bundle) DecodeClasses() (*terrain.Classes, error) {
	if b.Length != b.Width*b.Height {
		return nil, fmt.Errorf("%w: length %d for %dx%d", ErrMismatch, b.Length, b.Width, b.Height)
	}

	var buffer compressed.Buffer
	buffer.Reset(b.Classes)
	raw := make([]byte, b.Length)
	n, err := buffer.Read(raw)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if n != b.Length {
		return nil, fmt.Errorf("handoff: decoded %d classes, want %d", n, b.Length)
	}

	c := terrain.NewClasses(b.Width, b.Height)
	for i, v := range raw {
		if terrain.Class(v) > terrain.KeptLake {
			return nil, fmt.Errorf("%w: %d at %d", ErrInvalidClass, v, i)
		}
		c.Values[i] = terrain.Class(v)
	}
	return c, nil
}

// Encode writes b as JSON.
func Encode(w io.Writer, b *Bundle) error {
	return json.NewEncoder(w).Encode(b)
}

// Marshal returns b as JSON.
func Marshal(b *Bundle) ([]byte, error) {
	return json.Marshal(b)
}

// Decode reads a Bundle written by Encode.
func Decode(r io.Reader) (*Bundle, error) {
	b := new(Bundle)
	if err := json.NewDecoder(r).Decode(b); err != nil {
		return nil, err
	}
	return b, nil
}

func clamp(f float32) float32 {
	return math32.Max(0, math32.Min(1, f))
}
