// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package handoff

import (
	"bytes"
	"errors"
	"testing"

	"github.com/SoftbearStudios/terragen/terrain"
	"github.com/SoftbearStudios/terragen/terrain/compressed"
	"github.com/chewxy/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-6
}

func testMap() (*terrain.Heights, *terrain.Classes) {
	h := terrain.NewHeights(4, 3, terrain.Cylinder)
	c := terrain.NewClasses(4, 3)
	for i := range h.Values {
		h.Values[i] = float64(i)/10 - 0.3
		switch {
		case i < 4:
			c.Values[i] = terrain.Ocean
		case i < 6:
			c.Values[i] = terrain.KeptLake
		case i < 8:
			c.Values[i] = terrain.Lake
		default:
			c.Values[i] = terrain.Land
		}
	}
	return h, c
}

func TestBundle_RoundTrip(t *testing.T) {
	h, c := testMap()
	b, err := NewBundle(h, c, 0.45)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		t.Fatal(err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Width != 4 || decoded.Height != 3 || decoded.Topology != "cylinder" || decoded.SeaLevel != 0.45 {
		t.Errorf("unexpected header %+v", decoded)
	}

	classes, err := decoded.DecodeClasses()
	if err != nil {
		t.Fatal(err)
	}
	for i := range c.Values {
		if classes.Values[i] != c.Values[i] {
			t.Errorf("class %d expected %s got %s", i, c.Values[i], classes.Values[i])
		}
	}

	if decoded.Summary.Ocean != 4 || decoded.Summary.Land != 4 {
		t.Errorf("unexpected summary %+v", decoded.Summary)
	}
}

func TestBundle_Clamp(t *testing.T) {
	h, c := testMap()
	b, err := NewBundle(h, c, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range b.Heights {
		if v < 0 || v > 1 {
			t.Errorf("height %d = %f outside [0, 1]", i, v)
		}
	}
	if !approx(b.Heights[0], 0) || !approx(b.Heights[11], 0.8) || !approx(b.Heights[5], 0.2) {
		t.Error("unexpected heights", b.Heights)
	}
}

func TestBundle_Mismatch(t *testing.T) {
	h, _ := testMap()
	if _, err := NewBundle(h, terrain.NewClasses(3, 3), 0.5); !errors.Is(err, ErrMismatch) {
		t.Error("expected ErrMismatch, got", err)
	}

	b := &Bundle{Width: 2, Height: 2, Length: 3}
	if _, err := b.DecodeClasses(); !errors.Is(err, ErrMismatch) {
		t.Error("expected ErrMismatch, got", err)
	}
}

func TestBundle_SeaLevelPrecision(t *testing.T) {
	h, c := testMap()
	const sea = 0.5
	h.Values[9] = 0.5000004
	b, err := NewBundle(h, c, sea)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}

	for i := range b.Heights {
		if decoded.Heights[i] != b.Heights[i] {
			t.Errorf("height %d expected %v got %v", i, b.Heights[i], decoded.Heights[i])
		}
	}
	if float64(decoded.Heights[9]) <= sea {
		t.Errorf("land at %v decoded as water", decoded.Heights[9])
	}
}

func TestBundle_InvalidClass(t *testing.T) {
	var buffer compressed.Buffer
	if _, err := buffer.Write([]byte{byte(terrain.Land), byte(terrain.KeptLake) + 1, 0, 0}); err != nil {
		t.Fatal(err)
	}

	b := &Bundle{Width: 2, Height: 2, Length: 4, Classes: buffer.Buffer()}
	if _, err := b.DecodeClasses(); !errors.Is(err, ErrInvalidClass) {
		t.Error("expected ErrInvalidClass, got", err)
	}
}
