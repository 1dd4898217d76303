// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package basin

import (
	"fmt"

	"github.com/SoftbearStudios/terragen/terrain"
)

// Summary counts the cells of each class.
type Summary struct {
	Unassigned int `json:"unassigned,omitempty"`
	Land       int `json:"land"`
	Lake       int `json:"lake"`
	Ocean      int `json:"ocean"`
	KeptLake   int `json:"keptLake"`
}

func Summarize(classes *terrain.Classes) Summary {
	var s Summary
	for _, class := range classes.Values {
		switch class {
		case terrain.Land:
			s.Land++
		case terrain.Lake:
			s.Lake++
		case terrain.Ocean:
			s.Ocean++
		case terrain.KeptLake:
			s.KeptLake++
		default:
			s.Unassigned++
		}
	}
	return s
}

// Water is the number of cells left as water once lakes are filled.
func (s Summary) Water() int {
	return s.Ocean + s.KeptLake
}

func (s Summary) String() string {
	return fmt.Sprintf("land=%d lake=%d ocean=%d kept=%d unassigned=%d", s.Land, s.Lake, s.Ocean, s.KeptLake, s.Unassigned)
}
