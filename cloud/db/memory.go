// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"fmt"
	"sort"
	"sync"
)

// MemoryDatabase is a Database that lives as long as the process. It is used
// when no AWS stage is configured.
type MemoryDatabase struct {
	mu   sync.Mutex
	maps []Map
}

func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{}
}

func (mem *MemoryDatabase) String() string {
	return "memory"
}

func (mem *MemoryDatabase) PutMap(m Map) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	for _, existing := range mem.maps {
		if existing.Seed == m.Seed && existing.ID == m.ID {
			return fmt.Errorf("db: map %d/%s already exists", m.Seed, m.ID)
		}
	}
	mem.maps = append(mem.maps, m)
	return nil
}

func (mem *MemoryDatabase) ReadMaps() ([]Map, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	maps := append([]Map(nil), mem.maps...)
	return maps, nil
}

// ReadMapsBySeed returns maps ordered by ID, like a DynamoDB range query.
func (mem *MemoryDatabase) ReadMapsBySeed(seed int64) ([]Map, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()

	var maps []Map
	for _, m := range mem.maps {
		if m.Seed == seed {
			maps = append(maps, m)
		}
	}
	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})
	return maps, nil
}
