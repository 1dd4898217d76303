// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/gofrs/uuid"
)

// Map is a catalog entry for one published map. Seed is the hash key and ID
// the range key.
type Map struct {
	Seed      int64   `dynamo:"seed"`
	ID        string  `dynamo:"id"`
	Key       string  `dynamo:"key"`
	Width     int     `dynamo:"width"`
	Height    int     `dynamo:"height"`
	Topology  string  `dynamo:"topology"`
	SeaLevel  float64 `dynamo:"sea_level"`
	Tolerance int     `dynamo:"tolerance"`
	Method    string  `dynamo:"method"`
	Land      int     `dynamo:"land"`
	Lake      int     `dynamo:"lake"`
	Ocean     int     `dynamo:"ocean"`
	KeptLake  int     `dynamo:"kept_lake"`
	Created   int64   `dynamo:"created"`
	TTL       int64   `dynamo:"ttl,omitempty"`
}

// NewID returns a random map ID.
func NewID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
