// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud publishes generated maps to a file store and records them in
// a catalog.
package cloud

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SoftbearStudios/terragen/cloud/db"
	"github.com/SoftbearStudios/terragen/cloud/fs"
	"github.com/SoftbearStudios/terragen/terrain/basin"
	"github.com/SoftbearStudios/terragen/terrain/handoff"
)

// A nil cloud is valid to use with any methods (acts as a no-op)
// This just means the generator is in offline mode
type Cloud struct {
	name     string
	database db.Database
	fs       fs.Filesystem
	// ttl is how long catalog entries live, 0 means forever.
	ttl time.Duration
}

// New connects to the S3 bucket and DynamoDB table of stage in region. An empty
// bucket selects the stage's default bucket.
func New(region, stage, bucket string) (*Cloud, error) {
	if region == "" || stage == "" {
		return nil, errors.New("cloud: missing region or stage")
	}

	session, err := getAWSSession(region)
	if err != nil {
		return nil, err
	}

	database, err := db.NewDynamoDBDatabase(session, stage)
	if err != nil {
		return nil, err
	}
	filesystem, err := fs.NewS3Filesystem(session, stage, bucket)
	if err != nil {
		return nil, err
	}

	return NewWith(region+"/"+stage, database, filesystem), nil
}

// NewLocal writes bundles to dir and keeps the catalog in memory.
func NewLocal(dir string) *Cloud {
	return NewWith("local", db.NewMemoryDatabase(), fs.NewLocalFilesystem(dir))
}

func NewWith(name string, database db.Database, filesystem fs.Filesystem) *Cloud {
	return &Cloud{name: name, database: database, fs: filesystem}
}

// SetTTL makes subsequently published catalog entries expire after ttl.
func (cloud *Cloud) SetTTL(ttl time.Duration) {
	if cloud == nil {
		return
	}
	cloud.ttl = ttl
}

func (cloud *Cloud) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	if cloud == nil {
		builder.WriteString("offline")
	} else {
		builder.WriteString(cloud.name)
		if s, ok := cloud.fs.(fmt.Stringer); ok {
			builder.WriteByte(' ')
			builder.WriteString(s.String())
		}
	}
	builder.WriteByte(']')
	return builder.String()
}

// Publish uploads bundle as "<seed>/<id>.json" and records it in the catalog.
// It returns the catalog entry, or nil when offline.
func (cloud *Cloud) Publish(seed int64, opts basin.Options, bundle *handoff.Bundle) (*db.Map, error) {
	if cloud == nil {
		return nil, nil
	}

	id, err := db.NewID()
	if err != nil {
		return nil, err
	}

	data, err := handoff.Marshal(bundle)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%d/%s.json", seed, id)
	if err := cloud.fs.Upload(key, data); err != nil {
		return nil, fmt.Errorf("cloud: uploading %s: %w", key, err)
	}

	now := time.Now()
	m := db.Map{
		Seed:      seed,
		ID:        id,
		Key:       key,
		Width:     bundle.Width,
		Height:    bundle.Height,
		Topology:  bundle.Topology,
		SeaLevel:  bundle.SeaLevel,
		Tolerance: opts.Tolerance,
		Method:    opts.Method.String(),
		Land:      bundle.Summary.Land,
		Lake:      bundle.Summary.Lake,
		Ocean:     bundle.Summary.Ocean,
		KeptLake:  bundle.Summary.KeptLake,
		Created:   now.Unix(),
	}
	if cloud.ttl > 0 {
		m.TTL = now.Add(cloud.ttl).Unix()
	}

	if err := cloud.database.PutMap(m); err != nil {
		return nil, fmt.Errorf("cloud: cataloging %s: %w", key, err)
	}
	return &m, nil
}

// Maps lists catalog entries for seed.
func (cloud *Cloud) Maps(seed int64) ([]db.Map, error) {
	if cloud == nil {
		return nil, nil
	}
	return cloud.database.ReadMapsBySeed(seed)
}
