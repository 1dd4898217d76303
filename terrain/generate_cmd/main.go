// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/SoftbearStudios/terragen/cloud"
	"github.com/SoftbearStudios/terragen/cloud/db"
	"github.com/SoftbearStudios/terragen/terrain"
	"github.com/SoftbearStudios/terragen/terrain/basin"
	"github.com/SoftbearStudios/terragen/terrain/handoff"
)

func main() {
	cfg, cpuProfile, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, err := newCloud(cfg)
	if err != nil {
		log.Fatal("could not connect to cloud: ", err)
	}
	log.Println("publishing to", c)

	if _, _, err := run(ctx, cfg, c); err != nil {
		log.Fatal(err)
	}
}

// newCloud picks where maps go: AWS if a stage is set, otherwise a local
// directory if one is set, otherwise nowhere.
func newCloud(cfg *Config) (*cloud.Cloud, error) {
	var c *cloud.Cloud
	switch {
	case cfg.Output.Stage != "":
		var err error
		if c, err = cloud.New(cfg.Output.Region, cfg.Output.Stage, cfg.Output.Bucket); err != nil {
			return nil, err
		}
	case cfg.Output.Dir != "":
		c = cloud.NewLocal(cfg.Output.Dir)
	}

	ttl, err := cfg.TTL()
	if err != nil {
		return nil, err
	}
	c.SetTTL(ttl)
	return c, nil
}

// run generates one map and publishes it to c, which may be nil.
func run(ctx context.Context, cfg *Config, c *cloud.Cloud) (*handoff.Bundle, *db.Map, error) {
	start := time.Now()

	field := newField(&cfg.Noise, cfg.Seed)
	heights, err := terrain.Sample(ctx, field, cfg.SampleOptions())
	if err != nil {
		return nil, nil, err
	}
	log.Printf("sampled %dx%d %s map in %s", heights.Width, heights.Height, heights.Topology, time.Since(start))

	before := basin.Dangles(heights, cfg.SeaLevel)
	passes, err := basin.NormalizeStable(heights, cfg.SeaLevel, cfg.NormalizePasses)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("normalized %d dangles to %d in %d passes", before, basin.Dangles(heights, cfg.SeaLevel), passes)

	opts := cfg.BasinOptions()
	classes, err := basin.Classify(heights, opts)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("classified with %s: %s", opts.Method, basin.Summarize(classes))

	bundle, err := handoff.NewBundle(heights, classes, cfg.SeaLevel)
	if err != nil {
		return nil, nil, err
	}

	m, err := c.Publish(cfg.Seed, opts, bundle)
	if err != nil {
		return nil, nil, err
	}
	if m != nil {
		log.Printf("published %s", m.Key)
	}

	elapsed := time.Since(start)
	if err := logRun(cfg.Output.Log, cfg, bundle, passes, elapsed); err != nil {
		log.Print("could not append run log: ", err)
	}

	log.Printf("done in %s", elapsed)
	return bundle, m, nil
}
