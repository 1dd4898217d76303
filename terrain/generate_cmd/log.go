// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/SoftbearStudios/terragen/terrain/handoff"
)

// appendLog writes fields as one CSV row at the end of filename.
func appendLog(filename string, fields ...any) (err error) {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	record := make([]string, len(fields))
	for i, field := range fields {
		switch v := field.(type) {
		case float32, float64:
			record[i] = fmt.Sprintf("%.4f", v)
		case time.Duration:
			record[i] = fmt.Sprintf("%.3f", v.Seconds())
		default:
			record[i] = fmt.Sprint(v)
		}
	}

	w := csv.NewWriter(f)
	if err = w.Write(record); err != nil {
		return
	}
	w.Flush()
	return w.Error()
}

// logRun records one generated map: seed, size, sea level, method, class
// counts, dangle passes and elapsed time.
func logRun(filename string, cfg *Config, bundle *handoff.Bundle, passes int, elapsed time.Duration) error {
	if filename == "" {
		return nil
	}
	s := bundle.Summary
	return appendLog(filename,
		time.Now().UTC().Format(time.RFC3339),
		cfg.Seed,
		bundle.Width,
		bundle.Height,
		bundle.Topology,
		cfg.SeaLevel,
		cfg.Tolerance,
		cfg.BasinOptions().Method,
		s.Land,
		s.Lake,
		s.Ocean,
		s.KeptLake,
		passes,
		elapsed,
	)
}
