// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalFilesystem writes files into a directory, creating it on first use.
type LocalFilesystem struct {
	dir string
}

func NewLocalFilesystem(dir string) *LocalFilesystem {
	return &LocalFilesystem{dir: dir}
}

func (local *LocalFilesystem) String() string {
	return local.dir
}

func (local *LocalFilesystem) Upload(filename string, data []byte) error {
	if filename == "" || filepath.IsAbs(filename) || strings.Contains(filename, "..") {
		return fmt.Errorf("fs: invalid filename %q", filename)
	}

	path := filepath.Join(local.dir, filepath.FromSlash(filename))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Write then rename so readers never see a partial file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Join(err, os.Remove(tmp))
	}
	return nil
}
