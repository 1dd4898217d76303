// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

// Filesystem stores generated map files under a flat namespace.
type Filesystem interface {
	Upload(filename string, data []byte) error
}
