// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

type Database interface {
	PutMap(m Map) error
	ReadMaps() (maps []Map, err error)
	ReadMapsBySeed(seed int64) (maps []Map, err error)
}
