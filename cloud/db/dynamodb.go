// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
)

type DynamoDBDatabase struct {
	svc       *dynamodb.DynamoDB
	db        *dynamo.DB
	mapsTable dynamo.Table
}

func NewDynamoDBDatabase(session *session.Session, stage string) (*DynamoDBDatabase, error) {
	ddb := &DynamoDBDatabase{svc: dynamodb.New(session)}
	ddb.db = dynamo.NewFromIface(ddb.svc)
	ddb.mapsTable = ddb.db.Table("terragen-" + stage + "-maps")
	return ddb, nil
}

func (ddb *DynamoDBDatabase) String() string {
	return ddb.mapsTable.Name()
}

// PutMap never overwrites an existing entry.
func (ddb *DynamoDBDatabase) PutMap(m Map) error {
	return ddb.mapsTable.Put(m).If("attribute_not_exists(id)").Run()
}

func (ddb *DynamoDBDatabase) ReadMaps() (maps []Map, err error) {
	err = ddb.mapsTable.Scan().All(&maps)
	return
}

func (ddb *DynamoDBDatabase) ReadMapsBySeed(seed int64) (maps []Map, err error) {
	query := ddb.mapsTable.Get("seed", seed).Iter()

	for {
		var m Map
		if !query.Next(&m) {
			err = query.Err()
			return
		}
		maps = append(maps, m)
	}
}
