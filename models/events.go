// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection names a per-user record set.
type Collection string

const (
	CollectionEntries   Collection = "entries"
	CollectionStrains   Collection = "strains"
	CollectionPurchases Collection = "purchases"
)

// ChangeOp is the kind of write that produced a [ChangeEvent].
type ChangeOp string

const (
	OpCreated ChangeOp = "created"
	OpUpdated ChangeOp = "updated"
	OpDeleted ChangeOp = "deleted"
)

// ChangeEvent tells subscribers that a record of a user changed.
type ChangeEvent struct {
	UserID     string     `json:"userId"`
	Collection Collection `json:"collection"`
	Op         ChangeOp   `json:"op"`
	ID         string     `json:"id"`
	At         int64      `json:"at"`
}
