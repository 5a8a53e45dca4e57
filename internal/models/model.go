package models

import (
	"time"
)

// Timestamps holds the creation and last modification time of a record
// as Unix timestamps in seconds.
type Timestamps struct {
	Created int64 `json:"created" dynamodbav:"created" example:"1735689600"` // Time the record was created
	Updated int64 `json:"updated" dynamodbav:"updated" example:"1735776000"` // Last time the record was updated
}

// NewTimestamps returns Timestamps for a record created at t.
func NewTimestamps(t time.Time) Timestamps {
	now := t.UTC().Unix()
	return Timestamps{
		Created: now,
		Updated: now,
	}
}
