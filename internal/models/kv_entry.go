package models

import "time"

// KVEntry is a row of the durable key-value table used by the database backends.
type KVEntry struct {
	Key       string    `gorm:"type:varchar(255);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}
