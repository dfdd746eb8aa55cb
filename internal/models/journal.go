package models

import "time"

// JournalStatus mirrors domain.JournalStatus at the storage layer.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// Journal is the database representation of a journal entry header.
type Journal struct {
	JournalID   string        `db:"journal_id"`
	JournalDate time.Time     `db:"journal_date"`
	Description string        `db:"description"`
	Status      JournalStatus `db:"status"`
	AuditFields
}
