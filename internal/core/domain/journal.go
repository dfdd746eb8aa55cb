package domain

import "time"

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	// Draft journals are persisted as-is for later completion and never
	// contribute to any account balance.
	Draft JournalStatus = "DRAFT"
	// Posted journals satisfy the balance invariant and are the sole input
	// to balances and reports.
	Posted JournalStatus = "POSTED"
)

// IsValid reports whether s is a known journal status.
func (s JournalStatus) IsValid() bool {
	return s == Draft || s == Posted
}

// Journal represents a single financial event composed of multiple
// transaction lines. Lines are owned by the journal: they are replaced
// wholesale on every re-submission and removed when the journal is deleted.
type Journal struct {
	JournalID   string        `json:"journalID"`   // Primary Key (UUID)
	JournalDate time.Time     `json:"journalDate"` // Calendar date of the event
	Description string        `json:"description"`
	Status      JournalStatus `json:"status"`
	AuditFields

	// Transactions are loaded on demand; nil when only the header was fetched.
	Transactions []Transaction `json:"transactions,omitempty"`
}
