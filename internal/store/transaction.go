package store

import "time"

// EntryPatch lists the only ledger fields allowed to change after commit.
type EntryPatch struct {
	Type         *string
	LoanApproved *bool
}

// EntryFilter narrows QueryEntries. From is inclusive, Until is exclusive.
type EntryFilter struct {
	Type  string
	From  *time.Time
	Until *time.Time
}
