package models

// SyncSummary reports what a sync changed.
type SyncSummary struct {
	BlockNum              uint32          `json:"block_num"`
	NewPublicNotes        []NoteID        `json:"new_public_notes"`
	CommittedNotes        []NoteID        `json:"committed_notes"`
	ConsumedNotes         []NoteID        `json:"consumed_notes"`
	UpdatedAccounts       []AccountID     `json:"updated_accounts"`
	MismatchedAccounts    []AccountID     `json:"mismatched_accounts"`
	CommittedTransactions []TransactionID `json:"committed_transactions"`
	DiscardedTransactions []TransactionID `json:"discarded_transactions"`
}

// NewSyncSummary projects an update.
func NewSyncSummary(u StateSyncUpdate) SyncSummary {
	s := SyncSummary{
		BlockNum:       u.BlockNum(),
		CommittedNotes: u.NoteUpdates.CommittedNoteIDs(),
		ConsumedNotes:  u.NoteUpdates.ConsumedNoteIDs(),
	}
	for _, n := range u.NoteUpdates.NewInputNotes {
		s.NewPublicNotes = append(s.NewPublicNotes, n.ID())
	}
	for _, a := range u.AccountUpdates.UpdatedPublicAccounts {
		s.UpdatedAccounts = append(s.UpdatedAccounts, a.ID)
	}
	for _, a := range u.AccountUpdates.MismatchedPrivateAccounts {
		s.MismatchedAccounts = append(s.MismatchedAccounts, a.AccountID)
	}
	for _, tx := range u.TransactionUpdates.Committed {
		s.CommittedTransactions = append(s.CommittedTransactions, tx.TransactionID)
	}
	s.DiscardedTransactions = append(s.DiscardedTransactions, u.TransactionUpdates.Discarded...)
	return s
}

// Combine appends other to s. The block number becomes the highest of both.
func (s *SyncSummary) Combine(other SyncSummary) {
	s.BlockNum = max(s.BlockNum, other.BlockNum)
	s.NewPublicNotes = append(s.NewPublicNotes, other.NewPublicNotes...)
	s.CommittedNotes = append(s.CommittedNotes, other.CommittedNotes...)
	s.ConsumedNotes = append(s.ConsumedNotes, other.ConsumedNotes...)
	s.UpdatedAccounts = append(s.UpdatedAccounts, other.UpdatedAccounts...)
	s.MismatchedAccounts = append(s.MismatchedAccounts, other.MismatchedAccounts...)
	s.CommittedTransactions = append(s.CommittedTransactions, other.CommittedTransactions...)
	s.DiscardedTransactions = append(s.DiscardedTransactions, other.DiscardedTransactions...)
}

// IsEmpty reports whether nothing besides the block number changed.
func (s SyncSummary) IsEmpty() bool {
	return len(s.NewPublicNotes) == 0 && len(s.CommittedNotes) == 0 &&
		len(s.ConsumedNotes) == 0 && len(s.UpdatedAccounts) == 0 &&
		len(s.MismatchedAccounts) == 0 && len(s.CommittedTransactions) == 0 &&
		len(s.DiscardedTransactions) == 0
}
