package models

// NoteFilterKind selects how notes are looked up.
type NoteFilterKind uint8

const (
	NoteFilterAll NoteFilterKind = iota
	NoteFilterIDs
	NoteFilterNullifiers
	NoteFilterStates
)

// NoteFilter selects input or output notes. For output notes the state
// filter matches the input states with the same meaning: expected, committed
// and consumed.
type NoteFilter struct {
	Kind       NoteFilterKind
	IDs        []NoteID
	Nullifiers []Nullifier
	States     []NoteStateKind
}

func AllNotes() NoteFilter {
	return NoteFilter{Kind: NoteFilterAll}
}

func NotesByID(ids ...NoteID) NoteFilter {
	return NoteFilter{Kind: NoteFilterIDs, IDs: ids}
}

func NotesByNullifier(nullifiers ...Nullifier) NoteFilter {
	return NoteFilter{Kind: NoteFilterNullifiers, Nullifiers: nullifiers}
}

func NotesByState(states ...NoteStateKind) NoteFilter {
	return NoteFilter{Kind: NoteFilterStates, States: states}
}

// ExpectedNotes selects notes not yet seen on-chain.
func ExpectedNotes() NoteFilter {
	return NotesByState(StateExpected)
}

// CommittedNotes selects authenticated unspent notes.
func CommittedNotes() NoteFilter {
	return NotesByState(StateCommitted)
}

// UnverifiedNotes selects notes waiting for proof verification.
func UnverifiedNotes() NoteFilter {
	return NotesByState(StateUnverified)
}

// ProcessingNotes selects notes consumed by a pending local transaction.
func ProcessingNotes() NoteFilter {
	return NotesByState(StateProcessingAuthenticated, StateProcessingUnauthenticated)
}

// ConsumedNotes selects notes in a terminal state.
func ConsumedNotes() NoteFilter {
	return NotesByState(StateConsumedAuthenticatedLocal, StateConsumedUnauthenticatedLocal, StateConsumedExternal)
}

// UnspentNotes selects notes whose nullifier may still appear on-chain.
func UnspentNotes() NoteFilter {
	return NotesByState(
		StateExpected,
		StateUnverified,
		StateCommitted,
		StateInvalid,
		StateProcessingAuthenticated,
		StateProcessingUnauthenticated,
	)
}

// Matches reports whether an input note passes the filter.
func (f NoteFilter) Matches(r *InputNoteRecord) bool {
	switch f.Kind {
	case NoteFilterIDs:
		id := r.ID()
		for _, want := range f.IDs {
			if want == id {
				return true
			}
		}
		return false
	case NoteFilterNullifiers:
		n := r.Nullifier()
		for _, want := range f.Nullifiers {
			if want == n {
				return true
			}
		}
		return false
	case NoteFilterStates:
		k := r.State.Kind()
		for _, want := range f.States {
			if want == k {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// MatchesOutput reports whether an output note passes the filter.
func (f NoteFilter) MatchesOutput(r *OutputNoteRecord) bool {
	switch f.Kind {
	case NoteFilterIDs:
		for _, want := range f.IDs {
			if want == r.ID {
				return true
			}
		}
		return false
	case NoteFilterNullifiers:
		n, ok := r.Nullifier()
		if !ok {
			return false
		}
		for _, want := range f.Nullifiers {
			if want == n {
				return true
			}
		}
		return false
	case NoteFilterStates:
		for _, want := range f.States {
			if OutputStateFor(want) == r.State {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// OutputStateFor maps an input state to the output state with the same
// meaning, or 0 when there is none.
func OutputStateFor(k NoteStateKind) OutputNoteStateKind {
	switch {
	case k == StateExpected:
		return OutputNoteExpected
	case k == StateCommitted:
		return OutputNoteCommitted
	case k.IsConsumed():
		return OutputNoteConsumed
	}
	return 0
}

// TransactionFilterKind selects how transactions are looked up.
type TransactionFilterKind uint8

const (
	TransactionFilterAll TransactionFilterKind = iota
	TransactionFilterUncommitted
	TransactionFilterIDs
)

// TransactionFilter selects transactions.
type TransactionFilter struct {
	Kind TransactionFilterKind
	IDs  []TransactionID
}

func AllTransactions() TransactionFilter {
	return TransactionFilter{Kind: TransactionFilterAll}
}

// UncommittedTransactions selects pending transactions.
func UncommittedTransactions() TransactionFilter {
	return TransactionFilter{Kind: TransactionFilterUncommitted}
}

func TransactionsByID(ids ...TransactionID) TransactionFilter {
	return TransactionFilter{Kind: TransactionFilterIDs, IDs: ids}
}

// Matches reports whether a transaction passes the filter.
func (f TransactionFilter) Matches(t *TransactionRecord) bool {
	switch f.Kind {
	case TransactionFilterUncommitted:
		return t.Status == TransactionStatusPending
	case TransactionFilterIDs:
		for _, id := range f.IDs {
			if id == t.ID {
				return true
			}
		}
		return false
	default:
		return true
	}
}
