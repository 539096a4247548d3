package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-light-client/internal/crypto"
	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/models"
)

const (
	tableBlockHeaders  = "block_headers"
	tableChainMmrNodes = "chain_mmr_nodes"
	tableInputNotes    = "input_notes"
	tableOutputNotes   = "output_notes"
	tableAccounts      = "accounts"
	tableTransactions  = "transactions"
	tableNoteTags      = "note_tags"
)

const (
	upsertInputNoteSuffix   = "ON CONFLICT (note_id) DO UPDATE SET state_kind = excluded.state_kind, record = excluded.record"
	upsertOutputNoteSuffix  = "ON CONFLICT (note_id) DO UPDATE SET nullifier = excluded.nullifier, state = excluded.state, record = excluded.record"
	upsertAccountSuffix     = "ON CONFLICT (id, nonce) DO UPDATE SET hash = excluded.hash, account = excluded.account"
	upsertBlockHeaderSuffix = "ON CONFLICT (block_num) DO UPDATE SET has_client_notes = excluded.has_client_notes"
	insertIgnoreNodeSuffix  = "ON CONFLICT (idx) DO NOTHING"
	insertIgnoreTxSuffix    = "ON CONFLICT (id) DO NOTHING"
	insertIgnoreTagSuffix   = "ON CONFLICT (tag, source_kind, source_key) DO NOTHING"

	latestAccountStateWhere = "a.nonce = (SELECT MAX(b.nonce) FROM accounts b WHERE b.id = a.id)"
)

// digestArgs turns digests into driver values. A bare crypto.Digest is an
// array, which squirrel would expand into 32 placeholders.
func digestArgs(digests []crypto.Digest) []any {
	args := make([]any, 0, len(digests))
	for _, d := range digests {
		args = append(args, d.Bytes())
	}
	return args
}

func (db *DB) selectInputNotesQuery(filter models.NoteFilter) (string, []any, error) {
	q := db.builder.
		Select("record").
		From(tableInputNotes).
		OrderBy("created_at", "note_id")

	switch filter.Kind {
	case models.NoteFilterIDs:
		q = q.Where(sq.Eq{"note_id": digestArgs(filter.IDs)})
	case models.NoteFilterNullifiers:
		q = q.Where(sq.Eq{"nullifier": digestArgs(filter.Nullifiers)})
	case models.NoteFilterStates:
		states := make([]any, 0, len(filter.States))
		for _, s := range filter.States {
			states = append(states, int(s))
		}
		q = q.Where(sq.Eq{"state_kind": states})
	}

	return q.ToSql()
}

func (db *DB) selectOutputNotesQuery(filter models.NoteFilter) (string, []any, error) {
	q := db.builder.
		Select("record").
		From(tableOutputNotes).
		OrderBy("note_id")

	switch filter.Kind {
	case models.NoteFilterIDs:
		q = q.Where(sq.Eq{"note_id": digestArgs(filter.IDs)})
	case models.NoteFilterNullifiers:
		q = q.Where(sq.Eq{"nullifier": digestArgs(filter.Nullifiers)})
	case models.NoteFilterStates:
		seen := make(map[models.OutputNoteStateKind]bool)
		states := make([]any, 0, len(filter.States))
		for _, s := range filter.States {
			out := models.OutputStateFor(s)
			if out == 0 || seen[out] {
				continue
			}
			seen[out] = true
			states = append(states, int(out))
		}
		q = q.Where(sq.Eq{"state": states})
	}

	return q.ToSql()
}

func (db *DB) upsertInputNoteQuery(note models.InputNoteRecord) (string, []any, error) {
	record, err := json.Marshal(note)
	if err != nil {
		return "", nil, fmt.Errorf("%w: input note %s: %w", ErrEncodingRecord, note.ID(), err)
	}

	return db.builder.
		Insert(tableInputNotes).
		Columns("note_id", "nullifier", "state_kind", "record", "created_at").
		Values(note.ID().Bytes(), note.Nullifier().Bytes(), int(note.State.Kind()), string(record), int64(note.CreatedAt)).
		Suffix(upsertInputNoteSuffix).
		ToSql()
}

func (db *DB) upsertOutputNoteQuery(note models.OutputNoteRecord) (string, []any, error) {
	record, err := json.Marshal(note)
	if err != nil {
		return "", nil, fmt.Errorf("%w: output note %s: %w", ErrEncodingRecord, note.ID, err)
	}

	var nullifier any
	if n, ok := note.Nullifier(); ok {
		nullifier = n.Bytes()
	}

	return db.builder.
		Insert(tableOutputNotes).
		Columns("note_id", "nullifier", "state", "record").
		Values(note.ID.Bytes(), nullifier, int(note.State), string(record)).
		Suffix(upsertOutputNoteSuffix).
		ToSql()
}

func (db *DB) selectUnspentNullifiersQuery() (string, []any, error) {
	unspent := models.UnspentNotes().States
	states := make([]any, 0, len(unspent))
	for _, s := range unspent {
		states = append(states, int(s))
	}

	return db.builder.
		Select("nullifier").
		From(tableInputNotes).
		Where(sq.Eq{"state_kind": states}).
		OrderBy("created_at", "note_id").
		ToSql()
}

func (db *DB) selectLatestAccountsQuery() (string, []any, error) {
	return db.builder.
		Select("a.account").
		From(tableAccounts + " a").
		Where(latestAccountStateWhere).
		OrderBy("a.id").
		ToSql()
}

func (db *DB) selectAccountQuery(id models.AccountID) (string, []any, error) {
	return db.builder.
		Select("account").
		From(tableAccounts).
		Where(sq.Eq{"id": int64(id)}).
		OrderBy("nonce DESC").
		Limit(1).
		ToSql()
}

func (db *DB) selectAccountByHashQuery(hash crypto.Digest) (string, []any, error) {
	return db.builder.
		Select("account").
		From(tableAccounts).
		Where(sq.Eq{"hash": hash.Bytes()}).
		Limit(1).
		ToSql()
}

func (db *DB) selectAccountLockedQuery(id models.AccountID) (string, []any, error) {
	return db.builder.
		Select("locked").
		From(tableAccounts).
		Where(sq.Eq{"id": int64(id)}).
		OrderBy("nonce DESC").
		Limit(1).
		ToSql()
}

func (db *DB) upsertAccountQuery(account models.Account) (string, []any, error) {
	record, err := json.Marshal(account)
	if err != nil {
		return "", nil, fmt.Errorf("%w: account %s: %w", ErrEncodingRecord, account.ID, err)
	}

	return db.builder.
		Insert(tableAccounts).
		Columns("id", "nonce", "hash", "account", "locked").
		Values(int64(account.ID), int64(account.Nonce), account.Hash().Bytes(), string(record), false).
		Suffix(upsertAccountSuffix).
		ToSql()
}

func (db *DB) lockAccountQuery(id models.AccountID) (string, []any, error) {
	return db.builder.
		Update(tableAccounts).
		Set("locked", true).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
}

func (db *DB) selectTransactionsQuery(filter models.TransactionFilter) (string, []any, error) {
	q := db.builder.
		Select("record", "status", "commit_height").
		From(tableTransactions).
		OrderBy("block_num", "id")

	switch filter.Kind {
	case models.TransactionFilterUncommitted:
		q = q.Where(sq.Eq{"status": int(models.TransactionStatusPending)})
	case models.TransactionFilterIDs:
		q = q.Where(sq.Eq{"id": digestArgs(filter.IDs)})
	}

	return q.ToSql()
}

func (db *DB) insertTransactionQuery(tx models.TransactionRecord) (string, []any, error) {
	record, err := json.Marshal(tx)
	if err != nil {
		return "", nil, fmt.Errorf("%w: transaction %s: %w", ErrEncodingRecord, tx.ID, err)
	}

	return db.builder.
		Insert(tableTransactions).
		Columns("id", "account_id", "status", "block_num", "commit_height", "record").
		Values(tx.ID.Bytes(), int64(tx.AccountID), int(tx.Status), int64(tx.BlockNum), int64(tx.CommitHeight), string(record)).
		Suffix(insertIgnoreTxSuffix).
		ToSql()
}

func (db *DB) commitTransactionQuery(inclusion models.TransactionInclusion) (string, []any, error) {
	return db.builder.
		Update(tableTransactions).
		Set("status", int(models.TransactionStatusCommitted)).
		Set("commit_height", int64(inclusion.BlockNum)).
		Where(sq.Eq{"id": inclusion.TransactionID.Bytes()}).
		ToSql()
}

func (db *DB) discardTransactionQuery(id models.TransactionID) (string, []any, error) {
	return db.builder.
		Update(tableTransactions).
		Set("status", int(models.TransactionStatusDiscarded)).
		Where(sq.Eq{"id": id.Bytes()}).
		ToSql()
}

func (db *DB) selectSyncHeightQuery() (string, []any, error) {
	return db.builder.
		Select("COALESCE(MAX(block_num), 0)").
		From(tableBlockHeaders).
		ToSql()
}

func (db *DB) selectBlockHeaderQuery(num uint32) (string, []any, error) {
	return db.builder.
		Select("header", "has_client_notes").
		From(tableBlockHeaders).
		Where(sq.Eq{"block_num": int64(num)}).
		ToSql()
}

func (db *DB) selectLatestPeaksQuery() (string, []any, error) {
	return db.builder.
		Select("chain_mmr_peaks").
		From(tableBlockHeaders).
		OrderBy("block_num DESC").
		Limit(1).
		ToSql()
}

func (db *DB) upsertBlockHeaderQuery(header models.BlockHeader, peaks mmr.Peaks, hasClientNotes bool) (string, []any, error) {
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", nil, fmt.Errorf("%w: block header %d: %w", ErrEncodingRecord, header.BlockNum, err)
	}
	peaksJSON, err := json.Marshal(peaks)
	if err != nil {
		return "", nil, fmt.Errorf("%w: chain mmr peaks: %w", ErrEncodingRecord, err)
	}

	return db.builder.
		Insert(tableBlockHeaders).
		Columns("block_num", "header", "chain_mmr_peaks", "has_client_notes").
		Values(int64(header.BlockNum), string(headerJSON), string(peaksJSON), hasClientNotes).
		Suffix(upsertBlockHeaderSuffix).
		ToSql()
}

func (db *DB) selectMmrNodesQuery() (string, []any, error) {
	return db.builder.
		Select("idx", "digest").
		From(tableChainMmrNodes).
		ToSql()
}

func (db *DB) insertMmrNodesQuery(nodes []mmr.Node) (string, []any, error) {
	q := db.builder.
		Insert(tableChainMmrNodes).
		Columns("idx", "digest")
	for _, n := range nodes {
		q = q.Values(int64(n.Index), n.Digest.Bytes())
	}

	return q.Suffix(insertIgnoreNodeSuffix).ToSql()
}

// tagSourceKey flattens the owner of a tag subscription into one column.
func tagSourceKey(source models.NoteTagSource) string {
	switch source.Kind {
	case models.TagSourceAccount:
		return source.AccountID.String()
	case models.TagSourceNote:
		return source.NoteID.String()
	default:
		return ""
	}
}

func parseTagSource(kind models.NoteTagSourceKind, key string) (models.NoteTagSource, error) {
	switch kind {
	case models.TagSourceAccount:
		id, err := models.ParseAccountID(key)
		if err != nil {
			return models.NoteTagSource{}, err
		}
		return models.AccountTagSource(id), nil
	case models.TagSourceNote:
		id, err := crypto.ParseDigest(key)
		if err != nil {
			return models.NoteTagSource{}, err
		}
		return models.NoteTagSourceFor(id), nil
	default:
		return models.NoteTagSource{Kind: kind}, nil
	}
}

func (db *DB) selectNoteTagsQuery() (string, []any, error) {
	return db.builder.
		Select("tag", "source_kind", "source_key").
		From(tableNoteTags).
		OrderBy("tag", "source_kind", "source_key").
		ToSql()
}

func (db *DB) insertNoteTagQuery(tag models.NoteTagRecord) (string, []any, error) {
	return db.builder.
		Insert(tableNoteTags).
		Columns("tag", "source_kind", "source_key").
		Values(int64(tag.Tag), int(tag.Source.Kind), tagSourceKey(tag.Source)).
		Suffix(insertIgnoreTagSuffix).
		ToSql()
}

func (db *DB) deleteNoteTagQuery(tag models.NoteTagRecord) (string, []any, error) {
	return db.builder.
		Delete(tableNoteTags).
		Where(sq.Eq{
			"tag":         int64(tag.Tag),
			"source_kind": int(tag.Source.Kind),
			"source_key":  tagSourceKey(tag.Source),
		}).
		ToSql()
}
