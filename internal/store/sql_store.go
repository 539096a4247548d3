package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-light-client/internal/crypto"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/models"
)

// runner is satisfied by both *sql.DB and *sql.Tx.
type runner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLStore returns a [Store] over an open and migrated database.
// ApplyStateSync and ApplyTransaction run in a single SQL transaction each.
func NewSQLStore(db *DB, logger *logger.Logger) Store {
	return &sqlStore{
		DB:     db,
		logger: logger,
	}
}

// exec builds a statement and runs it on r.
func (s *sqlStore) exec(ctx context.Context, r runner, fn string, build func() (string, []any, error)) (sql.Result, error) {
	log := logger.FromContext(ctx)

	query, args, err := build()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build statement")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute statement")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, s.classify(err))
	}

	return res, nil
}

// queryRecords runs a query selecting one JSON column and decodes every row.
func queryRecords[T any](ctx context.Context, s *sqlStore, fn string, build func() (string, []any, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := build()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var item T
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to decode stored record")
			return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
		}
		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

// inTx runs fn inside one SQL transaction.
func (s *sqlStore) inTx(ctx context.Context, fn string, body func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, s.classify(err))
	}
	defer tx.Rollback()

	if err := body(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, s.classify(err))
	}

	return nil
}

func (s *sqlStore) GetInputNotes(ctx context.Context, filter models.NoteFilter) ([]models.InputNoteRecord, error) {
	return queryRecords[models.InputNoteRecord](ctx, s, "sqlStore.GetInputNotes", func() (string, []any, error) {
		return s.selectInputNotesQuery(filter)
	})
}

func (s *sqlStore) GetOutputNotes(ctx context.Context, filter models.NoteFilter) ([]models.OutputNoteRecord, error) {
	return queryRecords[models.OutputNoteRecord](ctx, s, "sqlStore.GetOutputNotes", func() (string, []any, error) {
		return s.selectOutputNotesQuery(filter)
	})
}

func (s *sqlStore) UpsertInputNotes(ctx context.Context, notes ...models.InputNoteRecord) error {
	return s.inTx(ctx, "sqlStore.UpsertInputNotes", func(tx *sql.Tx) error {
		return s.upsertInputNotes(ctx, tx, notes)
	})
}

func (s *sqlStore) upsertInputNotes(ctx context.Context, r runner, notes []models.InputNoteRecord) error {
	for _, note := range notes {
		_, err := s.exec(ctx, r, "sqlStore.upsertInputNotes", func() (string, []any, error) {
			return s.upsertInputNoteQuery(note)
		})
		if err != nil {
			return fmt.Errorf("failed to save input note (id=%s): %w", note.ID(), err)
		}
	}
	return nil
}

func (s *sqlStore) UpsertOutputNotes(ctx context.Context, notes ...models.OutputNoteRecord) error {
	return s.inTx(ctx, "sqlStore.UpsertOutputNotes", func(tx *sql.Tx) error {
		return s.upsertOutputNotes(ctx, tx, notes)
	})
}

func (s *sqlStore) upsertOutputNotes(ctx context.Context, r runner, notes []models.OutputNoteRecord) error {
	for _, note := range notes {
		_, err := s.exec(ctx, r, "sqlStore.upsertOutputNotes", func() (string, []any, error) {
			return s.upsertOutputNoteQuery(note)
		})
		if err != nil {
			return fmt.Errorf("failed to save output note (id=%s): %w", note.ID, err)
		}
	}
	return nil
}

func (s *sqlStore) GetUnspentInputNoteNullifiers(ctx context.Context) ([]models.Nullifier, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.selectUnspentNullifiersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlStore.GetUnspentInputNoteNullifiers").Msg("failed to query nullifiers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}
	defer rows.Close()

	var nullifiers []models.Nullifier
	for rows.Next() {
		var n models.Nullifier
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		nullifiers = append(nullifiers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nullifiers, nil
}

func (s *sqlStore) GetAccountHeaders(ctx context.Context) ([]models.AccountHeader, error) {
	accounts, err := queryRecords[models.Account](ctx, s, "sqlStore.GetAccountHeaders", s.selectLatestAccountsQuery)
	if err != nil {
		return nil, err
	}

	headers := make([]models.AccountHeader, 0, len(accounts))
	for _, a := range accounts {
		headers = append(headers, a.Header())
	}
	return headers, nil
}

func (s *sqlStore) GetAccount(ctx context.Context, id models.AccountID) (models.Account, error) {
	accounts, err := queryRecords[models.Account](ctx, s, "sqlStore.GetAccount", func() (string, []any, error) {
		return s.selectAccountQuery(id)
	})
	if err != nil {
		return models.Account{}, err
	}
	if len(accounts) == 0 {
		return models.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return accounts[0], nil
}

func (s *sqlStore) GetAccountHeaderByHash(ctx context.Context, hash crypto.Digest) (*models.AccountHeader, error) {
	accounts, err := queryRecords[models.Account](ctx, s, "sqlStore.GetAccountHeaderByHash", func() (string, []any, error) {
		return s.selectAccountByHashQuery(hash)
	})
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}

	header := accounts[0].Header()
	return &header, nil
}

func (s *sqlStore) InsertAccount(ctx context.Context, account models.Account) error {
	_, err := s.exec(ctx, s.DB, "sqlStore.InsertAccount", func() (string, []any, error) {
		return s.upsertAccountQuery(account)
	})
	return err
}

func (s *sqlStore) IsAccountLocked(ctx context.Context, id models.AccountID) (bool, error) {
	query, args, err := s.selectAccountLockedQuery(id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var locked bool
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqlStore.IsAccountLocked").
			Str("account_id", id.String()).
			Msg("failed to read account lock")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}

	return locked, nil
}

func (s *sqlStore) GetTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.selectTransactionsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlStore.GetTransactions").Msg("failed to query transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}
	defer rows.Close()

	var txs []models.TransactionRecord
	for rows.Next() {
		var (
			raw          string
			status       int
			commitHeight int64
		)
		if err := rows.Scan(&raw, &status, &commitHeight); err != nil {
			log.Err(err).Str("func", "sqlStore.GetTransactions").Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var tx models.TransactionRecord
		if err := json.Unmarshal([]byte(raw), &tx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
		}
		// sync updates only touch the columns
		tx.Status = models.TransactionStatus(status)
		tx.CommitHeight = uint32(commitHeight)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return txs, nil
}

func (s *sqlStore) ApplyTransaction(ctx context.Context, record models.TransactionRecord, consumed []models.InputNoteRecord, created []models.OutputNoteRecord) error {
	return s.inTx(ctx, "sqlStore.ApplyTransaction", func(tx *sql.Tx) error {
		res, err := s.exec(ctx, tx, "sqlStore.ApplyTransaction", func() (string, []any, error) {
			return s.insertTransactionQuery(record)
		})
		if errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("%w: %s: %w", ErrTransactionExists, record.ID, err)
		}
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: %s", ErrTransactionExists, record.ID)
		}

		if err := s.upsertInputNotes(ctx, tx, consumed); err != nil {
			return err
		}
		return s.upsertOutputNotes(ctx, tx, created)
	})
}

func (s *sqlStore) GetSyncHeight(ctx context.Context) (uint32, error) {
	query, args, err := s.selectSyncHeightQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var height int64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&height); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqlStore.GetSyncHeight").
			Msg("failed to read sync height")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}

	return uint32(height), nil
}

func (s *sqlStore) GetBlockHeaderByNum(ctx context.Context, num uint32) (models.StoredBlockHeader, error) {
	query, args, err := s.selectBlockHeaderQuery(num)
	if err != nil {
		return models.StoredBlockHeader{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		raw    string
		stored models.StoredBlockHeader
	)
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&raw, &stored.HasClientNotes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredBlockHeader{}, fmt.Errorf("%w: block %d", ErrBlockHeaderNotFound, num)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqlStore.GetBlockHeaderByNum").
			Uint32("block_num", num).
			Msg("failed to read block header")
		return models.StoredBlockHeader{}, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}

	if err := json.Unmarshal([]byte(raw), &stored.Header); err != nil {
		return models.StoredBlockHeader{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	return stored, nil
}

func (s *sqlStore) InsertBlockHeader(ctx context.Context, header models.BlockHeader, peaks mmr.Peaks, hasClientNotes bool) error {
	_, err := s.exec(ctx, s.DB, "sqlStore.InsertBlockHeader", func() (string, []any, error) {
		return s.upsertBlockHeaderQuery(header, peaks, hasClientNotes)
	})
	return err
}

func (s *sqlStore) BuildCurrentPartialMmr(ctx context.Context) (*mmr.PartialMmr, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.selectLatestPeaksQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		rawPeaks string
		peaks    mmr.Peaks
	)
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&rawPeaks)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return mmr.NewPartial(mmr.Peaks{}), nil
	case err != nil:
		log.Err(err).Str("func", "sqlStore.BuildCurrentPartialMmr").Msg("failed to read latest peaks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}
	if err := json.Unmarshal([]byte(rawPeaks), &peaks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	nodes, err := s.getMmrNodes(ctx)
	if err != nil {
		return nil, err
	}

	// the lone leaf of an odd forest is the previous block; its flag decides
	// whether it stays provable
	trackLatest := false
	if peaks.Forest&1 == 1 {
		latest, err := s.GetBlockHeaderByNum(ctx, uint32(peaks.Forest.NumLeaves()-1))
		if err != nil && !errors.Is(err, ErrBlockHeaderNotFound) {
			return nil, err
		}
		trackLatest = err == nil && latest.HasClientNotes
	}

	return mmr.NewPartialFromParts(peaks, nodes, trackLatest)
}

func (s *sqlStore) getMmrNodes(ctx context.Context) (map[mmr.InOrderIndex]crypto.Digest, error) {
	query, args, err := s.selectMmrNodesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqlStore.getMmrNodes").Msg("failed to query mmr nodes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}
	defer rows.Close()

	nodes := make(map[mmr.InOrderIndex]crypto.Digest)
	for rows.Next() {
		var (
			idx    int64
			digest crypto.Digest
		)
		if err := rows.Scan(&idx, &digest); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		nodes[mmr.InOrderIndex(idx)] = digest
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nodes, nil
}

func (s *sqlStore) GetNoteTags(ctx context.Context) ([]models.NoteTagRecord, error) {
	query, args, err := s.selectNoteTagsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqlStore.GetNoteTags").Msg("failed to query note tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}
	defer rows.Close()

	var tags []models.NoteTagRecord
	for rows.Next() {
		var (
			tag  int64
			kind int
			key  string
		)
		if err := rows.Scan(&tag, &kind, &key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		source, err := parseTagSource(models.NoteTagSourceKind(kind), key)
		if err != nil {
			return nil, fmt.Errorf("%w: note tag source %q: %w", ErrDecodingRecord, key, err)
		}
		tags = append(tags, models.NoteTagRecord{Tag: models.NoteTag(tag), Source: source})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

func (s *sqlStore) AddNoteTag(ctx context.Context, tag models.NoteTagRecord) (bool, error) {
	res, err := s.exec(ctx, s.DB, "sqlStore.AddNoteTag", func() (string, []any, error) {
		return s.insertNoteTagQuery(tag)
	})
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n > 0, nil
}

func (s *sqlStore) RemoveNoteTag(ctx context.Context, tag models.NoteTagRecord) (int, error) {
	return s.removeNoteTag(ctx, s.DB, tag)
}

func (s *sqlStore) removeNoteTag(ctx context.Context, r runner, tag models.NoteTagRecord) (int, error) {
	res, err := s.exec(ctx, r, "sqlStore.RemoveNoteTag", func() (string, []any, error) {
		return s.deleteNoteTagQuery(tag)
	})
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return int(n), nil
}

func (s *sqlStore) Close() error {
	return s.DB.Close()
}

// ApplyStateSync persists one sync step atomically. Either the whole update
// is visible afterwards or none of it is.
func (s *sqlStore) ApplyStateSync(ctx context.Context, update models.StateSyncUpdate) error {
	log := logger.FromContext(ctx)

	err := s.inTx(ctx, "sqlStore.ApplyStateSync", func(tx *sql.Tx) error {
		if update.BlockHeader != nil {
			_, err := s.exec(ctx, tx, "sqlStore.ApplyStateSync", func() (string, []any, error) {
				return s.upsertBlockHeaderQuery(*update.BlockHeader, update.NewMmrPeaks, update.BlockHasRelevantNotes)
			})
			if err != nil {
				return fmt.Errorf("failed to save block header %d: %w", update.BlockHeader.BlockNum, err)
			}
		}

		if len(update.NewAuthNodes) > 0 {
			_, err := s.exec(ctx, tx, "sqlStore.ApplyStateSync", func() (string, []any, error) {
				return s.insertMmrNodesQuery(update.NewAuthNodes)
			})
			if err != nil {
				return fmt.Errorf("failed to save mmr nodes: %w", err)
			}
		}

		notes := update.NoteUpdates
		if err := s.upsertInputNotes(ctx, tx, slices.Concat(notes.NewInputNotes, notes.UpdatedInputNotes)); err != nil {
			return err
		}
		if err := s.upsertOutputNotes(ctx, tx, slices.Concat(notes.NewOutputNotes, notes.UpdatedOutputNotes)); err != nil {
			return err
		}

		for _, inclusion := range update.TransactionUpdates.Committed {
			_, err := s.exec(ctx, tx, "sqlStore.ApplyStateSync", func() (string, []any, error) {
				return s.commitTransactionQuery(inclusion)
			})
			if err != nil {
				return fmt.Errorf("failed to commit transaction %s: %w", inclusion.TransactionID, err)
			}
		}
		for _, id := range update.TransactionUpdates.Discarded {
			_, err := s.exec(ctx, tx, "sqlStore.ApplyStateSync", func() (string, []any, error) {
				return s.discardTransactionQuery(id)
			})
			if err != nil {
				return fmt.Errorf("failed to discard transaction %s: %w", id, err)
			}
		}

		for _, account := range update.AccountUpdates.UpdatedPublicAccounts {
			_, err := s.exec(ctx, tx, "sqlStore.ApplyStateSync", func() (string, []any, error) {
				return s.upsertAccountQuery(account)
			})
			if err != nil {
				return fmt.Errorf("failed to save account %s: %w", account.ID, err)
			}
		}
		for _, mismatch := range update.AccountUpdates.MismatchedPrivateAccounts {
			_, err := s.exec(ctx, tx, "sqlStore.ApplyStateSync", func() (string, []any, error) {
				return s.lockAccountQuery(mismatch.AccountID)
			})
			if err != nil {
				return fmt.Errorf("failed to lock account %s: %w", mismatch.AccountID, err)
			}
		}

		for _, tag := range update.TagsToRemove {
			if _, err := s.removeNoteTag(ctx, tx, tag); err != nil {
				return fmt.Errorf("failed to remove note tag %s: %w", tag.Tag, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlStore.ApplyStateSync").
			Uint32("block_num", update.BlockNum()).
			Msg("state sync update rolled back")
		return err
	}

	return nil
}
