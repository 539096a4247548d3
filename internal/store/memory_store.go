package store

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MKhiriev/go-light-client/internal/crypto"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/models"
)

// memoryStore keeps the whole client state in maps guarded by one mutex.
// With a file path it snapshots the state as JSON after every write. A failed
// snapshot leaves the in-process state ahead of the file.
type memoryStore struct {
	path     string
	inMemory bool

	mu           sync.RWMutex
	inputNotes   map[models.NoteID]models.InputNoteRecord
	outputNotes  map[models.NoteID]models.OutputNoteRecord
	accounts     map[models.AccountID][]models.Account
	locked       map[models.AccountID]bool
	transactions map[models.TransactionID]models.TransactionRecord
	headers      map[uint32]memoryBlockHeader
	mmrNodes     map[mmr.InOrderIndex]crypto.Digest
	tags         []models.NoteTagRecord

	logger *logger.Logger
}

type memoryBlockHeader struct {
	models.StoredBlockHeader
	Peaks mmr.Peaks `json:"peaks"`
}

type memoryPersistedState struct {
	InputNotes   map[models.NoteID]models.InputNoteRecord          `json:"input_notes"`
	OutputNotes  map[models.NoteID]models.OutputNoteRecord         `json:"output_notes"`
	Accounts     map[models.AccountID][]models.Account             `json:"accounts"`
	Locked       map[models.AccountID]bool                         `json:"locked,omitempty"`
	Transactions map[models.TransactionID]models.TransactionRecord `json:"transactions"`
	Headers      map[uint32]memoryBlockHeader                      `json:"headers"`
	MmrNodes     map[mmr.InOrderIndex]crypto.Digest                `json:"mmr_nodes"`
	Tags         []models.NoteTagRecord                            `json:"tags"`
}

// NewMemoryStore returns a map backed [Store]. An empty path or ":memory:"
// keeps everything in process; any other path is loaded on start and
// rewritten after each change.
func NewMemoryStore(path string, logger *logger.Logger) (Store, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &memoryStore{
		path:         path,
		inMemory:     path == ":memory:" || path == "memory",
		inputNotes:   make(map[models.NoteID]models.InputNoteRecord),
		outputNotes:  make(map[models.NoteID]models.OutputNoteRecord),
		accounts:     make(map[models.AccountID][]models.Account),
		locked:       make(map[models.AccountID]bool),
		transactions: make(map[models.TransactionID]models.TransactionRecord),
		headers:      make(map[uint32]memoryBlockHeader),
		mmrNodes:     make(map[mmr.InOrderIndex]crypto.Digest),
		logger:       logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *memoryStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read memory store file: %w", err)
	}

	var st memoryPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: memory store file: %w", ErrDecodingRecord, err)
	}

	if st.InputNotes != nil {
		s.inputNotes = st.InputNotes
	}
	if st.OutputNotes != nil {
		s.outputNotes = st.OutputNotes
	}
	if st.Accounts != nil {
		s.accounts = st.Accounts
	}
	if st.Locked != nil {
		s.locked = st.Locked
	}
	if st.Transactions != nil {
		s.transactions = st.Transactions
	}
	if st.Headers != nil {
		s.headers = st.Headers
	}
	if st.MmrNodes != nil {
		s.mmrNodes = st.MmrNodes
	}
	s.tags = st.Tags

	return nil
}

// persist must be called with mu held for writing.
func (s *memoryStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create memory store dir: %w", err)
		}
	}

	state := memoryPersistedState{
		InputNotes:   s.inputNotes,
		OutputNotes:  s.outputNotes,
		Accounts:     s.accounts,
		Locked:       s.locked,
		Transactions: s.transactions,
		Headers:      s.headers,
		MmrNodes:     s.mmrNodes,
		Tags:         s.tags,
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: memory store: %w", ErrEncodingRecord, err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write memory store file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace memory store file: %w", err)
	}

	return nil
}

// ── notes ─────────────────────────────────────────────────────────────────────

func (s *memoryStore) GetInputNotes(_ context.Context, filter models.NoteFilter) ([]models.InputNoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.InputNoteRecord
	for _, note := range s.inputNotes {
		if filter.Matches(&note) {
			out = append(out, note)
		}
	}
	slices.SortFunc(out, func(a, b models.InputNoteRecord) int {
		if c := cmp.Compare(a.CreatedAt, b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

func (s *memoryStore) GetOutputNotes(_ context.Context, filter models.NoteFilter) ([]models.OutputNoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.OutputNoteRecord
	for _, note := range s.outputNotes {
		if filter.MatchesOutput(&note) {
			out = append(out, note)
		}
	}
	slices.SortFunc(out, func(a, b models.OutputNoteRecord) int {
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (s *memoryStore) UpsertInputNotes(_ context.Context, notes ...models.InputNoteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, note := range notes {
		s.inputNotes[note.ID()] = note
	}
	return s.persist()
}

func (s *memoryStore) UpsertOutputNotes(_ context.Context, notes ...models.OutputNoteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, note := range notes {
		s.outputNotes[note.ID] = note
	}
	return s.persist()
}

func (s *memoryStore) GetUnspentInputNoteNullifiers(ctx context.Context) ([]models.Nullifier, error) {
	notes, err := s.GetInputNotes(ctx, models.UnspentNotes())
	if err != nil {
		return nil, err
	}

	nullifiers := make([]models.Nullifier, 0, len(notes))
	for _, note := range notes {
		nullifiers = append(nullifiers, note.Nullifier())
	}
	return nullifiers, nil
}

// ── accounts ──────────────────────────────────────────────────────────────────

func (s *memoryStore) latestAccount(id models.AccountID) (models.Account, bool) {
	history := s.accounts[id]
	if len(history) == 0 {
		return models.Account{}, false
	}
	return history[len(history)-1], true
}

func (s *memoryStore) GetAccountHeaders(_ context.Context) ([]models.AccountHeader, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	headers := make([]models.AccountHeader, 0, len(s.accounts))
	for id := range s.accounts {
		if account, ok := s.latestAccount(id); ok {
			headers = append(headers, account.Header())
		}
	}
	slices.SortFunc(headers, func(a, b models.AccountHeader) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return headers, nil
}

func (s *memoryStore) GetAccount(_ context.Context, id models.AccountID) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.latestAccount(id)
	if !ok {
		return models.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return account, nil
}

func (s *memoryStore) GetAccountHeaderByHash(_ context.Context, hash crypto.Digest) (*models.AccountHeader, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, history := range s.accounts {
		for _, account := range history {
			if account.Hash() == hash {
				header := account.Header()
				return &header, nil
			}
		}
	}
	return nil, nil
}

func (s *memoryStore) InsertAccount(_ context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsertAccount(account)
	return s.persist()
}

// upsertAccount keeps the history ordered by nonce.
func (s *memoryStore) upsertAccount(account models.Account) {
	history := s.accounts[account.ID]
	i, found := slices.BinarySearchFunc(history, account.Nonce, func(a models.Account, nonce uint64) int {
		return cmp.Compare(a.Nonce, nonce)
	})
	if found {
		history[i] = account
	} else {
		history = slices.Insert(history, i, account)
	}
	s.accounts[account.ID] = history
}

func (s *memoryStore) IsAccountLocked(_ context.Context, id models.AccountID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.accounts[id]; !ok {
		return false, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return s.locked[id], nil
}

// ── transactions ──────────────────────────────────────────────────────────────

func (s *memoryStore) GetTransactions(_ context.Context, filter models.TransactionFilter) ([]models.TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TransactionRecord
	for _, tx := range s.transactions {
		if filter.Matches(&tx) {
			out = append(out, tx)
		}
	}
	slices.SortFunc(out, func(a, b models.TransactionRecord) int {
		if c := cmp.Compare(a.BlockNum, b.BlockNum); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (s *memoryStore) ApplyTransaction(_ context.Context, tx models.TransactionRecord, consumed []models.InputNoteRecord, created []models.OutputNoteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[tx.ID]; ok {
		return fmt.Errorf("%w: %s", ErrTransactionExists, tx.ID)
	}

	s.transactions[tx.ID] = tx
	for _, note := range consumed {
		s.inputNotes[note.ID()] = note
	}
	for _, note := range created {
		s.outputNotes[note.ID] = note
	}
	return s.persist()
}

// ── chain ─────────────────────────────────────────────────────────────────────

func (s *memoryStore) GetSyncHeight(_ context.Context) (uint32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var height uint32
	for num := range s.headers {
		height = max(height, num)
	}
	return height, nil
}

func (s *memoryStore) GetBlockHeaderByNum(_ context.Context, num uint32) (models.StoredBlockHeader, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.headers[num]
	if !ok {
		return models.StoredBlockHeader{}, fmt.Errorf("%w: block %d", ErrBlockHeaderNotFound, num)
	}
	return stored.StoredBlockHeader, nil
}

func (s *memoryStore) InsertBlockHeader(_ context.Context, header models.BlockHeader, peaks mmr.Peaks, hasClientNotes bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsertHeader(header, peaks, hasClientNotes)
	return s.persist()
}

// upsertHeader only updates the flag of an already stored header.
func (s *memoryStore) upsertHeader(header models.BlockHeader, peaks mmr.Peaks, hasClientNotes bool) {
	if stored, ok := s.headers[header.BlockNum]; ok {
		stored.HasClientNotes = hasClientNotes
		s.headers[header.BlockNum] = stored
		return
	}
	s.headers[header.BlockNum] = memoryBlockHeader{
		StoredBlockHeader: models.StoredBlockHeader{Header: header, HasClientNotes: hasClientNotes},
		Peaks:             peaks,
	}
}

func (s *memoryStore) BuildCurrentPartialMmr(_ context.Context) (*mmr.PartialMmr, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.headers) == 0 {
		return mmr.NewPartial(mmr.Peaks{}), nil
	}

	var latest uint32
	for num := range s.headers {
		latest = max(latest, num)
	}
	peaks := s.headers[latest].Peaks

	trackLatest := false
	if peaks.Forest&1 == 1 {
		trackLatest = s.headers[uint32(peaks.Forest.NumLeaves()-1)].HasClientNotes
	}

	return mmr.NewPartialFromParts(peaks, maps.Clone(s.mmrNodes), trackLatest)
}

// ── tags ──────────────────────────────────────────────────────────────────────

func (s *memoryStore) GetNoteTags(_ context.Context) ([]models.NoteTagRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.tags), nil
}

func (s *memoryStore) AddNoteTag(_ context.Context, tag models.NoteTagRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.tags, tag) {
		return false, nil
	}
	s.tags = append(s.tags, tag)
	return true, s.persist()
}

func (s *memoryStore) RemoveNoteTag(_ context.Context, tag models.NoteTagRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.removeTag(tag)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.persist()
}

func (s *memoryStore) removeTag(tag models.NoteTagRecord) int {
	before := len(s.tags)
	s.tags = slices.DeleteFunc(s.tags, func(t models.NoteTagRecord) bool {
		return t == tag
	})
	return before - len(s.tags)
}

// ── sync ──────────────────────────────────────────────────────────────────────

func (s *memoryStore) ApplyStateSync(ctx context.Context, update models.StateSyncUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.BlockHeader != nil {
		s.upsertHeader(*update.BlockHeader, update.NewMmrPeaks, update.BlockHasRelevantNotes)
	}
	for _, node := range update.NewAuthNodes {
		if _, ok := s.mmrNodes[node.Index]; !ok {
			s.mmrNodes[node.Index] = node.Digest
		}
	}

	notes := update.NoteUpdates
	for _, note := range slices.Concat(notes.NewInputNotes, notes.UpdatedInputNotes) {
		s.inputNotes[note.ID()] = note
	}
	for _, note := range slices.Concat(notes.NewOutputNotes, notes.UpdatedOutputNotes) {
		s.outputNotes[note.ID] = note
	}

	for _, inclusion := range update.TransactionUpdates.Committed {
		if tx, ok := s.transactions[inclusion.TransactionID]; ok {
			tx.Status = models.TransactionStatusCommitted
			tx.CommitHeight = inclusion.BlockNum
			s.transactions[tx.ID] = tx
		}
	}
	for _, id := range update.TransactionUpdates.Discarded {
		if tx, ok := s.transactions[id]; ok {
			tx.Status = models.TransactionStatusDiscarded
			s.transactions[id] = tx
		}
	}

	for _, account := range update.AccountUpdates.UpdatedPublicAccounts {
		s.upsertAccount(account)
	}
	for _, mismatch := range update.AccountUpdates.MismatchedPrivateAccounts {
		if _, ok := s.accounts[mismatch.AccountID]; ok {
			s.locked[mismatch.AccountID] = true
		}
	}

	for _, tag := range update.TagsToRemove {
		s.removeTag(tag)
	}

	if err := s.persist(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "memoryStore.ApplyStateSync").
			Uint32("block_num", update.BlockNum()).
			Msg("failed to persist state sync update")
		return err
	}
	return nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist()
}
