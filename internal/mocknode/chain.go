// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mocknode is a deterministic in-memory rollup chain answering the
// node API of the light client.
//
// A [Chain] is built block by block: notes, nullifiers, account updates and
// transactions are queued with the Add methods and sealed into the next
// block by [Chain.AddBlock]. Every sealed header commits to the MMR of the
// blocks before it, so clients can authenticate the chain exactly as they
// would against a real node.
package mocknode

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-light-client/internal/crypto"
	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/models"
)

// blockNote is a note created in a block. Private notes only expose their
// id and metadata.
type blockNote struct {
	note    models.Note
	private bool
	index   uint16
}

type accountState struct {
	update  models.AccountHashUpdate
	account *models.Account
}

type block struct {
	header       models.BlockHeader
	notes        []blockNote
	noteTree     *crypto.SparseMerkleTree
	nullifiers   []models.Nullifier
	accounts     []accountState
	transactions []models.TransactionInclusion
}

// Chain is a mock rollup. It is safe for concurrent use.
type Chain struct {
	mu sync.RWMutex

	blocks  []*block
	pending *block
	mmr     *mmr.Mmr

	notes    map[models.NoteID]noteLocation
	accounts map[models.AccountID][]accountState
	txs      map[models.TransactionID]struct{}
}

type noteLocation struct {
	block uint32
	pos   int
}

// NewChain returns a chain holding only the genesis block.
func NewChain() *Chain {
	c := &Chain{
		mmr:      mmr.New(),
		notes:    make(map[models.NoteID]noteLocation),
		accounts: make(map[models.AccountID][]accountState),
		txs:      make(map[models.TransactionID]struct{}),
	}
	c.pending = newBlock()
	c.seal()
	return c
}

func newBlock() *block {
	tree, err := crypto.NewSparseMerkleTree(models.BlockNoteTreeDepth)
	if err != nil {
		panic(fmt.Sprintf("mocknode: note tree: %v", err))
	}
	return &block{noteTree: tree}
}

// ChainTip returns the number of the latest sealed block.
func (c *Chain) ChainTip() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tip()
}

func (c *Chain) tip() uint32 {
	return uint32(len(c.blocks) - 1)
}

// AddNote queues a note for the next block and returns its index in the
// block note tree.
func (c *Chain) AddNote(note models.Note, private bool) (uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending.notes) >= models.MaxNotesPerBlock {
		return 0, ErrNoteTreeFull
	}
	idx := uint16(len(c.pending.notes))
	if _, err := c.pending.noteTree.Insert(uint64(idx), note.Commitment()); err != nil {
		return 0, fmt.Errorf("insert note %s: %w", note.ID(), err)
	}
	c.pending.notes = append(c.pending.notes, blockNote{note: note, private: private, index: idx})
	return idx, nil
}

// AddNullifier queues the publication of n in the next block.
func (c *Chain) AddNullifier(n models.Nullifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending.nullifiers = append(c.pending.nullifiers, n)
}

// AddAccountUpdate queues a public account state for the next block.
func (c *Chain) AddAccountUpdate(account models.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()

	acc := account
	c.pending.accounts = append(c.pending.accounts, accountState{
		update:  models.AccountHashUpdate{AccountID: account.ID, Hash: account.Hash()},
		account: &acc,
	})
}

// AddPrivateAccountUpdate queues a private account commitment for the next
// block. The node never learns the state behind it.
func (c *Chain) AddPrivateAccountUpdate(id models.AccountID, hash crypto.Digest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending.accounts = append(c.pending.accounts, accountState{
		update: models.AccountHashUpdate{AccountID: id, Hash: hash},
	})
}

// AddTransaction queues the inclusion of a transaction in the next block.
func (c *Chain) AddTransaction(id models.TransactionID, account models.AccountID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.txs[id] = struct{}{}
	c.pending.transactions = append(c.pending.transactions, models.TransactionInclusion{
		TransactionID: id,
		AccountID:     account,
	})
}

// AddBlock seals every queued item into a new block and returns its header.
func (c *Chain) AddBlock() models.BlockHeader {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seal()
}

// seal turns the pending block into block number len(c.blocks). Its chain
// root commits to the peaks over all earlier blocks.
func (c *Chain) seal() models.BlockHeader {
	b := c.pending
	num := uint32(len(c.blocks))

	var prev crypto.Digest
	if num > 0 {
		prev = c.blocks[num-1].header.Hash()
	}

	nullifierParts := make([][]byte, 0, len(b.nullifiers))
	for _, n := range b.nullifiers {
		nullifierParts = append(nullifierParts, n.Bytes())
	}
	accountParts := make([][]byte, 0, len(b.accounts))
	for i := range b.accounts {
		b.accounts[i].update.BlockNum = num
		accountParts = append(accountParts, b.accounts[i].update.Hash.Bytes())
	}
	txParts := make([][]byte, 0, len(b.transactions))
	for i := range b.transactions {
		b.transactions[i].BlockNum = num
		txParts = append(txParts, b.transactions[i].TransactionID.Bytes())
	}

	b.header = models.BlockHeader{
		Version:       1,
		BlockNum:      num,
		Timestamp:     1_700_000_000 + num*3,
		PrevHash:      prev,
		ChainRoot:     c.mmr.Peaks().Hash(),
		AccountRoot:   crypto.Hash(accountParts...),
		NullifierRoot: crypto.Hash(nullifierParts...),
		NoteRoot:      b.noteTree.Root(),
		TxHash:        crypto.Hash(txParts...),
	}

	for pos, n := range b.notes {
		c.notes[n.note.ID()] = noteLocation{block: num, pos: pos}
	}
	for _, a := range b.accounts {
		c.accounts[a.update.AccountID] = append(c.accounts[a.update.AccountID], a)
	}

	c.mmr.Add(b.header.Hash())
	c.blocks = append(c.blocks, b)
	c.pending = newBlock()
	return b.header
}

// SyncState implements the node side of state sync: the response carries
// the first block after req.BlockNum holding a note with one of the
// requested tags, a nullifier with one of the requested prefixes, an update
// of a requested account or a transaction of a requested account. Without
// such a block the chain tip is returned.
func (c *Chain) SyncState(_ context.Context, req models.SyncStateRequest) (models.SyncStateResponse, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tip := c.tip()
	if req.BlockNum > tip {
		return models.SyncStateResponse{}, fmt.Errorf("%w: %d is above the chain tip %d", ErrBlockNotFound, req.BlockNum, tip)
	}

	tags := setOf(req.NoteTags)
	prefixes := setOf(req.NullifierPrefixes)
	accounts := setOf(req.AccountIDs)

	target := tip
	for num := req.BlockNum + 1; num <= tip; num++ {
		if c.blocks[num].isRelevant(tags, prefixes, accounts) {
			target = num
			break
		}
	}

	resp := models.SyncStateResponse{
		ChainTip:    tip,
		BlockHeader: c.blocks[target].header,
	}
	if target == req.BlockNum {
		return resp, nil
	}

	// the client appends block req.BlockNum itself, the delta covers the rest
	delta, err := c.mmr.GetDelta(mmr.Forest(req.BlockNum+1), mmr.Forest(target))
	if err != nil {
		return models.SyncStateResponse{}, fmt.Errorf("mmr delta %d -> %d: %w", req.BlockNum+1, target, err)
	}
	resp.MmrDelta = delta

	b := c.blocks[target]
	for _, n := range b.notes {
		if _, ok := tags[n.note.Metadata.Tag]; !ok {
			continue
		}
		cn, err := b.committedNote(n)
		if err != nil {
			return models.SyncStateResponse{}, err
		}
		resp.NoteInclusions = append(resp.NoteInclusions, cn)
	}

	latest := make(map[models.AccountID]int)
	for num := req.BlockNum + 1; num <= target; num++ {
		blk := c.blocks[num]
		for _, n := range blk.nullifiers {
			if _, ok := prefixes[models.NullifierPrefix(n)]; ok {
				resp.Nullifiers = append(resp.Nullifiers, models.NullifierUpdate{Nullifier: n, BlockNum: num})
			}
		}
		for _, a := range blk.accounts {
			if _, ok := accounts[a.update.AccountID]; !ok {
				continue
			}
			if i, seen := latest[a.update.AccountID]; seen {
				resp.AccountHashUpdates[i] = a.update
				continue
			}
			latest[a.update.AccountID] = len(resp.AccountHashUpdates)
			resp.AccountHashUpdates = append(resp.AccountHashUpdates, a.update)
		}
		for _, tx := range blk.transactions {
			if _, ok := accounts[tx.AccountID]; ok {
				resp.Transactions = append(resp.Transactions, tx)
			}
		}
	}

	return resp, nil
}

// SyncNotes returns the first block after blockNum with a note matching
// tags, or the tip, with the MMR path of that block under the tip forest.
func (c *Chain) SyncNotes(_ context.Context, blockNum uint32, tags []models.NoteTag) (models.NoteSyncResponse, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tip := c.tip()
	if blockNum > tip {
		return models.NoteSyncResponse{}, fmt.Errorf("%w: %d is above the chain tip %d", ErrBlockNotFound, blockNum, tip)
	}

	wanted := setOf(tags)
	target := tip
	for num := blockNum + 1; num <= tip; num++ {
		if c.blocks[num].hasTaggedNote(wanted) {
			target = num
			break
		}
	}

	b := c.blocks[target]
	resp := models.NoteSyncResponse{ChainTip: tip, BlockHeader: b.header}
	if target < tip {
		proof, err := c.mmr.OpenAt(uint64(target), mmr.Forest(tip))
		if err != nil {
			return models.NoteSyncResponse{}, fmt.Errorf("open block %d: %w", target, err)
		}
		resp.MmrPath = proof
	}
	for _, n := range b.notes {
		if _, ok := wanted[n.note.Metadata.Tag]; !ok {
			continue
		}
		cn, err := b.committedNote(n)
		if err != nil {
			return models.NoteSyncResponse{}, err
		}
		resp.Notes = append(resp.Notes, cn)
	}
	return resp, nil
}

// GetNotesByID returns the sealed notes among ids. Private notes come back
// without details.
func (c *Chain) GetNotesByID(_ context.Context, ids []models.NoteID) ([]models.FetchedNote, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.FetchedNote, 0, len(ids))
	for _, id := range ids {
		loc, ok := c.notes[id]
		if !ok {
			continue
		}
		b := c.blocks[loc.block]
		n := b.notes[loc.pos]

		path, err := b.noteTree.Open(uint64(n.index))
		if err != nil {
			return nil, fmt.Errorf("open note %s: %w", id, err)
		}
		proof, err := models.NewNoteInclusionProof(loc.block, n.index, path)
		if err != nil {
			return nil, err
		}

		fetched := models.FetchedNote{NoteID: id, Metadata: n.note.Metadata, InclusionProof: proof}
		if !n.private {
			note := n.note
			fetched.Note = &note
		}
		out = append(out, fetched)
	}
	return out, nil
}

// GetAccountDetails returns the latest state of id.
func (c *Chain) GetAccountDetails(_ context.Context, id models.AccountID) (models.AccountDetails, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	history := c.accounts[id]
	if len(history) == 0 {
		return models.AccountDetails{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	last := history[len(history)-1]

	details := models.AccountDetails{ID: id, Hash: last.update.Hash, BlockNum: last.update.BlockNum}
	if last.account != nil {
		acc := *last.account
		details.Account = &acc
	}
	return details, nil
}

// CheckNullifiersByPrefix returns every nullifier matching prefixes
// published at or after fromBlock.
func (c *Chain) CheckNullifiersByPrefix(_ context.Context, prefixes []uint16, fromBlock uint32) ([]models.NullifierUpdate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	wanted := setOf(prefixes)
	var out []models.NullifierUpdate
	for num := int(fromBlock); num < len(c.blocks); num++ {
		for _, n := range c.blocks[num].nullifiers {
			if _, ok := wanted[models.NullifierPrefix(n)]; ok {
				out = append(out, models.NullifierUpdate{Nullifier: n, BlockNum: uint32(num)})
			}
		}
	}
	return out, nil
}

func (c *Chain) GetBlockHeaderByNumber(_ context.Context, num uint32) (models.BlockHeader, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if int(num) >= len(c.blocks) {
		return models.BlockHeader{}, fmt.Errorf("%w: %d", ErrBlockNotFound, num)
	}
	return c.blocks[num].header, nil
}

// SubmitProvenTransaction queues tx for the next block: its nullifiers, its
// output notes and its inclusion. Private accounts also get their new
// commitment published. Returns the number of the block tx will land in.
func (c *Chain) SubmitProvenTransaction(_ context.Context, tx models.ProvenTransaction) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tx.BlockRef > c.tip() {
		return 0, fmt.Errorf("%w: reference block %d is above the chain tip", ErrInvalidRequest, tx.BlockRef)
	}
	if _, dup := c.txs[tx.ID]; dup {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateTx, tx.ID)
	}
	if len(c.pending.notes)+len(tx.OutputNotes) > models.MaxNotesPerBlock {
		return 0, ErrNoteTreeFull
	}

	for _, n := range tx.OutputNotes {
		idx := uint16(len(c.pending.notes))
		if _, err := c.pending.noteTree.Insert(uint64(idx), n.Commitment()); err != nil {
			return 0, fmt.Errorf("insert note %s: %w", n.ID(), err)
		}
		c.pending.notes = append(c.pending.notes, blockNote{
			note:    n,
			private: n.Metadata.NoteType != models.NoteTypePublic,
			index:   idx,
		})
	}
	c.pending.nullifiers = append(c.pending.nullifiers, tx.InputNullifiers...)
	if tx.AccountID.IsPrivate() {
		c.pending.accounts = append(c.pending.accounts, accountState{
			update: models.AccountHashUpdate{AccountID: tx.AccountID, Hash: tx.FinalAccountHash},
		})
	}
	c.txs[tx.ID] = struct{}{}
	c.pending.transactions = append(c.pending.transactions, models.TransactionInclusion{
		TransactionID: tx.ID,
		AccountID:     tx.AccountID,
	})

	return uint32(len(c.blocks)), nil
}

// Peaks returns the chain MMR peaks over the first forest blocks.
func (c *Chain) Peaks(forest uint32) (mmr.Peaks, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mmr.PeaksAt(mmr.Forest(forest))
}

func (b *block) committedNote(n blockNote) (models.CommittedNote, error) {
	path, err := b.noteTree.Open(uint64(n.index))
	if err != nil {
		return models.CommittedNote{}, fmt.Errorf("open note %s: %w", n.note.ID(), err)
	}
	return models.CommittedNote{
		NoteID:    n.note.ID(),
		NoteIndex: n.index,
		Path:      path,
		Metadata:  n.note.Metadata,
	}, nil
}

func (b *block) hasTaggedNote(tags map[models.NoteTag]struct{}) bool {
	return slices.ContainsFunc(b.notes, func(n blockNote) bool {
		_, ok := tags[n.note.Metadata.Tag]
		return ok
	})
}

func (b *block) isRelevant(tags map[models.NoteTag]struct{}, prefixes map[uint16]struct{}, accounts map[models.AccountID]struct{}) bool {
	if b.hasTaggedNote(tags) {
		return true
	}
	for _, n := range b.nullifiers {
		if _, ok := prefixes[models.NullifierPrefix(n)]; ok {
			return true
		}
	}
	for _, a := range b.accounts {
		if _, ok := accounts[a.update.AccountID]; ok {
			return true
		}
	}
	for _, tx := range b.transactions {
		if _, ok := accounts[tx.AccountID]; ok {
			return true
		}
	}
	return false
}

func setOf[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
