package mocknode

import (
	"github.com/MKhiriev/go-light-client/models"
)

// MinDemoBlocks is the number of blocks, genesis included, the demo
// scenario needs.
const MinDemoBlocks = 6

// Demo is a prepared chain together with the actors of its scenario.
type Demo struct {
	Chain *Chain

	Faucet   models.AccountID
	AccountA models.AccountID
	AccountB models.AccountID

	// NoteA is a P2ID note for AccountA created in block 1.
	NoteA models.Note
	// NoteB is a P2ID note for AccountB created in block 4 and consumed
	// in block 5.
	NoteB models.Note
}

// NewDemo builds the demo scenario:
//
//	block 0  genesis
//	block 1  faucet mints NoteA for account A
//	block 2  faucet account update
//	block 3  empty
//	block 4  faucet mints NoteB for account B
//	block 5  NoteB nullifier
//
// Chains longer than MinDemoBlocks are padded with empty blocks.
func NewDemo(blocks int) (*Demo, error) {
	blocks = max(blocks, MinDemoBlocks)

	d := &Demo{
		Chain:    NewChain(),
		Faucet:   models.NewAccountID(1, models.AccountTypeFungibleFaucet, models.AccountStoragePublic),
		AccountA: models.NewAccountID(2, models.AccountTypeRegularUpdatableCode, models.AccountStoragePrivate),
		AccountB: models.NewAccountID(3, models.AccountTypeRegularUpdatableCode, models.AccountStoragePublic),
	}
	d.NoteA = models.NewP2IDNote(d.Faucet, d.AccountA, models.NoteAssets{{Faucet: d.Faucet, Amount: 100}}, [4]uint64{1, 0, 0, 0})
	d.NoteB = models.NewP2IDNote(d.Faucet, d.AccountB, models.NoteAssets{{Faucet: d.Faucet, Amount: 250}}, [4]uint64{2, 0, 0, 0})

	if _, err := d.Chain.AddNote(d.NoteA, false); err != nil {
		return nil, err
	}
	d.Chain.AddBlock()

	d.Chain.AddAccountUpdate(models.Account{ID: d.Faucet, Nonce: 2})
	d.Chain.AddBlock()

	d.Chain.AddBlock()

	if _, err := d.Chain.AddNote(d.NoteB, false); err != nil {
		return nil, err
	}
	d.Chain.AddBlock()

	d.Chain.AddNullifier(d.NoteB.Nullifier())
	d.Chain.AddBlock()

	for d.Chain.ChainTip() < uint32(blocks-1) {
		d.Chain.AddBlock()
	}
	return d, nil
}
