package models

import (
	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// AccountHeader is the locally tracked summary of an account.
type AccountHeader struct {
	ID                AccountID     `json:"id"`
	Nonce             uint64        `json:"nonce"`
	VaultRoot         crypto.Digest `json:"vault_root"`
	StorageCommitment crypto.Digest `json:"storage_commitment"`
	CodeCommitment    crypto.Digest `json:"code_commitment"`
}

// Hash returns the account commitment published by the node.
func (h AccountHeader) Hash() crypto.Digest {
	return crypto.Hash(
		crypto.HashElements(uint64(h.ID), h.Nonce).Bytes(),
		h.VaultRoot[:],
		h.StorageCommitment[:],
		h.CodeCommitment[:],
	)
}

// AssetVault holds the assets of an account.
type AssetVault []Asset

// Root commits to the vault contents.
func (v AssetVault) Root() crypto.Digest {
	return NoteAssets(v).Commitment()
}

// Balance returns the fungible amount issued by faucet.
func (v AssetVault) Balance(faucet AccountID) uint64 {
	var total uint64
	for _, a := range v {
		if a.Faucet == faucet && a.IsFungible() {
			total += a.Amount
		}
	}
	return total
}

// Covers reports whether the vault holds at least asset.
func (v AssetVault) Covers(asset Asset) bool {
	if asset.IsFungible() {
		return v.Balance(asset.Faucet) >= asset.Amount
	}
	for _, a := range v {
		if a.Faucet == asset.Faucet && a.Data != nil && *a.Data == *asset.Data {
			return true
		}
	}
	return false
}

// Account is the full state of an account as far as the light client needs
// it.
type Account struct {
	ID                AccountID     `json:"id"`
	Nonce             uint64        `json:"nonce"`
	Vault             AssetVault    `json:"vault"`
	StorageCommitment crypto.Digest `json:"storage_commitment"`
	CodeCommitment    crypto.Digest `json:"code_commitment"`
}

// Header summarises the account.
func (a Account) Header() AccountHeader {
	return AccountHeader{
		ID:                a.ID,
		Nonce:             a.Nonce,
		VaultRoot:         a.Vault.Root(),
		StorageCommitment: a.StorageCommitment,
		CodeCommitment:    a.CodeCommitment,
	}
}

// Hash returns the account commitment.
func (a Account) Hash() crypto.Digest {
	return a.Header().Hash()
}

// AccountHashUpdate is reported by the node for every tracked account that
// changed in the synced range.
type AccountHashUpdate struct {
	AccountID AccountID     `json:"account_id"`
	Hash      crypto.Digest `json:"hash"`
	BlockNum  uint32        `json:"block_num"`
}

// AccountDetails is the node answer to an account query. Account is nil for
// private accounts.
type AccountDetails struct {
	ID       AccountID     `json:"id"`
	Hash     crypto.Digest `json:"hash"`
	BlockNum uint32        `json:"block_num"`
	Account  *Account      `json:"account,omitempty"`
}

// IsPublic reports whether the node returned the full account.
func (d AccountDetails) IsPublic() bool {
	return d.Account != nil
}

// AccountUpdates is the account part of a state sync update.
type AccountUpdates struct {
	// UpdatedPublicAccounts are fetched states newer than the tracked ones.
	UpdatedPublicAccounts []Account `json:"updated_public_accounts"`

	// MismatchedPrivateAccounts are private accounts whose on-chain hash
	// matches no local state. The application decides what to do with them.
	MismatchedPrivateAccounts []AccountHashUpdate `json:"mismatched_private_accounts"`
}
