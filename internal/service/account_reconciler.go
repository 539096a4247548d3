package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-light-client/models"
)

// reconcileAccounts compares the account hashes published by the node with
// the tracked headers.
//
// Public accounts are fetched and accepted only with a higher nonce than
// the tracked one. Private accounts cannot be fetched: a hash that matches
// no stored state of the account is reported as a mismatch and left to the
// caller.
func (s *stateSync) reconcileAccounts(ctx context.Context, tracked []models.AccountHeader, remote []models.AccountHashUpdate) (models.AccountUpdates, error) {
	var out models.AccountUpdates
	if len(remote) == 0 {
		return out, nil
	}

	public := make(map[models.AccountID]models.AccountHeader)
	private := make(map[models.AccountID]models.AccountHeader)
	for _, h := range tracked {
		if h.ID.IsPublic() {
			public[h.ID] = h
		} else {
			private[h.ID] = h
		}
	}

	for _, update := range remote {
		if local, ok := public[update.AccountID]; ok && local.Hash() != update.Hash {
			account, err := s.fetchNewerAccount(ctx, local)
			if err != nil {
				return out, err
			}
			if account != nil {
				out.UpdatedPublicAccounts = append(out.UpdatedPublicAccounts, *account)
			}
			continue
		}

		if local, ok := private[update.AccountID]; ok && local.Hash() != update.Hash {
			known, err := s.store.GetAccountHeaderByHash(ctx, update.Hash)
			if err != nil {
				return out, fmt.Errorf("look up account %s by hash: %w", update.AccountID, err)
			}
			if known == nil || known.ID != update.AccountID {
				s.logger.Warn().
					Str("func", "stateSync.reconcileAccounts").
					Str("account_id", update.AccountID.String()).
					Uint32("block_num", update.BlockNum).
					Msg("private account hash matches no local state")
				out.MismatchedPrivateAccounts = append(out.MismatchedPrivateAccounts, update)
			}
		}
	}
	return out, nil
}

// fetchNewerAccount returns the node state of local, or nil when it is not
// newer than local.
func (s *stateSync) fetchNewerAccount(ctx context.Context, local models.AccountHeader) (*models.Account, error) {
	details, err := s.rpc.GetAccountUpdate(ctx, local.ID)
	if err != nil {
		s.logger.Err(err).
			Str("func", "stateSync.fetchNewerAccount").
			Str("account_id", local.ID.String()).
			Msg("failed to fetch account")
		return nil, fmt.Errorf("fetch account %s: %w", local.ID, err)
	}
	if !details.IsPublic() {
		return nil, fmt.Errorf("%w: %s", ErrAccountIsPrivate, local.ID)
	}

	if details.Account.Nonce <= local.Nonce {
		s.logger.Debug().
			Str("func", "stateSync.fetchNewerAccount").
			Str("account_id", local.ID.String()).
			Uint64("local_nonce", local.Nonce).
			Uint64("remote_nonce", details.Account.Nonce).
			Msg("ignoring account state that is not newer")
		return nil, nil
	}
	return details.Account, nil
}
