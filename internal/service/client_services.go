package service

import (
	"time"

	"github.com/MKhiriev/go-light-client/internal/adapter"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/store"
)

type ClientServices struct {
	Screener           NoteScreener
	StateSync          StateSync
	SyncService        ClientSyncService
	TransactionService ClientTransactionService
	SyncJob            ClientSyncJob
}

func NewClientServices(localStore store.Store, rpc adapter.NodeRPCClient, syncInterval time.Duration, metrics *Metrics, logger *logger.Logger) *ClientServices {
	screener := NewNoteScreener(localStore)
	stateSync := NewStateSync(rpc, localStore, screener, logger)
	syncSvc := NewClientSyncService(localStore, rpc, stateSync, metrics, logger)

	return &ClientServices{
		Screener:           screener,
		StateSync:          stateSync,
		SyncService:        syncSvc,
		TransactionService: NewClientTransactionService(localStore, rpc, logger),
		SyncJob:            NewClientSyncJob(syncSvc, syncInterval, metrics, logger),
	}
}
