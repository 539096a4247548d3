package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-light-client/internal/rpc"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Get(rpc.RouteVersion, h.getVersion)

	router.Group(func(r chi.Router) {
		if h.authCfg.TokenSignKey != "" {
			r.Use(h.auth)
		}

		r.Post(rpc.RouteSyncState, serve("Handler.syncState", h.node.SyncState))
		r.Post(rpc.RouteSyncNotes, serve("Handler.syncNotes", h.node.SyncNotes))
		r.Post(rpc.RouteNotesByID, serve("Handler.getNotesByID", h.node.GetNotesByID))
		r.Post(rpc.RouteNullifiers, serve("Handler.checkNullifiers", h.node.CheckNullifiersByPrefix))
		r.Post(rpc.RouteTransactions, serve("Handler.submitTransaction", h.node.SubmitProvenTransaction))
		r.Get(rpc.RouteAccount, h.getAccountDetails)
		r.Get(rpc.RouteBlockHeader, h.getBlockHeader)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
