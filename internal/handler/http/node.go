package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/rpc"
	"github.com/MKhiriev/go-light-client/internal/utils"
	"github.com/MKhiriev/go-light-client/models"
)

// serve adapts a unary node method to a JSON-in JSON-out handler.
func serve[Req, Resp any](fn string, call func(context.Context, *Req) (*Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		req := new(Req)
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			log.Err(err).Str("func", fn).Msg("error decoding request body")
			utils.WriteError(w, fmt.Errorf("%w: %w", ErrInvalidBody, err), http.StatusBadRequest)
			return
		}

		resp, err := call(r.Context(), req)
		respond(w, r, fn, resp, err)
	}
}

func (h *Handler) getAccountDetails(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseAccountID(chi.URLParam(r, rpc.RouteAccountParam))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getAccountDetails").Msg("bad account id")
		utils.WriteError(w, fmt.Errorf("%w: %w", ErrInvalidPathParam, err), http.StatusBadRequest)
		return
	}

	resp, err := h.node.GetAccountDetails(r.Context(), &rpc.GetAccountDetailsRequest{AccountID: id})
	respond(w, r, "Handler.getAccountDetails", resp, err)
}

func (h *Handler) getBlockHeader(w http.ResponseWriter, r *http.Request) {
	num, err := strconv.ParseUint(chi.URLParam(r, rpc.RouteBlockParam), 10, 32)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getBlockHeader").Msg("bad block number")
		utils.WriteError(w, fmt.Errorf("%w: %w", ErrInvalidPathParam, err), http.StatusBadRequest)
		return
	}

	resp, err := h.node.GetBlockHeaderByNumber(r.Context(), &rpc.GetBlockHeaderRequest{BlockNum: uint32(num)})
	respond(w, r, "Handler.getBlockHeader", resp, err)
}

func respond(w http.ResponseWriter, r *http.Request, fn string, resp any, err error) {
	log := logger.FromRequest(r)

	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", fn).Int("status", status).Msg("node request failed")
		utils.WriteError(w, err, status)
		return
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", fn).Msg("error writing response")
	}
}
