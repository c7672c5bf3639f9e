package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"teoswallet/internal/chain"
	"teoswallet/internal/core"
	"teoswallet/internal/http/handler/middleware"
	"teoswallet/internal/http/payload"
	"teoswallet/internal/ledger"
	"teoswallet/internal/market"
)

const apiVersion = "1.0.0"

var (
	APIStatus             = "GET /{$}"
	HealthCheck           = "GET /health"
	Authenticate          = "POST /api/authenticate"
	CreateWallet          = "POST /api/wallet/create"
	GetBalance            = "GET /api/wallet/{walletID}/balance"
	SendTransaction       = "POST /api/wallet/{walletID}/send"
	GetReceiveInfo        = "GET /api/wallet/{walletID}/receive"
	GetWalletTransactions = "GET /api/wallet/{walletID}/transactions"
	GetTransaction        = "GET /api/transaction/{txHash}"
	SwapQuote             = "POST /api/swap/quote"
	GetPrices             = "GET /api/prices"
	GetNetworks           = "GET /api/networks"
	GetStaking            = "GET /api/staking/opportunities"
	GetMiningRewards      = "GET /api/mining/rewards/{walletID}"
	GetNFTCollection      = "GET /api/nft/collection/{walletID}"
)

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	teos             WalletService
	market           MarketService
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, walletService WalletService, marketService MarketService) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		teos:             walletService,
		market:           marketService,
	}
}

func (h *WalletHandler) HandleAPIStatus(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{
		Message: "TEOS Wallet API - From Egypt to the World",
		Data: map[string]any{
			"version":   apiVersion,
			"networks":  chain.Names(),
			"timestamp": time.Now().UTC(),
		},
	}, http.StatusOK, requestID(r))
}

func (h *WalletHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{
		Data: map[string]any{
			"status":    "healthy",
			"version":   apiVersion,
			"timestamp": time.Now().UTC(),
		},
	}, http.StatusOK, requestID(r))
}

func (h *WalletHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authReq payload.AuthRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authReq); err != nil {
		h.respondBadPayload(w, "Could not authenticate", err, Authenticate, requestId)
		return
	}

	token, err := h.teos.Authenticate(r.Context(), authReq.ToMessage())
	if err != nil {
		h.respondServiceError(w, "Login failed", err, Authenticate, requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, Response{Data: resp}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleCreateWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var createReq payload.CreateWalletRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &createReq); err != nil {
		h.respondBadPayload(w, "Could not create wallet", err, CreateWallet, requestId)
		return
	}

	created, err := h.teos.CreateWallet(r.Context(), createReq.NetworkOrDefault(), createReq.TypeOrDefault())
	if err != nil {
		h.respondServiceError(w, "Could not create wallet", err, CreateWallet, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Wallet created",
		Data: map[string]any{
			"wallet": map[string]any{
				"id":      created.ID,
				"address": created.Address,
				"network": created.Network,
				"type":    created.Type,
			},
		},
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	report, err := h.teos.Balance(r.Context(), r.PathValue("walletID"))
	if err != nil {
		h.respondServiceError(w, "Could not retrieve balance", err, GetBalance, requestId)
		return
	}

	h.respond(w, Response{Data: report}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleSendTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	walletID := r.PathValue("walletID")

	var sendReq payload.SendRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &sendReq); err != nil {
		h.respondBadPayload(w, "Could not send transaction", err, SendTransaction, requestId)
		return
	}

	h.logs.Infow("transfer request received",
		"wallet_id", walletID,
		"symbol", sendReq.Symbol,
		"handler", SendTransaction,
		"request_id", requestId)

	tx, err := h.teos.Send(r.Context(), walletID, sendReq.ToMessage())
	if err != nil {
		h.respondServiceError(w, "Could not send transaction", err, SendTransaction, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Transaction submitted successfully",
		Data: map[string]ledger.Transaction{
			"transaction": tx,
		},
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetReceiveInfo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	info, err := h.teos.Receive(r.Context(), r.PathValue("walletID"))
	if err != nil {
		h.respondServiceError(w, "Could not retrieve receive address", err, GetReceiveInfo, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Share this address to receive payments",
		Data:    info,
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetWalletTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	transactions, err := h.teos.History(r.Context(), r.PathValue("walletID"))
	if err != nil {
		h.respondServiceError(w, "Could not retrieve transactions", err, GetWalletTransactions, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]any{
			"transactions": transactions,
			"count":        len(transactions),
		},
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	tx, err := h.teos.Transaction(r.Context(), r.PathValue("txHash"))
	if err != nil {
		h.respondServiceError(w, "Could not retrieve transaction", err, GetTransaction, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]ledger.Transaction{
			"transaction": tx,
		},
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleSwapQuote(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var quoteReq payload.SwapQuoteRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &quoteReq); err != nil {
		h.respondBadPayload(w, "Could not quote swap", err, SwapQuote, requestId)
		return
	}

	quote, err := h.market.SwapQuote(quoteReq.FromToken, quoteReq.ToToken, quoteReq.Amount)
	if err != nil {
		h.respondServiceError(w, "Could not quote swap", err, SwapQuote, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]market.Quote{
			"quote": quote,
		},
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetPrices(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{
		Data: map[string]any{
			"prices":    h.market.PriceStats(),
			"timestamp": time.Now().UTC(),
		},
	}, http.StatusOK, requestID(r))
}

func (h *WalletHandler) HandleGetNetworks(w http.ResponseWriter, r *http.Request) {
	descriptors := chain.Descriptors()
	h.respond(w, Response{
		Data: map[string]any{
			"networks": descriptors,
			"count":    len(descriptors),
		},
	}, http.StatusOK, requestID(r))
}

func (h *WalletHandler) HandleGetStaking(w http.ResponseWriter, r *http.Request) {
	opportunities := h.market.StakingOpportunities()
	h.respond(w, Response{
		Data: map[string]any{
			"opportunities":   opportunities,
			"total_protocols": len(opportunities),
		},
	}, http.StatusOK, requestID(r))
}

func (h *WalletHandler) HandleGetMiningRewards(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	rewards, err := h.teos.Rewards(r.Context(), r.PathValue("walletID"))
	if err != nil {
		h.respondServiceError(w, "Could not retrieve mining rewards", err, GetMiningRewards, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]core.MiningRewards{
			"rewards": rewards,
		},
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetNFTCollection(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	nfts, err := h.teos.NFTCollection(r.Context(), r.PathValue("walletID"))
	if err != nil {
		h.respondServiceError(w, "Could not retrieve NFT collection", err, GetNFTCollection, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]any{
			"nfts":  nfts,
			"count": len(nfts),
		},
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) respondBadPayload(w http.ResponseWriter, message string, err error, handlerName, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Infow("failed to decode and validate request payload",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

// respondServiceError maps the service's sentinel errors to HTTP status
// codes. Expected business conditions surface their reason to the
// client and are not logged as server faults.
func (h *WalletHandler) respondServiceError(w http.ResponseWriter, message string, err error, handlerName, requestId string) {
	code, expected := statusForError(err)

	resp := Response{Message: message}
	if expected {
		resp.Error = err.Error()
		h.logs.Infow("request rejected",
			"reason", err,
			"handler", handlerName,
			"request_id", requestId)
	} else {
		resp.Error = "unexpected error occurred"
		h.logs.Errorw("request failed",
			"error", err,
			"handler", handlerName,
			"request_id", requestId)
	}

	h.respond(w, resp, code, requestId)
}

func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, core.ErrWalletNotFound),
		errors.Is(err, core.ErrTransactionNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, core.ErrUnsupportedNetwork),
		errors.Is(err, core.ErrUnsupportedAsset),
		errors.Is(err, core.ErrInvalidAddress),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInsufficientBalance),
		errors.Is(err, market.ErrUnsupportedPair):
		return http.StatusBadRequest, true
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrIncorrectPassword):
		return http.StatusUnauthorized, true
	}
	return http.StatusInternalServerError, false
}

func requestID(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}

func (h *WalletHandler) respond(w http.ResponseWriter, resp Response, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
