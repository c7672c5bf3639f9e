package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
	"teoswallet/internal/config"
	"teoswallet/internal/core"
	"teoswallet/internal/http/handler"
	"teoswallet/internal/http/handler/middleware"
	"teoswallet/internal/http/payload"
	"teoswallet/internal/http/server"
	"teoswallet/internal/ledger"
	"teoswallet/internal/market"
	"teoswallet/internal/user"
	"teoswallet/internal/wallet"
	"teoswallet/pkg/jwt"
	"teoswallet/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("teoswallet", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// in-memory stores
	walletStore := wallet.NewStore()
	txLedger := ledger.NewLedger()
	userStore := user.NewSeededStore()

	// market data feed
	feed := market.NewFeed()

	// teos core
	teos := core.NewTeos(
		logger,
		walletStore,
		txLedger,
		userStore,
		jwtService,
		feed)

	// handler
	walletHlr := handler.NewWalletHandler(
		logger,
		payload.DecodeValidator{},
		teos,
		feed)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.APIStatus, walletHlr.HandleAPIStatus)
	mux.HandleFunc(handler.HealthCheck, walletHlr.HandleHealthCheck)
	mux.HandleFunc(handler.Authenticate, walletHlr.HandleAuthenticate)
	mux.HandleFunc(handler.CreateWallet, walletHlr.HandleCreateWallet)
	mux.HandleFunc(handler.GetBalance, walletHlr.HandleGetBalance)
	mux.HandleFunc(handler.SendTransaction, walletHlr.HandleSendTransaction)
	mux.HandleFunc(handler.GetReceiveInfo, walletHlr.HandleGetReceiveInfo)
	mux.HandleFunc(handler.GetWalletTransactions, walletHlr.HandleGetWalletTransactions)
	mux.HandleFunc(handler.GetTransaction, walletHlr.HandleGetTransaction)
	mux.HandleFunc(handler.SwapQuote, walletHlr.HandleSwapQuote)
	mux.HandleFunc(handler.GetPrices, walletHlr.HandleGetPrices)
	mux.HandleFunc(handler.GetNetworks, walletHlr.HandleGetNetworks)
	mux.HandleFunc(handler.GetStaking, walletHlr.HandleGetStaking)
	mux.HandleFunc(handler.GetMiningRewards, walletHlr.HandleGetMiningRewards)
	mux.HandleFunc(handler.GetNFTCollection, walletHlr.HandleGetNFTCollection)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
