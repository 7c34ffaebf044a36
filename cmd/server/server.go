package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/config"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/handlers/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/snapshot"
	"github.com/tides-game/tides-api/internal/transport/ticker"
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the tides gRPC server with the voyage, inventory, fishing and market services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides the config file)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.Server.Port = grpcPort
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }() // nolint:errcheck // stderr sync fails on some terminals
	configureSlog(cfg.Logging)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("received shutdown signal, gracefully stopping", zap.String("signal", sig.String()))
		cancel()
	}()

	svc, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.close(logger)

	if err := restoreSnapshot(cfg, svc, logger); err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv, err := newGRPCServer(svc, logger)
	if err != nil {
		return err
	}

	var tickerSrv *http.Server
	var hub *ticker.Hub
	if cfg.Ticker.Enabled {
		hub = ticker.NewHub()
		hub.Attach(svc.bus)

		mux := http.NewServeMux()
		mux.Handle("/ticker", hub)
		tickerSrv = &http.Server{
			Addr:              cfg.Ticker.BindAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	errChan := make(chan error, 2)
	go func() {
		logger.Info("gRPC server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()
	if tickerSrv != nil {
		go func() {
			logger.Info("market ticker starting", zap.String("address", tickerSrv.Addr))
			if err := tickerSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- fmt.Errorf("failed to serve ticker: %w", err)
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errChan:
	}

	logger.Info("shutting down gRPC server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if tickerSrv != nil {
		hub.Close()
		if err := tickerSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("ticker shutdown failed", zap.Error(err))
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}

	if err := saveSnapshot(cfg, svc, logger); err != nil {
		logger.Error("failed to write snapshot", zap.Error(err))
	}

	return serveErr
}

func newGRPCServer(svc *services, logger *zap.Logger) (*grpc.Server, error) {
	recoveryOpt := grpc_recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("recovered from panic", zap.Any("panic", p))
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	voyageHandler, err := v1alpha1.NewVoyageHandler(&v1alpha1.VoyageHandlerConfig{VoyageService: svc.voyage})
	if err != nil {
		return nil, fmt.Errorf("failed to create voyage handler: %w", err)
	}
	inventoryHandler, err := v1alpha1.NewInventoryHandler(&v1alpha1.InventoryHandlerConfig{InventoryService: svc.inventory})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory handler: %w", err)
	}
	fishingHandler, err := v1alpha1.NewFishingHandler(&v1alpha1.FishingHandlerConfig{FishingService: svc.fishing})
	if err != nil {
		return nil, fmt.Errorf("failed to create fishing handler: %w", err)
	}
	marketHandler, err := v1alpha1.NewMarketHandler(&v1alpha1.MarketHandlerConfig{MarketService: svc.market})
	if err != nil {
		return nil, fmt.Errorf("failed to create market handler: %w", err)
	}

	tidesv1alpha1.RegisterVoyageServiceServer(srv, voyageHandler)
	tidesv1alpha1.RegisterInventoryServiceServer(srv, inventoryHandler)
	tidesv1alpha1.RegisterFishingServiceServer(srv, fishingHandler)
	tidesv1alpha1.RegisterMarketServiceServer(srv, marketHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range []string{
		tidesv1alpha1.VoyageService_ServiceDesc.ServiceName,
		tidesv1alpha1.InventoryService_ServiceDesc.ServiceName,
		tidesv1alpha1.FishingService_ServiceDesc.ServiceName,
		tidesv1alpha1.MarketService_ServiceDesc.ServiceName,
	} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	// no reflection: the tides services are JSON-coded and have no proto file descriptors
	return srv, nil
}

func restoreSnapshot(cfg *config.Config, svc *services, logger *zap.Logger) error {
	if svc.memory == nil || cfg.Storage.SnapshotPath == "" {
		return nil
	}

	snap, err := snapshot.Read(cfg.Storage.SnapshotPath)
	if errors.IsNotFound(err) {
		logger.Info("no snapshot found, starting fresh", zap.String("path", cfg.Storage.SnapshotPath))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := snapshot.Restore(svc.memory, snap); err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}

	summary := snapshot.Summarize(snap)
	logger.Info("restored snapshot",
		zap.String("path", cfg.Storage.SnapshotPath),
		zap.Int("players", summary.Players),
		zap.Int("catches", summary.Catches),
	)
	return nil
}

func saveSnapshot(cfg *config.Config, svc *services, logger *zap.Logger) error {
	if svc.memory == nil || cfg.Storage.SnapshotPath == "" {
		return nil
	}

	snap, err := snapshot.Capture(svc.memory, time.Now().Unix())
	if err != nil {
		return err
	}
	if err := snapshot.Write(cfg.Storage.SnapshotPath, snap); err != nil {
		return err
	}

	logger.Info("wrote snapshot", zap.String("path", cfg.Storage.SnapshotPath))
	return nil
}
