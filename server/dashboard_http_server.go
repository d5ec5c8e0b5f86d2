package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"weather-dash/logging"
)

type DashboardHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	address         string
	shutdownTimeout time.Duration
}

func NewDashboardHttpServer(router *Router, muxRouter *mux.Router, address string, shutdownTimeout time.Duration) *DashboardHttpServer {
	return &DashboardHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		address:         address,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *DashboardHttpServer) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-stop
		logging.Infof("[DashboardHttpServer] Shutting down the server...")
		cancel()
	}()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled.
func (s *DashboardHttpServer) Run(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("[DashboardHttpServer] Starting server on %s", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logging.Infof("[DashboardHttpServer] Server exiting")
	return nil
}
