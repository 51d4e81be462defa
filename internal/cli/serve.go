package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/handler"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/metrics"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/service"
	"github.com/gmossy/AI-Enabled-blink-camera-app/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and dashboard",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	recent, err := util.SetupLogger()
	if err != nil {
		return err
	}
	defer util.CloseLogFile()

	mode := viper.GetString("server.mode")
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid server.mode %q (want debug, release or test)", mode)
	}
	gin.SetMode(mode)

	store := service.NewCameraService()
	router, err := handler.NewRouter(handler.Options{
		Store:       store,
		Logs:        recent,
		Metrics:     metrics.New(store),
		CORSOrigins: viper.GetStringSlice("cors.origins"),
	})
	if err != nil {
		return err
	}

	port := viper.GetString("server.port")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server running on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.WithError(err).Error("HTTP server error")
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}
	return nil
}
