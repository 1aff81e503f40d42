/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/restyle/internal/server"
	"github.com/valpere/restyle/internal/styles"
	"github.com/valpere/restyle/internal/transformer"
)

var (
	serveAddr       string
	serveService    string
	serveAPIKey     string
	serveModel      string
	serveBaseURL    string
	serveMaxRetries int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the transform API over HTTP",
	Long: `Start an HTTP server exposing the style transformation API:

  POST /api/transform   transform text
  GET  /api/transform   list supported styles
  GET  /health          health check
  GET  /metrics         Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService(serveService,
			setting(serveAPIKey, "api_key"),
			setting(serveBaseURL, "base_url"),
			setting(serveModel, "model"))
		if err != nil {
			return err
		}
		client := buildClient(svc, serveMaxRetries, 0)

		tr := transformer.New(styles.NewCatalog(), client,
			transformer.WithLogger(logger))
		srv := server.New(tr, server.WithLogger(logger))

		httpServer := &http.Server{
			Addr:    serveAddr,
			Handler: srv.Handler(),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- httpServer.ListenAndServe() }()
		logger.Info("listening", "addr", serveAddr, "service", svc.Name())

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveService, "service", "openai", "Generation service to use")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Service API key (or RESTYLE_API_KEY)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Model name (service default used if empty)")
	serveCmd.Flags().StringVar(&serveBaseURL, "base-url", "", "Service base URL (service default used if empty)")
	serveCmd.Flags().IntVar(&serveMaxRetries, "max-retries", 0, "Total attempts including the first (default 3)")
}
