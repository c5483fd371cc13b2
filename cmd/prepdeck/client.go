package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/projectconfig"
)

// newAPIClient builds the API client from project config plus the
// --server flag override.
func newAPIClient(cmd *cobra.Command) (*api.Client, *projectconfig.ProjectConfig, error) {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return nil, nil, err
	}

	serverURL := cfg.Server.URL
	if flagURL, _ := cmd.Flags().GetString("server"); flagURL != "" { //nolint:errcheck
		serverURL = flagURL
	}

	opts := []api.Option{
		api.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Server.Timeout) * time.Second,
		}),
	}
	if cfg.Server.Retries != nil && *cfg.Server.Retries >= 0 {
		opts = append(opts, api.WithMaxRetries(uint64(*cfg.Server.Retries)))
	}

	return api.NewClient(serverURL, opts...), cfg, nil
}
