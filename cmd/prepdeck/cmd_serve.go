package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/mockserver"
	"github.com/prepdeck/prepdeck/internal/projectconfig"
)

func newServeCommand() *cobra.Command {
	var port int
	var corsOrigins []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local mock interview service",
		Long: `Run a local mock interview service.

The mock service implements the full interview API with a fixed
question set and a deterministic scorer, so the CLI works offline:

  prepdeck serve &
  prepdeck --server http://localhost:8000 new

The server binds to loopback only and keeps all state in memory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				cfg, err := projectconfig.Load(".")
				if err != nil {
					return err
				}
				port = cfg.Serve.Port
			}

			mux := http.NewServeMux()
			mockserver.RegisterRoutes(mux, mockserver.NewMemStore())

			var handler http.Handler = mux
			if len(corsOrigins) > 0 {
				handler = mockserver.CORSMiddleware(mux, corsOrigins...)
			}

			addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
			fmt.Fprintf(os.Stderr, "mock interview server listening on http://%s\n", addr)
			return http.ListenAndServe(addr, handler)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (defaults to serve.port from config)")
	cmd.Flags().StringSliceVar(&corsOrigins, "cors-origin", nil, "Origins allowed to call the server from a browser")

	return cmd
}
