package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/spf13/cobra"
	"github.com/wasteworks/erpadmin/internal/webgateway"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the browser-facing admin gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			sc := securecookie.New([]byte(cfg.HashKey), []byte(cfg.BlockKey))
			gw, err := webgateway.New(cfg.APIURL, sc)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.ListenAddr,
				Handler:           gw.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-cmd.Context().Done()
				_ = srv.Close()
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "admin gateway listening on http://%s\n", cfg.ListenAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}

			return nil
		},
	}
}
