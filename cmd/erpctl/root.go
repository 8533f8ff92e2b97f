package main

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/errors/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/wasteworks/erpadmin"
	"github.com/wasteworks/erpadmin/gateway"
	"github.com/wasteworks/erpadmin/tokenstore"
)

type config struct {
	APIURL          string `env:"ERP_API_URL"`
	CredentialsFile string `env:"ERP_CREDENTIALS_FILE"`
	// Keys sealing the on-disk credentials and the serve cookie. The
	// defaults are development keys; set real ones anywhere shared.
	// The block key must be 16, 24, or 32 bytes.
	HashKey    string `env:"ERP_HASH_KEY" envDefault:"erpctl-dev-hash-key-not-for-prod"`
	BlockKey   string `env:"ERP_BLOCK_KEY" envDefault:"erpctl-dev-block"`
	ListenAddr string `env:"ERP_LISTEN_ADDR" envDefault:"localhost:8081"`
}

func loadConfig() (config, error) {
	// Missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, errors.Wrap(err, "env.Parse()")
	}

	if cfg.CredentialsFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return config{}, errors.Wrap(err, "os.UserConfigDir()")
		}
		cfg.CredentialsFile = filepath.Join(dir, "erpctl", "credentials")
	}

	return cfg, nil
}

// app bundles the wired dependencies every command runs against.
type app struct {
	cfg     config
	tokens  tokenstore.Store
	client  *gateway.Client
	session *erpadmin.Manager
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	tokens := tokenstore.NewFile(cfg.CredentialsFile, []byte(cfg.HashKey), []byte(cfg.BlockKey))
	client := gateway.New(cfg.APIURL, tokens)

	return &app{
		cfg:     cfg,
		tokens:  tokens,
		client:  client,
		session: erpadmin.New(client, tokens),
	}, nil
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "erpctl",
		Short:         "Admin client for the waste-management ERP",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		loginCmd(),
		logoutCmd(),
		registerCmd(),
		whoamiCmd(),
		statusCmd(),
		serveCmd(),
	)
	root.AddCommand(entityCmds()...)

	return root
}
