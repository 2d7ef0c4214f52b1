package main

import (
	"context"
	"os"

	ucli "github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"estatecli/agency"
	"estatecli/cli"
	"estatecli/config"
	"estatecli/gateway/geth"
	"estatecli/logging"
)

func main() {
	app := &ucli.App{
		Name:  "estatecli",
		Usage: "interactive client for the estate agency smart contract",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "node-url",
				Usage:   "JSON-RPC endpoint of the geth node",
				EnvVars: []string{"NODE_URL"},
			},
			&ucli.StringFlag{
				Name:    "contract",
				Usage:   "address of the deployed contract",
				EnvVars: []string{"CONTRACT_ADDRESS"},
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		logging.RootLogger.Error().Err(err).Msg("estatecli failed")
		os.Exit(1)
	}
}

func run(c *ucli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return xerrors.Errorf("load config: %w", err)
	}
	if c.IsSet("node-url") {
		cfg.NodeURL = c.String("node-url")
	}
	if c.IsSet("contract") {
		cfg.ContractAddress = c.String("contract")
	}
	if cfg.ContractAddress == "" {
		return xerrors.New("contract address is required (--contract or CONTRACT_ADDRESS)")
	}
	logging.SetLevel(cfg.LogLevel)

	ctx := context.Background()
	gw, err := geth.Dial(ctx, cfg.NodeURL, cfg.ContractAddress, cfg.UnlockDurationSec)
	if err != nil {
		return err
	}
	defer gw.Close()

	return cli.NewDispatcher(agency.New(gw), os.Stdin, os.Stdout).Run(ctx)
}
