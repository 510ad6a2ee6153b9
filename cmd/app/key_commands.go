package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/resumevault/cmd/app/commands"
	"github.com/allisson/resumevault/internal/app"
	"github.com/allisson/resumevault/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-encryption-key",
			Usage: "Generate a 256-bit field encryption key, optionally wrapped with KMS",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "KMS key URI used to wrap the key (e.g., awskms:///alias/resumevault)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunCreateEncryptionKey(
					ctx,
					container.KMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("kms-key-uri"),
				)
			},
		},
		{
			Name:  "create-signing-secret",
			Usage: "Generate a random secret for signing bearer tokens",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateSigningSecret(commands.DefaultIO().Writer)
			},
		},
	}
}
