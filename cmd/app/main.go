// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/hrvault/cmd/app/commands"
	cryptoService "github.com/allisson/hrvault/internal/crypto/service"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "hrvault",
		Usage:   "Field-level PII vault with role-scoped access control",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-field-key",
				Usage: "Generate a new field encryption key",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "kms-key-uri",
						Aliases: []string{"k"},
						Value:   "",
						Usage:   "KMS keeper URI used to wrap the key (e.g., hashivault://keyname, base64key://...)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateFieldKey(
						ctx,
						cmd.String("kms-key-uri"),
						cryptoService.NewKMSService(),
						os.Stdout,
					)
				},
			},
			{
				Name:  "create-onboarding-token",
				Usage: "Issue a one-time onboarding link token for an employee",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "employee-number",
						Aliases:  []string{"e"},
						Usage:    "Employee number of the new hire (e.g., EMP0001)",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateOnboardingToken(ctx, cmd.String("employee-number"), os.Stdout)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
