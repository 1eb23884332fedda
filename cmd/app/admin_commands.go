package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/allisson/enrollment/cmd/app/commands"
	adminService "github.com/allisson/enrollment/internal/admin/service"
	"github.com/allisson/enrollment/internal/app"
	"github.com/allisson/enrollment/internal/config"
)

func getAdminCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash-password",
			Usage: "Hash an admin password for ADMIN_PASSWORD_HASH",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password to hash (omit to be prompted without echo)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHashPassword(
					adminService.NewPasswordService(),
					commands.DefaultIO(),
					cmd.String("password"),
				)
			},
		},
		{
			Name:  "purge-sessions",
			Usage: "Delete admin sessions that expired or were revoked more than the given days ago",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "days",
					Aliases: []string{"d"},
					Value:   0,
					Usage:   "Only delete sessions that ended more than this many days ago",
				},
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"n"},
					Value:   false,
					Usage:   "Show how many sessions would be deleted without deleting",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				sessionUseCase, err := container.SessionUseCase()
				if err != nil {
					return err
				}

				return commands.RunPurgeSessions(
					ctx,
					sessionUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					time.Now().UTC(),
					int(cmd.Int("days")),
					cmd.Bool("dry-run"),
					cmd.String("format"),
				)
			},
		},
	}
}
