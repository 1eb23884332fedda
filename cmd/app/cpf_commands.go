package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/enrollment/cmd/app/commands"
)

func getCPFCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "validate-cpf",
			Usage:     "Validate one or more CPF numbers",
			ArgsUsage: "<cpf>...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunValidateCPF(commands.DefaultIO().Writer, cmd.Args().Slice(), cmd.String("format"))
			},
		},
	}
}
