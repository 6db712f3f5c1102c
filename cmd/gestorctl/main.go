package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/gestaoclientes/gestor/pkg/client"
	"github.com/gestaoclientes/gestor/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "gestorctl",
		Usage: "Operate the gestor client and user registry",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "trace, debug, info, warn or error"},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger.Init(logger.Options{
				Level:   c.String("log-level"),
				Pretty:  true,
				Service: "gestorctl",
				Output:  os.Stderr,
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			meCommand(),
			clientsCommand(),
			usersCommand(),
			optionsCommand(),
		},
	}

	if err := root.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func cliLog() zerolog.Logger {
	return logger.Component("cli")
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Open a session and store it locally",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Value: defaultServer, Sources: cli.EnvVars("GESTOR_SERVER")},
			&cli.StringFlag{Name: "username", Required: true},
			&cli.StringFlag{Name: "password", Required: true, Sources: cli.EnvVars("GESTOR_PASSWORD")},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			api := client.New(c.String("server"))
			res, err := api.Login(ctx, c.String("username"), c.String("password"))
			if err != nil {
				return err
			}
			if err := saveSession(&localSession{Server: c.String("server"), Token: res.Token, Session: res.User}); err != nil {
				return err
			}
			l := cliLog()
			l.Debug().Str("user_id", res.User.UserID).Time("expires_at", res.ExpiresAt).Msg("session stored")
			_, _ = fmt.Fprintf(stdout, "logged in as %s (%s)\n", res.User.Username, res.User.Role)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "End the session and forget it locally",
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			if err := client.New(s.Server, client.WithToken(s.Token)).Logout(ctx); err != nil {
				l := cliLog()
				l.Warn().Err(err).Msg("server logout failed; clearing local session anyway")
			}
			return clearSession()
		},
	}
}

func meCommand() *cli.Command {
	return &cli.Command{
		Name:  "me",
		Usage: "Show the current session",
		Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			me, err := client.New(s.Server, client.WithToken(s.Token)).Me(ctx)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return printJSON(me)
			}
			printSession(me)
			return nil
		},
	}
}

func optionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "options",
		Usage:     "Print a fixed choice list",
		ArgsUsage: "regimes-tributarios|naturezas-juridicas|portes-empresa|modalidades|tipos-usuario",
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			values, err := client.New(s.Server, client.WithToken(s.Token)).Options(ctx, c.Args().First())
			if err != nil {
				return err
			}
			for _, v := range values {
				_, _ = fmt.Fprintln(stdout, v)
			}
			return nil
		},
	}
}
