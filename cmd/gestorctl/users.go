package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/pkg/client"
)

func usersCommand() *cli.Command {
	permsFlag := &cli.StringFlag{Name: "perms", Usage: "comma separated capabilities: view,create,edit,delete"}

	return &cli.Command{
		Name:  "users",
		Usage: "User administration (administrators only)",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List users",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "q", Usage: "search term"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireAdmin()
					if err != nil {
						return err
					}
					users, err := api.ListUsers(ctx, c.String("q"))
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(users)
					}
					printUsers(users)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Show one user",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireAdmin()
					if err != nil {
						return err
					}
					u, err := api.GetUser(ctx, c.Args().First())
					if err != nil {
						return err
					}
					printUsers([]client.User{*u})
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nome", Required: true},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "senha", Required: true},
					&cli.StringFlag{Name: "tipo", Required: true, Usage: strings.Join(domain.Roles, ", ")},
					permsFlag,
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireAdmin()
					if err != nil {
						return err
					}
					in := client.NewUser{
						Name:     c.String("nome"),
						Username: c.String("username"),
						Email:    c.String("email"),
						Password: c.String("senha"),
						Role:     strings.ToUpper(c.String("tipo")),
					}
					if c.IsSet("perms") {
						p, err := parsePerms(c.String("perms"))
						if err != nil {
							return err
						}
						in.Permissions = &p
					}
					u, err := api.CreateUser(ctx, in)
					if err != nil {
						return err
					}
					printUsers([]client.User{*u})
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Change some fields of a user",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nome"},
					&cli.StringFlag{Name: "username"},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "senha", Usage: "new password; omit to keep the current one"},
					&cli.StringFlag{Name: "tipo"},
					permsFlag,
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireAdmin()
					if err != nil {
						return err
					}
					patch := map[string]any{}
					for _, name := range []string{"nome", "username", "email", "senha", "tipo"} {
						if c.IsSet(name) {
							patch[name] = c.String(name)
						}
					}
					if v, ok := patch["tipo"].(string); ok {
						patch["tipo"] = strings.ToUpper(v)
					}
					if c.IsSet("perms") {
						p, err := parsePerms(c.String("perms"))
						if err != nil {
							return err
						}
						patch["permissoes"] = p
					}
					u, err := api.UpdateUser(ctx, c.Args().First(), patch)
					if err != nil {
						return err
					}
					printUsers([]client.User{*u})
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a user",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					s, api, err := requireAdmin()
					if err != nil {
						return err
					}
					id := c.Args().First()
					if id == s.Session.UserID {
						return domain.NewValidationError("id", "cannot delete the current user")
					}
					if err := api.DeleteUser(ctx, id); err != nil {
						return err
					}
					_, _ = fmt.Fprintln(stdout, "deleted")
					return nil
				},
			},
		},
	}
}

// parsePerms reads "view,edit" into a permission set. An empty string grants
// nothing.
func parsePerms(s string) (client.Permissions, error) {
	var p client.Permissions
	for _, part := range strings.Split(s, ",") {
		switch domain.Capability(strings.ToLower(strings.TrimSpace(part))) {
		case "":
		case domain.CapView:
			p.CanView = true
		case domain.CapCreate:
			p.CanCreate = true
		case domain.CapEdit:
			p.CanEdit = true
		case domain.CapDelete:
			p.CanDelete = true
		default:
			return p, fmt.Errorf("unknown capability %q", part)
		}
	}
	return p, nil
}
