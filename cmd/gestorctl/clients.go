package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/pkg/client"
)

func listParams(c *cli.Command) client.ListParams {
	p := client.ListParams{Status: "active", Query: c.String("q")}
	if c.Bool("inactive") {
		p.Status = "inactive"
	}
	return p
}

func clientsCommand() *cli.Command {
	filterFlags := []cli.Flag{
		&cli.BoolFlag{Name: "inactive", Usage: "list ex-clients"},
		&cli.StringFlag{Name: "q", Usage: "search term"},
	}
	setFlag := &cli.StringSliceFlag{Name: "set", Usage: "field=value, repeatable (JSON field names)"}

	return &cli.Command{
		Name:  "clients",
		Usage: "Client records",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List active clients, or ex-clients with --inactive",
				Flags: append(filterFlags,
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
					&cli.DurationFlag{Name: "watch", Usage: "refresh periodically until interrupted"},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireCap(domain.CapView)
					if err != nil {
						return err
					}
					p := listParams(c)
					fetch := func(ctx context.Context) ([]client.Record, error) {
						return api.ListClients(ctx, p)
					}
					if every := c.Duration("watch"); every > 0 {
						return watchClients(ctx, fetch, every)
					}
					items, err := fetch(ctx)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(items)
					}
					printClients(items)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Show one client",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireCap(domain.CapView)
					if err != nil {
						return err
					}
					rec, err := api.GetClient(ctx, c.Args().First())
					if err != nil {
						return err
					}
					printClient(rec)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Register a client",
				Flags: []cli.Flag{setFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireCap(domain.CapCreate)
					if err != nil {
						return err
					}
					fields, err := clientFieldsFrom(c.StringSlice("set"))
					if err != nil {
						return err
					}
					rec, err := api.CreateClient(ctx, fields)
					if err != nil {
						return err
					}
					printClient(rec)
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Change some fields of a client",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{setFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireCap(domain.CapEdit)
					if err != nil {
						return err
					}
					patch, err := parseSet(c.StringSlice("set"))
					if err != nil {
						return err
					}
					rec, err := api.UpdateClient(ctx, c.Args().First(), patch)
					if err != nil {
						return err
					}
					printClient(rec)
					return nil
				},
			},
			{
				Name:      "deactivate",
				Usage:     "Move a client to ex-client",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Usage: "end date, DD/MM/YYYY or YYYY-MM-DD (default today)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireCap(domain.CapEdit)
					if err != nil {
						return err
					}
					date := c.String("date")
					if date == "" {
						date = time.Now().Format(domain.DateLayout)
					}
					rec, err := api.DeactivateClient(ctx, c.Args().First(), date)
					if err != nil {
						return err
					}
					printClient(rec)
					return nil
				},
			},
			{
				Name:      "reactivate",
				Usage:     "Bring an ex-client back",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireCap(domain.CapEdit)
					if err != nil {
						return err
					}
					rec, err := api.ReactivateClient(ctx, c.Args().First())
					if err != nil {
						return err
					}
					printClient(rec)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a client permanently",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireCap(domain.CapDelete)
					if err != nil {
						return err
					}
					if err := api.DeleteClient(ctx, c.Args().First()); err != nil {
						return err
					}
					_, _ = fmt.Fprintln(stdout, "deleted")
					return nil
				},
			},
			{
				Name:      "import",
				Usage:     "Import a semicolon separated sheet",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireCap(domain.CapCreate)
					if err != nil {
						return err
					}
					f, err := os.Open(c.Args().First())
					if err != nil {
						return err
					}
					defer f.Close()

					res, err := api.ImportClients(ctx, f)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(stdout, "inserted %d, rejected %d\n", res.Inserted, len(res.Rejected))
					for _, r := range res.Rejected {
						_, _ = fmt.Fprintf(stdout, "  line %d: %s\n", r.Line, r.Reason)
					}
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "Export clients as a semicolon separated sheet",
				Flags: append(filterFlags, &cli.StringFlag{Name: "out", Usage: "output file (default stdout)"}),
				Action: func(ctx context.Context, c *cli.Command) error {
					_, api, err := requireCap(domain.CapView)
					if err != nil {
						return err
					}
					var w io.Writer = stdout
					if path := c.String("out"); path != "" {
						f, err := os.Create(path)
						if err != nil {
							return err
						}
						defer f.Close()
						w = f
					}
					return api.ExportClients(ctx, w, listParams(c))
				},
			},
		},
	}
}

// watchClients redraws the list on every refresh until ctx ends. A failed
// refresh shows the error state and the next tick retries.
func watchClients(ctx context.Context, fetch client.FetchFunc[client.Record], every time.Duration) error {
	view := client.NewListView(ctx, fetch, func(s client.Snapshot[client.Record]) {
		switch s.State {
		case client.Loading:
			return
		case client.Error:
			_, _ = fmt.Fprintf(stdout, "[%s] error: %v\n", time.Now().Format(time.TimeOnly), s.Err)
		default:
			_, _ = fmt.Fprintf(stdout, "[%s] %d record(s)\n", time.Now().Format(time.TimeOnly), len(s.Items))
			printClients(s.Items)
		}
	})
	defer view.Close()

	if err := view.Refresh(); err != nil && !errors.Is(err, context.Canceled) {
		l := cliLog()
		l.Warn().Err(err).Msg("initial refresh failed")
	}
	view.Watch(every)
	<-ctx.Done()
	return nil
}

var boolFields = map[string]bool{"certificado_digital": true, "procuracao": true}

// parseSet turns repeated field=value flags into a JSON patch. Boolean fields
// take true/false/sim/não; date fields accept DD/MM/YYYY.
func parseSet(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: want field=value", pair)
		}
		switch {
		case key == "data_saida":
			return nil, fmt.Errorf("data_saida changes through deactivate/reactivate")
		case boolFields[key]:
			b, err := parseBool(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = b
		case key == "data_inicial" && value != "":
			d, err := domain.DisplayToDate(value)
			if err != nil {
				return nil, fmt.Errorf("data_inicial: %w", err)
			}
			out[key] = d
		default:
			out[key] = value
		}
	}
	return out, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sim", "s", "yes":
		return true, nil
	case "não", "nao", "n", "no", "":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func clientFieldsFrom(pairs []string) (client.ClientFields, error) {
	var f client.ClientFields
	patch, err := parseSet(pairs)
	if err != nil {
		return f, err
	}
	str := func(k string) string {
		s, _ := patch[k].(string)
		return s
	}
	boolean := func(k string) bool {
		b, _ := patch[k].(bool)
		return b
	}
	f = client.ClientFields{
		LegalName:          str("razao_social"),
		TradeName:          str("nome_fantasia"),
		TaxID:              str("cnpj"),
		MunicipalReg:       str("ccm"),
		LegalNature:        str("natureza_juridica"),
		TaxRegime:          str("regime_tributario"),
		CompanySize:        str("porte_empresa"),
		Contract:           str("contrato"),
		Modality:           str("modalidade"),
		DigitalCertificate: boolean("certificado_digital"),
		PowerOfAttorney:    boolean("procuracao"),
		ContactName:        str("nome_responsavel"),
		Phone:              str("telefone"),
		Email:              str("email"),
		StartDate:          str("data_inicial"),
	}
	if strings.TrimSpace(f.LegalName) == "" {
		return f, domain.NewValidationError("razao_social", "is required")
	}
	return f, nil
}
