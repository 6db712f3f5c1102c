package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/pkg/client"
)

var stdout io.Writer = os.Stdout

func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printKV(rows [][2]string) {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	_ = w.Flush()
}

func printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(stdout, "no results")
		return
	}
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printClients(items []client.Record) {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		end := "-"
		if c.EndDate != nil && *c.EndDate != "" {
			end = domain.DateToDisplay(*c.EndDate)
		}
		rows = append(rows, []string{
			c.ID,
			c.LegalName,
			orDash(c.TaxID),
			orDash(c.ContactName),
			orDash(domain.DateToDisplay(c.StartDate)),
			end,
		})
	}
	printTable([]string{"ID", "RAZAO_SOCIAL", "CNPJ", "RESPONSAVEL", "INICIO", "SAIDA"}, rows)
}

func printClient(c *client.Record) {
	end := "-"
	if c.EndDate != nil && *c.EndDate != "" {
		end = *c.EndDate
	}
	printKV([][2]string{
		{"id", c.ID},
		{"razao_social", c.LegalName},
		{"nome_fantasia", orDash(c.TradeName)},
		{"cnpj", orDash(c.TaxID)},
		{"regime_tributario", orDash(c.TaxRegime)},
		{"modalidade", orDash(c.Modality)},
		{"nome_responsavel", orDash(c.ContactName)},
		{"email", orDash(c.Email)},
		{"data_inicial", orDash(c.StartDate)},
		{"data_saida", end},
		{"status", string(c.Status())},
	})
}

func printUsers(items []client.User) {
	rows := make([][]string, 0, len(items))
	for _, u := range items {
		rows = append(rows, []string{u.ID, u.Name, u.Username, u.Email, u.Role, permFlags(u.Permissions)})
	}
	printTable([]string{"ID", "NOME", "USERNAME", "EMAIL", "TIPO", "PERMISSOES"}, rows)
}

// permFlags renders permissions as "vced" with dashes for missing flags.
func permFlags(p client.Permissions) string {
	flag := func(on bool, c byte) byte {
		if on {
			return c
		}
		return '-'
	}
	return string([]byte{
		flag(p.CanView, 'v'),
		flag(p.CanCreate, 'c'),
		flag(p.CanEdit, 'e'),
		flag(p.CanDelete, 'd'),
	})
}

func printSession(s *client.Session) {
	printKV([][2]string{
		{"id", s.UserID},
		{"nome", s.Name},
		{"username", s.Username},
		{"email", s.Email},
		{"tipo", s.Role},
		{"permissoes", permFlags(s.Permissions)},
	})
}
