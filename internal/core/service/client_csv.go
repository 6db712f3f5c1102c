package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

const (
	csvSeparator = ';'
	utf8BOM      = "\uFEFF"

	displayYes     = "Sim"
	displayNo      = "Não"
	displayProBono = "Pro bono"
	displayPaid    = "Pago"
)

type columnKind int

const (
	kindText columnKind = iota
	kindDate
	kindBool
	kindModality
)

// csvColumn binds a client field to its spreadsheet header. Aliases are
// already normalised with normalizeHeader.
type csvColumn struct {
	field   string
	header  string
	kind    columnKind
	aliases []string
}

var clientColumns = []csvColumn{
	{field: "razao_social", header: "Razão Social"},
	{field: "nome_fantasia", header: "Nome Fantasia"},
	{field: "cnpj", header: "CNPJ"},
	{field: "ccm", header: "CCM"},
	{field: "natureza_juridica", header: "Natureza Jurídica"},
	{field: "regime_tributario", header: "Regime Tributário"},
	{field: "porte_empresa", header: "Porte da Empresa"},
	{field: "contrato", header: "Contrato"},
	{field: "modalidade", header: "Modalidade", kind: kindModality},
	{field: "certificado_digital", header: "Certificado Digital", kind: kindBool},
	{field: "procuracao", header: "Procuração", kind: kindBool},
	{field: "nome_responsavel", header: "Responsável", aliases: []string{"nome_do_responsavel"}},
	{field: "telefone", header: "Telefone"},
	{field: "email", header: "E-mail"},
	{field: "data_inicial", header: "Data Inicial", kind: kindDate},
	{field: "data_saida", header: "Data de Saída", kind: kindDate},
}

var headerIndex = buildHeaderIndex()

func buildHeaderIndex() map[string]*csvColumn {
	idx := make(map[string]*csvColumn)
	for i := range clientColumns {
		col := &clientColumns[i]
		idx[col.field] = col
		idx[normalizeHeader(col.header)] = col
		for _, a := range col.aliases {
			idx[a] = col
		}
	}
	return idx
}

// normalizeHeader folds case and accents and joins words with underscores,
// so "Razão Social", "razao social" and "razao_social" are the same key.
func normalizeHeader(h string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, h)
	if err != nil {
		folded = h
	}
	folded = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(folded, utf8BOM)))

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			pendingSep = false
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// WriteClientsCSV serialises corpus as a semicolon separated sheet with a
// byte-order mark, display dates and display booleans.
func WriteClientsCSV(w io.Writer, corpus []domain.Client) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = csvSeparator

	header := make([]string, len(clientColumns))
	for i, col := range clientColumns {
		header[i] = col.header
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range corpus {
		values := clientValues(&corpus[i])
		record := make([]string, len(clientColumns))
		for j, col := range clientColumns {
			record[j] = displayValue(col.kind, values[col.field])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func clientValues(c *domain.Client) map[string]string {
	end := ""
	if c.EndDate != nil {
		end = *c.EndDate
	}
	return map[string]string{
		"razao_social":        c.LegalName,
		"nome_fantasia":       c.TradeName,
		"cnpj":                c.TaxID,
		"ccm":                 c.MunicipalReg,
		"natureza_juridica":   c.LegalNature,
		"regime_tributario":   c.TaxRegime,
		"porte_empresa":       c.CompanySize,
		"contrato":            c.Contract,
		"modalidade":          c.Modality,
		"certificado_digital": formatBool(c.DigitalCertificate),
		"procuracao":          formatBool(c.PowerOfAttorney),
		"nome_responsavel":    c.ContactName,
		"telefone":            c.Phone,
		"email":               c.Email,
		"data_inicial":        c.StartDate,
		"data_saida":          end,
	}
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func displayValue(kind columnKind, v string) string {
	switch kind {
	case kindDate:
		if v == "" {
			return ""
		}
		return domain.DateToDisplay(v)
	case kindBool:
		if v == "true" {
			return displayYes
		}
		return displayNo
	case kindModality:
		switch v {
		case domain.ModalityProBono:
			return displayProBono
		case domain.ModalityPaid:
			return displayPaid
		}
	}
	return v
}

// ReadClientsCSV parses a sheet produced by WriteClientsCSV or typed by hand.
// Unknown columns are ignored. Line numbers count the header as line 1.
func ReadClientsCSV(r io.Reader) ([]ports.ImportRow, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && string(lead) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.Comma = csvSeparator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewValidationError("file", "is empty")
	}
	if err != nil {
		return nil, domain.NewValidationError("file", fmt.Sprintf("unreadable: %v", err))
	}

	fields := make([]string, len(header))
	known := 0
	for i, h := range header {
		if col, ok := headerIndex[normalizeHeader(h)]; ok {
			fields[i] = col.field
			known++
		}
	}
	if known == 0 {
		return nil, domain.NewValidationError("file", "has no recognised column")
	}

	var rows []ports.ImportRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewValidationError("file", fmt.Sprintf("unreadable: %v", err))
		}
		line, _ := cr.FieldPos(0)
		row := ports.ImportRow{Line: line, Fields: make(map[string]string)}
		for i, v := range record {
			if i < len(fields) && fields[i] != "" {
				row.Fields[fields[i]] = strings.TrimSpace(v)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rowToClient converts parsed values to client fields and an optional end date.
func rowToClient(values map[string]string) (domain.ClientFields, *string, error) {
	var f domain.ClientFields
	var end *string

	for key, raw := range values {
		col, ok := headerIndex[key]
		if !ok {
			continue
		}
		v := strings.TrimSpace(raw)

		switch col.kind {
		case kindDate:
			if v == "" {
				continue
			}
			iso, err := domain.DisplayToDate(v)
			if err != nil {
				return f, nil, domain.NewValidationError(col.field, fmt.Sprintf("invalid date %q", v))
			}
			v = iso
		case kindBool:
			b, err := parseDisplayBool(v)
			if err != nil {
				return f, nil, domain.NewValidationError(col.field, err.Error())
			}
			v = formatBool(b)
		case kindModality:
			m, err := parseDisplayModality(v)
			if err != nil {
				return f, nil, domain.NewValidationError(col.field, err.Error())
			}
			v = m
		}

		switch col.field {
		case "razao_social":
			f.LegalName = v
		case "nome_fantasia":
			f.TradeName = v
		case "cnpj":
			f.TaxID = v
		case "ccm":
			f.MunicipalReg = v
		case "natureza_juridica":
			f.LegalNature = v
		case "regime_tributario":
			f.TaxRegime = v
		case "porte_empresa":
			f.CompanySize = v
		case "contrato":
			f.Contract = v
		case "modalidade":
			f.Modality = v
		case "certificado_digital":
			f.DigitalCertificate = v == "true"
		case "procuracao":
			f.PowerOfAttorney = v == "true"
		case "nome_responsavel":
			f.ContactName = v
		case "telefone":
			f.Phone = v
		case "email":
			f.Email = v
		case "data_inicial":
			f.StartDate = v
		case "data_saida":
			d := v
			end = &d
		}
	}
	return f, end, nil
}

func parseDisplayBool(v string) (bool, error) {
	switch normalizeHeader(v) {
	case "sim", "s", "true", "1", "yes":
		return true, nil
	case "nao", "n", "false", "0", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid yes/no value %q", v)
}

func parseDisplayModality(v string) (string, error) {
	switch normalizeHeader(v) {
	case "":
		return "", nil
	case "pro_bono", "probono":
		return domain.ModalityProBono, nil
	case "pago":
		return domain.ModalityPaid, nil
	}
	return "", fmt.Errorf("invalid modality %q", v)
}

const reasonDuplicateTaxID = "cnpj already exists"

// ImportBatch validates every row, reports the rejected ones and inserts the
// rest in one bulk write. A tax id already stored, or repeated earlier in the
// sheet, rejects only its own row.
func (s *clientService) ImportBatch(ctx context.Context, actor *domain.Session, rows []ports.ImportRow) (*ports.ImportResult, error) {
	if err := authorize(actor, domain.CapCreate); err != nil {
		return nil, err
	}

	result := &ports.ImportResult{Rejected: []ports.RejectedRow{}}
	reject := func(row ports.ImportRow, reason string) {
		result.Rejected = append(result.Rejected, ports.RejectedRow{Line: row.Line, Reason: reason, Fields: row.Fields})
	}

	accepted := make([]*domain.Client, 0, len(rows))
	acceptedRows := make([]ports.ImportRow, 0, len(rows))
	seenTaxIDs := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		c, err := s.clientFromRow(actor, row)
		if err != nil {
			reject(row, err.Error())
			continue
		}
		if c.TaxID != "" {
			if _, dup := seenTaxIDs[c.TaxID]; dup {
				reject(row, reasonDuplicateTaxID)
				continue
			}
			seenTaxIDs[c.TaxID] = struct{}{}
		}
		accepted = append(accepted, c)
		acceptedRows = append(acceptedRows, row)
	}

	inserted := len(accepted)
	if len(accepted) > 0 {
		conflicts, err := s.repo.CreateMany(ctx, accepted)
		if err != nil {
			return nil, fmt.Errorf("import clients: %w", err)
		}
		for _, i := range conflicts {
			reject(acceptedRows[i], reasonDuplicateTaxID)
		}
		inserted -= len(conflicts)
	}
	sort.SliceStable(result.Rejected, func(i, j int) bool {
		return result.Rejected[i].Line < result.Rejected[j].Line
	})
	result.Inserted = inserted

	s.log.Info().
		Int("inserted", result.Inserted).
		Int("rejected", len(result.Rejected)).
		Str("imported_by", actor.UserID).
		Msg("clients imported")
	return result, nil
}

func (s *clientService) clientFromRow(actor *domain.Session, row ports.ImportRow) (*domain.Client, error) {
	fields, end, err := rowToClient(row.Fields)
	if err != nil {
		return nil, err
	}
	c, err := s.newClient(actor, fields)
	if err != nil {
		return nil, err
	}
	c.EndDate = end
	return c, nil
}

// Import parses a sheet and imports its rows.
func (s *clientService) Import(ctx context.Context, actor *domain.Session, r io.Reader) (*ports.ImportResult, error) {
	if err := authorize(actor, domain.CapCreate); err != nil {
		return nil, err
	}
	rows, err := ReadClientsCSV(r)
	if err != nil {
		return nil, err
	}
	return s.ImportBatch(ctx, actor, rows)
}

// Export writes the selected, searched partition as a sheet.
func (s *clientService) Export(ctx context.Context, actor *domain.Session, w io.Writer, in ports.ListClientsInput) error {
	corpus, err := s.List(ctx, actor, in)
	if err != nil {
		return err
	}
	return WriteClientsCSV(w, corpus)
}
