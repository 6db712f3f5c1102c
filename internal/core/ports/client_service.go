package ports

import (
	"context"
	"io"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

// ListClientsInput selects the corpus and an optional search term.
type ListClientsInput struct {
	Status domain.ClientStatus // StatusActive or StatusExClient
	Query  string
}

// ClientPatch carries a partial update. Nil fields are left unchanged.
// The end date is absent on purpose: it only moves through Deactivate and
// Reactivate.
type ClientPatch struct {
	LegalName          *string
	TradeName          *string
	TaxID              *string
	MunicipalReg       *string
	LegalNature        *string
	TaxRegime          *string
	CompanySize        *string
	Contract           *string
	Modality           *string
	DigitalCertificate *bool
	PowerOfAttorney    *bool
	ContactName        *string
	Phone              *string
	Email              *string
	StartDate          *string
}

// Apply copies every non-nil field of p onto f.
func (p ClientPatch) Apply(f *domain.ClientFields) {
	setString(&f.LegalName, p.LegalName)
	setString(&f.TradeName, p.TradeName)
	setString(&f.TaxID, p.TaxID)
	setString(&f.MunicipalReg, p.MunicipalReg)
	setString(&f.LegalNature, p.LegalNature)
	setString(&f.TaxRegime, p.TaxRegime)
	setString(&f.CompanySize, p.CompanySize)
	setString(&f.Contract, p.Contract)
	setString(&f.Modality, p.Modality)
	setString(&f.ContactName, p.ContactName)
	setString(&f.Phone, p.Phone)
	setString(&f.Email, p.Email)
	setString(&f.StartDate, p.StartDate)
	if p.DigitalCertificate != nil {
		f.DigitalCertificate = *p.DigitalCertificate
	}
	if p.PowerOfAttorney != nil {
		f.PowerOfAttorney = *p.PowerOfAttorney
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// ImportRow is one parsed record of an import file, keyed by canonical
// field name (razao_social, cnpj, ...). Line is 1-based and counts the header.
type ImportRow struct {
	Line   int
	Fields map[string]string
}

// RejectedRow reports a row that was not inserted and why.
type RejectedRow struct {
	Line   int               `json:"line"`
	Reason string            `json:"reason"`
	Fields map[string]string `json:"fields"`
}

// ImportResult summarises a batch import.
type ImportResult struct {
	Inserted int           `json:"inserted"`
	Rejected []RejectedRow `json:"rejected"`
}

// ClientService defines the client record use cases. Every call is made on
// behalf of actor and is authorized before touching storage.
type ClientService interface {
	ListActive(ctx context.Context, actor *domain.Session) ([]domain.Client, error)
	ListInactive(ctx context.Context, actor *domain.Session) ([]domain.Client, error)
	List(ctx context.Context, actor *domain.Session, in ListClientsInput) ([]domain.Client, error)
	Get(ctx context.Context, actor *domain.Session, id string) (*domain.Client, error)
	Create(ctx context.Context, actor *domain.Session, fields domain.ClientFields) (*domain.Client, error)
	Update(ctx context.Context, actor *domain.Session, id string, patch ClientPatch) (*domain.Client, error)
	Deactivate(ctx context.Context, actor *domain.Session, id, endDate string) (*domain.Client, error)
	Reactivate(ctx context.Context, actor *domain.Session, id string) (*domain.Client, error)
	Delete(ctx context.Context, actor *domain.Session, id string) error
	ImportBatch(ctx context.Context, actor *domain.Session, rows []ImportRow) (*ImportResult, error)
	Import(ctx context.Context, actor *domain.Session, r io.Reader) (*ImportResult, error)
	Export(ctx context.Context, actor *domain.Session, w io.Writer, in ListClientsInput) error
}
