package domain

import (
	"strings"
	"time"
)

// ClientStatus represents the lifecycle state of a client.
type ClientStatus string

const (
	StatusActive   ClientStatus = "active"
	StatusExClient ClientStatus = "ex_client"
	StatusDeleted  ClientStatus = "deleted"
)

// validTransitions defines the client state machine. Deleted is terminal.
var validTransitions = map[ClientStatus][]ClientStatus{
	StatusActive:   {StatusExClient, StatusDeleted},
	StatusExClient: {StatusActive, StatusDeleted},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ClientStatus) CanTransitionTo(next ClientStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

const (
	ModalityProBono = "pro_bono"
	ModalityPaid    = "pago"
)

// Modalities lists the accepted engagement modalities.
var Modalities = []string{ModalityProBono, ModalityPaid}

const (
	// DateLayout is the storage format of calendar dates.
	DateLayout = "2006-01-02"
	// DisplayDateLayout is the format used in spreadsheets.
	DisplayDateLayout = "02/01/2006"
)

// ClientFields holds the descriptive attributes of a client.
type ClientFields struct {
	LegalName          string `json:"razao_social" bson:"razao_social"`
	TradeName          string `json:"nome_fantasia" bson:"nome_fantasia"`
	TaxID              string `json:"cnpj" bson:"cnpj"`
	MunicipalReg       string `json:"ccm" bson:"ccm"`
	LegalNature        string `json:"natureza_juridica" bson:"natureza_juridica"`
	TaxRegime          string `json:"regime_tributario" bson:"regime_tributario"`
	CompanySize        string `json:"porte_empresa" bson:"porte_empresa"`
	Contract           string `json:"contrato" bson:"contrato"`
	Modality           string `json:"modalidade" bson:"modalidade"`
	DigitalCertificate bool   `json:"certificado_digital" bson:"certificado_digital"`
	PowerOfAttorney    bool   `json:"procuracao" bson:"procuracao"`
	ContactName        string `json:"nome_responsavel" bson:"nome_responsavel"`
	Phone              string `json:"telefone" bson:"telefone"`
	Email              string `json:"email" bson:"email"`
	StartDate          string `json:"data_inicial" bson:"data_inicial"`
}

// Validate checks required fields and date formats.
func (f *ClientFields) Validate() error {
	if strings.TrimSpace(f.LegalName) == "" {
		return NewValidationError("razao_social", "is required")
	}
	if f.StartDate != "" && !IsDate(f.StartDate) {
		return NewValidationError("data_inicial", "must be a date in YYYY-MM-DD format")
	}
	if f.Modality != "" && f.Modality != ModalityProBono && f.Modality != ModalityPaid {
		return NewValidationError("modalidade", "must be one of: pro_bono pago")
	}
	return nil
}

// Client is the business entity under management.
type Client struct {
	ID           string `json:"id" bson:"_id"`
	ClientFields `bson:",inline"`
	EndDate      *string   `json:"data_saida" bson:"data_saida"`
	CreatedBy    string    `json:"created_by" bson:"created_by"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Status derives the lifecycle state from the end date.
func (c *Client) Status() ClientStatus {
	if c.EndDate == nil || *c.EndDate == "" {
		return StatusActive
	}
	return StatusExClient
}

// Deactivate moves an active client to ex-client with the given end date.
func (c *Client) Deactivate(endDate string) error {
	if !IsDate(endDate) {
		return NewValidationError("data_saida", "must be a date in YYYY-MM-DD format")
	}
	if !c.Status().CanTransitionTo(StatusExClient) {
		return ErrInvalidTransition
	}
	c.EndDate = &endDate
	return nil
}

// Reactivate clears the end date of an ex-client.
func (c *Client) Reactivate() error {
	if !c.Status().CanTransitionTo(StatusActive) {
		return ErrInvalidTransition
	}
	c.EndDate = nil
	return nil
}

// IsDate reports whether s is a valid YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// DisplayToDate converts DD/MM/YYYY to YYYY-MM-DD. Input already in storage
// format is returned unchanged.
func DisplayToDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if IsDate(s) {
		return s, nil
	}
	t, err := time.Parse(DisplayDateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// DateToDisplay converts YYYY-MM-DD to DD/MM/YYYY. Unparseable input is
// returned as is.
func DateToDisplay(s string) string {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(DisplayDateLayout)
}
