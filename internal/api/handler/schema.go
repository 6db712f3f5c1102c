package handler

import (
	"time"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      *domain.Session `json:"user"`
}

// --- Clients ---

type clientListResponse struct {
	Clients []domain.Client `json:"clientes"`
	Count   int             `json:"count"`
}

// clientPatchRequest mirrors domain.ClientFields with every field optional.
type clientPatchRequest struct {
	LegalName          *string `json:"razao_social"`
	TradeName          *string `json:"nome_fantasia"`
	TaxID              *string `json:"cnpj"`
	MunicipalReg       *string `json:"ccm"`
	LegalNature        *string `json:"natureza_juridica"`
	TaxRegime          *string `json:"regime_tributario"`
	CompanySize        *string `json:"porte_empresa"`
	Contract           *string `json:"contrato"`
	Modality           *string `json:"modalidade"`
	DigitalCertificate *bool   `json:"certificado_digital"`
	PowerOfAttorney    *bool   `json:"procuracao"`
	ContactName        *string `json:"nome_responsavel"`
	Phone              *string `json:"telefone"`
	Email              *string `json:"email"`
	StartDate          *string `json:"data_inicial"`
}

func (r clientPatchRequest) toPatch() ports.ClientPatch {
	return ports.ClientPatch{
		LegalName:          r.LegalName,
		TradeName:          r.TradeName,
		TaxID:              r.TaxID,
		MunicipalReg:       r.MunicipalReg,
		LegalNature:        r.LegalNature,
		TaxRegime:          r.TaxRegime,
		CompanySize:        r.CompanySize,
		Contract:           r.Contract,
		Modality:           r.Modality,
		DigitalCertificate: r.DigitalCertificate,
		PowerOfAttorney:    r.PowerOfAttorney,
		ContactName:        r.ContactName,
		Phone:              r.Phone,
		Email:              r.Email,
		StartDate:          r.StartDate,
	}
}

type deactivateRequest struct {
	EndDate string `json:"data_saida" validate:"required"`
}

// --- Users ---

type createUserRequest struct {
	Name        string              `json:"nome"       validate:"required"`
	Username    string              `json:"username"   validate:"required"`
	Email       string              `json:"email"      validate:"required,email"`
	Password    string              `json:"senha"      validate:"required"`
	Role        string              `json:"tipo"       validate:"required,oneof=ADM FISCAL CONTABIL RH"`
	Permissions *domain.Permissions `json:"permissoes"`
}

func (r createUserRequest) toInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:        r.Name,
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		Permissions: r.Permissions,
	}
}

// updateUserRequest treats an absent or empty senha as "keep the password".
type updateUserRequest struct {
	Name        *string             `json:"nome"`
	Username    *string             `json:"username"`
	Email       *string             `json:"email"      validate:"omitempty,email"`
	Password    string              `json:"senha"`
	Role        *string             `json:"tipo"       validate:"omitempty,oneof=ADM FISCAL CONTABIL RH"`
	Permissions *domain.Permissions `json:"permissoes"`
}

func (r updateUserRequest) toPatch() ports.UserPatch {
	p := ports.UserPatch{
		Name:        r.Name,
		Username:    r.Username,
		Email:       r.Email,
		Role:        r.Role,
		Permissions: r.Permissions,
	}
	if r.Password != "" {
		p.Credential = &domain.NewCredential{Password: r.Password}
	}
	return p
}

type userListResponse struct {
	Users []domain.User `json:"usuarios"`
	Count int           `json:"count"`
}

// --- Options ---

type optionsResponse struct {
	Kind   string   `json:"kind"`
	Values []string `json:"values"`
}
