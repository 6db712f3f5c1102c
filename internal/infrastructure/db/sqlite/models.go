package sqlite

import (
	"time"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

type ClientModel struct {
	ID                 string `gorm:"primaryKey"`
	RazaoSocial        string `gorm:"not null"`
	NomeFantasia       string
	CNPJ               string `gorm:"column:cnpj"`
	CCM                string `gorm:"column:ccm"`
	NaturezaJuridica   string
	RegimeTributario   string
	PorteEmpresa       string
	Contrato           string
	Modalidade         string
	CertificadoDigital bool
	Procuracao         bool
	NomeResponsavel    string
	Telefone           string
	Email              string
	DataInicial        string
	DataSaida          *string
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ClientModel) TableName() string { return "clientes" }

func clientModel(c *domain.Client) ClientModel {
	return ClientModel{
		ID:                 c.ID,
		RazaoSocial:        c.LegalName,
		NomeFantasia:       c.TradeName,
		CNPJ:               c.TaxID,
		CCM:                c.MunicipalReg,
		NaturezaJuridica:   c.LegalNature,
		RegimeTributario:   c.TaxRegime,
		PorteEmpresa:       c.CompanySize,
		Contrato:           c.Contract,
		Modalidade:         c.Modality,
		CertificadoDigital: c.DigitalCertificate,
		Procuracao:         c.PowerOfAttorney,
		NomeResponsavel:    c.ContactName,
		Telefone:           c.Phone,
		Email:              c.Email,
		DataInicial:        c.StartDate,
		DataSaida:          c.EndDate,
		CreatedBy:          c.CreatedBy,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func (m ClientModel) toDomain() domain.Client {
	return domain.Client{
		ID: m.ID,
		ClientFields: domain.ClientFields{
			LegalName:          m.RazaoSocial,
			TradeName:          m.NomeFantasia,
			TaxID:              m.CNPJ,
			MunicipalReg:       m.CCM,
			LegalNature:        m.NaturezaJuridica,
			TaxRegime:          m.RegimeTributario,
			CompanySize:        m.PorteEmpresa,
			Contract:           m.Contrato,
			Modality:           m.Modalidade,
			DigitalCertificate: m.CertificadoDigital,
			PowerOfAttorney:    m.Procuracao,
			ContactName:        m.NomeResponsavel,
			Phone:              m.Telefone,
			Email:              m.Email,
			StartDate:          m.DataInicial,
		},
		EndDate:   m.DataSaida,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type UserModel struct {
	ID        string `gorm:"primaryKey"`
	Nome      string `gorm:"not null"`
	Username  string `gorm:"not null;uniqueIndex"`
	Email     string `gorm:"not null;uniqueIndex"`
	Tipo      string `gorm:"not null;index"`
	CanView   bool
	CanCreate bool
	CanEdit   bool
	CanDelete bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string { return "usuarios" }

func userModel(u *domain.User) UserModel {
	return UserModel{
		ID:        u.ID,
		Nome:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Tipo:      u.Role,
		CanView:   u.Permissions.CanView,
		CanCreate: u.Permissions.CanCreate,
		CanEdit:   u.Permissions.CanEdit,
		CanDelete: u.Permissions.CanDelete,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m UserModel) toDomain() domain.User {
	return domain.User{
		ID:       m.ID,
		Name:     m.Nome,
		Username: m.Username,
		Email:    m.Email,
		Role:     m.Tipo,
		Permissions: domain.Permissions{
			CanView:   m.CanView,
			CanCreate: m.CanCreate,
			CanEdit:   m.CanEdit,
			CanDelete: m.CanDelete,
		},
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type CredentialModel struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CredentialModel) TableName() string { return "credentials" }
