package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

func TestClientHandler_ListStatusAndQuery(t *testing.T) {
	tests := []struct {
		target string
		status domain.ClientStatus
		query  string
	}{
		{"/api/v1/clients", domain.StatusActive, ""},
		{"/api/v1/clients?status=active&q=acme", domain.StatusActive, "acme"},
		{"/api/v1/clients?status=inactive", domain.StatusExClient, ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			svc := &stubClientService{clients: []domain.Client{{ID: "1"}, {ID: "2"}}}
			c, rec := newContext(http.MethodGet, tt.target, "", adminSession)

			require.NoError(t, NewClientHandler(svc).List(c))
			assert.Equal(t, tt.status, svc.lastIn.Status)
			assert.Equal(t, tt.query, svc.lastIn.Query)

			var body clientListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, 2, body.Count)
		})
	}
}

func TestClientHandler_ListBadStatus(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/api/v1/clients?status=deleted", "", adminSession)
	err := NewClientHandler(&stubClientService{}).List(c)
	assert.Equal(t, http.StatusBadRequest, httpCode(err))
}

func TestClientHandler_CreatePassesServiceErrors(t *testing.T) {
	svc := &stubClientService{err: domain.ErrForbidden}
	c, _ := newContext(http.MethodPost, "/api/v1/clients", `{"razao_social":"Acme"}`, adminSession)

	err := NewClientHandler(svc).Create(c)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestClientHandler_Create(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/clients", `{"razao_social":"Acme Ltda","cnpj":"11.111.111/0001-11"}`, adminSession)

	require.NoError(t, NewClientHandler(&stubClientService{}).Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Acme Ltda", got.LegalName)
	assert.Equal(t, "11.111.111/0001-11", got.TaxID)
}

func TestClientHandler_UpdateOnlySentFields(t *testing.T) {
	svc := &stubClientService{}
	c, _ := newContext(http.MethodPatch, "/api/v1/clients/c-1", `{"telefone":"1199","procuracao":true}`, adminSession)
	c.SetParamNames("id")
	c.SetParamValues("c-1")

	require.NoError(t, NewClientHandler(svc).Update(c))
	require.NotNil(t, svc.lastPatch.Phone)
	assert.Equal(t, "1199", *svc.lastPatch.Phone)
	require.NotNil(t, svc.lastPatch.PowerOfAttorney)
	assert.True(t, *svc.lastPatch.PowerOfAttorney)
	assert.Nil(t, svc.lastPatch.LegalName)
}

func TestClientHandler_DeactivateAcceptsDisplayDate(t *testing.T) {
	svc := &stubClientService{}
	c, rec := newContext(http.MethodPost, "/api/v1/clients/c-1/deactivate", `{"data_saida":"01/02/2024"}`, adminSession)
	c.SetParamNames("id")
	c.SetParamValues("c-1")

	require.NoError(t, NewClientHandler(svc).Deactivate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-02-01", svc.lastDate)
}

func TestClientHandler_DeactivateRequiresDate(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/v1/clients/c-1/deactivate", `{}`, adminSession)
	err := NewClientHandler(&stubClientService{}).Deactivate(c)
	assert.Equal(t, http.StatusBadRequest, httpCode(err))
}

func TestClientHandler_Delete(t *testing.T) {
	c, rec := newContext(http.MethodDelete, "/api/v1/clients/c-1", "", adminSession)
	require.NoError(t, NewClientHandler(&stubClientService{}).Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, _ = newContext(http.MethodDelete, "/api/v1/clients/c-1", "", adminSession)
	err := NewClientHandler(&stubClientService{err: domain.ErrClientNotFound}).Delete(c)
	assert.True(t, errors.Is(err, domain.ErrClientNotFound))
}

func TestClientHandler_Import(t *testing.T) {
	svc := &stubClientService{}
	c, rec := newContext(http.MethodPost, "/api/v1/clients/import", "Razão Social\nAcme\n", adminSession)
	c.Request().Header.Set("Content-Type", "text/csv")

	require.NoError(t, NewClientHandler(svc).Import(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Razão Social\nAcme\n", svc.imported)

	var res ports.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Inserted)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, 3, res.Rejected[0].Line)
}

func TestClientHandler_Export(t *testing.T) {
	svc := &stubClientService{}
	c, rec := newContext(http.MethodGet, "/api/v1/clients/export?status=inactive&q=ac", "", adminSession)

	require.NoError(t, NewClientHandler(svc).Export(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "clientes-ex_client-")
	assert.Equal(t, "Razão Social\nAcme\n", rec.Body.String())
	assert.Equal(t, "ac", svc.lastIn.Query)
}

func TestClientHandler_ExportErrorLeavesResponseUncommitted(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/clients/export", "", adminSession)

	err := NewClientHandler(&stubClientService{err: domain.ErrForbidden}).Export(c)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}
