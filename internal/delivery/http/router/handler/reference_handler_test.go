package handler

import (
	"net/http"
	"testing"

	"shopseva/internal/domain/entity"
	mockusecase "shopseva/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceHandler_Districts(t *testing.T) {
	uc := mockusecase.NewMockReferenceUsecase(t)
	e := newTestEcho()
	e.GET("/reference/districts", NewReferenceHandler(uc).Districts)

	uc.EXPECT().Districts("GJ").Return([]entity.ReferenceItem{{ID: "surat", Name: "Surat"}})

	rec := doRequest(e, http.MethodGet, "/reference/districts?stateId=GJ", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []entity.ReferenceItem
	decodeData(t, rec, &items)
	assert.Equal(t, "Surat", items[0].Name)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := doRequest(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
