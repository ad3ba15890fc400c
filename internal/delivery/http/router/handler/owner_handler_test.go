package handler

import (
	"net/http"
	"testing"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	mockusecase "shopseva/internal/mocks/usecase"
	"shopseva/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOwnerHandler_SubmitShop(t *testing.T) {
	owner := shopkeeper()

	t.Run("created as pending", func(t *testing.T) {
		uc := mockusecase.NewMockShopUsecase(t)
		e := newTestEcho()
		e.POST("/owner/shops", NewOwnerHandler(uc, nil).SubmitShop, withIdentity(owner))

		uc.EXPECT().SubmitShop(mock.Anything, owner.UserID, mock.MatchedBy(func(in *usecase.ShopInput) bool {
			return in.Name == "Patel Kirana" && len(in.Images) == 1
		})).Return(&entity.Shop{OwnerID: owner.UserID, Name: "Patel Kirana"}, nil)

		rec := doRequest(e, http.MethodPost, "/owner/shops", `{"name":"Patel Kirana","images":["data:image/png;base64,AA=="]}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Shop submitted for review", decodeEnvelope(t, rec).Message)
	})

	t.Run("domain validation failure", func(t *testing.T) {
		uc := mockusecase.NewMockShopUsecase(t)
		e := newTestEcho()
		e.POST("/owner/shops", NewOwnerHandler(uc, nil).SubmitShop, withIdentity(owner))

		uc.EXPECT().SubmitShop(mock.Anything, owner.UserID, mock.Anything).
			Return(nil, domainerrors.ErrShopValidation.WithDetails("missing required fields: name"))

		rec := doRequest(e, http.MethodPost, "/owner/shops", `{"address":"Ring Road"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "SHOP_VALIDATION_FAILED", resp.Error.Code)
		assert.Equal(t, "missing required fields: name", resp.Error.Details)
	})

	t.Run("malformed email rejected before the usecase", func(t *testing.T) {
		uc := mockusecase.NewMockShopUsecase(t)
		e := newTestEcho()
		e.POST("/owner/shops", NewOwnerHandler(uc, nil).SubmitShop, withIdentity(owner))

		rec := doRequest(e, http.MethodPost, "/owner/shops", `{"name":"Patel Kirana","email":"not-an-email"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestOwnerHandler_ListShops(t *testing.T) {
	owner := shopkeeper()

	uc := mockusecase.NewMockShopUsecase(t)
	e := newTestEcho()
	e.GET("/owner/shops", NewOwnerHandler(uc, nil).ListShops, withIdentity(owner))

	uc.EXPECT().ListOwnerShops(mock.Anything, owner.UserID, entity.StatusRejected).
		Return([]*entity.Shop{{Name: "Old Stall"}}, nil).Once()
	rec := doRequest(e, http.MethodGet, "/owner/shops?status=rejected", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.EXPECT().ListOwnerShops(mock.Anything, owner.UserID, entity.ModerationStatus("")).
		Return([]*entity.Shop{}, nil).Once()
	rec = doRequest(e, http.MethodGet, "/owner/shops", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/owner/shops?status=archived", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
