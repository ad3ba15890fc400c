package handler

import (
	"net/http"
	"testing"

	"shopseva/internal/domain/constants"
	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	mockusecase "shopseva/internal/mocks/usecase"
	"shopseva/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEngagementHandler_Like(t *testing.T) {
	uc := mockusecase.NewMockEngagementUsecase(t)
	h := NewEngagementHandler(uc, nil)
	e := newTestEcho()
	e.POST("/shops/:id/like", h.Like)
	e.DELETE("/shops/:id/like", h.Unlike)

	id := uuid.New()
	headers := map[string]string{constants.HeaderDeviceID: "device-1"}

	uc.EXPECT().LikeShop(mock.Anything, id, "device-1").
		Return(&usecase.LikeResult{ShopID: id, Liked: true, Likes: 3}, nil).Once()
	rec := doRequest(e, http.MethodPost, "/shops/"+id.String()+"/like", "", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var liked usecase.LikeResult
	decodeData(t, rec, &liked)
	assert.True(t, liked.Liked)
	assert.Equal(t, 3, liked.Likes)

	uc.EXPECT().UnlikeShop(mock.Anything, id, "device-1").
		Return(&usecase.LikeResult{ShopID: id, Liked: false, Likes: 2}, nil).Once()
	rec = doRequest(e, http.MethodDelete, "/shops/"+id.String()+"/like", "", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Unliked", decodeEnvelope(t, rec).Message)
}

func TestEngagementHandler_LikeWithoutDevice(t *testing.T) {
	uc := mockusecase.NewMockEngagementUsecase(t)
	e := newTestEcho()
	e.POST("/shops/:id/like", NewEngagementHandler(uc, nil).Like)

	id := uuid.New()
	uc.EXPECT().LikeShop(mock.Anything, id, "").Return(nil, domainerrors.ErrDeviceIDMissing)

	rec := doRequest(e, http.MethodPost, "/shops/"+id.String()+"/like", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DEVICE_ID_MISSING", decodeEnvelope(t, rec).Error.Code)
}

func TestEngagementHandler_MalformedDevice(t *testing.T) {
	uc := mockusecase.NewMockEngagementUsecase(t)
	e := newTestEcho()
	e.GET("/shops/liked", NewEngagementHandler(uc, nil).ListLiked)

	rec := doRequest(e, http.MethodGet, "/shops/liked", "", map[string]string{constants.HeaderDeviceID: "a/b"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "DEVICE_ID_MISSING", resp.Error.Code)
	assert.Equal(t, "malformed device identifier", resp.Error.Details)
}

func TestEngagementHandler_SubmitReview(t *testing.T) {
	author := shopkeeper()
	id := uuid.New()

	t.Run("signed in", func(t *testing.T) {
		uc := mockusecase.NewMockEngagementUsecase(t)
		e := newTestEcho()
		e.POST("/shops/:id/reviews", NewEngagementHandler(uc, nil).SubmitReview, withIdentity(author))

		uc.EXPECT().SubmitReview(mock.Anything, author, id, &usecase.ReviewInput{Rating: 4, Text: "Fresh stock"}).
			Return(&entity.Review{ShopID: id, Rating: 4, Text: "Fresh stock"}, nil)

		rec := doRequest(e, http.MethodPost, "/shops/"+id.String()+"/reviews", `{"rating":4,"text":"Fresh stock"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Review added", decodeEnvelope(t, rec).Message)
	})

	t.Run("anonymous", func(t *testing.T) {
		uc := mockusecase.NewMockEngagementUsecase(t)
		e := newTestEcho()
		e.POST("/shops/:id/reviews", NewEngagementHandler(uc, nil).SubmitReview)

		rec := doRequest(e, http.MethodPost, "/shops/"+id.String()+"/reviews", `{"rating":4,"text":"Fresh stock"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		uc := mockusecase.NewMockEngagementUsecase(t)
		e := newTestEcho()
		e.POST("/shops/:id/reviews", NewEngagementHandler(uc, nil).SubmitReview, withIdentity(author))

		rec := doRequest(e, http.MethodPost, "/shops/"+id.String()+"/reviews", `{"rating":6,"text":"Too good"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})
}
