package entity

import (
	"encoding/base64"
	"testing"

	domainerrors "shopseva/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRules_Validate_Contact(t *testing.T) {
	rules := DefaultListingRules()

	tests := []struct {
		name    string
		contact string
		wantErr error
	}{
		{name: "ten digits", contact: "1234567890"},
		{name: "five digits", contact: "12345", wantErr: domainerrors.ErrInvalidContact},
		{name: "eleven digits", contact: "12345678901", wantErr: domainerrors.ErrInvalidContact},
		{name: "letters", contact: "12345abcde", wantErr: domainerrors.ErrInvalidContact},
		{name: "spaces", contact: "12345 67890", wantErr: domainerrors.ErrInvalidContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shop := newTestShop(2)
			shop.Contact = tt.contact

			err := rules.Validate(shop)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListingRules_Validate_MissingFields(t *testing.T) {
	shop := newTestShop(2)
	shop.Name = ""
	shop.District = ""

	err := DefaultListingRules().Validate(shop)

	require.ErrorIs(t, err, domainerrors.ErrShopValidation)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "missing required fields: district, name", appErr.Details())
}

func TestListingRules_Validate_MissingState(t *testing.T) {
	shop := newTestShop(2)
	shop.State = "  "

	err := DefaultListingRules().Validate(shop)

	require.ErrorIs(t, err, domainerrors.ErrShopValidation)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "missing required fields: state", appErr.Details())
}

func TestListingRules_Validate_OptionalFields(t *testing.T) {
	rules := DefaultListingRules()

	shop := newTestShop(2)
	shop.AlternateContact = "98765"
	require.ErrorIs(t, rules.Validate(shop), domainerrors.ErrInvalidContact)

	shop = newTestShop(2)
	shop.EstablishmentYear = "99"
	require.ErrorIs(t, rules.Validate(shop), domainerrors.ErrShopValidation)

	shop = newTestShop(2)
	shop.AlternateContact = "9876543210"
	shop.EstablishmentYear = "1998"
	require.NoError(t, rules.Validate(shop))
}

func TestListingRules_ValidateImages(t *testing.T) {
	rules := DefaultListingRules()

	tests := []struct {
		name    string
		images  []string
		wantErr error
	}{
		{name: "two small", images: []string{testImage(10), testImage(10)}},
		{name: "three at limit", images: []string{testImage(1024 * 1024), testImage(10), testImage(10)}},
		{name: "one image", images: []string{testImage(10)}, wantErr: domainerrors.ErrImageCount},
		{name: "four images", images: []string{testImage(1), testImage(1), testImage(1), testImage(1)}, wantErr: domainerrors.ErrImageCount},
		{name: "oversized", images: []string{testImage(1024*1024 + 1), testImage(10)}, wantErr: domainerrors.ErrImageTooLarge},
		{name: "not base64", images: []string{"data:image/png;base64,@@@", testImage(10)}, wantErr: domainerrors.ErrImageInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.ValidateImages(tt.images)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListingRules_AddImage_RefusesFourth(t *testing.T) {
	rules := DefaultListingRules()
	shop := newTestShop(3)
	before := append([]string(nil), shop.Images...)

	err := rules.AddImage(shop, testImage(10))

	require.ErrorIs(t, err, domainerrors.ErrImageLimitReached)
	assert.Equal(t, before, shop.Images)
}

func TestListingRules_AddImage_RefusesOversized(t *testing.T) {
	rules := DefaultListingRules()
	shop := newTestShop(2)

	err := rules.AddImage(shop, testImage(2*1024*1024))

	require.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	assert.Len(t, shop.Images, 2)
}

func TestListingRules_RemoveImage(t *testing.T) {
	rules := DefaultListingRules()
	shop := newTestShop(3)
	shop.Images[0], shop.Images[1], shop.Images[2] = testImage(1), testImage(2), testImage(3)
	keep := []string{shop.Images[0], shop.Images[2]}

	require.NoError(t, rules.RemoveImage(shop, 1))
	assert.Equal(t, keep, shop.Images)

	require.ErrorIs(t, rules.RemoveImage(shop, 5), domainerrors.ErrImageInvalid)
}

func TestImageSize(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("hello world"))

	size, err := ImageSize(raw)
	require.NoError(t, err)
	assert.Equal(t, 11, size)

	size, err = ImageSize("data:image/png;base64," + raw)
	require.NoError(t, err)
	assert.Equal(t, 11, size)

	_, err = ImageSize("data:image/svg+xml,<svg/>")
	require.ErrorIs(t, err, domainerrors.ErrImageInvalid)

	_, err = ImageSize("")
	require.ErrorIs(t, err, domainerrors.ErrImageInvalid)
}
