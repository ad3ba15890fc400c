package entity

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"slices"
	"strings"

	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/errors"
	"shopseva/internal/util"
)

var (
	contactPattern = regexp.MustCompile(`^\d{10}$`)
	yearPattern    = regexp.MustCompile(`^\d{4}$`)
)

// ListingRules bounds the media a listing may carry.
type ListingRules struct {
	MinImages     int
	MaxImages     int
	MaxImageBytes int
}

// DefaultListingRules are 2 to 3 images of at most 1 MiB each.
func DefaultListingRules() ListingRules {
	return ListingRules{
		MinImages:     2,
		MaxImages:     3,
		MaxImageBytes: 1024 * 1024,
	}
}

// IsValidContact reports whether v is exactly ten ASCII digits.
func IsValidContact(v string) bool {
	return contactPattern.MatchString(v)
}

// Validate checks a listing at submission or edit time.
func (r ListingRules) Validate(s *Shop) error {
	var missing []string
	for field, value := range map[string]string{
		"name":     s.Name,
		"address":  s.Address,
		"category": s.Category,
		"state":    s.State,
		"district": s.District,
		"contact":  s.Contact,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)

		return domainerrors.ErrShopValidation.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	if !IsValidContact(s.Contact) {
		return domainerrors.ErrInvalidContact
	}
	if s.AlternateContact != "" && !IsValidContact(s.AlternateContact) {
		return domainerrors.ErrInvalidContact.WithDetails("alternate contact")
	}
	if s.EstablishmentYear != "" && !yearPattern.MatchString(s.EstablishmentYear) {
		return domainerrors.ErrShopValidation.WithDetails("establishment year must have 4 digits")
	}
	if s.Latitude != nil && (*s.Latitude < -90 || *s.Latitude > 90) {
		return domainerrors.ErrShopValidation.WithDetails("latitude out of range")
	}
	if s.Longitude != nil && (*s.Longitude < -180 || *s.Longitude > 180) {
		return domainerrors.ErrShopValidation.WithDetails("longitude out of range")
	}

	return r.ValidateImages(s.Images)
}

// ValidateImages checks the image count and each image's size.
func (r ListingRules) ValidateImages(images []string) error {
	if len(images) < r.MinImages || len(images) > r.MaxImages {
		return domainerrors.ErrImageCount.WithDetails(fmt.Sprintf("got %d, want %d to %d", len(images), r.MinImages, r.MaxImages))
	}
	for i, img := range images {
		if err := r.ValidateImage(img); err != nil {
			return errors.Wrapf(err, "image %d", i+1)
		}
	}

	return nil
}

// ValidateImage checks one embedded image against the size bound.
func (r ListingRules) ValidateImage(img string) error {
	size, err := ImageSize(img)
	if err != nil {
		return err
	}
	if size > r.MaxImageBytes {
		return domainerrors.ErrImageTooLarge.WithDetails(fmt.Sprintf("%s exceeds %s",
			util.FormatBytes(int64(size)), util.FormatBytes(int64(r.MaxImageBytes))))
	}

	return nil
}

// AddImage appends an image to a listing. A full listing is refused and left unchanged.
func (r ListingRules) AddImage(s *Shop, img string) error {
	if len(s.Images) >= r.MaxImages {
		return domainerrors.ErrImageLimitReached
	}
	if err := r.ValidateImage(img); err != nil {
		return err
	}

	s.Images = append(s.Images, img)

	return nil
}

// RemoveImage drops the image at index. The listing may fall below the
// minimum here; approval and edits re-check the count.
func (r ListingRules) RemoveImage(s *Shop, index int) error {
	if index < 0 || index >= len(s.Images) {
		return domainerrors.ErrImageInvalid.WithDetails(fmt.Sprintf("no image at position %d", index))
	}

	s.Images = append(s.Images[:index:index], s.Images[index+1:]...)

	return nil
}

// ImageSize returns the decoded byte length of a data URL or raw base64 image.
func ImageSize(img string) (int, error) {
	payload := strings.TrimSpace(img)
	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 || !strings.HasSuffix(payload[:comma], ";base64") {
			return 0, domainerrors.ErrImageInvalid.WithDetails("data URL must be base64 encoded")
		}
		payload = payload[comma+1:]
	}
	if payload == "" {
		return 0, domainerrors.ErrImageInvalid.WithDetails("empty image")
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return 0, domainerrors.ErrImageInvalid.WithDetails("malformed base64")
	}

	return len(decoded), nil
}
