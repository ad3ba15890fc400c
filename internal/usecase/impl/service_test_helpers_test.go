package impl

import (
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"time"

	"shopseva/config"
	"shopseva/internal/domain/entity"
	"shopseva/internal/usecase"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Admin: &config.AdminConfig{
			Email:        "admin@shopseva.test",
			Name:         "Admin",
			PasswordHash: "admin-hash",
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

func testImage(size int) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", size)))
}

func newTestInput(images int) *usecase.ShopInput {
	in := &usecase.ShopInput{
		Name:     "Patel Kirana",
		Address:  "12 MG Road",
		Category: "grocery",
		State:    "gujarat",
		District: "ahmedabad",
		Contact:  "9876543210",
	}
	for range images {
		in.Images = append(in.Images, testImage(64))
	}

	return in
}

func newStoredShop(status entity.ModerationStatus, images int) *entity.Shop {
	details := newTestInput(images).Details()
	shop := entity.NewPendingShop(uuid.New(), details, fixedNow.Add(-time.Hour))
	switch status {
	case entity.StatusApproved:
		shop.IsApproved = true
	case entity.StatusRejected:
		shop.IsRejected = true
		shop.RejectionReason = "Not approved by admin"
	}

	return shop
}
