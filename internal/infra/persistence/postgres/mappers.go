package postgres

import (
	"shopseva/internal/domain/entity"
	"shopseva/internal/infra/persistence/model"
)

// These helpers convert between domain entities and persistence models.

func toShopDomain(m *model.ShopModel) *entity.Shop {
	if m == nil {
		return nil
	}

	return &entity.Shop{
		ID:                m.ID,
		Name:              m.Name,
		Address:           m.Address,
		Category:          m.Category,
		State:             m.State,
		District:          m.District,
		Contact:           m.Contact,
		AlternateContact:  m.AlternateContact,
		Email:             m.Email,
		OwnerName:         m.OwnerName,
		BusinessHours:     m.BusinessHours,
		EstablishmentYear: m.EstablishmentYear,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		Images:            append([]string(nil), m.Images...),
		IsApproved:        m.IsApproved,
		IsRejected:        m.IsRejected,
		RejectionReason:   m.RejectionReason,
		Likes:             m.Likes,
		ReviewCount:       m.ReviewCount,
		OwnerID:           m.OwnerID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromShopDomain(s *entity.Shop) *model.ShopModel {
	if s == nil {
		return nil
	}

	images := s.Images
	if images == nil {
		images = []string{}
	}

	return &model.ShopModel{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		Category:          s.Category,
		State:             s.State,
		District:          s.District,
		Contact:           s.Contact,
		AlternateContact:  s.AlternateContact,
		Email:             s.Email,
		OwnerName:         s.OwnerName,
		BusinessHours:     s.BusinessHours,
		EstablishmentYear: s.EstablishmentYear,
		Latitude:          s.Latitude,
		Longitude:         s.Longitude,
		Images:            images,
		IsApproved:        s.IsApproved,
		IsRejected:        s.IsRejected,
		RejectionReason:   s.RejectionReason,
		Likes:             s.Likes,
		ReviewCount:       s.ReviewCount,
		OwnerID:           s.OwnerID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toShopsDomain(rows []*model.ShopModel) []*entity.Shop {
	shops := make([]*entity.Shop, 0, len(rows))
	for _, row := range rows {
		shops = append(shops, toShopDomain(row))
	}

	return shops
}

func toReviewDomain(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:        m.ID,
		ShopID:    m.ShopID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		Rating:    m.Rating,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func fromReviewDomain(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:        r.ID,
		ShopID:    r.ShopID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

func toContactMessageDomain(m *model.ContactMessageModel) *entity.ContactMessage {
	return &entity.ContactMessage{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Message: m.Message,
		Date:    m.Date,
		Read:    m.Read,
	}
}

func fromContactMessageDomain(msg *entity.ContactMessage) *model.ContactMessageModel {
	return &model.ContactMessageModel{
		ID:      msg.ID,
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
		Date:    msg.Date,
		Read:    msg.Read,
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Phone:        m.Phone,
		Role:         entity.Role(m.Role),
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Email != nil {
		user.Email = *m.Email
	}
	if m.FirebaseUID != nil {
		user.FirebaseUID = *m.FirebaseUID
	}

	return user
}

func fromUserDomain(u *entity.User) *model.UserModel {
	if u == nil {
		return nil
	}

	m := &model.UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         u.Role.String(),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.Email != "" {
		email := u.Email
		m.Email = &email
	}
	if u.FirebaseUID != "" {
		uid := u.FirebaseUID
		m.FirebaseUID = &uid
	}

	return m
}
