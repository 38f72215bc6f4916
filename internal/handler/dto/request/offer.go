package request

import (
	"digital-menu/internal/domain/offer"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/pkg/patch"
)

type OfferRequest struct {
	Title              i18n.Text `json:"title"`
	Description        i18n.Text `json:"description"`
	DiscountPercentage int       `json:"discount_percentage"`
	ValidDays          []int     `json:"valid_days"`
	ValidHoursStart    string    `json:"valid_hours_start" binding:"required"`
	ValidHoursEnd      string    `json:"valid_hours_end" binding:"required"`
	IsActive           *bool     `json:"is_active"`
}

// ToParams defaults IsActive to true.
func (r *OfferRequest) ToParams() offer.Params {
	return offer.Params{
		Title:              r.Title,
		Description:        r.Description,
		DiscountPercentage: r.DiscountPercentage,
		ValidDays:          r.ValidDays,
		ValidHoursStart:    r.ValidHoursStart,
		ValidHoursEnd:      r.ValidHoursEnd,
		IsActive:           patch.Coalesce(r.IsActive, true),
	}
}
