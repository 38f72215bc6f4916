package request

import (
	"digital-menu/internal/domain/menu"
	"digital-menu/internal/pkg/i18n"

	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	Name      i18n.Text `json:"name"`
	SortOrder *int      `json:"sort_order" binding:"omitempty,min=0"`
}

type MenuItemRequest struct {
	Name         i18n.Text       `json:"name"`
	Description  i18n.Text       `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     *string         `json:"image_url" binding:"omitempty,url"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsVegan      bool            `json:"is_vegan"`
	SpiceLevel   int             `json:"spice_level"`
	MeatType     string          `json:"meat_type"`
	IsSoldOut    bool            `json:"is_sold_out"`
	SortOrder    *int            `json:"sort_order" binding:"omitempty,min=0"`
}

func (r *MenuItemRequest) ToParams() menu.ItemParams {
	return menu.ItemParams{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		ImageURL:     r.ImageURL,
		IsVegetarian: r.IsVegetarian,
		IsVegan:      r.IsVegan,
		SpiceLevel:   r.SpiceLevel,
		MeatType:     r.MeatType,
		IsSoldOut:    r.IsSoldOut,
	}
}
