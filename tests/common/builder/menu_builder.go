//go:build unit || e2e

package builder

import (
	"time"

	"digital-menu/internal/domain/menu"
	reqdto "digital-menu/internal/handler/dto/request"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItemBuilder struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	NameEN        string
	NameDE        string
	DescriptionEN string
	DescriptionDE string
	Price         decimal.Decimal
	ImageURL      *string
	IsVegetarian  bool
	IsVegan       bool
	SpiceLevel    int
	MeatType      string
	IsSoldOut     bool
	SortOrder     int
	CreatedAt     time.Time
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:            uuid.New(),
		CategoryID:    uuid.New(),
		NameEN:        "Margherita",
		NameDE:        "Margherita",
		DescriptionEN: "Tomato, mozzarella, basil",
		DescriptionDE: "Tomate, Mozzarella, Basilikum",
		Price:         decimal.RequireFromString("12.50"),
		IsVegetarian:  true,
		CreatedAt:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *MenuItemBuilder) With(mutate func(*MenuItemBuilder)) *MenuItemBuilder {
	mutate(b)
	return b
}

func (b *MenuItemBuilder) BuildParams() menu.ItemParams {
	return menu.ItemParams{
		Name:         i18n.Text{EN: b.NameEN, DE: b.NameDE},
		Description:  i18n.Text{EN: b.DescriptionEN, DE: b.DescriptionDE},
		Price:        b.Price,
		ImageURL:     b.ImageURL,
		IsVegetarian: b.IsVegetarian,
		IsVegan:      b.IsVegan,
		SpiceLevel:   b.SpiceLevel,
		MeatType:     b.MeatType,
		IsSoldOut:    b.IsSoldOut,
	}
}

func (b *MenuItemBuilder) BuildDomain() (*menu.Item, error) {
	return menu.NewItem(b.CategoryID, b.BuildParams(), b.SortOrder, b.CreatedAt)
}

func (b *MenuItemBuilder) BuildView() queries.MenuItemView {
	v := queries.MenuItemView{
		ID:           b.ID,
		CategoryID:   b.CategoryID,
		Name:         i18n.Text{EN: b.NameEN, DE: b.NameDE},
		Description:  i18n.Text{EN: b.DescriptionEN, DE: b.DescriptionDE},
		Price:        b.Price,
		ImageURL:     b.ImageURL,
		IsVegetarian: b.IsVegetarian,
		IsVegan:      b.IsVegan,
		SpiceLevel:   b.SpiceLevel,
		IsSoldOut:    b.IsSoldOut,
		SortOrder:    b.SortOrder,
		CreatedAt:    b.CreatedAt,
	}
	if b.MeatType != "" {
		meat := b.MeatType
		v.MeatType = &meat
	}
	return v
}

func (b *MenuItemBuilder) BuildRequestDTO() reqdto.MenuItemRequest {
	return reqdto.MenuItemRequest{
		Name:         i18n.Text{EN: b.NameEN, DE: b.NameDE},
		Description:  i18n.Text{EN: b.DescriptionEN, DE: b.DescriptionDE},
		Price:        b.Price,
		ImageURL:     b.ImageURL,
		IsVegetarian: b.IsVegetarian,
		IsVegan:      b.IsVegan,
		SpiceLevel:   b.SpiceLevel,
		MeatType:     b.MeatType,
		IsSoldOut:    b.IsSoldOut,
	}
}

// Fluent builder methods
func (b *MenuItemBuilder) WithName(en, de string) *MenuItemBuilder {
	b.NameEN = en
	b.NameDE = de
	return b
}

func (b *MenuItemBuilder) WithPrice(s string) *MenuItemBuilder {
	b.Price = decimal.RequireFromString(s)
	return b
}

func (b *MenuItemBuilder) WithSpiceLevel(v int) *MenuItemBuilder {
	b.SpiceLevel = v
	return b
}

func (b *MenuItemBuilder) WithMeatType(m string) *MenuItemBuilder {
	b.MeatType = m
	return b
}

func (b *MenuItemBuilder) WithCategoryID(id uuid.UUID) *MenuItemBuilder {
	b.CategoryID = id
	return b
}

func (b *MenuItemBuilder) AsSoldOut() *MenuItemBuilder {
	b.IsSoldOut = true
	return b
}

type CategoryBuilder struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	NameEN       string
	NameDE       string
	SortOrder    int
	Items        []queries.MenuItemView
	CreatedAt    time.Time
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		NameEN:       "Pizza",
		NameDE:       "Pizza",
		CreatedAt:    time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CategoryBuilder) BuildDomain() (*menu.Category, error) {
	return menu.NewCategory(b.RestaurantID, i18n.Text{EN: b.NameEN, DE: b.NameDE}, b.SortOrder, b.CreatedAt)
}

func (b *CategoryBuilder) BuildView() queries.CategoryView {
	items := b.Items
	if items == nil {
		items = []queries.MenuItemView{}
	}
	return queries.CategoryView{
		ID:           b.ID,
		RestaurantID: b.RestaurantID,
		Name:         i18n.Text{EN: b.NameEN, DE: b.NameDE},
		SortOrder:    b.SortOrder,
		Items:        items,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *CategoryBuilder) BuildRequestDTO() reqdto.CategoryRequest {
	sort := b.SortOrder
	return reqdto.CategoryRequest{
		Name:      i18n.Text{EN: b.NameEN, DE: b.NameDE},
		SortOrder: &sort,
	}
}

func (b *CategoryBuilder) WithName(en, de string) *CategoryBuilder {
	b.NameEN = en
	b.NameDE = de
	return b
}

func (b *CategoryBuilder) WithRestaurantID(id uuid.UUID) *CategoryBuilder {
	b.RestaurantID = id
	return b
}

func (b *CategoryBuilder) WithItems(items ...queries.MenuItemView) *CategoryBuilder {
	b.Items = items
	return b
}
