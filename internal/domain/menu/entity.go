package menu

import (
	"time"

	"digital-menu/internal/pkg/i18n"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	name         i18n.Text
	sortOrder    int
	createdAt    time.Time
}

func NewCategory(restaurantID uuid.UUID, name i18n.Text, sortOrder int, now time.Time) (*Category, error) {
	if restaurantID == uuid.Nil {
		return nil, ErrRestaurantRequired
	}
	c := &Category{
		id:           uuid.New(),
		restaurantID: restaurantID,
		createdAt:    now,
	}
	if err := c.Rename(name); err != nil {
		return nil, err
	}
	c.SetSortOrder(sortOrder)
	return c, nil
}

func (c *Category) Rename(name i18n.Text) error {
	name, err := NewName(name)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Category) SetSortOrder(v int) { c.sortOrder = max(v, 0) }

func (c *Category) ID() uuid.UUID           { return c.id }
func (c *Category) RestaurantID() uuid.UUID { return c.restaurantID }
func (c *Category) Name() i18n.Text         { return c.name }
func (c *Category) SortOrder() int          { return c.sortOrder }
func (c *Category) CreatedAt() time.Time    { return c.createdAt }

type Item struct {
	id           uuid.UUID
	categoryID   uuid.UUID
	name         i18n.Text
	description  i18n.Text
	price        Price
	imageURL     *string
	isVegetarian bool
	isVegan      bool
	spiceLevel   SpiceLevel
	meatType     *MeatType
	isSoldOut    bool
	sortOrder    int
	createdAt    time.Time
}

// ItemParams carries the owner-editable fields of a menu item.
type ItemParams struct {
	Name         i18n.Text
	Description  i18n.Text
	Price        decimal.Decimal
	ImageURL     *string
	IsVegetarian bool
	IsVegan      bool
	SpiceLevel   int
	MeatType     string
	IsSoldOut    bool
}

func NewItem(categoryID uuid.UUID, p ItemParams, sortOrder int, now time.Time) (*Item, error) {
	if categoryID == uuid.Nil {
		return nil, ErrCategoryRequired
	}
	it := &Item{
		id:         uuid.New(),
		categoryID: categoryID,
		createdAt:  now,
	}
	if err := it.Apply(p); err != nil {
		return nil, err
	}
	it.SetSortOrder(sortOrder)
	return it, nil
}

// Apply validates p and replaces every editable field; it is untouched on error.
// Vegan items are not forced to be vegetarian.
func (it *Item) Apply(p ItemParams) error {
	name, err := NewName(p.Name)
	if err != nil {
		return err
	}
	price, err := NewPrice(p.Price)
	if err != nil {
		return err
	}
	meat, err := NewMeatType(p.MeatType)
	if err != nil {
		return err
	}

	it.name = name
	it.description = i18n.NewText(p.Description.EN, p.Description.DE)
	it.price = price
	it.imageURL = p.ImageURL
	it.isVegetarian = p.IsVegetarian
	it.isVegan = p.IsVegan
	it.spiceLevel = NewSpiceLevel(p.SpiceLevel)
	it.meatType = meat
	it.isSoldOut = p.IsSoldOut
	return nil
}

func (it *Item) SetSortOrder(v int) { it.sortOrder = max(v, 0) }

func (it *Item) ToggleSoldOut() { it.isSoldOut = !it.isSoldOut }

// Params returns the editable fields, suitable for persisting or re-applying.
func (it *Item) Params() ItemParams {
	p := ItemParams{
		Name:         it.name,
		Description:  it.description,
		Price:        it.price.Decimal(),
		ImageURL:     it.imageURL,
		IsVegetarian: it.isVegetarian,
		IsVegan:      it.isVegan,
		SpiceLevel:   it.spiceLevel.Value(),
		IsSoldOut:    it.isSoldOut,
	}
	if it.meatType != nil {
		p.MeatType = string(*it.meatType)
	}
	return p
}

func (it *Item) ID() uuid.UUID          { return it.id }
func (it *Item) CategoryID() uuid.UUID  { return it.categoryID }
func (it *Item) Name() i18n.Text        { return it.name }
func (it *Item) Description() i18n.Text { return it.description }
func (it *Item) Price() Price           { return it.price }
func (it *Item) ImageURL() *string      { return it.imageURL }
func (it *Item) IsVegetarian() bool     { return it.isVegetarian }
func (it *Item) IsVegan() bool          { return it.isVegan }
func (it *Item) SpiceLevel() SpiceLevel { return it.spiceLevel }
func (it *Item) MeatType() *MeatType    { return it.meatType }
func (it *Item) IsSoldOut() bool        { return it.isSoldOut }
func (it *Item) SortOrder() int         { return it.sortOrder }
func (it *Item) CreatedAt() time.Time   { return it.createdAt }
