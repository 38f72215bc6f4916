// Package seed loads demo restaurants from YAML files into the database.
package seed

import (
	"context"
	"io"
	"log/slog"
	"time"

	"digital-menu/internal/domain/menu"
	"digital-menu/internal/domain/offer"
	"digital-menu/internal/domain/restaurant"
	"digital-menu/internal/infra"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var ErrAlreadySeeded = errs.New("restaurant already seeded")

type File struct {
	Restaurant    Restaurant     `yaml:"restaurant"`
	Customization *Customization `yaml:"customization"`
	Categories    []Category     `yaml:"categories"`
	Offers        []Offer        `yaml:"offers"`
}

type Restaurant struct {
	Slug         string    `yaml:"slug"`
	Name         string    `yaml:"name"`
	Description  i18n.Text `yaml:"description"`
	LogoURL      *string   `yaml:"logo_url"`
	HeroImageURL *string   `yaml:"hero_image_url"`
}

type Customization struct {
	WelcomeText    i18n.Text `yaml:"welcome_text"`
	PrimaryColor   string    `yaml:"primary_color"`
	SecondaryColor string    `yaml:"secondary_color"`
	AccentColor    string    `yaml:"accent_color"`
	FontStyle      string    `yaml:"font_style"`
}

type Category struct {
	Name  i18n.Text `yaml:"name"`
	Items []Item    `yaml:"items"`
}

type Item struct {
	Name         i18n.Text `yaml:"name"`
	Description  i18n.Text `yaml:"description"`
	Price        string    `yaml:"price"`
	ImageURL     *string   `yaml:"image_url"`
	IsVegetarian bool      `yaml:"is_vegetarian"`
	IsVegan      bool      `yaml:"is_vegan"`
	SpiceLevel   int       `yaml:"spice_level"`
	MeatType     string    `yaml:"meat_type"`
	IsSoldOut    bool      `yaml:"is_sold_out"`
}

type Offer struct {
	Title              i18n.Text `yaml:"title"`
	Description        i18n.Text `yaml:"description"`
	DiscountPercentage int       `yaml:"discount_percentage"`
	ValidDays          []int     `yaml:"valid_days"`
	ValidHours         struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"valid_hours"`
	// nil means active
	IsActive *bool `yaml:"is_active"`
}

// Parse decodes a seed file. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errs.Wrap(err, "failed to decode seed file")
	}
	return &f, nil
}

// Plan is a seed file turned into validated domain objects.
type Plan struct {
	Restaurant    *restaurant.Restaurant
	Customization *restaurant.Customization
	Categories    []PlannedCategory
	Offers        []*offer.Offer
}

type PlannedCategory struct {
	Category *menu.Category
	Items    []*menu.Item
}

// Build validates every entry; sort orders follow the file order. Seeded
// restaurants have no owner.
func (f *File) Build(now time.Time) (*Plan, error) {
	r, err := restaurant.NewRestaurant(nil, restaurant.Params{
		Slug:         f.Restaurant.Slug,
		Name:         f.Restaurant.Name,
		Description:  f.Restaurant.Description,
		LogoURL:      f.Restaurant.LogoURL,
		HeroImageURL: f.Restaurant.HeroImageURL,
	}, now)
	if err != nil {
		return nil, errs.Wrap(errs.Validation(err), "restaurant")
	}

	p := &Plan{Restaurant: r}
	if c := f.Customization; c != nil {
		p.Customization, err = restaurant.NewCustomization(r.ID(), restaurant.CustomizationParams{
			WelcomeText:    c.WelcomeText,
			PrimaryColor:   c.PrimaryColor,
			SecondaryColor: c.SecondaryColor,
			AccentColor:    c.AccentColor,
			FontStyle:      c.FontStyle,
		}, now)
		if err != nil {
			return nil, errs.Wrap(errs.Validation(err), "customization")
		}
	} else {
		p.Customization = restaurant.DefaultCustomization(r.ID(), now)
	}

	for i, fc := range f.Categories {
		c, err := menu.NewCategory(r.ID(), fc.Name, i, now)
		if err != nil {
			return nil, errs.Wrapf(errs.Validation(err), "category %d", i)
		}
		pc := PlannedCategory{Category: c}
		for j, fi := range fc.Items {
			it, err := fi.build(c, j, now)
			if err != nil {
				return nil, errs.Wrapf(errs.Validation(err), "category %q item %d", fc.Name.EN, j)
			}
			pc.Items = append(pc.Items, it)
		}
		p.Categories = append(p.Categories, pc)
	}

	for i, fo := range f.Offers {
		active := fo.IsActive == nil || *fo.IsActive
		o, err := offer.NewOffer(r.ID(), offer.Params{
			Title:              fo.Title,
			Description:        fo.Description,
			DiscountPercentage: fo.DiscountPercentage,
			ValidDays:          fo.ValidDays,
			ValidHoursStart:    fo.ValidHours.Start,
			ValidHoursEnd:      fo.ValidHours.End,
			IsActive:           active,
		}, now)
		if err != nil {
			return nil, errs.Wrapf(errs.Validation(err), "offer %d", i)
		}
		p.Offers = append(p.Offers, o)
	}
	return p, nil
}

func (fi Item) build(c *menu.Category, sortOrder int, now time.Time) (*menu.Item, error) {
	price, err := decimal.NewFromString(fi.Price)
	if err != nil {
		return nil, menu.ErrInvalidPrice
	}
	return menu.NewItem(c.ID(), menu.ItemParams{
		Name:         fi.Name,
		Description:  fi.Description,
		Price:        price,
		ImageURL:     fi.ImageURL,
		IsVegetarian: fi.IsVegetarian,
		IsVegan:      fi.IsVegan,
		SpiceLevel:   fi.SpiceLevel,
		MeatType:     fi.MeatType,
		IsSoldOut:    fi.IsSoldOut,
	}, sortOrder, now)
}

type Result struct {
	Slug       string
	Categories int
	Items      int
	Offers     int
}

// Apply writes the plan in one transaction. A slug that already exists
// yields ErrAlreadySeeded and nothing is written.
func Apply(ctx context.Context, uow shared.UnitOfWork, p *Plan) (Result, error) {
	res := Result{Slug: p.Restaurant.Slug().Value(), Offers: len(p.Offers)}
	rid := p.Restaurant.ID()

	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Restaurants().Create(ctx, p.Restaurant); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrAlreadySeeded)
			}
			return err
		}
		if err := tx.Customizations().Upsert(ctx, p.Customization); err != nil {
			return err
		}
		for _, pc := range p.Categories {
			if err := tx.Categories().Create(ctx, pc.Category); err != nil {
				return err
			}
			for _, it := range pc.Items {
				if err := tx.MenuItems().Create(ctx, rid, it); err != nil {
					return err
				}
			}
		}
		for _, o := range p.Offers {
			if err := tx.Offers().Create(ctx, o); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	for _, pc := range p.Categories {
		res.Categories++
		res.Items += len(pc.Items)
	}
	slog.Info("seeded restaurant", "slug", res.Slug, "categories", res.Categories, "items", res.Items, "offers", res.Offers)
	return res, nil
}
