package i18n

import "sync"

// Catalog holds UI strings by key. Lookups fall back to the caller's text, then to English.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]Text
}

func NewCatalog(entries map[string]Text) *Catalog {
	c := &Catalog{entries: make(map[string]Text, len(entries))}
	for k, v := range entries {
		c.entries[k] = v
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(map[string]Text{
		"offers.title":        {EN: "Special Offers", DE: "Sonderangebote"},
		"offers.discount":     {EN: "%d%% off", DE: "%d%% Rabatt"},
		"offers.valid":        {EN: "Valid", DE: "Gültig"},
		"offers.none":         {EN: "No offers right now", DE: "Derzeit keine Angebote"},
		"menu.soldOut":        {EN: "Sold out", DE: "Ausverkauft"},
		"menu.vegetarian":     {EN: "Vegetarian", DE: "Vegetarisch"},
		"menu.vegan":          {EN: "Vegan", DE: "Vegan"},
		"restaurant.notFound": {EN: "Restaurant not found", DE: "Restaurant nicht gefunden"},
	})
}

func (c *Catalog) Set(key string, text Text) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = text
}

// Translate resolves key for lang. A non-empty fallback wins over the catalog entry.
func (c *Catalog) Translate(lang Language, key string, fallback Text) string {
	if !fallback.IsEmpty() {
		return fallback.In(lang)
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return key
	}
	return entry.In(lang)
}
