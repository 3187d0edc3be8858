package catalog

// AvailablePet is a purchasable pet template. The catalog is static
// configuration, never mutated at runtime.
type AvailablePet struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Breed  string `json:"breed"`
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	XPCost int    `json:"xp_cost"`
}

// StarterTemplateID identifies the free pet granted at account
// initialization.
const StarterTemplateID = "tabby-cat"

type Catalog struct {
	pets []AvailablePet
	byID map[string]AvailablePet
}

// New builds an immutable catalog from the given templates. Test suites
// pass fixture lists instead of the shipped one.
func New(pets []AvailablePet) *Catalog {
	c := &Catalog{
		pets: make([]AvailablePet, len(pets)),
		byID: make(map[string]AvailablePet, len(pets)),
	}
	copy(c.pets, pets)
	for _, p := range c.pets {
		c.byID[p.ID] = p
	}
	return c
}

func (c *Catalog) FindByID(id string) (AvailablePet, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// List returns a copy so callers cannot mutate the catalog.
func (c *Catalog) List() []AvailablePet {
	out := make([]AvailablePet, len(c.pets))
	copy(out, c.pets)
	return out
}

// Default returns the shipped pet templates.
func Default() *Catalog {
	return New([]AvailablePet{
		{ID: StarterTemplateID, Type: "cat", Breed: "tabby", Name: "Tabby Cat", Emoji: "🐱", XPCost: 0},
		{ID: "shiba-dog", Type: "dog", Breed: "shiba", Name: "Shiba Pup", Emoji: "🐶", XPCost: 500},
		{ID: "lop-bunny", Type: "bunny", Breed: "lop", Name: "Lop Bunny", Emoji: "🐰", XPCost: 800},
		{ID: "emperor-penguin", Type: "penguin", Breed: "emperor", Name: "Emperor Penguin", Emoji: "🐧", XPCost: 1200},
		{ID: "baby-dragon", Type: "dragon", Breed: "ember", Name: "Baby Dragon", Emoji: "🐉", XPCost: 2500},
	})
}
