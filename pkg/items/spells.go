package items

// DefaultSpells is the stock spell rotation. Blink sits at index 2.
func DefaultSpells() []Spell {
	return []Spell{
		{ID: "flame", Strength: 5, Cost: 20, Graphic: "particles/flame/fire"},
		{ID: "heal", Strength: 20, Cost: 10, Graphic: "particles/heal/heal"},
		{ID: "blink", Strength: 0, Cost: 30, Graphic: "particles/blink/blink", Relocates: true},
	}
}

// DefaultRegistry builds a registry from the stock weapons and spells.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultWeapons(), DefaultSpells())
	if err != nil {
		panic(err) // stock data is unique by construction
	}
	return r
}
