package items

// DefaultWeapons is the stock weapon rotation.
func DefaultWeapons() []Weapon {
	return []Weapon{
		{ID: "sword", Cooldown: 100, Damage: 15, Graphic: "weapon/sword/full"},
		{ID: "lance", Cooldown: 400, Damage: 30, Graphic: "weapon/lance/full"},
		{ID: "axe", Cooldown: 300, Damage: 20, Graphic: "weapon/axe/full"},
		{ID: "rapier", Cooldown: 50, Damage: 8, Graphic: "weapon/rapier/full"},
		{ID: "sai", Cooldown: 80, Damage: 10, Graphic: "weapon/sai/full"},
	}
}
