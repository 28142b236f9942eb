package gamedata

// WeaponDef defines a weapon loaded from JSON.
type WeaponDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "rock")
	Name        string `json:"name"`        // Display name (e.g., "Rock")
	Description string `json:"description"` // Flavor text
	DamageBonus int    `json:"damageBonus"` // Added to the wielder's base damage
}

// WeaponsFile represents the structure of weapons.json.
type WeaponsFile struct {
	Weapons []WeaponDef `json:"weapons"`
}

// LoadWeapons loads weapon definitions from the embedded weapons.json file.
func LoadWeapons() ([]WeaponDef, error) {
	file, err := Load[WeaponsFile]("weapons.json")
	if err != nil {
		return nil, err
	}
	return file.Weapons, nil
}

// MustLoadWeapons loads weapon definitions, panicking on error.
func MustLoadWeapons() []WeaponDef {
	weapons, err := LoadWeapons()
	if err != nil {
		panic(err)
	}
	return weapons
}
