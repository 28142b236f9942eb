package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samdwyer/rpgcore/internal/entity"
)

var titleCaser = cases.Title(language.English)

// Sheet returns a read-only text projection of a character's public state.
// It consumes only the data model and never mutates it.
func Sheet(c *entity.Character) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Name: %s\n", c.Name)
	fmt.Fprintf(&sb, "Level: %d (%d XP)\n", c.Level, c.Experience)
	fmt.Fprintf(&sb, "Health: %d/%d\n", c.HP, c.MaxHP)
	fmt.Fprintf(&sb, "Damage: %d\n", c.BaseDamage)

	if c.Weapon != nil {
		fmt.Fprintf(&sb, "Weapon: %s (+%d Damage)\n", c.Weapon.Name, c.Weapon.DamageBonus)
	} else {
		sb.WriteString("Weapon: No Weapon\n")
	}

	if c.Def != nil {
		role := titleCaser.String(string(c.Def.Role))
		fmt.Fprintf(&sb, "Role: %s (%s)\n", role, c.Def.Ability.Name)
	}

	if !c.IsAlive() {
		sb.WriteString("Status: Defeated\n")
	} else if c.IsFrozen() {
		sb.WriteString("Status: Frozen\n")
	}

	return sb.String()
}
