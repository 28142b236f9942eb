// Package main is the entry point for the rpgcore demo battle.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/samdwyer/rpgcore/internal/combat"
	"github.com/samdwyer/rpgcore/internal/entity"
	"github.com/samdwyer/rpgcore/internal/game"
	"github.com/samdwyer/rpgcore/internal/gamedata"
	"github.com/samdwyer/rpgcore/internal/item"
	"github.com/samdwyer/rpgcore/internal/logging"
	"github.com/samdwyer/rpgcore/internal/telemetry"
	"github.com/samdwyer/rpgcore/internal/ui"
)

func main() {
	// Load .env for local development; env vars may also be set directly
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	seed := flag.Int64("seed", 0, "RNG seed for a reproducible battle (0 = random)")
	flag.Parse()

	logging.Init()
	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Battle will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	variants := gamedata.MustLoadVariantRegistry()
	weapons := gamedata.MustLoadWeaponRegistry()

	battle := buildEncounter(ctx, *seed, variants, weapons)

	if err := run(ctx, battle); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}

// buildEncounter assembles the demo rosters: an armed hero and sidekick
// against a goblin warband led by a fire boss.
func buildEncounter(ctx context.Context, seed int64, variants *gamedata.VariantRegistry, weapons *gamedata.WeaponRegistry) *game.Battle {
	hero := entity.New("Hero", 110, 10, combat.FactionHeroes)
	hero.Inventory = item.NewInventory(item.DefaultMaxSize)

	if def := weapons.GetByID("rock"); def != nil {
		rock := item.NewWeapon(def.Name, def.Description, def.DamageBonus)
		if err := hero.Inventory.Add(rock); err == nil && hero.Inventory.EquipWeapon(rock) {
			hero.Equip(rock)
		}
	}

	heroes := []*entity.Character{hero}
	if def := variants.GetByID("sidekick"); def != nil {
		heroes = append(heroes, entity.NewFromVariant(def))
	}

	var foes []*entity.Character
	for _, id := range []string{"goblin", "orc", "fire_boss"} {
		if def := variants.GetByID(id); def != nil {
			foes = append(foes, entity.NewFromVariant(def))
		}
	}

	cfg := game.DefaultConfig()
	cfg.Seed = seed
	return game.NewBattle(ctx, cfg, variants, heroes, foes)
}

// run drives the battle one round per keypress until it ends or the user
// quits with q or Escape.
func run(ctx context.Context, battle *game.Battle) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	// tcell owns the terminal now; keep log lines off the screen
	logging.Discard()

	renderer := ui.NewRenderer(screen)
	renderer.RenderBattle(battle)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
			if !battle.Over() {
				battle.RunRound(ctx)
			}
			renderer.RenderBattle(battle)
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
