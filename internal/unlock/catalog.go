package unlock

import (
	"fmt"

	"github.com/runfall/CheatKeeper_Go/internal/domain"
	"github.com/runfall/CheatKeeper_Go/internal/random"
)

// Spec is one authored catalog entry. Specs carry everything except the
// secret code, which is generated when the catalog is built.
type Spec struct {
	ID           domain.AbilityID   `json:"id" validate:"required"`
	Rarity       domain.Rarity      `json:"rarity" validate:"required"`
	Dependencies []domain.AbilityID `json:"dependencies,omitempty"`
	AssetRef     string             `json:"asset_ref"`
}

// Definition is the immutable runtime record for one ability.
type Definition struct {
	ID           domain.AbilityID
	Rarity       domain.Rarity
	SecretCode   string
	Dependencies []domain.AbilityID
	AssetRef     string
}

// Catalog maps ability ids to their definitions. It is built once at
// startup and read-only thereafter. Iteration follows authoring order so
// behavior that depends on scan order (secret code collisions resolve to
// the first match) stays deterministic.
type Catalog struct {
	defs  map[domain.AbilityID]*Definition
	order []domain.AbilityID
}

// NewCatalog validates the authored specs and builds the runtime catalog,
// generating a fresh secret code for every ability. A malformed spec
// (duplicate id, unknown dependency, dependency cycle, bad rarity) is an
// authoring defect and fails construction outright.
func NewCatalog(specs []Spec, rng random.Source) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: catalog has no abilities", domain.ErrInvalidInput)
	}

	c := &Catalog{
		defs:  make(map[domain.AbilityID]*Definition, len(specs)),
		order: make([]domain.AbilityID, 0, len(specs)),
	}

	for _, spec := range specs {
		if !spec.Rarity.Valid() {
			return nil, fmt.Errorf("%w: %q on ability %s", domain.ErrInvalidRarity, spec.Rarity, spec.ID)
		}
		if _, exists := c.defs[spec.ID]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateAbility, spec.ID)
		}

		deps := make([]domain.AbilityID, len(spec.Dependencies))
		copy(deps, spec.Dependencies)

		c.defs[spec.ID] = &Definition{
			ID:           spec.ID,
			Rarity:       spec.Rarity,
			SecretCode:   generateCode(spec.Rarity, rng),
			Dependencies: deps,
			AssetRef:     spec.AssetRef,
		}
		c.order = append(c.order, spec.ID)
	}

	if err := c.validateDependencies(); err != nil {
		return nil, err
	}

	return c, nil
}

// validateDependencies checks that every dependency exists in the catalog
// and that the dependency graph is acyclic.
func (c *Catalog) validateDependencies() error {
	for _, id := range c.order {
		for _, dep := range c.defs[id].Dependencies {
			if _, ok := c.defs[dep]; !ok {
				return fmt.Errorf("%w: %s requires %s", domain.ErrUnknownDependency, id, dep)
			}
		}
	}

	// Iterative DFS with three states: unvisited, on the current path, done.
	const (
		onPath = 1
		done   = 2
	)
	state := make(map[domain.AbilityID]int, len(c.order))

	var visit func(id domain.AbilityID) error
	visit = func(id domain.AbilityID) error {
		switch state[id] {
		case done:
			return nil
		case onPath:
			return fmt.Errorf("%w: involving %s", domain.ErrDependencyCycle, id)
		}
		state[id] = onPath
		for _, dep := range c.defs[id].Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, id := range c.order {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the definition for id.
func (c *Catalog) Get(id domain.AbilityID) (*Definition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

// Len returns the number of abilities in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Order returns the ability ids in authoring order.
func (c *Catalog) Order() []domain.AbilityID {
	out := make([]domain.AbilityID, len(c.order))
	copy(out, c.order)
	return out
}

// DefaultSpec returns the hand-authored ability catalog for the runner.
func DefaultSpec() []Spec {
	return []Spec{
		// Mandatory
		{ID: domain.AbilityJump, Rarity: domain.RarityMandatory, AssetRef: "jump.png"},

		// Common
		{ID: domain.AbilityCrouch, Rarity: domain.RarityCommon, AssetRef: "crouch.png"},
		{ID: domain.AbilityAttack, Rarity: domain.RarityCommon, AssetRef: "attack.png"},
		{ID: domain.AbilityAttackDmgBoost, Rarity: domain.RarityCommon,
			Dependencies: []domain.AbilityID{domain.AbilityAttack}, AssetRef: "attack_dmg_boost.png"},
		{ID: domain.AbilityAttackFireRateBoost, Rarity: domain.RarityCommon,
			Dependencies: []domain.AbilityID{domain.AbilityAttack}, AssetRef: "attack_fr_boost.png"},
		{ID: domain.AbilityMoveLeft, Rarity: domain.RarityCommon, AssetRef: "move_left.png"},
		{ID: domain.AbilitySpeedBoost1, Rarity: domain.RarityCommon, AssetRef: "speed.png"},
		{ID: domain.AbilitySpeedBoost2, Rarity: domain.RarityCommon,
			Dependencies: []domain.AbilityID{domain.AbilitySpeedBoost1}, AssetRef: "speed.png"},
		{ID: domain.AbilitySpeedBoost3, Rarity: domain.RarityCommon,
			Dependencies: []domain.AbilityID{domain.AbilitySpeedBoost1, domain.AbilitySpeedBoost2}, AssetRef: "speed.png"},
		{ID: domain.AbilityArmor, Rarity: domain.RarityCommon, AssetRef: "armor.png"},
		{ID: domain.AbilityDash, Rarity: domain.RarityCommon, AssetRef: "dash.png"},

		// Rare
		{ID: domain.AbilityDoubleJump, Rarity: domain.RarityRare,
			Dependencies: []domain.AbilityID{domain.AbilityJump}, AssetRef: "double_jump.png"},
		{ID: domain.AbilitySpeedBoost4, Rarity: domain.RarityRare,
			Dependencies: []domain.AbilityID{domain.AbilitySpeedBoost1, domain.AbilitySpeedBoost2, domain.AbilitySpeedBoost3}, AssetRef: "speed.png"},
		{ID: domain.AbilitySpeedBoost5, Rarity: domain.RarityRare,
			Dependencies: []domain.AbilityID{domain.AbilitySpeedBoost1, domain.AbilitySpeedBoost2, domain.AbilitySpeedBoost3, domain.AbilitySpeedBoost4}, AssetRef: "speed.png"},
		{ID: domain.AbilityShield, Rarity: domain.RarityRare,
			Dependencies: []domain.AbilityID{domain.AbilityJump}, AssetRef: "shield.png"},

		// Legendary
		{ID: domain.AbilityExtraLife, Rarity: domain.RarityLegendary, AssetRef: "extra_life.png"},
		{ID: domain.AbilityTempInvincibility, Rarity: domain.RarityLegendary,
			Dependencies: []domain.AbilityID{domain.AbilityArmor, domain.AbilityShield}, AssetRef: "temp_invincibility.png"},
		{ID: domain.AbilityFly, Rarity: domain.RarityLegendary,
			Dependencies: []domain.AbilityID{domain.AbilityJump, domain.AbilityDoubleJump}, AssetRef: "fly.png"},
	}
}
