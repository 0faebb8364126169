package unlock

import (
	"sync"

	"github.com/runfall/CheatKeeper_Go/internal/domain"
	"github.com/runfall/CheatKeeper_Go/internal/random"
)

// Engine owns one catalog plus the activation state for a single session.
// All methods are safe for concurrent use; a single mutex guards the whole
// engine because Redeem performs a read-then-conditional-write that must
// not interleave (two racing redemptions of the same code could otherwise
// both report activated).
type Engine struct {
	mu        sync.Mutex
	catalog   *Catalog
	rng       random.Source
	activated map[domain.AbilityID]bool
	order     []domain.AbilityID // activation order, for display
}

// NewEngine creates an engine over a built catalog with empty activation
// state.
func NewEngine(catalog *Catalog, rng random.Source) *Engine {
	return &Engine{
		catalog:   catalog,
		rng:       rng,
		activated: make(map[domain.AbilityID]bool, catalog.Len()),
	}
}

// NextCode selects the ability that should be offered next.
//
// Mandatory abilities always come first: while any mandatory ability is
// locked, one is chosen uniformly at random. Otherwise a weighted draw is
// made over the eligible set (locked abilities whose dependencies are all
// activated) using rarity weights. The odds are relative to whatever is
// currently eligible, not globally normalized; they shift as common
// abilities get exhausted, which is the intended loot-table feel.
//
// Selection never activates anything - activation happens only through
// Redeem. Returns domain.ErrCatalogExhausted when no candidate remains;
// callers should check Exhausted before asking for another code.
func (e *Engine) NextCode() (*Definition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var mandatories []*Definition
	for _, id := range e.catalog.order {
		def := e.catalog.defs[id]
		if def.Rarity == domain.RarityMandatory && !e.activated[id] {
			mandatories = append(mandatories, def)
		}
	}
	if len(mandatories) > 0 {
		return mandatories[e.rng.IntN(len(mandatories))], nil
	}

	// Eligible set with cumulative weights for the draw.
	type candidate struct {
		def        *Definition
		cumulative int
	}
	var (
		eligible []candidate
		total    int
	)
	for _, id := range e.catalog.order {
		def := e.catalog.defs[id]
		if e.activated[id] || !e.dependenciesMet(def) {
			continue
		}
		total += def.Rarity.Weight()
		eligible = append(eligible, candidate{def: def, cumulative: total})
	}
	if len(eligible) == 0 {
		return nil, domain.ErrCatalogExhausted
	}

	roll := e.rng.IntN(total)
	lo, hi := 0, len(eligible)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if eligible[mid].cumulative <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return eligible[lo].def, nil
}

// dependenciesMet reports whether every dependency of def is activated.
// Caller must hold the mutex.
func (e *Engine) dependenciesMet(def *Definition) bool {
	for _, dep := range def.Dependencies {
		if !e.activated[dep] {
			return false
		}
	}
	return true
}

// Redeem matches input text against the catalog's secret codes and
// activates the matching ability. Matching is exact and case-sensitive.
// Redeeming an already-activated code reports it without changing state,
// so redemption is idempotent.
func (e *Engine) Redeem(text string) domain.RedemptionOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, id := range e.catalog.order {
		def := e.catalog.defs[id]
		if def.SecretCode != text {
			continue
		}
		if e.activated[id] {
			return domain.RedemptionOutcome{Status: domain.RedemptionAlreadyActivated, Ability: id}
		}
		e.activated[id] = true
		e.order = append(e.order, id)
		return domain.RedemptionOutcome{Status: domain.RedemptionActivated, Ability: id}
	}
	return domain.RedemptionOutcome{Status: domain.RedemptionNotFound}
}

// IsActivated reports whether the ability has been unlocked this session.
func (e *Engine) IsActivated(id domain.AbilityID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activated[id]
}

// Activated returns the unlocked ability ids in activation order.
func (e *Engine) Activated() []domain.AbilityID {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.AbilityID, len(e.order))
	copy(out, e.order)
	return out
}

// ActivatedCount returns the number of unlocked abilities.
func (e *Engine) ActivatedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.order)
}

// Exhausted reports whether every ability in the catalog is activated.
func (e *Engine) Exhausted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.order) == e.catalog.Len()
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}
