package domain

import "fmt"

// AbilityID identifies one unlockable ability in the catalog.
// The set of valid ids is closed; it is fixed when the catalog is authored.
type AbilityID string

// The full set of ability identifiers.
const (
	AbilityJump                AbilityID = "jump"
	AbilityCrouch              AbilityID = "crouch"
	AbilityAttack              AbilityID = "attack"
	AbilityAttackDmgBoost      AbilityID = "attack_dmg_boost"
	AbilityAttackFireRateBoost AbilityID = "attack_fire_rate_boost"
	AbilityMoveLeft            AbilityID = "move_left"
	AbilitySpeedBoost1         AbilityID = "speed_boost_1"
	AbilitySpeedBoost2         AbilityID = "speed_boost_2"
	AbilitySpeedBoost3         AbilityID = "speed_boost_3"
	AbilitySpeedBoost4         AbilityID = "speed_boost_4"
	AbilitySpeedBoost5         AbilityID = "speed_boost_5"
	AbilityArmor               AbilityID = "armor"
	AbilityDash                AbilityID = "dash"
	AbilityDoubleJump          AbilityID = "double_jump"
	AbilityShield              AbilityID = "shield"
	AbilityExtraLife           AbilityID = "extra_life"
	AbilityTempInvincibility   AbilityID = "temp_invincibility"
	AbilityFly                 AbilityID = "fly"
)

// Rarity is an ability's tier. It controls both the selection weight used
// when drawing the next unlock and the length of the generated secret code.
type Rarity string

const (
	RarityMandatory Rarity = "mandatory"
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Weight returns the selection weight for the weighted draw.
// Mandatory is zero because mandatory abilities are never part of the
// weighted distribution; they are always offered first.
func (r Rarity) Weight() int {
	switch r {
	case RarityCommon:
		return 10
	case RarityRare:
		return 5
	case RarityLegendary:
		return 2
	default:
		return 0
	}
}

// CodeLength returns the secret code length for this rarity.
func (r Rarity) CodeLength() int {
	switch r {
	case RarityRare:
		return 6
	case RarityLegendary:
		return 8
	default:
		return 4
	}
}

// Valid reports whether r is one of the defined tiers.
func (r Rarity) Valid() bool {
	switch r {
	case RarityMandatory, RarityCommon, RarityRare, RarityLegendary:
		return true
	}
	return false
}

// RedemptionStatus is the result class of a redeem attempt.
type RedemptionStatus string

const (
	RedemptionNotFound         RedemptionStatus = "not_found"
	RedemptionActivated        RedemptionStatus = "activated"
	RedemptionAlreadyActivated RedemptionStatus = "already_activated"
)

// RedemptionOutcome is the observable result of submitting a secret code.
// All three branches are normal outcome values, never errors; only the
// activated branch mutates session state.
type RedemptionOutcome struct {
	Status  RedemptionStatus `json:"status"`
	Ability AbilityID        `json:"ability,omitempty"`
}

// Message returns a player-facing description of the outcome.
func (o RedemptionOutcome) Message() string {
	switch o.Status {
	case RedemptionActivated:
		return fmt.Sprintf("[%s] cheat code successfully activated", o.Ability)
	case RedemptionAlreadyActivated:
		return fmt.Sprintf("[%s] already activated", o.Ability)
	default:
		return "cheat code not recognized by the system"
	}
}
