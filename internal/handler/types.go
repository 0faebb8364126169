package handler

import "github.com/runfall/CheatKeeper_Go/internal/domain"

// RedeemRequest carries the player-entered text for code redemption.
// The code is deliberately not marked required: an empty or malformed
// string is a normal not_found outcome, not a request error. Only the
// length is bounded to keep junk input out of the scan.
type RedeemRequest struct {
	Code string `json:"code" validate:"max=64"`
}

// CreateSessionResponse returns the id of a newly created unlock session.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// NextCodeResponse describes the ability selected for the next unlock.
// The host displays the secret code and asset to the player; requesting a
// next code never activates anything.
type NextCodeResponse struct {
	Ability    domain.AbilityID `json:"ability"`
	Rarity     domain.Rarity    `json:"rarity"`
	SecretCode string           `json:"secret_code"`
	AssetRef   string           `json:"asset_ref"`
}

// RedeemResponse reports the outcome of a redemption attempt.
type RedeemResponse struct {
	Result  domain.RedemptionStatus `json:"result"`
	Ability domain.AbilityID        `json:"ability,omitempty"`
	Message string                  `json:"message"`
}

// AbilityStatusResponse reports whether one ability is activated.
type AbilityStatusResponse struct {
	Ability   domain.AbilityID `json:"ability"`
	Activated bool             `json:"activated"`
}

// SessionStatusResponse summarizes a session's activation state.
type SessionStatusResponse struct {
	Activated   []domain.AbilityID `json:"activated"`
	CatalogSize int                `json:"catalog_size"`
	Remaining   int                `json:"remaining"`
	Exhausted   bool               `json:"exhausted"`
}

// VersionResponse reports the running build version.
type VersionResponse struct {
	Version string `json:"version"`
}
