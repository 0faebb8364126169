package unlock

import (
	"github.com/runfall/CheatKeeper_Go/internal/domain"
	"github.com/runfall/CheatKeeper_Go/internal/random"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// generateCode produces a random alphanumeric secret code whose length is
// determined by the ability's rarity. Codes are not checked for uniqueness
// across the catalog; redemption scans in authoring order, so a colliding
// code always resolves to the first-authored ability.
func generateCode(rarity domain.Rarity, rng random.Source) string {
	length := rarity.CodeLength()
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = codeAlphabet[rng.IntN(len(codeAlphabet))]
	}
	return string(buf)
}
