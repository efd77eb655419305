package helpers

import (
	"github.com/fredriksvantes/lodestar/beacon-chain/cache"
)

var committeeCache = cache.NewCommitteesCache()

// ClearCache clears the committee cache.
func ClearCache() {
	committeeCache = cache.NewCommitteesCache()
}
