package memcache_fx

import (
	"go.uber.org/fx"
	mem "trailbook/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokenStore)

func provideRevokedTokenStore() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}
