package di

import (
	"marketloop-backend/application/ports"
	"marketloop-backend/infrastructure/persistence/gormdb"
	"marketloop-backend/infrastructure/persistence/memory"
)

// Stores bundles the read ports the feed insights pipeline consumes.
type Stores struct {
	Profiles    ports.ProfileStore
	Memberships ports.MembershipStore
	Connections ports.ConnectionStore
	Ranking     ports.RankingStore
	Groups      ports.GroupStore
	Posts       ports.PostStore
}

// GormStores bundles the GORM adapter behind every port.
func GormStores(store *gormdb.Store) Stores {
	return Stores{
		Profiles:    store,
		Memberships: store,
		Connections: store,
		Ranking:     store,
		Groups:      store,
		Posts:       store,
	}
}

// MemoryStores bundles the in-memory adapter behind every port.
func MemoryStores(store *memory.Store) Stores {
	return Stores{
		Profiles:    store,
		Memberships: store,
		Connections: store,
		Ranking:     store,
		Groups:      store,
		Posts:       store,
	}
}

func provideProfileStore(stores Stores) ports.ProfileStore       { return stores.Profiles }
func provideMembershipStore(stores Stores) ports.MembershipStore { return stores.Memberships }
func provideConnectionStore(stores Stores) ports.ConnectionStore { return stores.Connections }
func provideRankingStore(stores Stores) ports.RankingStore       { return stores.Ranking }
func provideGroupStore(stores Stores) ports.GroupStore           { return stores.Groups }
func providePostStore(stores Stores) ports.PostStore             { return stores.Posts }
