package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/yatube/cache"
	"github.com/cppla/yatube/config"
	"github.com/cppla/yatube/events"
	"github.com/cppla/yatube/models"
	"github.com/cppla/yatube/repository"
	"github.com/cppla/yatube/routes"
	"github.com/cppla/yatube/storage"
	"github.com/cppla/yatube/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer utils.Logger.Sync()

	db := config.InitDatabase(cfg, models.All()...)
	seedGroups(db, cfg.Groups)

	opts := routes.Options{
		DB:     db,
		Cache:  cache.NewMemoryStore(),
		Events: events.Noop{},
		Media:  storage.NewLocal(cfg.MediaRoot, cfg.MediaURL),
	}
	opts.Revoked = opts.Cache

	if cfg.RedisHost != "" {
		rc := cache.NewRedisClient(cfg)
		defer rc.Close()
		opts.Cache = cache.NewRedisStore(rc, "yatube:", utils.Sugar)
		opts.Revoked = opts.Cache
		utils.Sugar.Infof("page cache on redis %s:%d db=%d", cfg.RedisHost, cfg.RedisPort, cfg.RedisDB)
	}

	if cfg.NATSURL != "" {
		pub, err := events.Connect(cfg.NATSURL, "yatube.")
		if err != nil {
			// events are best effort, keep serving without them
			utils.Sugar.Warnf("nats unavailable, events disabled: %v", err)
		} else {
			defer pub.Close()
			opts.Events = pub
		}
	}

	r := routes.SetupRouter(cfg, opts)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(fmt.Sprintf(":%s", cfg.AppPort), r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}

// seedGroups creates the groups listed in config.json; groups are otherwise managed by operators.
func seedGroups(db *gorm.DB, seeds []config.GroupSeed) {
	if len(seeds) == 0 {
		return
	}
	groups := make([]models.Group, 0, len(seeds))
	for _, g := range seeds {
		groups = append(groups, models.Group{Title: g.Title, Slug: g.Slug, Description: g.Description})
	}
	created, err := repository.NewStore(db).SeedGroups(context.Background(), groups)
	if err != nil {
		utils.Sugar.Fatalf("seed groups: %v", err)
	}
	utils.Sugar.Infof("seeded %d of %d configured groups", created, len(seeds))
}
