package container

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"devhub/portal/internal/api"
	"devhub/portal/internal/cache"
	"devhub/portal/internal/cms"
	"devhub/portal/internal/config"
	"devhub/portal/internal/content"
	"devhub/portal/internal/fallback"
	"devhub/portal/internal/snapshot"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Accessor *cms.Accessor
	Fallback *fallback.Store
	Service  *content.Service
	Server   *api.Server

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized. The cache
// and snapshot store are optional: leaving their hosts unconfigured runs the
// portal without them.
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config:   cfg,
		Accessor: cms.NewAccessor(cfg.CMS),
		Fallback: fallback.NewStore(),
	}

	opts := make([]content.Option, 0, 2)

	var contentCache cache.Cache
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("Connected to Redis, content cache enabled")

		container.redis = rdb
		contentCache = cache.NewRedisCache(rdb, cfg.Redis)
		opts = append(opts, content.WithCache(contentCache))
	}

	if cfg.Database.Host != "" {
		db, err := pgxpool.New(context.Background(),
			fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				cfg.Database.Host,
				cfg.Database.Port,
				cfg.Database.User,
				cfg.Database.Password,
				cfg.Database.Name,
			))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to snapshot database: %w", err)
		}
		log.Info("Connected to Postgres, snapshot store enabled")

		container.db = db
		opts = append(opts, content.WithSnapshots(snapshot.NewRepository(db)))
	}

	container.Service = content.NewService(container.Accessor, container.Fallback, opts...)
	container.Server = api.NewServer(container.Service, contentCache, cfg.Server)

	return container, nil
}

// Run serves the portal API until the context is cancelled.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.Run(ctx)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warnf("Failed to close Redis client: %v", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
