package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"github.com/tharindu-dev/portfolio-backend/config"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/bootstrap"
	"github.com/tharindu-dev/portfolio-backend/internal/cache"
	"github.com/tharindu-dev/portfolio-backend/internal/images"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
	"github.com/tharindu-dev/portfolio-backend/internal/store/firestoredb"
	"github.com/tharindu-dev/portfolio-backend/internal/store/memory"
	"github.com/tharindu-dev/portfolio-backend/internal/store/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		stores    store.Stores
		verifier  auth.TokenVerifier
		userAdmin auth.UserAdmin
		objects   images.ObjectStore
	)

	switch cfg.Store.Driver {
	case "firestore":
		app, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}

		fsClient, err := app.Firestore(ctx)
		if err != nil {
			log.Fatalf("firestore client: %v", err)
		}
		stores = firestoredb.New(fsClient).Stores()

		verifier, err = auth.NewFirebaseVerifier(ctx, app)
		if err != nil {
			log.Fatalf("firebase auth: %v", err)
		}
		userAdmin, err = auth.NewFirebaseUserAdmin(ctx, app)
		if err != nil {
			log.Fatalf("firebase auth: %v", err)
		}

		var opts []option.ClientOption
		if cfg.Firebase.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
		}
		objects, err = images.NewGCSStore(ctx, cfg.Firebase.StorageBucket, opts...)
		if err != nil {
			log.Fatalf("object store: %v", err)
		}

	case "postgres":
		pool, err := postgres.Open(ctx, cfg.Store.DSN())
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("postgres schema: %v", err)
		}
		stores = postgres.New(pool).Stores()

		// The postgres driver still verifies tokens against Firebase
		// when credentials are configured; otherwise local tokens only.
		verifier, userAdmin = localAuth()
		if cfg.Firebase.ProjectID != "" {
			app, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
			if err != nil {
				log.Fatalf("firebase: %v", err)
			}
			verifier, err = auth.NewFirebaseVerifier(ctx, app)
			if err != nil {
				log.Fatalf("firebase auth: %v", err)
			}
			userAdmin, err = auth.NewFirebaseUserAdmin(ctx, app)
			if err != nil {
				log.Fatalf("firebase auth: %v", err)
			}
		}
		objects = images.NewMemoryStore()

	default:
		log.Println("Running with the in-memory store; data will not persist")
		stores = memory.New().Stores()
		verifier, userAdmin = localAuth()
		objects = images.NewMemoryStore()
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis unreachable, caching disabled: %v", err)
			rdb = nil
		}
	}

	scheduler := bootstrap.NewScheduler(objects)
	scheduler.Start()
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		CORSOrigin:  cfg.Server.CORSOrigin,
		Stores:      stores,
		Verifier:    verifier,
		UserAdmin:   userAdmin,
		Objects:     objects,
		Cache:       cache.New(rdb),
	})

	log.Printf("listening on :%s (store driver: %s)", cfg.Server.Port, cfg.Store.Driver)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// localAuth is the credential-less fallback: a static token table fed
// from the environment, for development and tests.
func localAuth() (auth.TokenVerifier, auth.UserAdmin) {
	return &auth.StaticVerifier{Tokens: map[string]auth.Identity{}}, auth.StaticUserAdmin{}
}
