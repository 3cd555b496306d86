// Package pg bootstraps the PostgreSQL layer for CortexCloud services:
// an env-configured pgx/v5 connection pool with startup retry, goose
// schema migrations, a health check closure, and error helpers shared by
// the store implementations in this module.
//
// Typical startup:
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    // fail startup
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    // fail startup
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    // fail startup
//	}
package pg
