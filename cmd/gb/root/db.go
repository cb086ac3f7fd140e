package root

import (
	"context"

	"goalboard/internal/config"
	"goalboard/internal/engine"
	"goalboard/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	kv := storage.NewSQLiteKV(db)
	svc, err := engine.NewService(ctx, kv, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	// The config dark_mode value only seeds a fresh install; once the flag
	// has been stored, the stored value wins.
	if cfg.DarkMode {
		if _, ok, err := kv.Get(ctx, storage.KeyDarkMode); err == nil && !ok {
			svc.SetDarkMode(ctx, true)
		}
	}
	return svc, cleanup, nil
}
