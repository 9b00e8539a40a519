package main

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/fastlog/internal/config"
	"github.com/akyairhashvil/fastlog/internal/database"
	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/akyairhashvil/fastlog/internal/util"
)

var _ fasting.SessionLog = (*database.Database)(nil)

// openSessionLog builds the log backend. Both live only as long as the process.
func openSessionLog(ctx context.Context, kind string) (fasting.SessionLog, func(), error) {
	switch kind {
	case config.StoreMemory:
		return fasting.NewMemoryLog(), func() {}, nil
	case config.StoreSQLite:
		db, err := database.Open(ctx, database.MemoryDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open session store: %w", err)
		}
		return db, func() {
			if err := db.Close(); err != nil {
				util.LogError("close session store", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStore, kind)
	}
}
