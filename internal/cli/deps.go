package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ranacirrusgo/policynav/internal/cache"
	"github.com/ranacirrusgo/policynav/internal/ingest"
	"github.com/ranacirrusgo/policynav/internal/model"
	"github.com/ranacirrusgo/policynav/internal/regapi"
	"github.com/ranacirrusgo/policynav/internal/search"
	"github.com/ranacirrusgo/policynav/internal/worker"
)

// newCache builds the layered API response cache, or nil when caching
// is disabled.
func newCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	return cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
}

func newLimiter(cfg *model.Config) *worker.Limiter {
	return worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
}

func newFedRegClient(cfg *model.Config, c cache.Cache, limiter *worker.Limiter) *regapi.FedRegClient {
	return regapi.NewFedRegClient(cfg.APIs.FederalRegisterBaseURL, cfg.HTTP.UserAgent, cfg.HTTP.Timeout, c, limiter)
}

func newCourtListenerClient(cfg *model.Config, c cache.Cache, limiter *worker.Limiter) *regapi.CourtListenerClient {
	return regapi.NewCourtListenerClient(cfg.APIs.CourtListenerBaseURL, cfg.APIs.CourtListenerToken, cfg.HTTP.UserAgent, cfg.HTTP.Timeout, c, limiter)
}

// openLibrary loads the knowledge base from the data directory.
func openLibrary(cfg *model.Config) (*ingest.Library, error) {
	lib, err := ingest.NewLibrary(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("open knowledge base: %w", err)
	}
	return lib, nil
}

// buildIndex embeds all library documents into a search store.
func buildIndex(ctx context.Context, cfg *model.Config, lib *ingest.Library) (*search.Store, error) {
	embedder, err := search.NewEmbedder(cfg.Embedding)
	if err != nil {
		return nil, err
	}

	store := search.NewStore(embedder)
	if err := store.Add(ctx, lib.All()...); err != nil {
		return nil, fmt.Errorf("index documents: %w", err)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Indexed %d documents with the %s embedder\n", store.Len(), embedder.Name())
	}

	return store, nil
}
