// Package dataset loads the collaboration graph from whichever source the configuration names.
package dataset

import (
	"context"

	"degrees/backend/internal/graph"
	"degrees/backend/internal/loader"
	"degrees/backend/pkg/config"
	apperrors "degrees/backend/pkg/errors"
	"degrees/backend/pkg/metrics"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Load reads the graph from CSV files in dir, or from Neo4j when the config says so.
// dir overrides cfg.DataDir when non-empty and is rejected for the Neo4j source.
func Load(ctx context.Context, cfg *config.Config, dir string) (*graph.Graph, error) {
	var (
		g   *graph.Graph
		err error
	)
	if cfg.UsesNeo4j() {
		if dir != "" {
			return nil, apperrors.NewConfigValidationFailed("directory",
				"a CSV directory cannot be combined with DATA_SOURCE=neo4j")
		}
		g, err = loadNeo4j(ctx, cfg)
	} else {
		if dir == "" {
			dir = cfg.DataDir
		}
		var res *loader.Result
		res, err = loader.LoadDirectory(ctx, dir)
		if res != nil {
			g = res.Graph
		}
	}
	if err != nil {
		return nil, err
	}

	stats := g.Stats()
	metrics.GraphSize.WithLabelValues("people").Set(float64(stats.People))
	metrics.GraphSize.WithLabelValues("movies").Set(float64(stats.Movies))
	metrics.GraphSize.WithLabelValues("memberships").Set(float64(stats.Memberships))
	return g, nil
}

func loadNeo4j(ctx context.Context, cfg *config.Config) (*graph.Graph, error) {
	driver, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	repo := graph.NewRepository(driver)
	defer repo.Close()

	return repo.Load(ctx)
}

// Connect opens and verifies a Neo4j driver from the config
func Connect(ctx context.Context, cfg *config.Config) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		return nil, apperrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, apperrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)
	}
	return driver, nil
}
