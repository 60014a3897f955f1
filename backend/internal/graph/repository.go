package graph

import (
	"context"
	"fmt"

	apperrors "degrees/backend/pkg/errors"
	"degrees/backend/pkg/logger"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Repository reads and writes the collaboration graph in Neo4j.
//
// Stored shape: (:Person {id, name, birth})-[:STARRED_IN]->(:Movie {id, title, year})
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Named("graph"),
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close() error {
	return r.driver.Close(context.Background())
}

const (
	queryLoadPeople = `
		MATCH (p:Person)
		RETURN p.id AS id, p.name AS name, p.birth AS birth
	`
	queryLoadMovies = `
		MATCH (m:Movie)
		RETURN m.id AS id, m.title AS title, m.year AS year
	`
	queryLoadStars = `
		MATCH (p:Person)-[:STARRED_IN]->(m:Movie)
		RETURN p.id AS person_id, m.id AS movie_id
	`
)

// Load reads the whole collaboration graph into memory. Rows go through a
// Builder, so dangling relationships are dropped the same way the CSV loader drops them.
func (r *Repository) Load(ctx context.Context) (*Graph, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	b := NewBuilder()

	err := r.each(ctx, session, queryLoadPeople, func(rec *neo4j.Record) {
		id := getStringFromRecord(rec, "id")
		if id == "" {
			return
		}
		b.AddPerson(id, getStringFromRecord(rec, "name"), getIntFromRecord(rec, "birth"))
	})
	if err != nil {
		return nil, err
	}

	err = r.each(ctx, session, queryLoadMovies, func(rec *neo4j.Record) {
		id := getStringFromRecord(rec, "id")
		if id == "" {
			return
		}
		b.AddMovie(id, getStringFromRecord(rec, "title"), getIntFromRecord(rec, "year"))
	})
	if err != nil {
		return nil, err
	}

	err = r.each(ctx, session, queryLoadStars, func(rec *neo4j.Record) {
		b.AddStar(getStringFromRecord(rec, "person_id"), getStringFromRecord(rec, "movie_id"))
	})
	if err != nil {
		return nil, err
	}

	dropped := b.Dropped()
	g := b.Build()
	stats := g.Stats()
	r.logger.Info("Graph loaded from Neo4j",
		zap.Int("people", stats.People),
		zap.Int("movies", stats.Movies),
		zap.Int("memberships", stats.Memberships),
		zap.Int("dropped", dropped),
	)
	return g, nil
}

func (r *Repository) each(ctx context.Context, session neo4j.SessionWithContext, query string, fn func(*neo4j.Record)) error {
	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return apperrors.NewGraphQueryFailed(query, err)
	}
	for result.Next(ctx) {
		fn(result.Record())
	}
	if err := result.Err(); err != nil {
		return apperrors.NewGraphQueryFailed(query, err)
	}
	return nil
}

// EnsureSchema creates the uniqueness constraints and name index. Safe to run repeatedly.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	statements := []string{
		"CREATE CONSTRAINT person_id_unique IF NOT EXISTS FOR (p:Person) REQUIRE p.id IS UNIQUE",
		"CREATE CONSTRAINT movie_id_unique IF NOT EXISTS FOR (m:Movie) REQUIRE m.id IS UNIQUE",
		"CREATE INDEX person_name IF NOT EXISTS FOR (p:Person) ON (p.name)",
	}

	for _, stmt := range statements {
		if _, err := session.Run(ctx, stmt, nil); err != nil {
			return apperrors.NewGraphQueryFailed(stmt, err)
		}
	}
	return nil
}

// Reset deletes every Person and Movie node along with their relationships
func (r *Repository) Reset(ctx context.Context) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MATCH (n)
		WHERE n:Person OR n:Movie
		DETACH DELETE n
	`
	if _, err := session.Run(ctx, query, nil); err != nil {
		return apperrors.NewGraphQueryFailed(query, err)
	}

	r.logger.Info("Collaboration graph cleared")
	return nil
}

const (
	queryImportPeople = `
		UNWIND $rows AS row
		MERGE (p:Person {id: row.id})
		SET p.name = row.name, p.birth = row.birth
	`
	queryImportMovies = `
		UNWIND $rows AS row
		MERGE (m:Movie {id: row.id})
		SET m.title = row.title, m.year = row.year
	`
	queryImportStars = `
		UNWIND $rows AS row
		MATCH (p:Person {id: row.person_id})
		MATCH (m:Movie {id: row.movie_id})
		MERGE (p)-[:STARRED_IN]->(m)
	`
)

// Import writes g to Neo4j with batched UNWIND statements of batchSize rows.
// Existing nodes with the same ids are updated in place.
func (r *Repository) Import(ctx context.Context, g *Graph, batchSize int) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	people := make([]map[string]interface{}, 0, len(g.people))
	for _, id := range g.PersonIDs() {
		p := g.people[id]
		people = append(people, map[string]interface{}{"id": p.ID, "name": p.Name, "birth": p.Birth})
	}

	movies := make([]map[string]interface{}, 0, len(g.movies))
	var stars []map[string]interface{}
	for _, id := range g.MovieIDs() {
		m := g.movies[id]
		movies = append(movies, map[string]interface{}{"id": m.ID, "title": m.Title, "year": m.Year})
		for _, starID := range m.StarIDs() {
			stars = append(stars, map[string]interface{}{"person_id": starID, "movie_id": m.ID})
		}
	}

	steps := []struct {
		name  string
		query string
		rows  []map[string]interface{}
	}{
		{"people", queryImportPeople, people},
		{"movies", queryImportMovies, movies},
		{"stars", queryImportStars, stars},
	}

	for _, step := range steps {
		for _, batch := range chunk(step.rows, batchSize) {
			if err := ctx.Err(); err != nil {
				return apperrors.NewContextCancelled("import "+step.name, err)
			}
			if _, err := session.Run(ctx, step.query, map[string]interface{}{"rows": batch}); err != nil {
				return apperrors.NewGraphQueryFailed(step.query, fmt.Errorf("%s batch: %w", step.name, err))
			}
		}
		r.logger.Info("Imported rows", zap.String("kind", step.name), zap.Int("count", len(step.rows)))
	}

	return nil
}
