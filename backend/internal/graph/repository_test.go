package graph

import (
	"context"
	"os"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests require a running Neo4j instance.
// Set NEO4J_URI, NEO4J_USER, NEO4J_PASSWORD environment variables.
// They write to the Person and Movie labels and clear them afterwards.
func TestRepository_ImportAndLoad(t *testing.T) {
	ctx := context.Background()
	driver := createTestDriver(t)
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.Reset(ctx))
	defer func() { _ = repo.Reset(ctx) }()

	src := buildChain(t)
	require.NoError(t, repo.Import(ctx, src, 2))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, src.Stats(), loaded.Stats())

	p, ok := loaded.Person("a")
	require.True(t, ok)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 1970, p.Birth)

	b, _ := loaded.Person("b")
	assert.Equal(t, 0, b.Birth)
	assert.Equal(t, src.Neighbors("c"), loaded.Neighbors("c"))
}

func TestRepository_ImportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	driver := createTestDriver(t)
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	require.NoError(t, repo.Reset(ctx))
	defer func() { _ = repo.Reset(ctx) }()

	src := buildChain(t)
	require.NoError(t, repo.Import(ctx, src, 500))
	require.NoError(t, repo.Import(ctx, src, 500))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, src.Stats(), loaded.Stats())
}

func createTestDriver(t *testing.T) neo4j.DriverWithContext {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test")
	}
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("NEO4J_URI not set")
	}
	user := os.Getenv("NEO4J_USER")
	if user == "" {
		user = "neo4j"
	}
	password := os.Getenv("NEO4J_PASSWORD")

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	require.NoError(t, err)
	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		t.Skipf("Neo4j not reachable: %v", err)
	}
	return driver
}
