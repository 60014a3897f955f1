package constants

// Dataset constants
const (
	// DefaultDataDir is the CSV directory used when none is given
	DefaultDataDir = "large"

	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// Data source names
const (
	DataSourceCSV   = "csv"
	DataSourceNeo4j = "neo4j"
)

// Traversal discipline names, as typed by users
const (
	DisciplineBreadth = "breadth"
	DisciplineDepth   = "depth"
)

// Search execution constants
const (
	// ContextCheckInterval is how many expansions run between context checks
	ContextCheckInterval = 256
)

// Neo4j constants
const (
	// DefaultImportBatchSize is the number of rows sent per UNWIND statement
	DefaultImportBatchSize = 500
)

// API constants
const (
	// DefaultSuggestLimit caps name completion results
	DefaultSuggestLimit = 10
	// MaxSuggestLimit is the largest limit a client may request
	MaxSuggestLimit = 100
)
