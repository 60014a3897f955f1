package graph

import "sort"

// ============================================================================
// Collaboration Graph Types
// ============================================================================

// Person is an actor or actress. Birth is 0 when the year is unknown.
type Person struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Birth  int                 `json:"birth,omitempty"`
	Movies map[string]struct{} `json:"-"`
}

// Movie is a work whose cast links people together.
type Movie struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Year  int                 `json:"year,omitempty"`
	Stars map[string]struct{} `json:"-"`
}

// Neighbor is one candidate edge out of a person: a co-star and the movie they share.
type Neighbor struct {
	MovieID  string `json:"movie_id"`
	PersonID string `json:"person_id"`
}

// Stats summarises the size of a loaded graph
type Stats struct {
	People      int `json:"people"`
	Movies      int `json:"movies"`
	Memberships int `json:"memberships"`
	Names       int `json:"names"`
}

// MovieIDs returns the movies the person appears in, sorted.
func (p *Person) MovieIDs() []string {
	return sortedKeys(p.Movies)
}

// InMovie reports whether the person is in the cast of movieID.
func (p *Person) InMovie(movieID string) bool {
	_, ok := p.Movies[movieID]
	return ok
}

// StarIDs returns the cast of the movie, sorted.
func (m *Movie) StarIDs() []string {
	return sortedKeys(m.Stars)
}

// HasStar reports whether personID is in the cast.
func (m *Movie) HasStar(personID string) bool {
	_, ok := m.Stars[personID]
	return ok
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
