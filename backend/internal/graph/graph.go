package graph

import (
	"sort"
	"strings"
)

// Graph is the loaded collaboration graph. Adjacency between people is never
// stored; Neighbors derives it from the membership tables on demand.
//
// A Graph is immutable once built, so any number of searches may read it
// concurrently without locking.
type Graph struct {
	people map[string]*Person
	movies map[string]*Movie
	names  *NameIndex
	links  int
}

// Person returns the person with the given id
func (g *Graph) Person(id string) (*Person, bool) {
	p, ok := g.people[id]
	return p, ok
}

// Movie returns the movie with the given id
func (g *Graph) Movie(id string) (*Movie, bool) {
	m, ok := g.movies[id]
	return m, ok
}

// PeopleNamed returns the ids of everyone whose name matches, ignoring case
func (g *Graph) PeopleNamed(name string) []string {
	return g.names.Lookup(name)
}

// SearchNames returns up to limit person ids whose name starts with prefix
func (g *Graph) SearchNames(prefix string, limit int) []string {
	if strings.TrimSpace(prefix) == "" {
		return nil
	}
	return g.names.Prefix(prefix, limit)
}

// Neighbors returns every (movie, co-star) pair for the person, sorted by
// movie id then person id. The person appears as their own co-star; callers
// filter on explored state.
func (g *Graph) Neighbors(personID string) []Neighbor {
	p, ok := g.people[personID]
	if !ok {
		return nil
	}
	var out []Neighbor
	for _, movieID := range p.MovieIDs() {
		m := g.movies[movieID]
		for _, starID := range m.StarIDs() {
			out = append(out, Neighbor{MovieID: movieID, PersonID: starID})
		}
	}
	return out
}

// Connected reports whether a and b both appear in movieID
func (g *Graph) Connected(a, b, movieID string) bool {
	pa, ok := g.people[a]
	if !ok {
		return false
	}
	pb, ok := g.people[b]
	if !ok {
		return false
	}
	return pa.InMovie(movieID) && pb.InMovie(movieID)
}

// PersonIDs returns all person ids, sorted
func (g *Graph) PersonIDs() []string {
	ids := make([]string, 0, len(g.people))
	for id := range g.people {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MovieIDs returns all movie ids, sorted
func (g *Graph) MovieIDs() []string {
	ids := make([]string, 0, len(g.movies))
	for id := range g.movies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Stats returns entity counts
func (g *Graph) Stats() Stats {
	return Stats{
		People:      len(g.people),
		Movies:      len(g.movies),
		Memberships: g.links,
		Names:       g.names.Len(),
	}
}
