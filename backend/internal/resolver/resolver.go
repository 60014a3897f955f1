// Package resolver turns a display name into a single person id.
//
// Names are not unique, so resolution is a tagged result rather than an id:
// the caller decides how to disambiguate (prompt, HTTP 409, ...). The resolver
// itself does no I/O.
package resolver

import (
	"sort"

	"degrees/backend/internal/graph"
	apperrors "degrees/backend/pkg/errors"
)

// Kind tags a Resolution
type Kind int

const (
	// NotFound means no person carries the name
	NotFound Kind = iota
	// Unique means exactly one person matched; PersonID is set
	Unique
	// Ambiguous means several people matched; Candidates lists them
	Ambiguous
)

func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	default:
		return "not_found"
	}
}

// MarshalText lets Kind appear as a string in JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Candidate describes one person sharing an ambiguous name
type Candidate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Birth int    `json:"birth,omitempty"`
}

// Resolution is the outcome of resolving a name
type Resolution struct {
	Kind       Kind        `json:"kind"`
	Query      string      `json:"query"`
	PersonID   string      `json:"person_id,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

// Directory is the part of the graph the resolver reads
type Directory interface {
	PeopleNamed(name string) []string
	SearchNames(prefix string, limit int) []string
	Person(id string) (*graph.Person, bool)
}

// Resolver resolves names against a read-only directory
type Resolver struct {
	dir Directory
}

// New creates a resolver
func New(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve looks the name up case-insensitively.
func (r *Resolver) Resolve(name string) Resolution {
	ids := r.dir.PeopleNamed(name)
	switch len(ids) {
	case 0:
		return Resolution{Kind: NotFound, Query: name}
	case 1:
		return Resolution{Kind: Unique, Query: name, PersonID: ids[0]}
	}
	candidates := r.candidates(ids)
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return Resolution{Kind: Ambiguous, Query: name, Candidates: candidates}
}

// Suggest returns up to limit people whose name starts with prefix, in name order
func (r *Resolver) Suggest(prefix string, limit int) []Candidate {
	return r.candidates(r.dir.SearchNames(prefix, limit))
}

func (r *Resolver) candidates(ids []string) []Candidate {
	out := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		p, ok := r.dir.Person(id)
		if !ok {
			continue
		}
		out = append(out, Candidate{ID: p.ID, Name: p.Name, Birth: p.Birth})
	}
	return out
}

// Choose settles an ambiguous resolution with the id the user picked.
// An id outside the candidate list yields NotFound. Unique and NotFound
// resolutions are returned unchanged.
func (res Resolution) Choose(id string) Resolution {
	if res.Kind != Ambiguous {
		return res
	}
	for _, c := range res.Candidates {
		if c.ID == id {
			return Resolution{Kind: Unique, Query: res.Query, PersonID: id}
		}
	}
	return Resolution{Kind: NotFound, Query: res.Query}
}

// Err converts a non-unique resolution into the matching typed error, nil for Unique
func (res Resolution) Err() error {
	switch res.Kind {
	case Unique:
		return nil
	case Ambiguous:
		ids := make([]string, len(res.Candidates))
		for i, c := range res.Candidates {
			ids[i] = c.ID
		}
		return apperrors.NewAmbiguousName(res.Query, ids)
	}
	return apperrors.NewPersonNotFound(res.Query)
}
