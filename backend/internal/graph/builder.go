package graph

// Builder accumulates people, movies and memberships and produces a read-only Graph.
// It owns the bidirectional invariant: a person lists a movie exactly when the
// movie lists the person.
type Builder struct {
	people  map[string]*Person
	movies  map[string]*Movie
	names   *NameIndex
	links   int
	dropped int
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		people: make(map[string]*Person),
		movies: make(map[string]*Movie),
		names:  &NameIndex{},
	}
}

// AddPerson inserts or updates a person. Re-adding an id keeps its memberships.
func (b *Builder) AddPerson(id, name string, birth int) {
	if p, ok := b.people[id]; ok {
		b.names.Remove(p.Name, id)
		p.Name = name
		p.Birth = birth
		b.names.Add(name, id)
		return
	}
	b.people[id] = &Person{ID: id, Name: name, Birth: birth, Movies: make(map[string]struct{})}
	b.names.Add(name, id)
}

// AddMovie inserts or updates a movie. Re-adding an id keeps its cast.
func (b *Builder) AddMovie(id, title string, year int) {
	if m, ok := b.movies[id]; ok {
		m.Title = title
		m.Year = year
		return
	}
	b.movies[id] = &Movie{ID: id, Title: title, Year: year, Stars: make(map[string]struct{})}
}

// AddStar links a person to a movie in both directions. Rows naming an
// unknown person or movie are dropped and false is returned.
func (b *Builder) AddStar(personID, movieID string) bool {
	p, ok := b.people[personID]
	if !ok {
		b.dropped++
		return false
	}
	m, ok := b.movies[movieID]
	if !ok {
		b.dropped++
		return false
	}
	if _, dup := p.Movies[movieID]; !dup {
		b.links++
	}
	p.Movies[movieID] = struct{}{}
	m.Stars[personID] = struct{}{}
	return true
}

// Dropped returns how many star rows were discarded for unknown ids
func (b *Builder) Dropped() int {
	return b.dropped
}

// Build hands the accumulated tables to a Graph. The builder must not be used afterwards.
func (b *Builder) Build() *Graph {
	g := &Graph{
		people: b.people,
		movies: b.movies,
		names:  b.names,
		links:  b.links,
	}
	b.people, b.movies, b.names = nil, nil, nil
	return g
}
