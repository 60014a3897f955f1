// Package degrees ties name resolution and path search together and renders
// results for people to read.
package degrees

import (
	"context"
	"fmt"
	"time"

	"degrees/backend/internal/graph"
	"degrees/backend/internal/resolver"
	"degrees/backend/internal/search"
	apperrors "degrees/backend/pkg/errors"
	"degrees/backend/pkg/logger"

	"go.uber.org/zap"
)

// PersonRef is the display form of a person on a path
type PersonRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MovieRef is the display form of a movie on a path
type MovieRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
}

// Hop is one numbered line of output: two people and the movie they share
type Hop struct {
	Index int       `json:"index"`
	From  PersonRef `json:"from"`
	To    PersonRef `json:"to"`
	Movie MovieRef  `json:"movie"`
}

// Connection is a search result enriched with names and titles
type Connection struct {
	Result *search.Result `json:"result"`
	Hops   []Hop          `json:"hops"`
}

// Service answers "how are these two people connected" against one loaded graph
type Service struct {
	graph    *graph.Graph
	resolver *resolver.Resolver
	engine   *search.Engine
	timeout  time.Duration
	logger   *zap.Logger
}

// NewService creates a service. timeout <= 0 disables the per-search deadline.
func NewService(g *graph.Graph, timeout time.Duration) *Service {
	return &Service{
		graph:    g,
		resolver: resolver.New(g),
		engine:   search.NewEngine(g),
		timeout:  timeout,
		logger:   logger.Named("degrees"),
	}
}

// Graph exposes the underlying read-only graph
func (s *Service) Graph() *graph.Graph {
	return s.graph
}

// Resolve maps a display name to a Resolution
func (s *Service) Resolve(name string) resolver.Resolution {
	return s.resolver.Resolve(name)
}

// Suggest completes a name prefix
func (s *Service) Suggest(prefix string, limit int) []resolver.Candidate {
	return s.resolver.Suggest(prefix, limit)
}

// Connect searches for a path between two resolved person ids
func (s *Service) Connect(ctx context.Context, sourceID, targetID string, d search.Discipline) (*Connection, error) {
	if _, ok := s.graph.Person(sourceID); !ok {
		return nil, apperrors.NewPersonNotFound(sourceID)
	}
	if _, ok := s.graph.Person(targetID); !ok {
		return nil, apperrors.NewPersonNotFound(targetID)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	res, err := s.engine.ShortestPath(ctx, sourceID, targetID, d)
	if err != nil {
		s.logger.Warn("Search failed",
			zap.String("source", sourceID),
			zap.String("target", targetID),
			zap.Error(err),
		)
		return nil, err
	}

	hops, err := s.hops(res)
	if err != nil {
		s.logger.Error("Search returned a broken path", zap.Error(err))
		return nil, err
	}
	return &Connection{Result: res, Hops: hops}, nil
}

// hops names every step of the path, checking that each one is a shared movie
func (s *Service) hops(res *search.Result) ([]Hop, error) {
	hops := make([]Hop, 0, len(res.Path))
	prev := s.personRef(res.Source)
	for i, step := range res.Path {
		if !s.graph.Connected(prev.ID, step.PersonID, step.MovieID) {
			return nil, apperrors.NewBaseError(apperrors.ErrorTypeGraph,
				fmt.Sprintf("step %d: %s and %s do not share movie %s", i+1, prev.ID, step.PersonID, step.MovieID), nil)
		}
		next := s.personRef(step.PersonID)
		hops = append(hops, Hop{
			Index: i + 1,
			From:  prev,
			To:    next,
			Movie: s.movieRef(step.MovieID),
		})
		prev = next
	}
	return hops, nil
}

func (s *Service) personRef(id string) PersonRef {
	if p, ok := s.graph.Person(id); ok {
		return PersonRef{ID: p.ID, Name: p.Name}
	}
	return PersonRef{ID: id}
}

func (s *Service) movieRef(id string) MovieRef {
	if m, ok := s.graph.Movie(id); ok {
		return MovieRef{ID: m.ID, Title: m.Title, Year: m.Year}
	}
	return MovieRef{ID: id}
}
