// Package search finds a chain of shared movies between two people with an
// uninformed breadth-first or depth-first traversal.
package search

import (
	"context"
	"time"

	"degrees/backend/internal/constants"
	"degrees/backend/internal/graph"
	apperrors "degrees/backend/pkg/errors"
	"degrees/backend/pkg/logger"
	"degrees/backend/pkg/metrics"

	"go.uber.org/zap"
)

// Neighborer yields the (movie, co-star) pairs reachable from a person.
// *graph.Graph satisfies it.
type Neighborer interface {
	Neighbors(personID string) []graph.Neighbor
}

// Step is one edge of a path: the movie shared with the previous person, and the person reached
type Step struct {
	MovieID  string `json:"movie_id"`
	PersonID string `json:"person_id"`
}

// Result is the outcome of one search. Found == false means the two people
// are in different components; that is a normal outcome, not an error.
type Result struct {
	Source     string        `json:"source"`
	Target     string        `json:"target"`
	Discipline Discipline    `json:"discipline"`
	Found      bool          `json:"found"`
	Path       []Step        `json:"path"`
	Explored   int           `json:"explored"`
	Duration   time.Duration `json:"duration_ns"`
}

// Degrees is the number of edges on the path, or -1 when no path was found
func (r *Result) Degrees() int {
	if !r.Found {
		return -1
	}
	return len(r.Path)
}

// Engine runs searches over a read-only graph. It keeps no state between
// calls, so one Engine may serve concurrent searches.
type Engine struct {
	graph  Neighborer
	logger *zap.Logger
}

// NewEngine creates a search engine over g
func NewEngine(g Neighborer) *Engine {
	return &Engine{
		graph:  g,
		logger: logger.Named("search"),
	}
}

// ShortestPath connects source to target using the frontier order of d.
//
// source and target must already be resolved person ids. With Breadth the
// first path found has the fewest edges; with Depth it is merely valid.
// The frontier and explored set live only for this call.
func (e *Engine) ShortestPath(ctx context.Context, source, target string, d Discipline) (*Result, error) {
	frontier, err := d.NewFrontier()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{Source: source, Target: target, Discipline: d, Path: []Step{}}

	if source == target {
		res.Found = true
		e.finish(res, start, "found")
		return res, nil
	}

	var t tree
	frontier.Add(t.root(source))
	explored := make(map[string]struct{})

	for expansions := 0; ; expansions++ {
		if frontier.Empty() {
			res.Explored = len(explored)
			e.finish(res, start, "not_found")
			return res, nil
		}

		if expansions%constants.ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				res.Explored = len(explored)
				e.finish(res, start, "cancelled")
				return nil, apperrors.NewContextCancelled("shortest path", err)
			}
		}

		node, err := frontier.Remove()
		if err != nil {
			return nil, err
		}

		if node.State == target {
			res.Found = true
			res.Path = t.pathTo(node)
			res.Explored = len(explored)
			e.finish(res, start, "found")
			return res, nil
		}

		explored[node.State] = struct{}{}

		for _, nb := range e.graph.Neighbors(node.State) {
			if _, done := explored[nb.PersonID]; done {
				continue
			}
			if frontier.ContainsState(nb.PersonID) {
				continue
			}
			frontier.Add(t.add(nb.PersonID, node.ID, nb.MovieID))
		}
	}
}

func (e *Engine) finish(res *Result, start time.Time, outcome string) {
	res.Duration = time.Since(start)
	discipline := res.Discipline.String()

	metrics.SearchesTotal.WithLabelValues(discipline, outcome).Inc()
	metrics.SearchExplored.WithLabelValues(discipline).Observe(float64(res.Explored))
	metrics.SearchDuration.WithLabelValues(discipline).Observe(res.Duration.Seconds())

	e.logger.Debug("Search finished",
		zap.String("source", res.Source),
		zap.String("target", res.Target),
		zap.String("discipline", discipline),
		zap.String("outcome", outcome),
		zap.Int("explored", res.Explored),
		zap.Int("degrees", res.Degrees()),
		zap.Duration("duration", res.Duration),
	)
}
