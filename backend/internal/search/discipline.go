package search

import (
	"strings"

	"degrees/backend/internal/constants"
	apperrors "degrees/backend/pkg/errors"
)

// Discipline selects the frontier ordering and therefore the traversal.
type Discipline string

const (
	// Breadth removes nodes first-in-first-out; the returned path is a shortest one.
	Breadth Discipline = constants.DisciplineBreadth
	// Depth removes nodes last-in-first-out; the returned path is valid but may be long.
	Depth Discipline = constants.DisciplineDepth
)

// ParseDiscipline maps user input to a Discipline. Anything other than
// "breadth" or "depth" (case and surrounding space ignored) is rejected.
func ParseDiscipline(s string) (Discipline, error) {
	switch Discipline(strings.ToLower(strings.TrimSpace(s))) {
	case Breadth:
		return Breadth, nil
	case Depth:
		return Depth, nil
	}
	return "", apperrors.NewInvalidDiscipline(s)
}

// NewFrontier returns an empty frontier with this discipline's removal order
func (d Discipline) NewFrontier() (Frontier, error) {
	switch d {
	case Breadth:
		return NewQueueFrontier(), nil
	case Depth:
		return NewStackFrontier(), nil
	}
	return nil, apperrors.NewInvalidDiscipline(string(d))
}

func (d Discipline) String() string {
	return string(d)
}
