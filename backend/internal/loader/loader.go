// Package loader reads the people/movies/stars CSV dataset into a graph.Graph.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"degrees/backend/internal/constants"
	"degrees/backend/internal/graph"
	apperrors "degrees/backend/pkg/errors"
	"degrees/backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is a loaded graph plus bookkeeping about rows that were skipped
type Result struct {
	Graph   *graph.Graph
	Dropped int
}

type personRow struct {
	id, name string
	birth    int
}

type movieRow struct {
	id, title string
	year      int
}

// LoadDirectory reads people.csv, movies.csv and stars.csv from dir.
//
// People and movies are parsed concurrently; stars are applied afterwards since
// they reference both. Star rows naming an unknown person or movie are dropped
// silently and only counted.
func LoadDirectory(ctx context.Context, dir string) (*Result, error) {
	log := logger.Named("loader")
	log.Info("Loading data", zap.String("dir", dir))

	var (
		people []personRow
		movies []movieRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := readPeople(gctx, filepath.Join(dir, constants.PeopleFile))
		people = rows
		return err
	})
	g.Go(func() error {
		rows, err := readMovies(gctx, filepath.Join(dir, constants.MoviesFile))
		movies = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := graph.NewBuilder()
	for _, p := range people {
		b.AddPerson(p.id, p.name, p.birth)
	}
	for _, m := range movies {
		b.AddMovie(m.id, m.title, m.year)
	}

	starsPath := filepath.Join(dir, constants.StarsFile)
	err := readTable(ctx, starsPath, []string{"person_id", "movie_id"}, func(cols []string) {
		b.AddStar(cols[0], cols[1])
	})
	if err != nil {
		return nil, err
	}

	dropped := b.Dropped()
	res := &Result{Graph: b.Build(), Dropped: dropped}
	stats := res.Graph.Stats()
	log.Info("Data loaded",
		zap.Int("people", stats.People),
		zap.Int("movies", stats.Movies),
		zap.Int("memberships", stats.Memberships),
	)
	if dropped > 0 {
		log.Debug("Dropped star rows with unknown ids", zap.Int("count", dropped))
	}
	return res, nil
}

func readPeople(ctx context.Context, path string) ([]personRow, error) {
	var rows []personRow
	err := readTable(ctx, path, []string{"id", "name", "birth"}, func(cols []string) {
		rows = append(rows, personRow{id: cols[0], name: cols[1], birth: graph.ParseYear(cols[2])})
	})
	return rows, err
}

func readMovies(ctx context.Context, path string) ([]movieRow, error) {
	var rows []movieRow
	err := readTable(ctx, path, []string{"id", "title", "year"}, func(cols []string) {
		rows = append(rows, movieRow{id: cols[0], title: cols[1], year: graph.ParseYear(cols[2])})
	})
	return rows, err
}

// readTable streams a CSV file with a header row, calling fn with the
// requested columns in the order given. Rows with an empty first column are skipped.
func readTable(ctx context.Context, path string, columns []string, fn func(cols []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return apperrors.NewDataLoadFailed(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return apperrors.NewDataLoadFailed(path, fmt.Errorf("reading header: %w", err))
	}

	positions := make([]int, len(columns))
	for i, name := range columns {
		positions[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), name) {
				positions[i] = j
				break
			}
		}
		if positions[i] < 0 {
			return apperrors.NewDataLoadFailed(path, fmt.Errorf("missing column %q", name))
		}
	}

	cols := make([]string, len(columns))
	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return apperrors.NewContextCancelled("load "+filepath.Base(path), err)
			}
		}
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return apperrors.NewDataLoadFailed(path, fmt.Errorf("line %d: %w", line, err))
		}
		for i, pos := range positions {
			if pos < len(record) {
				cols[i] = strings.TrimSpace(record[pos])
			} else {
				cols[i] = ""
			}
		}
		if cols[0] == "" {
			continue
		}
		fn(cols)
	}
}
