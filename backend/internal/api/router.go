// Package api exposes name resolution and path search over HTTP.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"degrees/backend/internal/constants"
	"degrees/backend/internal/degrees"
	"degrees/backend/internal/resolver"
	"degrees/backend/internal/search"
	apperrors "degrees/backend/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type handler struct {
	svc        *degrees.Service
	discipline search.Discipline
	log        *zap.Logger
}

// NewRouter builds the gin engine with middleware and routes.
// discipline is used by /api/path when the request does not name one.
func NewRouter(svc *degrees.Service, discipline search.Discipline, log *zap.Logger) *gin.Engine {
	if discipline == "" {
		discipline = search.Breadth
	}
	h := &handler{svc: svc, discipline: discipline, log: log}

	router := gin.New()
	router.Use(requestID())
	router.Use(ginLogger(log))
	router.Use(countRequests())
	router.Use(gin.Recovery())

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/people", h.resolvePerson)
		api.GET("/people/search", h.suggest)
		api.GET("/people/:id", h.getPerson)
		api.GET("/path", h.findPath)
	}

	return router
}

func (h *handler) health(c *gin.Context) {
	stats := h.svc.Graph().Stats()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"people": stats.People,
		"movies": stats.Movies,
	})
}

// resolvePerson maps ?name= to an id: 200 unique, 404 unknown, 409 ambiguous
func (h *handler) resolvePerson(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	res := h.svc.Resolve(name)
	c.JSON(resolutionStatus(res), res)
}

func (h *handler) suggest(c *gin.Context) {
	prefix := c.Query("prefix")
	if prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prefix is required"})
		return
	}

	limit := constants.DefaultSuggestLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > constants.MaxSuggestLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, gin.H{"people": h.svc.Suggest(prefix, limit)})
}

func (h *handler) getPerson(c *gin.Context) {
	id := c.Param("id")
	g := h.svc.Graph()

	p, ok := g.Person(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.NewPersonNotFound(id).Message})
		return
	}

	movies := make([]degrees.MovieRef, 0, len(p.Movies))
	for _, mid := range p.MovieIDs() {
		if m, ok := g.Movie(mid); ok {
			movies = append(movies, degrees.MovieRef{ID: m.ID, Title: m.Title, Year: m.Year})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     p.ID,
		"name":   p.Name,
		"birth":  p.Birth,
		"movies": movies,
	})
}

// findPath resolves both endpoints, then searches.
// source_id/target_id bypass name resolution for callers that already disambiguated.
func (h *handler) findPath(c *gin.Context) {
	raw := c.DefaultQuery("discipline", h.discipline.String())
	d, err := search.ParseDiscipline(raw)
	if err != nil {
		var invalid *apperrors.ErrInvalidDiscipline
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sourceID, ok := h.endpoint(c, "source")
	if !ok {
		return
	}
	targetID, ok := h.endpoint(c, "target")
	if !ok {
		return
	}

	conn, err := h.svc.Connect(c.Request.Context(), sourceID, targetID, d)
	if err != nil {
		switch {
		case apperrors.IsErrorType(err, apperrors.ErrorTypeResolve):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsErrorType(err, apperrors.ErrorTypeContext):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search timed out"})
		default:
			h.log.Error("Path search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":      conn.Result.Found,
		"degrees":    conn.Result.Degrees(),
		"discipline": conn.Result.Discipline,
		"explored":   conn.Result.Explored,
		"summary":    conn.Summary(),
		"hops":       conn.Hops,
		"lines":      conn.Lines(),
	})
}

// endpoint reads "<side>_id" or resolves "<side>" by name, writing the error
// response itself when it cannot produce a single id.
func (h *handler) endpoint(c *gin.Context, side string) (string, bool) {
	if id := c.Query(side + "_id"); id != "" {
		return id, true
	}

	name := c.Query(side)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": side + " or " + side + "_id is required"})
		return "", false
	}

	res := h.svc.Resolve(name)
	if res.Kind != resolver.Unique {
		c.JSON(resolutionStatus(res), gin.H{
			"error":      res.Err().Error(),
			"side":       side,
			"resolution": res,
		})
		return "", false
	}
	return res.PersonID, true
}

func resolutionStatus(res resolver.Resolution) int {
	switch res.Kind {
	case resolver.Unique:
		return http.StatusOK
	case resolver.Ambiguous:
		return http.StatusConflict
	}
	return http.StatusNotFound
}
