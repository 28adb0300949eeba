// Package api exposes the pathfinding engine over HTTP and WebSocket.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/solve"
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	runner *solve.Runner
	loader *config.Loader
	log    *slog.Logger
}

// New builds the gin router with all routes registered.
func New(runner *solve.Runner, loader *config.Loader, log *slog.Logger) *gin.Engine {
	h := &Handler{runner: runner, loader: loader, log: log}

	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/v1")
	{
		v1.POST("/solve", h.solveHandler)
		v1.POST("/solve/cancel", h.cancelHandler)
		v1.GET("/solve/stream", h.streamHandler)
		v1.GET("/algorithms", h.algorithmsHandler)
	}
	r.GET("/healthz", h.healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// POST /v1/solve runs one or several algorithms over the board in the request
// body. With "algorithms" set, each runs against the same board in order and
// the results come back as a batch.
func (h *Handler) solveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})

		return
	}
	algos, err := req.algorithms()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	g, err := gridFromRequest(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	if err = h.runner.Swap(g); err != nil {
		h.fail(c, err)

		return
	}

	results := make([]SolveResponse, 0, len(algos))
	for _, algo := range algos {
		res, runErr := h.runner.Run(c.Request.Context(), algo)
		if runErr != nil {
			h.fail(c, runErr)

			return
		}
		h.record(res)
		results = append(results, toResponse(res))
	}

	if len(req.Algorithms) > 0 {
		c.JSON(http.StatusOK, BatchResponse{Results: results})

		return
	}
	c.JSON(http.StatusOK, results[0])
}

// POST /v1/solve/cancel requests that the in-flight run stop after its
// current step. Reports whether a run was active to receive the request.
func (h *Handler) cancelHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cancelled": h.runner.Cancel()})
}

// GET /v1/algorithms lists the supported algorithm names.
func (h *Handler) algorithmsHandler(c *gin.Context) {
	algos := solve.Algorithms()
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.String()
	}
	c.JSON(http.StatusOK, gin.H{"algorithms": names})
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fail maps engine errors onto HTTP statuses. A busy runner is a conflict;
// everything else surfacing from Run at this point is a bad board.
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, solve.ErrRunInFlight) {
		metrics.RunsRejected.Inc()
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *Handler) record(res *solve.Result) {
	outcome := "no_path"
	if res.Found {
		outcome = "found"
	}
	algo := res.Algorithm.String()
	metrics.SolvesTotal.WithLabelValues(algo, outcome).Inc()
	metrics.SolveDuration.WithLabelValues(algo).Observe(float64(res.Elapsed.Microseconds()) / 1000.0)
	metrics.CellsExplored.WithLabelValues(algo).Observe(float64(res.Explored))
	h.log.Info("solve finished",
		"algorithm", algo,
		"run_id", res.RunID,
		"found", res.Found,
		"explored", res.Explored,
		"elapsed", res.Elapsed,
	)
}
