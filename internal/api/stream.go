package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/solve"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// traceFrame is one animation step: a cell the algorithm visited, or a cell
// of the reconstructed path.
type traceFrame struct {
	Kind string `json:"kind"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// resultFrame terminates the stream with the full run report.
type resultFrame struct {
	Kind   string        `json:"kind"`
	Result SolveResponse `json:"result"`
}

type errorFrame struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// GET /v1/solve/stream upgrades to WebSocket, reads one SolveRequest, and
// streams the run cell by cell: "visited" frames in exploration order, then
// "path" frames start to end, then one "result" frame. step_delay_ms from the
// config paces the frames. Closing the socket cancels the run.
func (h *Handler) streamHandler(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", "error", err)

		return
	}
	defer ws.Close()
	metrics.StreamClients.Inc()
	defer metrics.StreamClients.Dec()

	var req SolveRequest
	if err = ws.ReadJSON(&req); err != nil {
		h.log.Info("stream client disconnected before request", "error", err)

		return
	}
	algos, err := req.algorithms()
	if err == nil && len(algos) != 1 {
		_ = ws.WriteJSON(errorFrame{Kind: "error", Error: "stream runs exactly one algorithm"})

		return
	}
	if err != nil {
		_ = ws.WriteJSON(errorFrame{Kind: "error", Error: err.Error()})

		return
	}
	g, err := gridFromRequest(&req)
	if err != nil {
		_ = ws.WriteJSON(errorFrame{Kind: "error", Error: err.Error()})

		return
	}
	if err = h.runner.Swap(g); err != nil {
		h.writeFailure(ws, err)

		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// a client that closes the socket mid-run cancels the search
	go func() {
		for {
			if _, _, readErr := ws.ReadMessage(); readErr != nil {
				cancel()

				return
			}
		}
	}()

	delay := time.Duration(h.loader.Config().StepDelayMs) * time.Millisecond
	var writeErr error
	res, err := h.runner.Run(ctx, algos[0], solve.WithOnEvent(func(ev solve.Event) {
		if writeErr != nil {
			return
		}
		writeErr = ws.WriteJSON(traceFrame{Kind: ev.Kind.String(), Row: ev.Coord.Row, Col: ev.Coord.Col})
		if writeErr != nil {
			cancel()

			return
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}))
	if err != nil {
		h.writeFailure(ws, err)

		return
	}
	h.record(res)
	_ = ws.WriteJSON(resultFrame{Kind: "result", Result: toResponse(res)})
}

func (h *Handler) writeFailure(ws *websocket.Conn, err error) {
	h.log.Info("streamed run failed", "error", err)
	_ = ws.WriteJSON(errorFrame{Kind: "error", Error: err.Error()})
}
