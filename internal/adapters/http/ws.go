package httpadapter

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/solver"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveReq is one client message on the /api/live socket.
type liveReq struct {
	Op    string       `json:"op"` // "validate", "solve" or "count"
	Grid  string       `json:"grid,omitempty"`
	Board *domain.Grid `json:"board,omitempty"`
	Limit int          `json:"limit,omitempty"` // count cap, default 2
}

type liveResp struct {
	Op     string                   `json:"op"`
	Status string                   `json:"status,omitempty"`
	Issues []domain.ValidationIssue `json:"issues,omitempty"`
	Grid   string                   `json:"grid,omitempty"`
	Reason string                   `json:"reason,omitempty"`
	Count  int                      `json:"count,omitempty"`
	Error  string                   `json:"error,omitempty"`
}

// handleLive serves a persistent connection for interactive play: the UI
// re-validates the grid on every edit without per-request HTTP overhead.
func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return // Upgrade already wrote the error response
	}
	defer conn.Close()

	ctx := r.Context()
	for {
		var req liveReq
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		payload := gridPayload{Grid: req.Grid, Board: req.Board}
		g, err := payload.grid()
		if err != nil {
			if werr := conn.WriteJSON(liveResp{Op: req.Op, Error: err.Error()}); werr != nil {
				return
			}
			continue
		}

		var resp liveResp
		resp.Op = req.Op
		switch req.Op {
		case "solve":
			out, _, err := h.UC.Solve(ctx, &g)
			if err != nil {
				resp.Error = err.Error()
				var inv *solver.InvalidError
				switch {
				case errors.As(err, &inv):
					resp.Reason = "invalid"
					resp.Issues = inv.Issues
				case errors.Is(err, solver.ErrUnsolvable):
					resp.Reason = "unsolvable"
				}
			} else {
				resp.Grid = out.String()
			}
		case "count":
			limit := req.Limit
			if limit <= 0 {
				limit = 2
			}
			// Counting assumes the givens themselves are conflict-free,
			// so reject contradictory grids up front.
			if res, err := h.UC.Validate(ctx, &g); err != nil {
				resp.Error = err.Error()
			} else if res.Status == domain.StatusInvalid {
				resp.Reason = "invalid"
				resp.Issues = res.Issues
				resp.Error = "grid violates Sudoku constraints"
			} else if n, _, err := h.UC.CountSolutions(ctx, &g, limit); err != nil {
				resp.Error = err.Error()
			} else {
				resp.Count = n
			}
		default: // "validate"
			res, err := h.UC.Validate(ctx, &g)
			if err != nil {
				resp.Error = err.Error()
			} else {
				resp.Status = res.Status.String()
				resp.Issues = res.Issues
			}
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}
