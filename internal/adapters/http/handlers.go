// Package httpadapter exposes the core over JSON. The 81-element board
// array is the only board shape on the wire; all serialization of puzzle,
// hint, and validation records happens here, never in the core.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/grade", h.handleGrade)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

func decodePost(w http.ResponseWriter, r *http.Request, into any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// statusFor distinguishes malformed requests from generation exhaustion
// and genuine server faults.
func statusFor(err error) int {
	switch {
	case errors.Is(err, board.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, generator.ErrExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ---- Generate ----

type generateReq struct {
	Difficulty  string `json:"difficulty,omitempty"`
	MaxAttempts int    `json:"maxAttempts,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	DurationMs int64          `json:"durationMs"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decodePost(w, r, &req) {
		return
	}
	diff := domain.Medium
	if req.Difficulty != "" {
		var err error
		if diff, err = domain.ParseDifficulty(req.Difficulty); err != nil {
			writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
			return
		}
	}
	p, st, err := h.UC.Generate(r.Context(), domain.GenerateOptions{
		Difficulty:  diff,
		MaxAttempts: req.MaxAttempts,
	})
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Puzzle: p, DurationMs: st.Duration.Milliseconds()})
}

// ---- Solve ----

type solveReq struct {
	Board board.Board `json:"board"`
}

type solveResp struct {
	Solved     bool        `json:"solved"`
	Board      board.Board `json:"board,omitempty"`
	Unique     *bool       `json:"unique,omitempty"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decodePost(w, r, &req) {
		return
	}
	out, solved, st, err := h.UC.Solve(r.Context(), req.Board)
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	resp := solveResp{Solved: solved, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes}
	if solved {
		resp.Board = out
		n, _, err := h.UC.CountSolutions(r.Context(), req.Board, 2)
		if err == nil {
			unique := n == 1
			resp.Unique = &unique
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Grade ----

type gradeReq struct {
	Board board.Board `json:"board"`
}

func (h *Handler) handleGrade(w http.ResponseWriter, r *http.Request) {
	var req gradeReq
	if !decodePost(w, r, &req) {
		return
	}
	grade, err := h.UC.Grade(r.Context(), req.Board)
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, grade)
}

// ---- Validate ----

type validateReq struct {
	Board board.Board `json:"board"`
	// When Cell and Value are both set, a single-cell legality check is
	// answered instead of a whole-board scan.
	Cell  *int `json:"cell,omitempty"`
	Value *int `json:"value,omitempty"`
}

type validateCellResp struct {
	Legal     bool  `json:"legal"`
	Conflicts []int `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if !decodePost(w, r, &req) {
		return
	}
	if req.Cell != nil && req.Value != nil {
		hits, err := h.UC.ValidateCell(r.Context(), req.Board, *req.Cell, *req.Value)
		if err != nil {
			writeJSON(w, statusFor(err), errResp{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, validateCellResp{Legal: len(hits) == 0, Conflicts: hits})
		return
	}
	res, err := h.UC.Validate(r.Context(), req.Board)
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- Hint ----

type hintReq struct {
	Board  board.Board `json:"board"`
	Reveal *bool       `json:"reveal,omitempty"` // default true
}

type hintResp struct {
	Found bool         `json:"found"`
	Hint  *domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if !decodePost(w, r, &req) {
		return
	}
	reveal := true
	if req.Reveal != nil {
		reveal = *req.Reveal
	}
	hint, found, err := h.UC.Hint(r.Context(), req.Board, domain.HintOptions{Reveal: reveal})
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	resp := hintResp{Found: found}
	if found {
		resp.Hint = &hint
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Save / Load / List ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if !decodePost(w, r, &p) {
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if !decodePost(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
