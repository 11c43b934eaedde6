package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/cookbook/internal/core/domain"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

// InvalidRecipeName is the error message of a /parse request that cleans to nothing.
const InvalidRecipeName = "Invalid recipe name"

type parseRequest struct {
	Input string `json:"input"`
}

type parseResponse struct {
	Msg string `json:"msg"`
}

type portionResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// SummaryResponse is the JSON body of GET /summary.
type SummaryResponse struct {
	Name        string            `json:"name"`
	CookTime    int               `json:"cookTime"`
	Ingredients []portionResponse `json:"ingredients"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	svc Service
}

func (h *handlers) parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cleaned, ok := h.svc.CleanName(req.Input)
	if !ok {
		writeError(w, http.StatusBadRequest, InvalidRecipeName)
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Msg: cleaned})
}

func (h *handlers) addEntry(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := decodeBody(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if raw == nil {
		writeError(w, http.StatusBadRequest, "entry must be a JSON object")
		return
	}

	if err := h.svc.AddEntry(r.Context(), domain.RawEntry(raw)); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *handlers) summary(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	summary, err := h.svc.Summarize(r.Context(), name)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	resp := SummaryResponse{
		Name:        summary.Name,
		CookTime:    summary.CookTime,
		Ingredients: make([]portionResponse, 0, len(summary.Ingredients)),
	}
	for _, p := range summary.Ingredients {
		resp.Ingredients = append(resp.Ingredients, portionResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps core failures to 400 and everything else to 500.
func statusFor(err error) int {
	for _, class := range []error{
		domain.ErrValidation,
		domain.ErrDuplicateName,
		domain.ErrNotFound,
		domain.ErrWrongType,
		domain.ErrSummaryFailed,
	} {
		if errors.Is(err, class) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// decodeBody reads exactly one JSON value. Numbers stay json.Number so integer checks are exact.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return errors.New("request body is not valid JSON: " + strings.TrimPrefix(err.Error(), "json: "))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must hold a single JSON value")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
