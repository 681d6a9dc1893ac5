package tabulator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
)

type contextKey int

const contextKeyRows contextKey = iota

// ContextWithRows attaches the requested row count to a rendering cycle's
// context so the value function can read it.
func ContextWithRows(ctx context.Context, rows int) context.Context {
	return context.WithValue(ctx, contextKeyRows, rows)
}

// RowsFromContext returns the row count the cycle was invoked with, if any.
func RowsFromContext(ctx context.Context) (int, bool) {
	rows, ok := ctx.Value(contextKeyRows).(int)
	return rows, ok
}

// Handler exposes a binding as an HTTP endpoint, one rendering cycle per
// request: 200 with the payload when the value resolves to a frame, 204 when
// there is nothing to render yet, 500 with a JSON error body when the value
// function fails or produces the wrong type.
func Handler(binding *Binding, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		ctx := r.Context()
		if raw := r.URL.Query().Get("rows"); raw != "" {
			rows, err := strconv.Atoi(raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid rows parameter")
				return
			}
			ctx = ContextWithRows(ctx, rows)
		}

		payload, err := binding.Resolve(ctx)
		if err != nil {
			var typeErr *TypeError
			if errors.As(err, &typeErr) {
				logger.Error("Output value has wrong type", "got", typeErr.Got)
			} else {
				logger.Error("Failed to resolve table output", "error", err)
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if payload == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondWithJSON(w, http.StatusOK, payload)
	})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Error("Failed to encode JSON response", "error", err)
		}
	}
}
