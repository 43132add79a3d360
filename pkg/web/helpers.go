package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ParseID extracts and validates the integer ID from the request path.
// Returns the ID and a boolean indicating success.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int, bool) {
	pathValueID := chi.URLParam(r, "id")
	id, err := strconv.Atoi(pathValueID)
	if err != nil || id <= 0 {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid product ID: %s", pathValueID))
		return 0, false
	}
	return id, true
}
