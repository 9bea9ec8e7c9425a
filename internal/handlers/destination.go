package handlers

import (
	"net/http"

	"github.com/withme-travel/withme/internal/models"
	"github.com/withme-travel/withme/internal/services"
)

type DestinationHandler struct {
	destinations services.DestinationServiceInterface
	ideas        services.IdeaServiceInterface
}

func NewDestinationHandler(destinations services.DestinationServiceInterface, ideas services.IdeaServiceInterface) *DestinationHandler {
	return &DestinationHandler{destinations: destinations, ideas: ideas}
}

type DestinationsResponse struct {
	Destinations []*models.Destination `json:"destinations"`
}

type DestinationResponse struct {
	Destination *models.Destination `json:"destination"`
}

type KeywordsResponse struct {
	DestinationID string   `json:"destination_id"`
	Keywords      []string `json:"keywords"`
}

func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit")
	if !ok || limit < 0 {
		writeError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	destinations, err := h.destinations.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, "list destinations", err)
		return
	}

	writeJSON(w, http.StatusOK, DestinationsResponse{Destinations: destinations})
}

func (h *DestinationHandler) Get(w http.ResponseWriter, r *http.Request) {
	dest, err := h.destinations.Lookup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get destination", err)
		return
	}

	writeJSON(w, http.StatusOK, DestinationResponse{Destination: dest})
}

func (h *DestinationHandler) Keywords(w http.ResponseWriter, r *http.Request) {
	dest, err := h.destinations.Lookup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get destination", err)
		return
	}

	keywords := h.ideas.KeywordsFor(r.Context(), dest)
	writeJSON(w, http.StatusOK, KeywordsResponse{DestinationID: dest.ID.String(), Keywords: keywords})
}
