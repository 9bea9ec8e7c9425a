package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/withme-travel/withme/internal/ideas"
	"github.com/withme-travel/withme/internal/models"
	"github.com/withme-travel/withme/internal/services"
)

type IdeaHandler struct {
	destinations services.DestinationServiceInterface
	ideas        services.IdeaServiceInterface
}

func NewIdeaHandler(destinations services.DestinationServiceInterface, ideas services.IdeaServiceInterface) *IdeaHandler {
	return &IdeaHandler{destinations: destinations, ideas: ideas}
}

type GenerateIdeasRequest struct {
	Count      int     `json:"count"`
	TemplateID *string `json:"template_id"`
	Save       bool    `json:"save"`
}

type PreviewIdeasRequest struct {
	Destination string               `json:"destination"`
	Description string               `json:"description"`
	Items       []ideas.TemplateItem `json:"items"`
	Count       int                  `json:"count"`
}

type SavedIdeasResponse struct {
	Ideas []*models.ActivityIdea `json:"ideas"`
}

// Generate handles POST /api/destinations/{id}/ideas. The body is optional;
// without one the configured default count is generated and nothing is saved.
func (h *IdeaHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateIdeasRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := services.GenerateParams{Count: req.Count, Save: req.Save}
	if req.TemplateID != nil && strings.TrimSpace(*req.TemplateID) != "" {
		templateID, err := uuid.Parse(strings.TrimSpace(*req.TemplateID))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid template ID")
			return
		}
		params.TemplateID = &templateID
	}

	dest, err := h.destinations.Lookup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get destination", err)
		return
	}
	params.DestinationID = dest.ID
	params.Destination = dest

	batch, err := h.ideas.Generate(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, "generate ideas", err)
		return
	}

	status := http.StatusOK
	if req.Save {
		status = http.StatusCreated
	}
	writeJSON(w, status, batch)
}

func (h *IdeaHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	dest, err := h.destinations.Lookup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get destination", err)
		return
	}

	saved, err := h.ideas.ListSaved(r.Context(), dest.ID)
	if err != nil {
		writeServiceError(w, r, "list saved ideas", err)
		return
	}

	writeJSON(w, http.StatusOK, SavedIdeasResponse{Ideas: saved})
}

func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	if err := h.ideas.DeleteSaved(r.Context(), id); err != nil {
		writeServiceError(w, r, "delete idea", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Preview generates ideas from free text without a stored destination.
func (h *IdeaHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewIdeasRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	batch, err := h.ideas.Preview(r.Context(), services.PreviewParams{
		DestinationName: strings.TrimSpace(req.Destination),
		Description:     req.Description,
		Items:           req.Items,
		Count:           req.Count,
	})
	if err != nil {
		writeServiceError(w, r, "preview ideas", err)
		return
	}

	writeJSON(w, http.StatusOK, batch)
}

func (h *IdeaHandler) Taxonomy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ideas.Taxonomy())
}
