package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/domain/appointment"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httpresp"
)

// RejectedAppointmentsHandler serves the immutable archive: list and
// administrative purge only. Archive records are never edited.
type RejectedAppointmentsHandler struct {
	repo domain.Repository
}

func NewRejectedAppointmentsHandler(repo domain.Repository) *RejectedAppointmentsHandler {
	return &RejectedAppointmentsHandler{repo: repo}
}

func (h *RejectedAppointmentsHandler) List(c *gin.Context) {
	out, err := h.repo.ListRejected(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list", "Failed to list rejected appointments.")
		return
	}

	httpresp.List(c, out)
}

func (h *RejectedAppointmentsHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ra, err := h.repo.GetRejected(c.Request.Context(), id)
	if err != nil {
		writeBusiness(c, err, "failed_to_get", "Failed to load rejected appointment.")
		return
	}

	httpresp.OK(c, ra)
}

func (h *RejectedAppointmentsHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteRejected(c.Request.Context(), id); err != nil {
		writeBusiness(c, err, "failed_to_delete", "Failed to purge rejected appointment.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
