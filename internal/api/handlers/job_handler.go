package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/services"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

type JobResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PostJobRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description" binding:"required"`
}

func (h *JobHandler) List(c *gin.Context) {
	if _, ok := requireIdentity(c); !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]JobResponse, 0, len(rows))
	for _, j := range rows {
		out = append(out, JobResponse{ID: j.ID, Title: j.Title, Description: j.Description})
	}
	c.JSON(http.StatusOK, out)
}

func (h *JobHandler) Post(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "JobHandler.Post", err)
		return
	}

	if _, err := h.svc.Post(c.Request.Context(), identity, *req.Title, *req.Description); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, "Job posted successfully")
}
