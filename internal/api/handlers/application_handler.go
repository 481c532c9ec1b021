package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/services"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type ApplyRequest struct {
	JobID *uint `json:"job_id" binding:"required"`
}

type ApplicantsQuery struct {
	JobID *uint `form:"job_id" binding:"required"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "ApplicationHandler.Apply", err)
		return
	}

	if _, err := h.svc.Apply(c.Request.Context(), identity, *req.JobID); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, "Applied successfully")
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	jobs, err := h.svc.ListApplications(c.Request.Context(), identity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var q ApplicantsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c, "ApplicationHandler.ListApplicants", err)
		return
	}

	emails, err := h.svc.ListApplicants(c.Request.Context(), identity, *q.JobID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, emails)
}
