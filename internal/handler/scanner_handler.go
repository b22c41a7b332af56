package handler

import (
	"errors"
	"net/http"

	"hospital-prototype-backend/internal/service"
	"hospital-prototype-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ScannerHandler struct {
	scannerService *service.ScannerService
}

func NewScannerHandler(scannerService *service.ScannerService) *ScannerHandler {
	return &ScannerHandler{
		scannerService: scannerService,
	}
}

// RecordScan records a check-in event for a patient (admin only)
func (h *ScannerHandler) RecordScan(c *gin.Context) {
	var req service.RecordScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Validation error", err.Error())
		return
	}

	event, patient, err := h.scannerService.RecordScan(c.Param("serialNumber"), &req)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrPatientNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Patient not found")
		case errors.As(err, &validationErr):
			utils.ValidationErrorResponse(c, "Validation error", validationErr.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to record scanner event")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Scanner event recorded successfully",
		"data":    event,
		"patient": patient,
	})
}

// ListScans retrieves a patient's scan events, most recent first
func (h *ScannerHandler) ListScans(c *gin.Context) {
	events, patient, err := h.scannerService.ListScans(c.Param("serialNumber"))
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch scanner events")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    events,
		"count":   len(events),
		"patient": patient,
	})
}
