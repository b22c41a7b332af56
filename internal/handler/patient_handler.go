package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-prototype-backend/internal/service"
	"hospital-prototype-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// actorFromContext reads the authenticated identity injected by the auth
// middleware. Both values are zero when the route is unauthenticated.
func actorFromContext(c *gin.Context) (*uint, string) {
	var id *uint
	if v, ok := c.Get("userID"); ok {
		if userID, ok := v.(uint); ok {
			id = &userID
		}
	}
	actor := ""
	if v, ok := c.Get("email"); ok {
		actor, _ = v.(string)
	}
	return id, actor
}

// CreatePatient creates a new patient record (admin only)
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req service.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Validation error", err.Error())
		return
	}

	actorID, actor := actorFromContext(c)

	patient, err := h.patientService.Create(&req, actorID, actor)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrDuplicateSerial):
			utils.ErrorResponse(c, http.StatusBadRequest, "Serial number already exists")
		case errors.As(err, &validationErr):
			utils.ValidationErrorResponse(c, "Validation error", validationErr.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create patient")
		}
		return
	}

	utils.CreatedResponse(c, patient)
}

// GetPatient retrieves a patient by serial number
func (h *PatientHandler) GetPatient(c *gin.Context) {
	patient, err := h.patientService.GetBySerialNumber(c.Param("serialNumber"))
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patient")
		}
		return
	}

	utils.SuccessResponse(c, patient)
}

// UpdatePatient applies a partial update to a patient (admin only)
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var req service.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "Validation error", err.Error())
		return
	}

	actorID, actor := actorFromContext(c)

	patient, err := h.patientService.Update(c.Param("serialNumber"), &req, actorID, actor)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrPatientNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Patient not found")
		case errors.Is(err, service.ErrDuplicateSerial):
			utils.ErrorResponse(c, http.StatusBadRequest, "Serial number already exists")
		case errors.As(err, &validationErr):
			utils.ValidationErrorResponse(c, "Validation error", validationErr.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update patient")
		}
		return
	}

	utils.SuccessResponse(c, patient)
}

// ListPatients retrieves patients with sorting and pagination
func (h *PatientHandler) ListPatients(c *gin.Context) {
	params := service.ListParams{
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		params.Limit = limit
	}
	if skipStr := c.Query("skip"); skipStr != "" {
		skip, err := strconv.Atoi(skipStr)
		if err != nil || skip < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid skip")
			return
		}
		params.Skip = skip
	}

	patients, total, err := h.patientService.List(params)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    patients,
		"total":   total,
		"count":   len(patients),
	})
}
