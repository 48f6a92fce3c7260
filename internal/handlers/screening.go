package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"netracare-go/internal/metrics"
	"netracare-go/internal/models"
	"netracare-go/internal/repository"
)

// ScreeningHandler serves the two lightweight tests that share the app with
// eye tracking: colour vision plates and the visual acuity chart.
type ScreeningHandler struct {
	log *zap.Logger
}

func NewScreeningHandler(log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{log: log}
}

type colourVisionRequest struct {
	CorrectCount       int  `json:"correct_count"`
	TotalPlates        int  `json:"total_plates" binding:"required"`
	ControlPlateFailed bool `json:"control_plate_failed"`
}

func (h *ScreeningHandler) SubmitColourVision(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req colourVisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	score, err := metrics.CalculateColourVisionScore(req.CorrectCount, req.TotalPlates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	classification := metrics.ClassifyScreening(float64(score), req.ControlPlateFailed)

	test := &models.ColourVisionTest{
		UserID:             userID,
		CorrectCount:       req.CorrectCount,
		TotalPlates:        req.TotalPlates,
		Score:              score,
		ControlPlateFailed: req.ControlPlateFailed,
		Classification:     classification,
	}
	if err := repository.SaveColourVisionTest(c.Request.Context(), test); err != nil {
		h.log.Error("Failed to save colour vision test", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save results"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"test_id":        test.ID,
		"score":          score,
		"classification": classification,
	})
}

type visualAcuityRequest struct {
	CorrectCount int `json:"correct_count"`
	TotalShown   int `json:"total_shown" binding:"required"`
}

func (h *ScreeningHandler) SubmitVisualAcuity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req visualAcuityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	logmar, err := metrics.CalculateLogMAR(req.CorrectCount, req.TotalShown)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	test := &models.VisualAcuityTest{
		UserID:       userID,
		CorrectCount: req.CorrectCount,
		TotalShown:   req.TotalShown,
		LogMAR:       logmar,
		Snellen:      metrics.LogMARToSnellen(logmar),
		Severity:     metrics.ClassifyAcuity(logmar),
	}
	if err := repository.SaveVisualAcuityTest(c.Request.Context(), test); err != nil {
		h.log.Error("Failed to save visual acuity test", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save results"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"test_id":  test.ID,
		"logmar":   test.LogMAR,
		"snellen":  test.Snellen,
		"severity": test.Severity,
	})
}
