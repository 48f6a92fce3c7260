package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"netracare-go/internal/config"
	"netracare-go/internal/metrics"
	"netracare-go/internal/models"
	"netracare-go/internal/repository"
)

type EyeTrackingHandler struct {
	log      *zap.Logger
	protocol *models.Protocol
}

func NewEyeTrackingHandler(log *zap.Logger, protocol *models.Protocol) *EyeTrackingHandler {
	return &EyeTrackingHandler{log: log, protocol: protocol}
}

type uploadDataRequest struct {
	TestName     string              `json:"test_name" binding:"required"`
	TestDuration float64             `json:"test_duration" binding:"required"`
	ScreenWidth  float64             `json:"screen_width"`
	ScreenHeight float64             `json:"screen_height"`
	PhaseStarts  []float64           `json:"phase_starts"`
	DataPoints   []models.GazeSample `json:"data_points" binding:"required"`
}

// UploadData scores a raw gaze recording against the configured test
// protocol and persists the result.
func (h *EyeTrackingHandler) UploadData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req uploadDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind eye tracking upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	if req.ScreenWidth <= 0 {
		req.ScreenWidth = 1920
	}
	if req.ScreenHeight <= 0 {
		req.ScreenHeight = 1080
	}

	session := &models.Session{
		TestName:     req.TestName,
		ScreenWidth:  req.ScreenWidth,
		ScreenHeight: req.ScreenHeight,
		Duration:     req.TestDuration,
		Samples:      req.DataPoints,
	}
	if len(req.PhaseStarts) == models.PhaseCount {
		copy(session.PhaseStarts[:], req.PhaseStarts)
	} else {
		// Client followed the server-side protocol timing.
		session.PhaseStarts = h.protocol.PhaseStarts()
	}

	trajectory, err := h.protocol.BuildTrajectory(session.ScreenWidth, session.ScreenHeight)
	if err != nil {
		h.log.Error("Failed to build target trajectory", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build target trajectory"})
		return
	}

	result, err := metrics.ScoreSession(session, trajectory, config.Conf.Scoring.Options())
	if err != nil {
		h.log.Warn("Session not scoreable",
			zap.Int("userID", userID),
			zap.Int("samples", len(req.DataPoints)),
			zap.Error(err))
		c.JSON(scoringErrorStatus(err), gin.H{"error": "Failed to calculate metrics: " + err.Error()})
		return
	}

	test := &models.EyeTrackingTest{
		UserID:                    userID,
		TestName:                  req.TestName,
		TestDuration:              req.TestDuration,
		ScreenWidth:               int(req.ScreenWidth),
		ScreenHeight:              int(req.ScreenHeight),
		PhaseStarts:               session.PhaseStarts[:],
		GazeAccuracy:              result.GazeAccuracy,
		FixationStabilityScore:    result.FixationStabilityScore,
		SaccadeConsistencyScore:   result.SaccadeConsistencyScore,
		OverallPerformanceScore:   result.OverallPerformanceScore,
		PerformanceClassification: result.Classification,
		ValidSamples:              result.ValidSamples,
		DroppedSamples:            result.DroppedSamples,
		Status:                    "completed",
	}
	if raw, err := json.Marshal(req.DataPoints); err == nil {
		test.RawData = raw
	}
	if err := test.SetPupilMetrics(result.LeftPupil, result.RightPupil); err != nil {
		h.log.Error("Failed to serialize pupil metrics", zap.Error(err))
	}

	if err := repository.SaveEyeTrackingTest(c.Request.Context(), test); err != nil {
		h.log.Error("Failed to save eye tracking test", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save results"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Test data uploaded and processed successfully",
		"test_id":   test.ID,
		"metrics":   result,
		"timestamp": test.CreatedAt.Format(time.RFC3339),
	})
}

type saveTestRequest struct {
	TestName           string  `json:"test_name"`
	TestDuration       float64 `json:"test_duration" binding:"required"`
	GazeAccuracy       float64 `json:"gaze_accuracy" binding:"required"`
	FixationStability  float64 `json:"fixation_stability"`
	SaccadeConsistency float64 `json:"saccade_consistency"`
	OverallScore       float64 `json:"overall_score"`
	Classification     string  `json:"classification"`
	ScreenWidth        int     `json:"screen_width"`
	ScreenHeight       int     `json:"screen_height"`
}

// SaveTest stores results a trusted client already computed, without
// rescoring. Kept for parity with older capture clients.
func (h *EyeTrackingHandler) SaveTest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req saveTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if req.TestName == "" {
		req.TestName = "Eye Tracking Test"
	}
	if req.Classification == "" {
		req.Classification = metrics.PerformanceLevels.Classify(req.OverallScore)
	}
	if req.ScreenWidth <= 0 {
		req.ScreenWidth = 1920
	}
	if req.ScreenHeight <= 0 {
		req.ScreenHeight = 1080
	}

	test := &models.EyeTrackingTest{
		UserID:                    userID,
		TestName:                  req.TestName,
		TestDuration:              req.TestDuration,
		ScreenWidth:               req.ScreenWidth,
		ScreenHeight:              req.ScreenHeight,
		GazeAccuracy:              req.GazeAccuracy,
		FixationStabilityScore:    req.FixationStability,
		SaccadeConsistencyScore:   req.SaccadeConsistency,
		OverallPerformanceScore:   req.OverallScore,
		PerformanceClassification: req.Classification,
		Status:                    "completed",
	}

	if err := repository.SaveEyeTrackingTest(c.Request.Context(), test); err != nil {
		h.log.Error("Failed to save eye tracking test", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save results"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Test results saved successfully",
		"test_id":   test.ID,
		"timestamp": test.CreatedAt.Format(time.RFC3339),
	})
}

func (h *EyeTrackingHandler) ListTests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	tests, total, err := repository.ListEyeTrackingTests(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.log.Error("Failed to list eye tracking tests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving tests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tests":  tests,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *EyeTrackingHandler) GetTest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	testID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid test id"})
		return
	}

	test, err := repository.GetEyeTrackingTest(c.Request.Context(), testID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
			return
		}
		h.log.Error("Failed to get eye tracking test", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving test"})
		return
	}

	c.JSON(http.StatusOK, test)
}

func (h *EyeTrackingHandler) GetLatestTest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	test, err := repository.GetLatestEyeTrackingTest(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No test results found"})
			return
		}
		h.log.Error("Failed to get latest eye tracking test", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving test"})
		return
	}

	c.JSON(http.StatusOK, test)
}

func (h *EyeTrackingHandler) DeleteTest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	testID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid test id"})
		return
	}

	deleted, err := repository.DeleteEyeTrackingTest(c.Request.Context(), testID, userID)
	if err != nil {
		h.log.Error("Failed to delete eye tracking test", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting test"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Test deleted successfully"})
}

func (h *EyeTrackingHandler) Statistics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := repository.GetUserTestStatistics(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to compute statistics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error calculating statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// scoringErrorStatus maps engine error types onto HTTP statuses. Anything
// data-shaped is the client's problem; everything else is ours.
func scoringErrorStatus(err error) int {
	var insufficient *metrics.InsufficientDataError
	var invalid *metrics.InvalidSampleError
	var geometry *metrics.DegenerateGeometryError
	var configuration *metrics.ConfigurationError
	switch {
	case errors.As(err, &insufficient), errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	case errors.As(err, &geometry):
		return http.StatusBadRequest
	case errors.As(err, &configuration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// currentUserID extracts the authenticated user from the session.
func currentUserID(c *gin.Context) (int, bool) {
	session := sessions.Default(c)
	userID, ok := session.Get("userID").(int)
	return userID, ok
}
