package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"netracare-go/internal/config"
	"netracare-go/internal/handlers"
	"netracare-go/internal/models"
	"netracare-go/internal/utils"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, protocol *models.Protocol) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	sessionSecret := config.Conf.Server.SessionSecret
	if sessionSecret == "" {
		// No configured secret: sessions won't survive a restart, which is
		// fine for development but logged so nobody ships it.
		generated, err := utils.GenerateSecureToken(32)
		if err != nil {
			log.Fatal("Failed to generate session secret", zap.Error(err))
		}
		sessionSecret = generated
		log.Warn("No session secret configured, generated an ephemeral one")
	}

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("netracare_session", store))
	router.Use(UserLoaderMiddleware(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	})

	// Handlers
	authHandler := handlers.NewAuthHandler(log)
	eyeTrackingHandler := handlers.NewEyeTrackingHandler(log, protocol)
	screeningHandler := handlers.NewScreeningHandler(log)
	userHandler := handlers.NewUserHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")

	api.POST("/auth/register", limiter, authHandler.Register)
	api.POST("/auth/login", limiter, authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	authorized := api.Group("/")
	authorized.Use(AuthRequired())
	{
		eyeTracking := authorized.Group("/eye-tracking")
		{
			eyeTracking.POST("/upload-data", eyeTrackingHandler.UploadData)
			eyeTracking.POST("/tests", eyeTrackingHandler.SaveTest)
			eyeTracking.GET("/tests", eyeTrackingHandler.ListTests)
			eyeTracking.GET("/tests/latest", eyeTrackingHandler.GetLatestTest)
			eyeTracking.GET("/tests/statistics", eyeTrackingHandler.Statistics)
			eyeTracking.GET("/tests/timeline", eyeTrackingHandler.ScoreTimeline)
			eyeTracking.GET("/tests/:id", eyeTrackingHandler.GetTest)
			eyeTracking.DELETE("/tests/:id", eyeTrackingHandler.DeleteTest)
		}

		screening := authorized.Group("/screening")
		{
			screening.POST("/colour-vision", screeningHandler.SubmitColourVision)
			screening.POST("/visual-acuity", screeningHandler.SubmitVisualAcuity)
		}

		profile := authorized.Group("/profile")
		{
			profile.GET("", userHandler.GetProfile)
			profile.POST("/update-info", userHandler.UpdateProfile)
			profile.POST("/update-password", userHandler.UpdatePassword)
			profile.POST("/delete", userHandler.DeleteAccount)
		}
	}

	return router
}
