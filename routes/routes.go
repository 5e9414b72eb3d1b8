package routes

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/trongdat-dev/volunteer-hub-backend/config"
	"github.com/trongdat-dev/volunteer-hub-backend/database"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/auth"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/campaign"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/certificate"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/comment"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/emergency"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/organization"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/post"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/realtime"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/reports"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/upload"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/volunteer"
	"github.com/trongdat-dev/volunteer-hub-backend/middleware"
	"github.com/trongdat-dev/volunteer-hub-backend/utils"
)

func Setup(r *gin.Engine, cfg *config.Config, zapLogger *zap.Logger) {
	if err := os.MkdirAll(config.UploadPath, 0o755); err != nil {
		log.Printf("⚠️ could not create uploads directory: %v", err)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", config.UploadPath)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.ActivityMiddleware())

	// Mutations pass through the Redis in-flight registry so a double
	// submission of the same intent is rejected with 409.
	idem := middleware.Idempotency(utils.RedisClient)

	// ========== Activity Log ==========
	activityRepo := activitylog.NewRepository(database.DB)
	activitySvc := activitylog.NewService(activityRepo)
	activityHandler := activitylog.NewHandler(activitySvc)
	activitylog.StartKafkaConsumer(activitylog.KafkaConsumerConfig{
		Topic:   cfg.KafkaActivityTopic,
		GroupID: "vhub-activity-consumer",
	}, activitySvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.GET("/me", middleware.AuthMiddleware(cfg, authSvc), authHandler.Me)
		authGroup.PUT("/fcm-token", middleware.AuthMiddleware(cfg, authSvc), authHandler.RegisterFCMToken)
	}

	// ========== Realtime SOS channel ==========
	var pubsub *realtime.RedisPubSub
	if utils.RedisClient != nil {
		pubsub = realtime.NewRedisPubSub(utils.RedisClient, zapLogger)
	}
	var hub *realtime.Hub
	if pubsub != nil {
		hub = realtime.NewHub(zapLogger, pubsub, pubsub)
	} else {
		hub = realtime.NewHub(zapLogger, nil, nil)
	}
	r.GET("/ws/alerts", realtime.ServeWs(hub, zapLogger, authSvc.ValidateAccessToken))

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))

	// ========== Activity Log (admin) ==========
	protected.GET("/activity-log", middleware.RBACMiddleware("admin"), activityHandler.GetActivityLogs)

	// ========== Organizations ==========
	orgRepo := organization.NewRepository(database.DB)
	orgSvc := organization.NewService(orgRepo, activitySvc)
	orgHandler := organization.NewHandler(orgSvc)

	orgRoutes := protected.Group("/admin/organizations")
	orgRoutes.Use(middleware.RBACMiddleware("admin"))
	{
		orgRoutes.GET("", orgHandler.ListOrganizations)
		orgRoutes.GET("/:id", orgHandler.GetOrganization)
		orgRoutes.PATCH("/:id", middleware.RequireWriteAccess(), idem, orgHandler.UpdateStatus)
	}

	// ========== Campaigns ==========
	campaignRepo := campaign.NewRepository(database.DB)
	campaignSvc := campaign.NewService(campaignRepo, activitySvc)
	campaignHandler := campaign.NewHandler(campaignSvc)

	campaignRoutes := protected.Group("/admin/content/campaigns")
	campaignRoutes.Use(middleware.RBACMiddleware("admin"))
	{
		campaignRoutes.GET("", campaignHandler.ListCampaigns)
		campaignRoutes.GET("/:id", campaignHandler.GetCampaign)
		campaignRoutes.PATCH("/:id/approve", middleware.RequireWriteAccess(), idem, campaignHandler.ReviewCampaign)
	}

	// ========== Posts ==========
	postRepo := post.NewRepository(database.DB)
	postSvc := post.NewService(postRepo, activitySvc)
	postHandler := post.NewHandler(postSvc)

	postRoutes := protected.Group("/admin/content/posts")
	postRoutes.Use(middleware.RBACMiddleware("admin", "organization"))
	{
		postRoutes.GET("", postHandler.ListPosts)
		postRoutes.GET("/:id", postHandler.GetPost)
		postRoutes.POST("", middleware.RequireWriteAccess(), idem, postHandler.CreatePost)
		postRoutes.PATCH("/:id", middleware.RequireWriteAccess(), idem, postHandler.UpdatePost)
		postRoutes.DELETE("/:id", middleware.RequireWriteAccess(), idem, postHandler.DeletePost)
	}

	// ========== Volunteers ==========
	volRepo := volunteer.NewRepository(database.DB)
	volSvc := volunteer.NewService(volRepo, activitySvc)
	volHandler := volunteer.NewHandler(volSvc)

	volRoutes := protected.Group("/admin/volunteers")
	volRoutes.Use(middleware.RBACMiddleware("admin", "organization"))
	{
		volRoutes.GET("", volHandler.ListVolunteers)
		volRoutes.GET("/:id", volHandler.GetVolunteer)
		volRoutes.POST("/:id/points", middleware.RequireWriteAccess(), idem, volHandler.AwardPoints)
	}

	// ========== Comments (volunteer reviews) ==========
	commentRepo := comment.NewRepository(database.DB)
	commentSvc := comment.NewService(commentRepo, volSvc, activitySvc)
	commentHandler := comment.NewHandler(commentSvc)

	commentRoutes := protected.Group("/admin/comments")
	commentRoutes.Use(middleware.RBACMiddleware("admin", "organization"))
	{
		commentRoutes.GET("", commentHandler.ListComments)
		commentRoutes.POST("", middleware.RBACMiddleware("organization"), middleware.RequireWriteAccess(), idem, commentHandler.CreateComment)
		commentRoutes.DELETE("/:id", middleware.RequireWriteAccess(), idem, commentHandler.DeleteComment)
	}

	// ========== Emergency (SOS) ==========
	emergencyRepo := emergency.NewRepository(database.DB)
	emergencySvc := emergency.NewService(emergencyRepo, hub, authRepo, activitySvc)
	emergencyHandler := emergency.NewHandler(emergencySvc)

	emergencyRoutes := protected.Group("/emergency")
	{
		emergencyRoutes.GET("", middleware.RBACMiddleware("admin"), emergencyHandler.ListRequests)
		emergencyRoutes.POST("", idem, emergencyHandler.CreateRequest)
		emergencyRoutes.PATCH("/:id", middleware.RBACMiddleware("admin"), middleware.RequireWriteAccess(), idem, emergencyHandler.UpdateStatus)
	}

	// ========== Certificates ==========
	certRepo := certificate.NewRepository(database.DB)
	certSvc := certificate.NewService(certRepo, volSvc, activitySvc, config.UploadPath)
	certHandler := certificate.NewHandler(certSvc)

	certRoutes := protected.Group("/certificates")
	certRoutes.Use(middleware.RBACMiddleware("admin", "organization"))
	{
		certRoutes.GET("/templates", certHandler.ListTemplates)
		certRoutes.GET("/templates/:id", certHandler.GetTemplate)
		certRoutes.POST("/templates", middleware.RequireWriteAccess(), idem, certHandler.CreateTemplate)
		certRoutes.DELETE("/templates/:id", middleware.RequireWriteAccess(), idem, certHandler.DeleteTemplate)
		certRoutes.GET("/issued", certHandler.ListIssued)
		certRoutes.POST("/issue", middleware.RequireWriteAccess(), idem, certHandler.Issue)
	}

	// ========== Uploads ==========
	uploadHandler := upload.NewHandler(config.UploadPath)
	protected.POST("/cloudinary/upload", uploadHandler.Upload)

	// ========== Reports ==========
	reportsRepo := reports.NewRepository(database.DB)
	reportsSvc := reports.NewService(reportsRepo, reports.NewExporter())
	reportsHandler := reports.NewHandler(reportsSvc, activitySvc)

	protected.GET("/admin/reports/:type", middleware.RBACMiddleware("admin"), reportsHandler.Export)
}
