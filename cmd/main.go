package main

import (
	"log"

	"github.com/gin-gonic/gin"
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
	"github.com/trongdat-dev/volunteer-hub-backend/internal/volunteer"
	"github.com/trongdat-dev/volunteer-hub-backend/routes"
	"github.com/trongdat-dev/volunteer-hub-backend/utils"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)

	if err := db.AutoMigrate(
		&auth.UserRole{},
		&auth.User{},
		&organization.Organization{},
		&volunteer.Volunteer{},
		&campaign.Campaign{},
		&post.Post{},
		&comment.Comment{},
		&emergency.Request{},
		&certificate.Template{},
		&certificate.IssuedCertificate{},
		&activitylog.ActivityLog{},
	); err != nil {
		log.Fatalf("❌ Auto migration failed: %v", err)
	}
	log.Println("✅ Database migration completed")

	if err := auth.SeedUserRoles(db); err != nil {
		log.Fatalf("❌ Failed to seed user roles: %v", err)
	}
	if err := auth.SeedAdminUser(db); err != nil {
		log.Fatalf("❌ Failed to seed admin user: %v", err)
	}

	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis unavailable, idempotency and alert fan-out run degraded: %v", err)
	}

	utils.InitializeKafka(cfg)

	if err := utils.InitFirebase(); err != nil {
		log.Printf("⚠️ FCM disabled: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	r := gin.Default()
	routes.Setup(r, cfg, zapLogger)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
