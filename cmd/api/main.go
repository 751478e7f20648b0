package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pluggedin/internal/database"
	"pluggedin/internal/middleware"
	"pluggedin/internal/modules/auth"
	"pluggedin/internal/modules/catalog"
	"pluggedin/internal/modules/dashboard"
	"pluggedin/internal/modules/post"
	"pluggedin/internal/modules/review"
	"pluggedin/internal/modules/upload"
	jwtsvc "pluggedin/internal/pkg/jwt"
	"pluggedin/internal/pkg/mailer"
	"pluggedin/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "pluggedin.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	postRepo := repository.NewPostRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	mail := mailer.NewConsole(os.Getenv("MAIL_FROM"))

	authService := auth.NewService(userRepo, resetRepo, j, mail, os.Getenv("RESET_PASSWORD_URL"))
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(businessRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, businessRepo)
	reviewHandler := review.NewHandler(reviewService)

	postService := post.NewService(postRepo, businessRepo)
	postHandler := post.NewHandler(postService)

	dashboardService := dashboard.NewService(businessRepo, postRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	store := upload.NewDiskStore(uploadDir, "/static/uploads")
	uploadService := upload.NewService(store, uploadRepo, businessRepo, postRepo)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/static/uploads", uploadDir)

	v1 := r.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(j))

	authHandler.RegisterRoutes(v1, protected)
	catalogHandler.RegisterRoutes(v1, protected)
	reviewHandler.RegisterRoutes(v1, protected)
	postHandler.RegisterRoutes(v1, protected)
	dashboardHandler.RegisterRoutes(protected)
	uploadHandler.RegisterRoutes(v1, protected)

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
