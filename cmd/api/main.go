package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"eventnomous/internal/config"
	"eventnomous/internal/database"
	"eventnomous/internal/middleware"
	"eventnomous/internal/modules/auth"
	"eventnomous/internal/modules/catalog"
	"eventnomous/internal/modules/dashboard"
	"eventnomous/internal/modules/notify"
	"eventnomous/internal/modules/planner"
	"eventnomous/internal/pkg/clock"
	jwtsvc "eventnomous/internal/pkg/jwt"
	"eventnomous/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)

	var draftRepo planner.DraftRepository
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		draftRepo = repository.NewRedisDraftRepository(client)
		log.Println("Draft events stored in redis:", cfg.RedisAddr)
	} else {
		draftRepo = repository.NewMemoryDraftRepository()
		log.Println("Draft events stored in process memory")
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notify.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(vendorRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	plannerService := planner.NewService(draftRepo, catalogService, hub, clock.NewSystem())
	plannerHandler := planner.NewHandler(plannerService)

	dashboardHandler := dashboard.NewHandler()
	notifyHandler := notify.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Eventnomous API is running"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		notifyHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			plannerHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
