package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"viaplan/cache"
	"viaplan/config"
	"viaplan/geo"
	"viaplan/handlers"
	"viaplan/planner"
	"viaplan/resolver"
	"viaplan/services"
)

func main() {
	cfg := config.Load()

	// Result cache: Redis when configured, in-process otherwise
	var store cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v) — falling back to in-memory cache", err)
			store = cache.NewMemory()
		} else {
			log.Println("✅ Redis cache connected")
			store = redisStore
		}
	} else {
		log.Println("ℹ️  REDIS_URL not set — using in-memory cache")
		store = cache.NewMemory()
	}

	amadeus := services.NewAmadeusClient(cfg.AmadeusClientID, cfg.AmadeusClientSecret, cfg.AmadeusEnv)
	if !amadeus.Configured() {
		log.Println("⚠️  AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set — flight searches will fail per airport pair")
	}

	routing := services.NewRoutingClient(cfg.ORSAPIKey)
	if cfg.ORSAPIKey == "" {
		log.Println("⚠️  ORS_API_KEY not set — plan requests will fail at the baseline stage")
	}

	var interpreter resolver.Interpreter
	llm := resolver.NewLLMClient(cfg.InterpretAPIKey, cfg.InterpretModel)
	if llm.Configured() {
		log.Println("✅ LLM location interpreter enabled")
		interpreter = llm
	} else {
		log.Println("ℹ️  OPENAI_API_KEY not set — location interpretation uses local tables only")
	}
	locations := resolver.New(interpreter)

	engine := planner.New(planner.Dependency{
		Resolver:        locations,
		Baseline:        routing,
		Airports:        geo.Locator{},
		Flights:         amadeus,
		Cache:           store,
		CacheTTL:        cfg.CacheTTL,
		AirportsPerCity: cfg.AirportsPerCity,
	})

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	allowedOrigins = append(allowedOrigins, cfg.FrontendURLs...)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(handlers.Dependency{
		Engine:    engine,
		Resolver:  locations,
		Flights:   amadeus,
		Cache:     store,
		SearchTTL: cfg.CacheTTL,
	})
	h.Register(r)

	log.Printf("🚀 viaplan backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
