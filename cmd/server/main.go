package main

import (
	"context"                            // context package is needed for Redis operations
	"log"                                // log package is needed for logging
	"piggie_backend/internal/api"        // Custom package for API handlers
	"piggie_backend/internal/config"     // Custom package for configuration
	"piggie_backend/internal/db"         // Custom package for database access
	"piggie_backend/internal/middleware" // Custom package for middleware
	"piggie_backend/internal/plaid"      // Custom package for the transaction aggregator

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the configured database (MySQL or SQLite)
	database, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Setup the transaction aggregator client
	plaidClient := plaid.NewHTTPClient(cfg.PlaidClientID, cfg.PlaidSecret, cfg.PlaidEnv)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/auth/signup", api.SignupHandler(database, cfg.JWTSecret)) // Signup endpoint
	// Login endpoint, throttled per client IP
	r.POST("/auth/login", middleware.LoginRateLimitMiddleware(redisClient, nil), api.LoginHandler(database, cfg.JWTSecret))

	// Authenticated routes (protected by JWT)
	auth := r.Group("")
	auth.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	auth.GET("/auth/me", api.MeHandler(database)) // Current user profile

	// Wallet routes
	auth.GET("/wallet", api.GetWalletHandler(database, redisClient)) // Wallet balances
	auth.GET("/wallet/portfolio", api.GetPortfolioHandler(database)) // Simulated portfolio summary

	// Allocation routes
	auth.GET("/allocation", api.GetAllocationHandler(database))    // Current allocation percentages
	auth.PUT("/allocation", api.UpdateAllocationHandler(database)) // Update allocation percentages

	// Goal routes
	auth.POST("/goals", api.CreateGoalHandler(database))                    // Create goal
	auth.GET("/goals", api.ListGoalsHandler(database))                      // List goals
	auth.GET("/goals/:id", api.GetGoalHandler(database))                    // Get goal
	auth.PUT("/goals/:id", api.UpdateGoalHandler(database))                 // Update goal
	auth.DELETE("/goals/:id", api.DeleteGoalHandler(database))              // Delete goal
	auth.POST("/goals/:id/set-default", api.SetDefaultGoalHandler(database)) // Mark goal as default

	// Transaction and round-up routes
	auth.GET("/transactions", api.GetTransactionsHandler(database, plaidClient))  // Synced or demo transactions
	auth.POST("/roundup/calculate", api.CalculateRoundupHandler(database))        // Round-up preview
	auth.POST("/roundup", api.ApplyRoundupHandler(database, redisClient))         // Apply round-up
	auth.GET("/roundup/history", api.RoundupHistoryHandler(database, redisClient)) // Round-up history

	// Aggregator plumbing routes
	auth.POST("/plaid/link-token", api.CreateLinkTokenHandler(database, plaidClient)) // Create Link token
	auth.POST("/plaid/exchange", api.ExchangeTokenHandler(database, plaidClient))     // Exchange public token
	auth.GET("/plaid/item", api.GetPlaidItemHandler(database))                        // Linked bank connection
	auth.POST("/plaid/sync", api.SyncTransactionsHandler(database, plaidClient))      // Pull fresh transactions

	// Merchant rule and event routes
	auth.GET("/merchant-rules", api.ListMerchantRulesHandler(database))   // List merchant rules
	auth.POST("/merchant-rules", api.UpsertMerchantRuleHandler(database)) // Create or update a merchant rule
	auth.POST("/events", api.CreateEventHandler(database))                // Log analytics event

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(database))
	adminGroup.GET("/users", api.ListUsersHandler(database, redisClient))       // List users endpoint
	adminGroup.GET("/roundups", api.ListRoundupsHandler(database, redisClient)) // List round-ups endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
