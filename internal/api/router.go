package api

import (
	"fmt"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/shareit-backend/internal/booking/http"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	itemRequestHttp "github.com/nekogravitycat/shareit-backend/internal/itemrequest/http"
	"github.com/nekogravitycat/shareit-backend/internal/metrics"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
	userHttp "github.com/nekogravitycat/shareit-backend/internal/user/http"
)

// Config holds the services the router exposes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService        user.Service
	ItemService        item.Service
	BookingService     booking.Service
	ItemRequestService itemrequest.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Metrics) and registering routes for various modules.
func NewRouter(cfg Config) (*gin.Engine, error) {
	if err := request.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators failed: %w", err)
	}
	metrics.Register()

	r := gin.New()

	// Global Middleware:
	// - RequestID: Tags every request and response with X-Request-ID.
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	// - Metrics: Observes request durations.
	r.Use(RequestID(), gin.Logger(), gin.Recovery(), Metrics())

	r.Use(cors.New(CORSConfig(cfg.IsProduction, cfg.ProdOrigins)))

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	itemRequestHandler := itemRequestHttp.NewHandler(cfg.ItemRequestService)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler)
		bookingHttp.RegisterRoutes(root, bookingHandler)
		itemRequestHttp.RegisterRoutes(root, itemRequestHandler)
	}

	return r, nil
}

// CORSConfig allows local development origins, or PROD_ORIGINS in production.
func CORSConfig(isProduction bool, prodOrigins string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{
		"http://localhost:8080",
		"http://localhost:9090",
	}
	if isProduction {
		config.AllowOrigins = nil
		for _, o := range strings.Split(prodOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				config.AllowOrigins = append(config.AllowOrigins, o)
			}
		}
		if len(config.AllowOrigins) == 0 {
			config.AllowAllOrigins = true
		}
	}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", auth.HeaderUserID, HeaderRequestID}
	config.ExposeHeaders = []string{HeaderRequestID}
	return config
}
