package gateway

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/api"
	"github.com/nekogravitycat/shareit-backend/internal/auth"
	bookingHttp "github.com/nekogravitycat/shareit-backend/internal/booking/http"
	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	itemRequestHttp "github.com/nekogravitycat/shareit-backend/internal/itemrequest/http"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	userHttp "github.com/nekogravitycat/shareit-backend/internal/user/http"
)

// Config holds the gateway settings.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	ServerURL    string
}

// NewRouter builds the front router. Requests that pass validation are
// forwarded unchanged to the server at cfg.ServerURL.
func NewRouter(cfg Config) (*gin.Engine, error) {
	target, err := url.Parse(cfg.ServerURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", cfg.ServerURL)
	}
	if err := request.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators failed: %w", err)
	}

	proxy := newProxy(target)
	forward := gin.WrapH(proxy)

	r := gin.New()
	r.Use(api.RequestID(), gin.Logger(), gin.Recovery())
	r.Use(cors.New(api.CORSConfig(cfg.IsProduction, cfg.ProdOrigins)))

	identified := auth.UserIDRequired()

	users := r.Group("/users")
	{
		users.POST("", validBody[userHttp.CreateUserRequest](), forward)
		users.GET("", forward)
		users.GET("/:id", validID(), forward)
		users.PATCH("/:id", validID(), validBody[userHttp.UpdateUserRequest](), forward)
		users.DELETE("/:id", validID(), forward)
	}

	items := r.Group("/items")
	{
		items.GET("/search", validPage(), forward)
		items.GET("/:id", validID(), forward)
		items.POST("", identified, validBody[itemHttp.CreateItemRequest](), forward)
		items.GET("", identified, validPage(), forward)
		items.PATCH("/:id", identified, validID(), validBody[itemHttp.UpdateItemRequest](), forward)
		items.DELETE("/:id", identified, validID(), forward)
		items.POST("/:id/comment", identified, validID(), validBody[itemHttp.CreateCommentRequest](), forward)
	}

	bookings := r.Group("/bookings", identified)
	{
		bookings.POST("", validBody[bookingHttp.CreateBookingRequest](), forward)
		bookings.GET("", validPage(), validState(), forward)
		bookings.GET("/owner", validPage(), validState(), forward)
		bookings.GET("/:id", validID(), forward)
		bookings.PATCH("/:id", validID(), validQuery[bookingHttp.ApproveBookingRequest]("approved parameter is required"), forward)
	}

	requests := r.Group("/requests", identified)
	{
		requests.POST("", validBody[itemRequestHttp.CreateItemRequestRequest](), forward)
		requests.GET("", forward)
		requests.GET("/all", validPage(), forward)
		requests.GET("/:id", validID(), forward)
	}

	return r, nil
}

func newProxy(target *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			pr.Out.Header.Set(api.HeaderRequestID, pr.In.Header.Get(api.HeaderRequestID))
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.ErrorContext(r.Context(), "upstream request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"server unavailable"}`))
		},
	}
}
