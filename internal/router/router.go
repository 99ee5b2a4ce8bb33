package router

import (
	"net/http"
	"strings"

	"cafe-pos/internal/handler"
	"cafe-pos/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// validateToken gates the administrative surface: catalog changes and order
// deletion require a session token issued by the login endpoint.
func New(
	menuHandler *handler.MenuHandler,
	orderHandler *handler.OrderHandler,
	analyticsHandler *handler.AnalyticsHandler,
	authHandler *handler.AuthHandler,
	validateToken func(string) bool,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	adminOnly := middleware.AdminAuth(validateToken, logger)
	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return adminOnly(h).ServeHTTP
	}
	createMenuItem := guard(menuHandler.Create)
	deleteMenuItems := guard(menuHandler.Delete)
	deleteOrders := guard(orderHandler.Delete)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Menu handler function
	menuRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/menu" && r.URL.Path != "/api/menu/" {
			menuHandler.GetByID(w, r)
			return
		}

		switch r.Method {
		case http.MethodGet:
			menuHandler.GetAll(w, r)
		case http.MethodPost:
			createMenuItem(w, r)
		case http.MethodDelete:
			deleteMenuItems(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register menu routes (both with and without trailing slash)
	mux.HandleFunc("/api/menu", menuRouteHandler)
	mux.HandleFunc("/api/menu/", menuRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/" {
			switch r.Method {
			case http.MethodPost:
				orderHandler.Create(w, r)
			case http.MethodGet:
				orderHandler.List(w, r)
			case http.MethodDelete:
				deleteOrders(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// /api/orders/{id}/receipt
		if strings.HasSuffix(r.URL.Path, "/receipt") {
			orderHandler.SaveReceipt(w, r)
			return
		}

		// /api/orders/{id}
		if strings.HasPrefix(r.URL.Path, "/api/orders/") {
			orderHandler.GetByID(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Bill computation without persistence
	mux.HandleFunc("/api/bills", orderHandler.CalculateBill)

	// Administrator login
	mux.HandleFunc("/api/login", authHandler.Login)

	// Analytics routes
	mux.HandleFunc("/api/analytics/summary", analyticsHandler.Summary)
	mux.HandleFunc("/api/analytics/top-items", analyticsHandler.TopItems)
	mux.HandleFunc("/api/analytics/categories", analyticsHandler.SalesByCategory)
	mux.HandleFunc("/api/analytics/weekly", analyticsHandler.Weekly)

	// Apply middleware in order: Recovery -> Logging -> CORS -> CorrelationID
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.CorrelationID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
