package http

import (
	"net/http"

	"styledecor/internal/delivery/http/handler"
	"styledecor/internal/delivery/http/middleware"
	"styledecor/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	bookingHandler   *handler.BookingHandler
	catalogHandler   *handler.CatalogHandler
	decoratorHandler *handler.DecoratorHandler
	paymentHandler   *handler.PaymentHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	catalogHandler *handler.CatalogHandler,
	decoratorHandler *handler.DecoratorHandler,
	paymentHandler *handler.PaymentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		bookingHandler:   bookingHandler,
		catalogHandler:   catalogHandler,
		decoratorHandler: decoratorHandler,
		paymentHandler:   paymentHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/me", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Public catalog and team
	api.HandleFunc("/services", r.catalogHandler.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.catalogHandler.GetService).Methods(http.MethodGet)
	api.HandleFunc("/decorators", r.decoratorHandler.ListActiveDecorators).Methods(http.MethodGet)

	// Catalog management (protected)
	services := api.PathPrefix("/services").Subrouter()
	services.Use(r.authMiddleware.Authenticate)
	services.Handle("", middleware.RequireRole(entity.RoleIDAdmin, entity.RoleIDDecorator)(http.HandlerFunc(r.catalogHandler.CreateService))).Methods(http.MethodPost)
	services.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.catalogHandler.UpdateService))).Methods(http.MethodPut)
	services.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.catalogHandler.DeleteService))).Methods(http.MethodDelete)

	// Booking routes
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.Handle("", middleware.RequireCustomer(http.HandlerFunc(r.bookingHandler.CreateBooking))).Methods(http.MethodPost)
	bookings.Handle("", middleware.RequireAdmin(http.HandlerFunc(r.bookingHandler.GetAllBookings))).Methods(http.MethodGet)
	bookings.Handle("/my", middleware.RequireCustomer(http.HandlerFunc(r.bookingHandler.GetMyBookings))).Methods(http.MethodGet)
	bookings.Handle("/assigned", middleware.RequireDecorator(http.HandlerFunc(r.bookingHandler.GetAssignedBookings))).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookings.Handle("/{id}/status", middleware.RequireDecorator(http.HandlerFunc(r.bookingHandler.UpdateBookingStatus))).Methods(http.MethodPatch)
	bookings.Handle("/{id}/assign", middleware.RequireAdmin(http.HandlerFunc(r.bookingHandler.AssignBooking))).Methods(http.MethodPatch)
	bookings.Handle("/{id}/cancel", middleware.RequireAdminOrCustomer(http.HandlerFunc(r.bookingHandler.CancelBooking))).Methods(http.MethodPatch)
	bookings.Handle("/{id}/pay", middleware.RequireAdminOrCustomer(http.HandlerFunc(r.bookingHandler.MarkBookingPaid))).Methods(http.MethodPatch)

	// Payment routes
	payments := api.PathPrefix("/payments").Subrouter()
	payments.Use(r.authMiddleware.Authenticate)
	payments.HandleFunc("/create-payment-intent", r.paymentHandler.CreateIntent).Methods(http.MethodPost)
	payments.HandleFunc("/my", r.paymentHandler.GetMyPayments).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Decorator management (admin)
	admin.HandleFunc("/decorators", r.decoratorHandler.CreateDecorator).Methods(http.MethodPost)
	admin.HandleFunc("/decorators", r.decoratorHandler.ListDecorators).Methods(http.MethodGet)
	admin.HandleFunc("/decorators/{id}", r.decoratorHandler.GetDecorator).Methods(http.MethodGet)
	admin.HandleFunc("/decorators/{id}", r.decoratorHandler.UpdateDecorator).Methods(http.MethodPut)
	admin.HandleFunc("/decorators/{id}/active", r.decoratorHandler.SetDecoratorActive).Methods(http.MethodPatch)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
