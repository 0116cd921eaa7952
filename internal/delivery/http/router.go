package http

import (
	"net/http"

	"medflow-server/internal/delivery/http/handler"
	"medflow-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	clinicHandler       *handler.ClinicHandler
	patientHandler      *handler.PatientHandler
	doctorHandler       *handler.DoctorHandler
	receptionistHandler *handler.ReceptionistHandler
	serviceHandler      *handler.ServiceHandler
	appointmentHandler  *handler.AppointmentHandler
	conversationHandler *handler.ConversationHandler
	messageHandler      *handler.MessageHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	clinicHandler *handler.ClinicHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	receptionistHandler *handler.ReceptionistHandler,
	serviceHandler *handler.ServiceHandler,
	appointmentHandler *handler.AppointmentHandler,
	conversationHandler *handler.ConversationHandler,
	messageHandler *handler.MessageHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		userHandler:         userHandler,
		clinicHandler:       clinicHandler,
		patientHandler:      patientHandler,
		doctorHandler:       doctorHandler,
		receptionistHandler: receptionistHandler,
		serviceHandler:      serviceHandler,
		appointmentHandler:  appointmentHandler,
		conversationHandler: conversationHandler,
		messageHandler:      messageHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
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

	// Clinic directory (public)
	api.HandleFunc("/clinics", r.clinicHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id}", r.clinicHandler.Get).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// User management (admin)
	admin.HandleFunc("/users", r.userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{id}/reset-password", r.userHandler.ResetPassword).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/toggle-status", r.userHandler.ToggleStatus).Methods(http.MethodPost)

	// Clinic management (admin)
	admin.HandleFunc("/clinics", r.clinicHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.Delete).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.Get).Methods(http.MethodGet)

	// Services
	services := api.PathPrefix("/services").Subrouter()
	services.Use(r.authMiddleware.Authenticate)
	services.HandleFunc("", r.serviceHandler.List).Methods(http.MethodGet)
	services.HandleFunc("/{id}", r.serviceHandler.Get).Methods(http.MethodGet)
	services.Handle("", middleware.RequireAdminOrReceptionist(http.HandlerFunc(r.serviceHandler.Create))).Methods(http.MethodPost)
	services.Handle("/{id}", middleware.RequireAdminOrReceptionist(http.HandlerFunc(r.serviceHandler.Update))).Methods(http.MethodPut)
	services.Handle("/{id}", middleware.RequireAdminOrReceptionist(http.HandlerFunc(r.serviceHandler.Delete))).Methods(http.MethodDelete)

	// Patients
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)
	patients.HandleFunc("/my-profile", r.patientHandler.MyProfile).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id}/medical-history", r.patientHandler.MedicalHistory).Methods(http.MethodGet)
	patients.HandleFunc("/{id}/medical-info", r.patientHandler.UpdateMedicalInfo).Methods(http.MethodPatch)

	// Doctors
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.List).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.Update).Methods(http.MethodPut)

	// Receptionists (staff only)
	receptionists := api.PathPrefix("/receptionists").Subrouter()
	receptionists.Use(r.authMiddleware.Authenticate)
	receptionists.Use(middleware.RequireStaff)
	receptionists.HandleFunc("", r.receptionistHandler.List).Methods(http.MethodGet)
	receptionists.HandleFunc("/{id}", r.receptionistHandler.Get).Methods(http.MethodGet)
	receptionists.HandleFunc("/{id}", r.receptionistHandler.Update).Methods(http.MethodPut)

	// Appointments. Register the slots route before the {id} routes so
	// "available-slots" is never captured as an appointment ID.
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("/available-slots", r.appointmentHandler.AvailableSlots).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPatch)
	appointments.Handle("/{id}/confirm", middleware.RequireStaff(http.HandlerFunc(r.appointmentHandler.Confirm))).Methods(http.MethodPatch)

	// Conversations
	conversations := api.PathPrefix("/conversations").Subrouter()
	conversations.Use(r.authMiddleware.Authenticate)
	conversations.HandleFunc("", r.conversationHandler.Create).Methods(http.MethodPost)
	conversations.HandleFunc("", r.conversationHandler.List).Methods(http.MethodGet)
	conversations.HandleFunc("/{id}", r.conversationHandler.Get).Methods(http.MethodGet)
	conversations.HandleFunc("/{id}", r.conversationHandler.Hide).Methods(http.MethodDelete)
	conversations.HandleFunc("/{id}/mark-read", r.conversationHandler.MarkRead).Methods(http.MethodPost)
	conversations.HandleFunc("/{id}/participants", r.conversationHandler.AddParticipant).Methods(http.MethodPost)
	conversations.HandleFunc("/{id}/participants/{user_id}", r.conversationHandler.RemoveParticipant).Methods(http.MethodDelete)

	// Messages
	messages := api.PathPrefix("/messages").Subrouter()
	messages.Use(r.authMiddleware.Authenticate)
	messages.HandleFunc("", r.messageHandler.List).Methods(http.MethodGet)
	messages.HandleFunc("", r.messageHandler.Send).Methods(http.MethodPost)
	messages.HandleFunc("/{id}/mark-read", r.messageHandler.MarkRead).Methods(http.MethodPost)
	messages.HandleFunc("/{id}/delete-for-me", r.messageHandler.DeleteForMe).Methods(http.MethodPost)
	messages.HandleFunc("/{id}", r.messageHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
