package routes

import (
	"net/http"

	"github.com/Dosada05/athletics-system/handlers"
	"github.com/Dosada05/athletics-system/middleware"
	"github.com/Dosada05/athletics-system/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes настраивает все маршруты API.
// Чтение открыто всем, изменения требуют роли организатора или админа.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	competitionHandler *handlers.CompetitionHandler,
	eventHandler *handlers.EventHandler,
	athleteHandler *handlers.AthleteHandler,
	registrationHandler *handlers.RegistrationHandler,
	scheduleHandler *handlers.ScheduleHandler,
	assignmentHandler *handlers.AssignmentHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)
	organizerOnly := middleware.Authorize(string(models.RoleOrganizer), string(models.RoleAdmin))

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	router.Route("/competitions", func(r chi.Router) {
		r.Get("/", competitionHandler.ListHandler)
		r.Get("/{competitionID}", competitionHandler.GetByIDHandler)
		r.Get("/{competitionID}/events", eventHandler.ListByCompetitionHandler)
		r.Get("/{competitionID}/schedules", scheduleHandler.ListHandler)
		r.Get("/{competitionID}/minute-program", scheduleHandler.MinuteProgramHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(organizerOnly)

			r.Post("/", competitionHandler.CreateHandler)
			r.Put("/{competitionID}", competitionHandler.UpdateHandler)
			r.Delete("/{competitionID}", competitionHandler.DeleteHandler)
			r.Post("/{competitionID}/logo", competitionHandler.UploadLogoHandler)
			r.Post("/{competitionID}/events", eventHandler.CreateHandler)
			r.Post("/{competitionID}/schedules", scheduleHandler.GenerateHandler)
			r.Post("/{competitionID}/minute-program/export", scheduleHandler.ExportHandler)
		})
	})

	router.Route("/events", func(r chi.Router) {
		r.Get("/{eventID}", eventHandler.GetByIDHandler)
		r.Get("/{eventID}/registrations", registrationHandler.ListByEventHandler)
		r.Get("/{eventID}/heats", assignmentHandler.ListHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(organizerOnly)

			r.Delete("/{eventID}", eventHandler.DeleteHandler)
			r.Post("/{eventID}/registrations", registrationHandler.CreateHandler)
			r.Post("/{eventID}/heats", assignmentHandler.AssignHandler)
		})
	})

	router.Route("/athletes", func(r chi.Router) {
		r.Get("/", athleteHandler.ListHandler)
		r.Get("/{athleteID}", athleteHandler.GetByIDHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(organizerOnly)

			r.Post("/", athleteHandler.CreateHandler)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(organizerOnly)

		r.Delete("/registrations/{registrationID}", registrationHandler.DeleteHandler)
	})

	router.Get("/ws/competitions/{competitionID}", webSocketHandler.ServeWs)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}
