package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authpkg "github.com/carelink/practice-api/internal/auth"
	"github.com/carelink/practice-api/internal/config"
	"github.com/carelink/practice-api/internal/handler"
	middlewarepkg "github.com/carelink/practice-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UsersHandler
	Patients     *handler.PatientsHandler
	Cases        *handler.CasesHandler
	Appointments *handler.AppointmentsHandler
	Exams        *handler.ExamsHandler
	Tasks        *handler.TasksHandler
	Directory    *handler.DirectoryHandler
}

// Register wires all HTTP routes. Every /api route sits behind the session
// middleware plus a per-resource permission gate.
func Register(e *echo.Echo, cfg *config.Config, sessions *authpkg.SessionManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, map[string]any{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/auth/login", handlers.Auth.Login, middlewarepkg.LoginRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst))
	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/logout", handlers.Auth.Logout)
	e.GET("/auth/me", handlers.Auth.Me, middlewarepkg.Session(sessions))

	api := e.Group("/api", middlewarepkg.Session(sessions))

	users := api.Group("/users", middlewarepkg.RequireAccess(authpkg.ResourceUsers, authpkg.ActionRead))
	users.GET("", handlers.Users.List)
	users.GET("/:id", handlers.Users.Get)
	users.POST("", handlers.Users.Create, middlewarepkg.RequireAccess(authpkg.ResourceUsers, authpkg.ActionWrite))
	users.PUT("/:id", handlers.Users.Update, middlewarepkg.RequireAccess(authpkg.ResourceUsers, authpkg.ActionWrite))
	users.PATCH("/:id", handlers.Users.Update, middlewarepkg.RequireAccess(authpkg.ResourceUsers, authpkg.ActionWrite))
	users.DELETE("/:id", handlers.Users.Delete, middlewarepkg.RequireAccess(authpkg.ResourceUsers, authpkg.ActionDelete))

	patients := api.Group("/patients", middlewarepkg.RequireAccess(authpkg.ResourcePatients, authpkg.ActionRead))
	patients.GET("", handlers.Patients.List)
	patients.GET("/:id", handlers.Patients.Get)
	patients.POST("", handlers.Patients.Create, middlewarepkg.RequireAccess(authpkg.ResourcePatients, authpkg.ActionWrite))
	patients.PUT("/:id", handlers.Patients.Update, middlewarepkg.RequireAccess(authpkg.ResourcePatients, authpkg.ActionWrite))
	patients.PATCH("/:id", handlers.Patients.Update, middlewarepkg.RequireAccess(authpkg.ResourcePatients, authpkg.ActionWrite))
	patients.DELETE("/:id", handlers.Patients.Delete, middlewarepkg.RequireAccess(authpkg.ResourcePatients, authpkg.ActionDelete))
	patients.GET("/:id/cases", handlers.Cases.ListByPatient, middlewarepkg.RequireAccess(authpkg.ResourceCases, authpkg.ActionRead))
	patients.GET("/:id/appointments", handlers.Appointments.ListByPatient, middlewarepkg.RequireAccess(authpkg.ResourceAppointments, authpkg.ActionRead))
	patients.GET("/:id/exams", handlers.Exams.ListByPatient, middlewarepkg.RequireAccess(authpkg.ResourceExams, authpkg.ActionRead))

	cases := api.Group("/cases", middlewarepkg.RequireAccess(authpkg.ResourceCases, authpkg.ActionRead))
	cases.GET("", handlers.Cases.List)
	cases.GET("/:id", handlers.Cases.Get)
	cases.POST("", handlers.Cases.Create, middlewarepkg.RequireAccess(authpkg.ResourceCases, authpkg.ActionWrite))
	cases.PUT("/:id", handlers.Cases.Update, middlewarepkg.RequireAccess(authpkg.ResourceCases, authpkg.ActionWrite))
	cases.PATCH("/:id", handlers.Cases.Update, middlewarepkg.RequireAccess(authpkg.ResourceCases, authpkg.ActionWrite))
	cases.DELETE("/:id", handlers.Cases.Delete, middlewarepkg.RequireAccess(authpkg.ResourceCases, authpkg.ActionDelete))

	appointments := api.Group("/appointments", middlewarepkg.RequireAccess(authpkg.ResourceAppointments, authpkg.ActionRead))
	appointments.GET("", handlers.Appointments.List)
	appointments.GET("/:id", handlers.Appointments.Get)
	appointments.POST("", handlers.Appointments.Create, middlewarepkg.RequireAccess(authpkg.ResourceAppointments, authpkg.ActionWrite))
	appointments.PUT("/:id", handlers.Appointments.Update, middlewarepkg.RequireAccess(authpkg.ResourceAppointments, authpkg.ActionWrite))
	appointments.PATCH("/:id", handlers.Appointments.Update, middlewarepkg.RequireAccess(authpkg.ResourceAppointments, authpkg.ActionWrite))
	appointments.DELETE("/:id", handlers.Appointments.Delete, middlewarepkg.RequireAccess(authpkg.ResourceAppointments, authpkg.ActionDelete))

	exams := api.Group("/exams", middlewarepkg.RequireAccess(authpkg.ResourceExams, authpkg.ActionRead))
	exams.GET("", handlers.Exams.List)
	exams.GET("/:id", handlers.Exams.Get)
	exams.POST("", handlers.Exams.Create, middlewarepkg.RequireAccess(authpkg.ResourceExams, authpkg.ActionWrite))
	exams.PUT("/:id", handlers.Exams.Update, middlewarepkg.RequireAccess(authpkg.ResourceExams, authpkg.ActionWrite))
	exams.PATCH("/:id", handlers.Exams.Update, middlewarepkg.RequireAccess(authpkg.ResourceExams, authpkg.ActionWrite))
	exams.DELETE("/:id", handlers.Exams.Delete, middlewarepkg.RequireAccess(authpkg.ResourceExams, authpkg.ActionDelete))

	tasks := api.Group("/tasks", middlewarepkg.RequireAccess(authpkg.ResourceTasks, authpkg.ActionRead))
	tasks.GET("", handlers.Tasks.List)
	tasks.GET("/:id", handlers.Tasks.Get)
	tasks.POST("", handlers.Tasks.Create, middlewarepkg.RequireAccess(authpkg.ResourceTasks, authpkg.ActionWrite))
	tasks.PUT("/:id", handlers.Tasks.Update, middlewarepkg.RequireAccess(authpkg.ResourceTasks, authpkg.ActionWrite))
	tasks.PATCH("/:id", handlers.Tasks.Update, middlewarepkg.RequireAccess(authpkg.ResourceTasks, authpkg.ActionWrite))
	tasks.DELETE("/:id", handlers.Tasks.Delete, middlewarepkg.RequireAccess(authpkg.ResourceTasks, authpkg.ActionDelete))

	physicians := api.Group("/physicians", middlewarepkg.RequireAccess(authpkg.ResourcePhysicians, authpkg.ActionRead))
	physicians.GET("", handlers.Directory.ListPhysicians)
	physicians.GET("/:id", handlers.Directory.GetPhysician)
	physicians.POST("", handlers.Directory.CreatePhysician, middlewarepkg.RequireAccess(authpkg.ResourcePhysicians, authpkg.ActionWrite))
	physicians.PUT("/:id", handlers.Directory.UpdatePhysician, middlewarepkg.RequireAccess(authpkg.ResourcePhysicians, authpkg.ActionWrite))
	physicians.PATCH("/:id", handlers.Directory.UpdatePhysician, middlewarepkg.RequireAccess(authpkg.ResourcePhysicians, authpkg.ActionWrite))
	physicians.DELETE("/:id", handlers.Directory.DeletePhysician, middlewarepkg.RequireAccess(authpkg.ResourcePhysicians, authpkg.ActionDelete))

	attorneys := api.Group("/attorneys", middlewarepkg.RequireAccess(authpkg.ResourceAttorneys, authpkg.ActionRead))
	attorneys.GET("", handlers.Directory.ListAttorneys)
	attorneys.GET("/:id", handlers.Directory.GetAttorney)
	attorneys.POST("", handlers.Directory.CreateAttorney, middlewarepkg.RequireAccess(authpkg.ResourceAttorneys, authpkg.ActionWrite))
	attorneys.PUT("/:id", handlers.Directory.UpdateAttorney, middlewarepkg.RequireAccess(authpkg.ResourceAttorneys, authpkg.ActionWrite))
	attorneys.PATCH("/:id", handlers.Directory.UpdateAttorney, middlewarepkg.RequireAccess(authpkg.ResourceAttorneys, authpkg.ActionWrite))
	attorneys.DELETE("/:id", handlers.Directory.DeleteAttorney, middlewarepkg.RequireAccess(authpkg.ResourceAttorneys, authpkg.ActionDelete))

	payers := api.Group("/payers", middlewarepkg.RequireAccess(authpkg.ResourcePayers, authpkg.ActionRead))
	payers.GET("", handlers.Directory.ListPayers)
	payers.GET("/:id", handlers.Directory.GetPayer)
	payers.POST("", handlers.Directory.CreatePayer, middlewarepkg.RequireAccess(authpkg.ResourcePayers, authpkg.ActionWrite))
	payers.PUT("/:id", handlers.Directory.UpdatePayer, middlewarepkg.RequireAccess(authpkg.ResourcePayers, authpkg.ActionWrite))
	payers.PATCH("/:id", handlers.Directory.UpdatePayer, middlewarepkg.RequireAccess(authpkg.ResourcePayers, authpkg.ActionWrite))
	payers.DELETE("/:id", handlers.Directory.DeletePayer, middlewarepkg.RequireAccess(authpkg.ResourcePayers, authpkg.ActionDelete))

	facilities := api.Group("/facilities", middlewarepkg.RequireAccess(authpkg.ResourceFacilities, authpkg.ActionRead))
	facilities.GET("", handlers.Directory.ListFacilities)
	facilities.GET("/:id", handlers.Directory.GetFacility)
	facilities.POST("", handlers.Directory.CreateFacility, middlewarepkg.RequireAccess(authpkg.ResourceFacilities, authpkg.ActionWrite))
	facilities.PUT("/:id", handlers.Directory.UpdateFacility, middlewarepkg.RequireAccess(authpkg.ResourceFacilities, authpkg.ActionWrite))
	facilities.PATCH("/:id", handlers.Directory.UpdateFacility, middlewarepkg.RequireAccess(authpkg.ResourceFacilities, authpkg.ActionWrite))
	facilities.DELETE("/:id", handlers.Directory.DeleteFacility, middlewarepkg.RequireAccess(authpkg.ResourceFacilities, authpkg.ActionDelete))

	statuses := api.Group("/statuses", middlewarepkg.RequireAccess(authpkg.ResourceStatuses, authpkg.ActionRead))
	statuses.GET("", handlers.Directory.ListStatuses)
	statuses.GET("/:id", handlers.Directory.GetStatus)
	statuses.POST("", handlers.Directory.CreateStatus, middlewarepkg.RequireAccess(authpkg.ResourceStatuses, authpkg.ActionWrite))
	statuses.PUT("/:id", handlers.Directory.UpdateStatus, middlewarepkg.RequireAccess(authpkg.ResourceStatuses, authpkg.ActionWrite))
	statuses.PATCH("/:id", handlers.Directory.UpdateStatus, middlewarepkg.RequireAccess(authpkg.ResourceStatuses, authpkg.ActionWrite))
	statuses.DELETE("/:id", handlers.Directory.DeleteStatus, middlewarepkg.RequireAccess(authpkg.ResourceStatuses, authpkg.ActionDelete))
}
