package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberSwagger "github.com/gofiber/swagger"

	"github.com/hirebase/recruiting/api/http/handlers"
	"github.com/hirebase/recruiting/pkg/security/jwt"
)

// Deps собирает всё, что нужно для регистрации маршрутов.
type Deps struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Vacancy   *handlers.VacancyHandler
	Resume    *handlers.ResumeHandler
	Candidate *handlers.CandidateHandler
	Admin     *handlers.AdminHandler
	Health    *handlers.HealthHandler

	AuthMiddleware     fiber.Handler
	CORSOrigins        string
	RateLimitPerMinute int
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, d Deps) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if d.RateLimitPerMinute > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        d.RateLimitPerMinute,
			Expiration: time.Minute,
		}))
	}

	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", d.Health.Health)
	v1.Get("/ready", d.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", d.Auth.Register)
	a.Post("/login", d.Auth.Login)
	a.Post("/request-verify-token", d.Auth.RequestVerifyToken)
	a.Post("/verify", d.Auth.VerifyEmail)
	a.Post("/forgot-password", d.Auth.ForgotPassword)
	a.Post("/reset-password", d.Auth.ResetPassword)
	a.Get("/google/authorize", d.Auth.GoogleAuthorize)
	a.Get("/google/callback", d.Auth.GoogleCallback)
	a.Post("/logout", d.AuthMiddleware, d.Auth.Logout)

	// Всё ниже требует валидный токен.
	priv := v1.Group("", d.AuthMiddleware)

	u := priv.Group("/user")
	u.Get("/me", d.User.Me)
	u.Put("/me", d.User.UpdateMe)

	vg := priv.Group("/vacancy")
	vg.Post("", d.Vacancy.Create)
	vg.Get("", d.Vacancy.List)
	vg.Get("/:id", d.Vacancy.GetByID)
	vg.Put("/:id", d.Vacancy.Update)
	vg.Delete("/:id", d.Vacancy.Delete)

	rg := priv.Group("/resume")
	rg.Get("/labels", d.Resume.Labels)
	rg.Post("", d.Resume.Create)
	rg.Get("", d.Resume.List)
	rg.Put("", d.Resume.Update)
	rg.Get("/vacancy/:vacancyId", d.Resume.ListByStage)
	rg.Get("/:id", d.Resume.GetByID)
	rg.Delete("/:id", d.Resume.Delete)

	cg := priv.Group("/candidate")
	cg.Post("", d.Candidate.Create)
	cg.Get("/:id", d.Candidate.GetByID)
	cg.Put("/:id", d.Candidate.Update)
	cg.Delete("/:id", d.Candidate.Delete)

	adm := priv.Group("/admin", jwt.RequireAdmin())
	adm.Get("/users", d.Admin.ListUsers)
	adm.Put("/users/:id/active", d.Admin.SetUserActive)
	adm.Get("/vacancy", d.Admin.ListVacancies)
	adm.Delete("/vacancy/:id", d.Admin.DeleteVacancy)
	adm.Get("/resume", d.Admin.ListResumes)
	adm.Delete("/resume/:id", d.Admin.DeleteResume)
}
