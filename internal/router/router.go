package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "penguin-pet/docs"
	"penguin-pet/internal/adapters/auth/session"
	mem "penguin-pet/internal/adapters/storage/memory"
	pg "penguin-pet/internal/adapters/storage/postgres"
	"penguin-pet/internal/config"
	"penguin-pet/internal/domain/accounts"
	"penguin-pet/internal/domain/chat"
	"penguin-pet/internal/domain/dashboard"
	"penguin-pet/internal/domain/pets"
	"penguin-pet/internal/domain/profiles"
	"penguin-pet/internal/middleware"
	"penguin-pet/internal/platform/logger"
	"penguin-pet/internal/ports/completion"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config
	Logger logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: sin completer el chat responde solo con reglas.
	Completer completion.Completer

	// Opcional: si no viene se crea uno sin sweeper (tests).
	RateLimiter *middleware.RateLimiter
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	sessions := session.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	r.Use(middleware.AuthContext(sessions, middleware.AuthOptions{
		CookieName: cfg.Auth.CookieName,
		DevHeader:  cfg.Auth.DevHeader,
	}))
	r.Use(middleware.AccessLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		userRepo    accounts.Repository
		petRepo     pets.Repository
		profileRepo profiles.Repository
	)
	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		profileRepo = pg.NewProfilesRepo(opts.DB)
	} else {
		userRepo = mem.NewUserRepo()
		petRepo = mem.NewPetRepo()
		profileRepo = mem.NewProfileRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	profilesSvc := profiles.NewService(profileRepo, friendDefaults(cfg.Friend))
	accountsSvc := accounts.NewService(userRepo, sessions, petsSvc, profilesSvc, accounts.Options{
		BcryptCost: cfg.Auth.BcryptCost,
		Logger:     log,
	})
	chatSvc := chat.NewService(profilesSvc, chat.Options{
		Completer:         opts.Completer,
		AITimeout:         cfg.AI.Timeout,
		MaxQuestionLength: cfg.Ask.MaxQuestionLength,
		Logger:            log,
	})
	dashboardSvc := dashboard.NewService(petsSvc, profilesSvc, dashboard.Options{
		DedicationMessage: cfg.Friend.DedicationMessage,
		Logger:            log,
	})

	limiter := opts.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(cfg.Ask.RateLimitPerMinute, time.Minute)
	}

	// Rutas por módulo
	accounts.RegisterRoutes(r, accountsSvc, accounts.CookieOptions{
		Name:   cfg.Auth.CookieName,
		Secure: cfg.Auth.CookieSecure,
	})
	pets.RegisterRoutes(r, petsSvc)
	profiles.RegisterRoutes(r, profilesSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)
	chat.RegisterRoutes(r, chatSvc, chat.HandlerOptions{
		AskTimeout: cfg.Ask.Timeout,
		RateLimit:  limiter.PerUser(),
	})

	return r
}

func friendDefaults(f config.FriendConfig) profiles.Defaults {
	d := profiles.Defaults{DisplayName: f.DisplayName}
	if b, ok := config.ParseBirthday(f.Birthday); ok {
		d.Birthday = &b
	}
	return d
}
