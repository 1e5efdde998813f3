package router

import (
	"context"

	"github.com/oksasatya/mentor-hub/internal/application"
	"github.com/oksasatya/mentor-hub/internal/container"
	handlers "github.com/oksasatya/mentor-hub/internal/interface/http"
	"github.com/oksasatya/mentor-hub/internal/router/modules"
	"github.com/oksasatya/mentor-hub/pkg/mailer"
)

type Services struct {
	Registration *application.RegistrationService
	Users        *application.UserService
	Mentors      *application.MentorService
	Auth         *application.AuthService
}

func buildServices() Services {
	uow := container.GetUnitOfWork()
	logger := container.GetLogger()

	// left as a nil interface when no publisher is configured
	var notifier application.WelcomeNotifier
	if pub := container.GetRabbitPub(); pub != nil {
		cfg := container.GetConfig()
		notifier = mailer.NewQueueNotifier(pub, cfg.CompanyName, cfg.DashboardURL)
	}

	return Services{
		Registration: application.NewRegistrationService(uow, notifier, logger),
		Users:        application.NewUserService(uow),
		Mentors:      application.NewMentorService(uow, logger),
		Auth:         application.NewAuthService(uow, container.GetJWT(), logger),
	}
}

func healthChecks() map[string]modules.Pinger {
	checks := map[string]modules.Pinger{}
	if pool := container.GetPGPool(); pool != nil {
		checks["postgres"] = pool.Ping
	}
	if rdb := container.GetRedis(); rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return checks
}

// InitModules builds every module from the container and adds it to the registry.
// Call it once at startup, after the container is populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	svc := buildServices()

	r.Add(modules.NewUserModule(handlers.NewUserHandler(svc.Registration, svc.Users, logger), container.GetJWT()))
	r.Add(modules.NewMentorModule(handlers.NewMentorHandler(svc.Mentors, logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, logger, cfg.CookieDomain, cfg.CookieSecure)))
	r.Add(modules.NewDebugModule(cfg.DebugMetricsEnabled, healthChecks()))
}
