package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/mentor-hub/config"
	"github.com/oksasatya/mentor-hub/internal/application"
	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	pginfra "github.com/oksasatya/mentor-hub/internal/infrastructure/postgres"
	"github.com/oksasatya/mentor-hub/pkg/helpers"
)

func strPtr(s string) *string { return &s }

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
		AppName:     cfg.AppName + "-seed",
		MaxConns:    2,
		MaxConnLife: cfg.DBMaxConnLife,
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	svc := application.NewRegistrationService(pginfra.NewUnitOfWork(pool), nil, logger)

	years, rate := 8, 45.0
	accounts := []entity.Registration{
		{
			FullName:        "Demo Mentor",
			Email:           "mentor@example.com",
			Password:        "password123",
			Bio:             strPtr("Backend engineer, happy to review Go code."),
			Location:        strPtr("Jakarta"),
			IsMentor:        true,
			Skills:          strPtr("go,postgresql,distributed systems"),
			Expertise:       strPtr("backend"),
			ExperienceYears: &years,
			LanguagesSpoken: strPtr("English, Indonesian"),
			Availability:    strPtr("weekday evenings"),
			HourlyRate:      &rate,
		},
		{
			FullName: "Demo Mentee",
			Email:    "mentee@example.com",
			Password: "password123",
		},
	}

	for _, acc := range accounts {
		res, err := svc.Register(ctx, acc)
		if errors.Is(err, application.ErrDuplicateEmail) {
			fmt.Printf("already seeded: %s\n", acc.Email)
			continue
		}
		if err != nil {
			log.Fatalf("failed to seed %s: %v", acc.Email, err)
		}
		fmt.Printf("seeded user: id=%d email=%s password=%s mentor=%v\n", res.User.ID, res.User.Email, acc.Password, res.User.IsMentor)
		if res.MentorProfile != nil {
			fmt.Printf("seeded mentor profile: id=%d\n", res.MentorProfile.ID)
		}
	}
}
