package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/config"
	appHTTP "github.com/clockwork-hr/timeclock-backend-go/internal/handler/http"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/jwt"
	"github.com/clockwork-hr/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/clockwork-hr/timeclock-backend-go/internal/service/auth"
	clockService "github.com/clockwork-hr/timeclock-backend-go/internal/service/clock"
	dashboardService "github.com/clockwork-hr/timeclock-backend-go/internal/service/dashboard"
	requestService "github.com/clockwork-hr/timeclock-backend-go/internal/service/request"
	userService "github.com/clockwork-hr/timeclock-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	clockEventRepo := postgresql.NewClockEventRepository(db)
	correctionRequestRepo := postgresql.NewCorrectionRequestRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, refreshTokenRepo)
	userSvc := userService.NewUserService(userRepo)
	clockSvc := clockService.NewClockService(clockEventRepo, time.Local)
	dashboardSvc := dashboardService.NewDashboardService(clockEventRepo, userRepo, time.Local)
	requestSvc := requestService.NewCorrectionRequestService(db, correctionRequestRepo, clockEventRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	clockHandler := appHTTP.NewClockHandler(clockSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	requestHandler := appHTTP.NewCorrectionRequestHandler(requestSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		authHandler,
		userHandler,
		clockHandler,
		dashboardHandler,
		requestHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
