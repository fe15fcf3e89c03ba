package main

import (
	"fmt"
	"net/http"

	"github.com/timecardhq/timecard-backend-go/internal/config"
	appHTTP "github.com/timecardhq/timecard-backend-go/internal/handler/http"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/clock"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/database"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/jwt"
	"github.com/timecardhq/timecard-backend-go/internal/repository/postgresql"
	authService "github.com/timecardhq/timecard-backend-go/internal/service/auth"
	reportService "github.com/timecardhq/timecard-backend-go/internal/service/report"
	scheduleService "github.com/timecardhq/timecard-backend-go/internal/service/schedule"
	timeentryService "github.com/timecardhq/timecard-backend-go/internal/service/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/service/timesheet"
	userService "github.com/timecardhq/timecard-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calc := timesheet.NewCalculator(timesheet.SplitPerEntry, clock.System())

	authSvc := authService.NewAuthService(db, userRepo, jwtService, refreshTokenRepo)
	userSvc := userService.NewUserService(userRepo)
	timeEntrySvc := timeentryService.NewTimeEntryService(timeEntryRepo, userRepo, calc, clock.System())
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, userRepo, calc)
	reportSvc := reportService.NewReportService(timeEntryRepo, userRepo, calc, clock.System())

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		userHandler,
		timeEntryHandler,
		scheduleHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
