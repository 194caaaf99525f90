package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/worklogix/attendance-backend-go/internal/config"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
	"github.com/worklogix/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/worklogix/attendance-backend-go/internal/handler/http"
	"github.com/worklogix/attendance-backend-go/internal/pkg/aditus"
	"github.com/worklogix/attendance-backend-go/internal/pkg/cron"
	"github.com/worklogix/attendance-backend-go/internal/pkg/database"
	"github.com/worklogix/attendance-backend-go/internal/pkg/jwt"
	"github.com/worklogix/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/worklogix/attendance-backend-go/internal/service/auth"
	passService "github.com/worklogix/attendance-backend-go/internal/service/pass"
	userService "github.com/worklogix/attendance-backend-go/internal/service/user"
	workService "github.com/worklogix/attendance-backend-go/internal/service/work"
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
	passRepo := postgresql.NewPassRepository(db)
	workRepo := postgresql.NewWorkRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	calendar := workService.NewCalendar(fixtures.NationalHolidays())

	var daySource workService.DaySource
	switch cfg.Attendance.Source {
	case "feed":
		feedClient := aditus.NewClient(cfg.Attendance.FeedURL, cfg.Attendance.FeedAPIKey)
		daySource = workService.NewFeedSource(feedClient)
	default:
		daySource = workService.NewPassSource(passRepo)
	}

	var works work.WorkService = workService.NewWorkService(workRepo, userRepo, daySource, calendar)
	passes := passService.NewPassService(passRepo)
	users := userService.NewUserService(userRepo)
	auths := authService.NewAuthService(userRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(auths, jwtService)
	passHandler := appHTTP.NewPassHandler(passes)
	workHandler := appHTTP.NewWorkHandler(works, users, userRepo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("evict-onsite-cache", time.Minute, passes.EvictOnsite)
	scheduler.AddJob("evict-user-cache", 3*time.Hour, users.EvictCache)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		FrontendURL: cfg.App.FrontendURL,
		Env:         cfg.App.Env,
	}, jwtService, authHandler, passHandler, workHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
