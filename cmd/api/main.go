package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kennarhq/attendance-backend-go/internal/config"
	appHTTP "github.com/kennarhq/attendance-backend-go/internal/handler/http"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/cron"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/database"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/email"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/jwt"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/metrics"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/queue"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/sse"
	"github.com/kennarhq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kennarhq/attendance-backend-go/internal/service/attendance"
	authService "github.com/kennarhq/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/kennarhq/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/kennarhq/attendance-backend-go/internal/service/employee"
	"github.com/kennarhq/attendance-backend-go/internal/service/notification"
	summaryService "github.com/kennarhq/attendance-backend-go/internal/service/summary"
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
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	var eventQueue queue.Queue
	switch cfg.Queue.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Queue.RedisAddr})
		eventQueue = queue.NewRedisQueue(client, cfg.Queue.RedisKey)
	default:
		eventQueue = queue.NewInMemory(256)
	}

	m := metrics.New()
	hub := sse.NewHub()

	worker := notification.NewWorker(eventQueue, hub)
	if err := worker.Start(); err != nil {
		log.Fatal("Failed to start notification worker:", err)
	}
	defer worker.Stop()

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, eventQueue, m, cfg.Attendance.CutoffSeconds)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo)
	summarySvc := summaryService.NewSummaryService(attendanceRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo)
	authSvc := authService.NewAuthService(adminRepo, jwtService, emailService)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App.Env,
		jwtService,
		m,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewSummaryHandler(summarySvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewKioskHandler(hub, m),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
