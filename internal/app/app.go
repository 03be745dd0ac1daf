package app

import (
	"os"
	"strings"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"
	"go-hrms/internal/report"
	"go-hrms/internal/shared/clock"
	"go-hrms/internal/shared/mailer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires stores, services, handlers and routes onto the router.
// Every store lives for the life of the process and is injected here;
// nothing holds package-level state.
func BuildApp(router *gin.Engine, auditLogger bootstrap.AuditLogger, logger *zap.Logger) error {
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig()))

	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	clk := clock.New()
	mail := mailer.FromEnv(logger)

	// --- Stores (seeded with the demo dataset) ---
	employeeStore := employee.NewStore(employee.SeedData())
	leaveStore := leave.NewStore(leave.SeedData())
	attendanceStore := attendance.NewStore(attendance.SeedData())
	sessionStore := auth.NewFileSessionStore(sessionFilePath())

	// --- Services ---
	employeeService := employee.NewService(employeeStore, logger)
	leaveService := leave.NewService(leaveStore, employeeStore, clk, mail, logger)
	attendanceService := attendance.NewService(attendanceStore, clk, logger)
	authService := auth.NewService(sessionStore, clk, auditLogger, logger)
	reportService := report.NewService(employeeStore, leaveStore, attendanceStore, attendanceService, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	authHandler := auth.NewHandler(authService, logger)
	reportHandler := report.NewHandler(reportService, logger)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, logger)
		report.RegisterRoutes(api, reportHandler, rbacService, logger)
	}

	return nil
}

func sessionFilePath() string {
	if path := os.Getenv("SESSION_FILE"); path != "" {
		return path
	}
	return ".hrms_session.json"
}

func corsConfig() cors.Config {
	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
