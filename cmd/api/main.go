package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/siteledger/siteledger-backend-go/internal/config"
	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/domain/user"
	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
	appHTTP "github.com/siteledger/siteledger-backend-go/internal/handler/http"
	"github.com/siteledger/siteledger-backend-go/internal/payroll"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/database"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/jwt"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/storage"
	"github.com/siteledger/siteledger-backend-go/internal/repository/memory"
	"github.com/siteledger/siteledger-backend-go/internal/repository/postgresql"
	advanceService "github.com/siteledger/siteledger-backend-go/internal/service/advance"
	attendanceService "github.com/siteledger/siteledger-backend-go/internal/service/attendance"
	authService "github.com/siteledger/siteledger-backend-go/internal/service/auth"
	dashboardService "github.com/siteledger/siteledger-backend-go/internal/service/dashboard"
	employeeService "github.com/siteledger/siteledger-backend-go/internal/service/employee"
	"github.com/siteledger/siteledger-backend-go/internal/service/file"
	paymentService "github.com/siteledger/siteledger-backend-go/internal/service/payment"
	reportService "github.com/siteledger/siteledger-backend-go/internal/service/report"
	subscriptionService "github.com/siteledger/siteledger-backend-go/internal/service/subscription"
	vehicleService "github.com/siteledger/siteledger-backend-go/internal/service/vehicle"
)

type repositories struct {
	users      user.UserRepository
	employees  employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	advances   advance.AdvanceRepository
	payments   payment.PaymentRepository
	vehicles   vehicle.VehicleRepository
	fuel       vehicle.FuelRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var repos repositories
	switch cfg.App.Mode {
	case "demo":
		// Session-only store: everything lives in memory and dies with the
		// process.
		repos = repositories{
			users:      memory.NewUserRepository(),
			employees:  memory.NewEmployeeRepository(),
			attendance: memory.NewAttendanceRepository(),
			advances:   memory.NewAdvanceRepository(),
			payments:   memory.NewPaymentRepository(),
			vehicles:   memory.NewVehicleRepository(),
			fuel:       memory.NewFuelRepository(),
		}
	default:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		repos = repositories{
			users:      postgresql.NewUserRepository(db),
			employees:  postgresql.NewEmployeeRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			advances:   postgresql.NewAdvanceRepository(db),
			payments:   postgresql.NewPaymentRepository(db),
			vehicles:   postgresql.NewVehicleRepository(db),
			fuel:       postgresql.NewFuelRepository(db),
		}
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()
	calc := payroll.NewCalculator(payroll.HalfDayPolicy(cfg.Payroll.HalfDayPolicy))
	now := time.Now

	fileSvc := file.NewFileService(fileStorage)
	employeeSvc := employeeService.NewEmployeeService(repos.employees, repos.attendance, repos.advances, fileSvc, calc, hub, now)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employees, attendanceService.EditWindow(cfg.Payroll.EditWindow), hub, now)
	advanceSvc := advanceService.NewAdvanceService(repos.advances, repos.employees, hub)
	paymentSvc := paymentService.NewPaymentService(repos.payments, repos.employees, repos.attendance, repos.advances, calc, hub, now)
	vehicleSvc := vehicleService.NewVehicleService(repos.vehicles, repos.fuel, hub)
	reportSvc := reportService.NewReportService(repos.employees, repos.attendance, repos.advances, repos.payments, calc)
	dashboardSvc := dashboardService.NewDashboardService(repos.employees, repos.attendance, repos.advances, repos.vehicles, repos.fuel, calc, now)
	authSvc := authService.NewAuthService(repos.users, jwtService, cfg.Auth.BootstrapAdminEmail, cfg.Auth.AdminAccessCode)
	subscriptionSvc := subscriptionService.NewSubscriptionService(hub, employeeSvc, attendanceSvc, advanceSvc, paymentSvc, vehicleSvc)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Advance:    appHTTP.NewAdvanceHandler(advanceSvc),
		Payment:    appHTTP.NewPaymentHandler(paymentSvc),
		Vehicle:    appHTTP.NewVehicleHandler(vehicleSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Events:     appHTTP.NewEventsHandler(subscriptionSvc, jwtService),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error: ", err)
	}
}
