package main

import (
	"fmt"
	"net/http"

	"github.com/asistpro/asistencia-backend-go/internal/config"
	appHTTP "github.com/asistpro/asistencia-backend-go/internal/handler/http"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/jwt"
	"github.com/asistpro/asistencia-backend-go/internal/repository/postgresql"
	attendanceService "github.com/asistpro/asistencia-backend-go/internal/service/attendance"
	serviceAuth "github.com/asistpro/asistencia-backend-go/internal/service/auth"
	serviceCompany "github.com/asistpro/asistencia-backend-go/internal/service/company"
	"github.com/asistpro/asistencia-backend-go/internal/service/directory"
	employeeService "github.com/asistpro/asistencia-backend-go/internal/service/employee"
	holidayService "github.com/asistpro/asistencia-backend-go/internal/service/holiday"
	userService "github.com/asistpro/asistencia-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	qrCodeRepo := postgresql.NewQRCodeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(db, userRepo, employeeRepo, jwtService, refreshTokenRepo)
	companySvc := serviceCompany.NewCompanyService(companyRepo)
	departmentSvc := directory.NewDepartmentService(departmentRepo, companyRepo)
	positionSvc := directory.NewPositionService(positionRepo, departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, companyRepo, departmentRepo, positionRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo, companyRepo)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, qrCodeRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	positionHandler := appHTTP.NewPositionHandler(positionSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		companyHandler,
		departmentHandler,
		positionHandler,
		employeeHandler,
		userHandler,
		holidayHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
