package main

import (
	"fmt"
	"net/http"

	"github.com/talentflow/hr-backend-go/internal/config"
	appHTTP "github.com/talentflow/hr-backend-go/internal/handler/http"
	"github.com/talentflow/hr-backend-go/internal/pkg/clock"
	"github.com/talentflow/hr-backend-go/internal/pkg/database"
	"github.com/talentflow/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/talentflow/hr-backend-go/internal/service/attendance"
	employeeService "github.com/talentflow/hr-backend-go/internal/service/employee"
	leaveService "github.com/talentflow/hr-backend-go/internal/service/leave"
	notificationService "github.com/talentflow/hr-backend-go/internal/service/notification"
	payrollService "github.com/talentflow/hr-backend-go/internal/service/payroll"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)

	clk := clock.System()
	notifier := notificationService.NewLogSink(nil)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, clk)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, db, clk, notifier)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk, notifier)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, leaveBalanceRepo, employeeRepo, db, clk, notifier)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		employeeHandler,
		payrollHandler,
		attendanceHandler,
		leaveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
