package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/ITZ-HURAIRAH18/LoanVerse/internal/adapter/http"
	mw "github.com/ITZ-HURAIRAH18/LoanVerse/internal/adapter/middleware"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/adapter/repository/mysql"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/config"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/infrastructure/cache"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/infrastructure/db"
	authUC "github.com/ITZ-HURAIRAH18/LoanVerse/internal/usecase/auth"
	categoryUC "github.com/ITZ-HURAIRAH18/LoanVerse/internal/usecase/category"
	dashboardUC "github.com/ITZ-HURAIRAH18/LoanVerse/internal/usecase/dashboard"
	loanUC "github.com/ITZ-HURAIRAH18/LoanVerse/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	users := mysql.NewUserRepository(gdb)
	categories := mysql.NewCategoryRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	auth := authUC.NewUsecase(users, []byte(cfg.JWTSecret), tokenTTL)
	loanSvc := loanUC.NewUsecase(loans, categories, uow)
	categorySvc := categoryUC.NewUsecase(categories, uow)
	dashboardSvc := dashboardUC.NewUsecase(users, loans, cfg.CurrencySymbol)

	if err := auth.SeedAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(auth, tokenTTL)
	loanH := httpadp.NewLoanHandler(loanSvc)
	categoryH := httpadp.NewCategoryHandler(categorySvc)
	dashboardH := httpadp.NewDashboardHandler(dashboardSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/signup", authH.Signup)
	api.POST("/login", authH.Login)
	api.GET("/loan-categories", categoryH.Options)

	authed := api.Group("", mw.AuthRequired(auth))
	authed.POST("/logout", authH.Logout)
	authed.GET("/user", authH.Me)
	authed.GET("/user-dashboard", dashboardH.User)
	authed.GET("/loan-history", loanH.History)
	authed.GET("/transaction-history", loanH.TransactionHistory)

	// Retries on mutating loan operations replay instead of re-running.
	mutating := []echo.MiddlewareFunc{}
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		mutating = append(mutating, mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}
	authed.POST("/apply-loan", loanH.Apply, mutating...)
	authed.POST("/pay-loan/:loan_id", loanH.Pay, mutating...)

	staff := authed.Group("", mw.StaffRequired())
	staff.GET("/admin-dashboard", dashboardH.Admin)
	staff.GET("/admin/customers", dashboardH.Customers)
	staff.GET("/loans", loanH.ListAll)
	staff.GET("/pending-loans", loanH.ListPending)
	staff.GET("/approved-loans", loanH.ListApproved)
	staff.GET("/rejected-loans", loanH.ListRejected)
	staff.GET("/user-loans", loanH.UserLoans)
	staff.POST("/process-loan/:loan_id/:action", loanH.Process, mutating...)
	staff.POST("/create-category", categoryH.Create)
	staff.GET("/categories", categoryH.List)
	staff.GET("/categories/:category_id", categoryH.Get)
	staff.POST("/categories/:category_id", categoryH.Update)
	staff.DELETE("/categories/:category_id", categoryH.Delete)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
