// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/rukun-warga/backend/config"
	"github.com/rukun-warga/backend/internal/application/usecase/auth"
	"github.com/rukun-warga/backend/internal/application/usecase/fundreport"
	"github.com/rukun-warga/backend/internal/application/usecase/member"
	"github.com/rukun-warga/backend/internal/application/usecase/period"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
	"github.com/rukun-warga/backend/internal/infra/server/router"
	"github.com/rukun-warga/backend/internal/integration/adapters"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/controller"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/middleware"
	"github.com/rukun-warga/backend/internal/integration/export"
	"github.com/rukun-warga/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	adminRepo := persistence.NewAdminRepository(db)
	memberRepo := persistence.NewMemberRepository(db)
	periodRepo := persistence.NewPeriodRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	fundRepo := persistence.NewFundTransactionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	exportSink := export.NewLocalSink(cfg.Export.Dir)

	// Create auth use cases
	registerUseCase := auth.NewRegisterAdminUseCase(adminRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginAdminUseCase(adminRepo, passwordService, tokenService)

	// Create member use cases
	listMembersUseCase := member.NewListMembersUseCase(memberRepo, periodRepo)
	createMemberUseCase := member.NewCreateMemberUseCase(memberRepo, periodRepo)
	updateMemberUseCase := member.NewUpdateMemberUseCase(memberRepo)
	deleteMemberUseCase := member.NewDeleteMemberUseCase(memberRepo)

	// Create period use cases
	listPeriodsUseCase := period.NewListPeriodsUseCase(periodRepo)
	getPeriodUseCase := period.NewGetPeriodUseCase(periodRepo)
	createPeriodUseCase := period.NewCreatePeriodUseCase(periodRepo, memberRepo)
	updatePeriodUseCase := period.NewUpdatePeriodUseCase(periodRepo)
	deletePeriodUseCase := period.NewDeletePeriodUseCase(periodRepo)
	listDrawsUseCase := period.NewListDrawsUseCase(periodRepo)
	markDrawnUseCase := period.NewMarkDrawnUseCase(periodRepo)

	// Create recap use cases
	resolvePeriodUseCase := recap.NewResolvePeriodUseCase(periodRepo)
	getRecapUseCase := recap.NewGetRecapUseCase(resolvePeriodUseCase, ledgerRepo)
	saveRecapUseCase := recap.NewSaveRecapUseCase(periodRepo, memberRepo, ledgerRepo)
	exportRecapUseCase := recap.NewExportRecapUseCase(getRecapUseCase)

	// Create fund report use cases
	listTransactionsUseCase := fundreport.NewListTransactionsUseCase(resolvePeriodUseCase, fundRepo)
	createTransactionUseCase := fundreport.NewCreateTransactionUseCase(fundRepo)
	updateTransactionUseCase := fundreport.NewUpdateTransactionUseCase(fundRepo)
	deleteTransactionUseCase := fundreport.NewDeleteTransactionUseCase(fundRepo)
	getSummaryUseCase := fundreport.NewGetSummaryUseCase(fundRepo)
	exportTransactionsUseCase := fundreport.NewExportTransactionsUseCase(listTransactionsUseCase)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase)

	memberController := controller.NewMemberController(
		listMembersUseCase,
		createMemberUseCase,
		updateMemberUseCase,
		deleteMemberUseCase,
	)

	periodController := controller.NewPeriodController(
		listPeriodsUseCase,
		getPeriodUseCase,
		createPeriodUseCase,
		updatePeriodUseCase,
		deletePeriodUseCase,
		listDrawsUseCase,
		markDrawnUseCase,
	)

	recapController := controller.NewRecapController(
		getRecapUseCase,
		saveRecapUseCase,
		exportRecapUseCase,
		exportSink,
	)

	fundController := controller.NewFundController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		getSummaryUseCase,
		exportTransactionsUseCase,
		exportSink,
	)

	// Create middleware
	// Use higher rate limits for the test environment to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, authController, memberController, periodController, recapController, fundController, loginRateLimiter, authMiddleware)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
