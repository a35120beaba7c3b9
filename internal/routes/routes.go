package routes

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gearguard/internal/controllers"
	"gearguard/internal/listeners"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
	appwebsocket "gearguard/pkg/websocket"
)

// InitRouter wires repositories, services and controllers and mounts them under /api.
// now is the clock used by the dashboard; nil means time.Now. A nil hub disables the live
// board feed and request events are dropped. The returned bus is nil in that case.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	cacheRepository repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	hub *appwebsocket.Hub,
	logger *zap.Logger,
	cfg *config.Config,
	now func() time.Time,
) *eventbus.Bus {
	logger.Info("InitRouter: mounting routes")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger.Named("auth"))
	txManager := repositories.NewTxManager(dbConn)

	// --- repositories ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	categoryRepo := repositories.NewCategoryRepository(dbConn, logger)
	teamRepo := repositories.NewTeamRepository(dbConn, logger)
	workCenterRepo := repositories.NewWorkCenterRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	requestRepo := repositories.NewMaintenanceRequestRepository(dbConn, logger)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)

	var bus *eventbus.Bus
	var publisher eventbus.Publisher = eventbus.Nop{}
	if hub != nil {
		bus = eventbus.New(logger.Named("events"))
		listeners.NewBoardListener(hub, logger.Named("board")).Register(bus)
		publisher = bus
	}

	// --- services ---
	userService := services.NewUserService(userRepo, logger)
	authService := services.NewAuthService(userRepo, cacheRepository, jwtSvc, cfg.Auth, logger.Named("auth"))
	categoryService := services.NewCategoryService(categoryRepo, logger)
	teamService := services.NewTeamService(teamRepo, logger)
	workCenterService := services.NewWorkCenterService(workCenterRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	requestService := services.NewMaintenanceRequestService(txManager, requestRepo, equipmentRepo, publisher, logger.Named("requests"))
	worksheetService := services.NewWorksheetService(requestRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, now, logger)
	reportService := services.NewReportService(requestRepo, dashboardRepo, logger)

	// --- controllers ---
	authCtrl := controllers.NewAuthController(authService, userService, logger.Named("auth"))
	userCtrl := controllers.NewUserController(userService, logger)
	categoryCtrl := controllers.NewCategoryController(categoryService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	workCenterCtrl := controllers.NewWorkCenterController(workCenterService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	requestCtrl := controllers.NewMaintenanceRequestController(requestService, worksheetService, logger.Named("requests"))
	dashboardCtrl := controllers.NewDashboardController(dashboardService, reportService, logger)

	loginLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.Auth.RateLimitPerSecond), cfg.Auth.RateLimitBurst)

	// --- routers ---
	runAuthRouter(api, authCtrl, authMW, loginLimiter)

	secureGroup := api.Group("", authMW.Auth)
	runUserRouter(secureGroup, userCtrl, authMW)
	runCategoryRouter(secureGroup, categoryCtrl)
	runTeamRouter(secureGroup, teamCtrl, authMW)
	runWorkCenterRouter(secureGroup, workCenterCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl)
	runRequestRouter(secureGroup, requestCtrl)
	runDashboardRouter(secureGroup, dashboardCtrl)

	if hub != nil {
		feedCtrl := controllers.NewBoardFeedController(hub, jwtSvc, cfg.Server.AllowedOrigins, logger.Named("board"))
		api.GET("/ws", feedCtrl.ServeWs)
	}

	e.GET("/healthz", controllers.NewHealthController(dbConn, logger).Healthz)

	logger.Info("InitRouter: routes mounted")
	return bus
}
