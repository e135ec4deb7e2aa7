package routes

import (
	"field-dispatch-backend/internal/api/handlers"
	"field-dispatch-backend/internal/api/middleware"
	"field-dispatch-backend/internal/config"
	"field-dispatch-backend/internal/repository"
	"field-dispatch-backend/internal/scheduling"
	"field-dispatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator and clock
	validator := validator.New()
	clock := scheduling.SystemClock{}

	// Initialize repositories
	missionRepo := repository.NewMissionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	customFormRepo := repository.NewCustomFormRepository(db)

	// Initialize services
	missionService := service.NewMissionService(db, missionRepo, assignmentRepo, orderRepo, taxonomyRepo, customFormRepo, validator, clock)
	dispatchService := service.NewDispatchService(db, missionRepo, assignmentRepo, userRepo, clock)
	boardService := service.NewBoardService(missionRepo, assignmentRepo, taxonomyRepo, settingRepo)
	clientService := service.NewClientService(db, clientRepo, validator, clock)
	orderService := service.NewOrderService(db, orderRepo, clientRepo, validator, clock)
	taxonomyService := service.NewTaxonomyService(taxonomyRepo, validator, clock)
	settingService := service.NewSettingService(settingRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	missionHandler := handlers.NewMissionHandler(missionService, dispatchService, boardService)
	clientHandler := handlers.NewClientHandler(clientService)
	orderHandler := handlers.NewOrderHandler(orderService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)
	settingHandler := handlers.NewSettingHandler(settingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAuth(cfg))

	{
		// Mission routes: CRUD, dispatch operations and board queries. The
		// fixed paths come before the :id routes so gin matches them first.
		missions := v1.Group("/missions")
		{
			missions.PUT("/assign", missionHandler.AssignDay)
			missions.PUT("/re-arrang", missionHandler.Reorder)
			missions.PUT("/unassign", missionHandler.Unassign)
			missions.PUT("/update-mission-visibility", missionHandler.UpdateMissionVisibility)
			missions.PUT("/update-mission-affectation-visibility", missionHandler.UpdateAssignmentVisibility)
			missions.GET("/unaffected", missionHandler.Unaffected)
			missions.GET("/missions-detailed", missionHandler.Detailed)

			missions.POST("", missionHandler.CreateMission)
			missions.GET("/:id", missionHandler.GetMission)
			missions.PUT("/:id", missionHandler.UpdateMission)
			missions.DELETE("/:id", missionHandler.DeleteMission)
			missions.POST("/:id/unarchive", missionHandler.UnarchiveMission)
			missions.GET("/:id/duplicate", missionHandler.DuplicateMission)
		}

		// Client routes
		clients := v1.Group("/clients")
		{
			clients.GET("", clientHandler.ListClients)
			clients.POST("", clientHandler.CreateClient)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		// Taxonomy routes
		missionTypes := v1.Group("/mission-types")
		{
			missionTypes.GET("", taxonomyHandler.ListMissionTypes)
			missionTypes.POST("", taxonomyHandler.CreateMissionType)
			missionTypes.PUT("/:id", taxonomyHandler.UpdateMissionType)
			missionTypes.DELETE("/:id", taxonomyHandler.DeleteMissionType)
		}
		missionStatuses := v1.Group("/mission-statuses")
		{
			missionStatuses.GET("", taxonomyHandler.ListMissionStatuses)
			missionStatuses.POST("", taxonomyHandler.CreateMissionStatus)
			missionStatuses.PUT("/:id", taxonomyHandler.UpdateMissionStatus)
			missionStatuses.DELETE("/:id", taxonomyHandler.DeleteMissionStatus)
		}
		orderTypes := v1.Group("/order-types")
		{
			orderTypes.GET("", taxonomyHandler.ListOrderTypes)
			orderTypes.POST("", taxonomyHandler.CreateOrderType)
			orderTypes.PUT("/:id", taxonomyHandler.UpdateOrderType)
			orderTypes.DELETE("/:id", taxonomyHandler.DeleteOrderType)
		}
		orderStatuses := v1.Group("/order-statuses")
		{
			orderStatuses.GET("", taxonomyHandler.ListOrderStatuses)
			orderStatuses.POST("", taxonomyHandler.CreateOrderStatus)
			orderStatuses.PUT("/:id", taxonomyHandler.UpdateOrderStatus)
			orderStatuses.DELETE("/:id", taxonomyHandler.DeleteOrderStatus)
		}

		// Setting routes
		settings := v1.Group("/settings")
		{
			settings.GET("", settingHandler.ListSettings)
			settings.GET("/:key", settingHandler.GetSetting)
			settings.PUT("/:key", settingHandler.SetSetting)
		}
	}

	return router
}
