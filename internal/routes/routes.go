package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/config"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	"github.com/salonsuite/salon-scheduler/internal/handlers"
	infraRepo "github.com/salonsuite/salon-scheduler/internal/infra/repository"
	"github.com/salonsuite/salon-scheduler/internal/middleware"
	"github.com/salonsuite/salon-scheduler/internal/token"
	ucAppointment "github.com/salonsuite/salon-scheduler/internal/usecase/appointment"
	ucAuth "github.com/salonsuite/salon-scheduler/internal/usecase/auth"
	ucSalon "github.com/salonsuite/salon-scheduler/internal/usecase/salon"
	ucUser "github.com/salonsuite/salon-scheduler/internal/usecase/user"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	salonRepo := infraRepo.NewSalonGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(userRepo, tokens)

	createSalonUC := ucSalon.NewCreateSalon(salonRepo, userRepo, auditDispatcher)
	listSalonsUC := ucSalon.NewListSalons(salonRepo)
	getSalonUC := ucSalon.NewGetSalon(salonRepo)
	getMySalonUC := ucSalon.NewGetMySalon(salonRepo)
	updateSalonUC := ucSalon.NewUpdateSalon(salonRepo, auditDispatcher)
	deleteSalonUC := ucSalon.NewDeleteSalon(salonRepo, auditDispatcher)

	createUserUC := ucUser.NewCreateUser(userRepo, auditDispatcher)
	listUsersUC := ucUser.NewListUsers(userRepo)
	getUserUC := ucUser.NewGetUser(userRepo)
	updateUserUC := ucUser.NewUpdateUser(userRepo, auditDispatcher)
	deleteUserUC := ucUser.NewDeleteUser(userRepo, auditDispatcher)

	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	listBySalonUC := ucAppointment.NewListBySalon(appointmentRepo)
	listByEmployeeUC := ucAppointment.NewListByEmployee(appointmentRepo, userRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC)
	meHandler := handlers.NewMeHandler(userRepo, getMySalonUC)

	salonHandler := handlers.NewSalonHandler(
		createSalonUC,
		listSalonsUC,
		getSalonUC,
		updateSalonUC,
		deleteSalonUC,
	)

	userHandler := handlers.NewUserHandler(
		createUserUC,
		listUsersUC,
		getUserUC,
		updateUserUC,
		deleteUserUC,
	)

	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listBySalonUC,
		listByEmployeeUC,
		getAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		deleteAppointmentUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login",
			middleware.RateLimiter(rdb, log, 10, time.Minute),
			authHandler.Login,
		)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, userRepo))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetProfile)
			secured.GET("/me/salon", meHandler.GetMySalon)

			// ------------------------------
			// SALONS
			// ------------------------------
			salons := secured.Group("/salons")
			{
				salons.POST("", middleware.RequireRoles(access.RoleSuperAdmin), salonHandler.Create)
				salons.GET("", middleware.RequireRoles(access.RoleSuperAdmin), salonHandler.List)
				salons.GET("/:id", salonHandler.Get)
				salons.PUT("/:id", middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin), salonHandler.Update)
				salons.DELETE("/:id", middleware.RequireRoles(access.RoleSuperAdmin), salonHandler.Delete)
			}

			// ------------------------------
			// USERS
			// ------------------------------
			users := secured.Group("/users")
			users.Use(middleware.RequireRoles(
				access.RoleSuperAdmin,
				access.RoleAdmin,
				access.RoleReceptionist,
			))
			{
				users.POST("", userHandler.Create)
				users.GET("", userHandler.List)
				users.GET("/:id", userHandler.Get)
				users.PUT("/:id", userHandler.Update)
				users.DELETE("/:id", userHandler.Delete)
			}

			// ------------------------------
			// CLIENTS
			// ------------------------------
			clients := secured.Group("/clients")
			{
				clients.POST("", clientHandler.Create)
				clients.GET("", clientHandler.List)
				clients.GET("/:id", clientHandler.Get)
				clients.PUT("/:id", clientHandler.Update)
				clients.DELETE("/:id", middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin), clientHandler.Delete)
			}

			// ------------------------------
			// SERVICES (CATALOG)
			// ------------------------------
			services := secured.Group("/services")
			{
				services.GET("", serviceHandler.List)
				services.GET("/:id", serviceHandler.Get)
				services.POST("", middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin), serviceHandler.Create)
				services.PUT("/:id", middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin), serviceHandler.Update)
				services.DELETE("/:id", middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin), serviceHandler.Delete)
			}

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			appointments := secured.Group("/appointments")
			{
				appointments.POST("", appointmentHandler.Create)
				appointments.GET("/salon/:id", appointmentHandler.ListBySalon)
				appointments.GET("/employee/:id", appointmentHandler.ListByEmployee)
				appointments.GET("/:id", appointmentHandler.Get)
				appointments.PUT("/:id", appointmentHandler.Update)
				appointments.PATCH("/:id/cancel", appointmentHandler.Cancel)
				appointments.DELETE("/:id", middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin), appointmentHandler.Delete)
			}

			// ------------------------------
			// AUDIT
			// ------------------------------
			secured.GET("/audit-logs",
				middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin),
				auditLogsHandler.List,
			)
		}
	}
}
