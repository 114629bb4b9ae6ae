package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"clientdesk/internal/authz"
	"clientdesk/internal/handlers"
	"clientdesk/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	filesRoot string,
	leadHandler *handlers.LeadHandler,
	customerHandler *handlers.CustomerHandler,
	dealHandler *handlers.DealHandler,
	taskHandler *handlers.TaskHandler,
	appointmentHandler *handlers.AppointmentHandler,
	paymentHandler *handlers.PaymentHandler,
	activityHandler *handlers.ActivityHandler,
	pipelineHandler *handlers.PipelineHandler,
	dashboardHandler *handlers.DashboardHandler,
	userHandler *handlers.UserHandler,
	preferenceHandler *handlers.PreferenceHandler,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.Static("/files", filesRoot)

	// ---- protected
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.ReadOnlyGuard())

	// LEADS
	leads := r.Group("/leads")
	{
		leads.POST("/", leadHandler.Create)
		leads.GET("/", leadHandler.List)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PUT("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Archive)
		leads.POST("/:id/status", leadHandler.UpdateStatus)
		leads.POST("/:id/convert-to-client", leadHandler.ConvertToClient)
		leads.POST("/:id/convert-to-deal", leadHandler.ConvertToDeal)
	}

	// CUSTOMERS
	customers := r.Group("/customers")
	{
		customers.POST("/", customerHandler.Create)
		customers.GET("/", customerHandler.List)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PUT("/:id", customerHandler.Update)
	}

	// DEALS
	deals := r.Group("/deals")
	{
		deals.POST("/", dealHandler.Create)
		deals.GET("/", dealHandler.List)
		deals.GET("/:id", dealHandler.GetByID)
		deals.PUT("/:id", dealHandler.Update)
		deals.DELETE("/:id", dealHandler.Delete)
		deals.POST("/:id/stage", dealHandler.UpdateStage)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/", taskHandler.GetAll)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
		tasks.POST("/:id/status", taskHandler.ChangeStatus)
		tasks.POST("/:id/toggle-complete", taskHandler.ToggleComplete)
		tasks.POST("/:id/assign", taskHandler.Assign)
	}

	// APPOINTMENTS
	appointments := r.Group("/appointments")
	{
		appointments.POST("/", appointmentHandler.Create)
		appointments.GET("/", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.GetByID)
		appointments.PUT("/:id", appointmentHandler.Update)
	}

	// PAYMENTS
	payments := r.Group("/payments")
	{
		payments.POST("/", paymentHandler.Create)
		payments.GET("/", paymentHandler.List)
		payments.GET("/:id", paymentHandler.GetByID)
	}

	// ACTIVITIES
	r.GET("/activities", activityHandler.List)

	// PIPELINES (mgmt/admin create)
	pipelines := r.Group("/pipelines")
	{
		pipelines.GET("/", pipelineHandler.List)
		pipelines.GET("/:id", pipelineHandler.GetByID)
		pipelines.POST("/", middleware.RequireRoles(authz.RoleManagement, authz.RoleAdmin), pipelineHandler.Create)
	}

	// DASHBOARD
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/summary", dashboardHandler.GetSummary)
		dashboard.GET("/board", dashboardHandler.GetBoard)
	}

	// USERS (admin)
	users := r.Group("/users", middleware.RequireRoles(authz.RoleAdmin))
	{
		users.POST("/", userHandler.Create)
		users.GET("/", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
	}

	// PREFERENCES
	prefs := r.Group("/preferences")
	{
		prefs.GET("/action-types", preferenceHandler.GetActionTypes)
		prefs.PUT("/action-types", preferenceHandler.PutActionTypes)
	}

	return r
}
