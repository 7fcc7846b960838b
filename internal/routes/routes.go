package routes

import (
	"github.com/gin-gonic/gin"

	"jobport/internal/authz"
	"jobport/internal/handlers"
	"jobport/internal/middleware"
	"jobport/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	businessHandler *handlers.BusinessHandler,
	verifyHandler *handlers.VerifyHandler,
	companyHandler *handlers.CompanyHandler,
	campaignHandler *handlers.CampaignHandler,
	jobHandler *handlers.JobHandler,
	taxonomyHandler *handlers.TaxonomyHandler,
	authService services.AuthService,
) *gin.Engine {

	// ---- public
	r.POST("/auth/users/login", authHandler.LoginUser)
	r.POST("/auth/business/login", authHandler.LoginBusiness)
	r.POST("/auth/refresh", authHandler.RefreshToken)
	r.POST("/auth/logout", authHandler.Logout)

	r.POST("/users/register", userHandler.Register)
	r.POST("/users/password/forgot", userHandler.ForgotPassword)
	r.POST("/users/password/reset", userHandler.ResetPassword)
	r.POST("/business/register", businessHandler.Register)

	// reference data and public listings
	r.GET("/provinces", taxonomyHandler.ListProvinces)
	r.GET("/provinces/:id/districts", taxonomyHandler.ListDistricts)
	r.GET("/categories", taxonomyHandler.ListCategories)
	r.GET("/fields", taxonomyHandler.ListFields)
	r.GET("/skills", taxonomyHandler.ListSkills)
	r.GET("/jobs", jobHandler.List)
	r.GET("/jobs/:id", jobHandler.GetByID)
	r.GET("/companies", companyHandler.List)
	r.GET("/companies/:id", companyHandler.GetByID)

	normalGate := middleware.RequireAccount(authService, authz.TypeAccountNormal)
	businessGate := middleware.RequireAccount(authService, authz.TypeAccountBusiness)

	// ---- job seekers
	users := r.Group("/users", normalGate)
	{
		users.GET("/me", userHandler.GetMe)
		users.PUT("/me", userHandler.UpdateMe)
	}

	// ---- businesses
	business := r.Group("/business", businessGate)
	{
		business.GET("/me", businessHandler.GetMe)
		business.PUT("/me", businessHandler.UpdateMe)
		business.POST("/verify/send", verifyHandler.Send)
		business.POST("/verify/confirm", verifyHandler.Confirm)
	}

	companies := r.Group("/companies", businessGate)
	{
		companies.POST("/", companyHandler.Create)
		companies.GET("/me", companyHandler.GetOwn)
		companies.PUT("/:id", companyHandler.Update)
		companies.DELETE("/:id", companyHandler.Delete)
	}

	campaigns := r.Group("/campaigns", businessGate)
	{
		campaigns.POST("/", campaignHandler.Create)
		campaigns.GET("/", campaignHandler.List)
		campaigns.GET("/:id", campaignHandler.GetByID)
		campaigns.PUT("/:id", campaignHandler.Update)
		campaigns.DELETE("/:id", campaignHandler.Delete)
	}

	jobs := r.Group("/jobs", businessGate)
	{
		jobs.POST("/", jobHandler.Create)
		jobs.GET("/mine", jobHandler.ListOwn)
		jobs.PUT("/:id", jobHandler.Update)
		jobs.DELETE("/:id", jobHandler.Delete)
		jobs.GET("/:id/export", jobHandler.ExportPDF)
	}

	// ---- admin (admin accounts log in through the business surface)
	admin := r.Group("/admin", businessGate,
		middleware.RequireRoles(authz.RoleAdmin, authz.RoleSuperUser),
	)
	{
		admin.GET("/users", userHandler.List)
		admin.GET("/users/count", userHandler.GetCount)
		admin.GET("/users/:id", userHandler.GetByID)
		admin.DELETE("/users/:id", userHandler.Delete)

		admin.GET("/business", businessHandler.List)
		admin.GET("/business/count", businessHandler.GetCount)
		admin.POST("/business/:id/approve", businessHandler.Approve)
		admin.DELETE("/business/:id", businessHandler.Delete)

		admin.POST("/jobs/:id/approve", jobHandler.Approve)

		admin.POST("/categories", taxonomyHandler.CreateCategory)
		admin.POST("/fields", taxonomyHandler.CreateField)
		admin.POST("/skills", taxonomyHandler.CreateSkill)
	}

	return r
}
