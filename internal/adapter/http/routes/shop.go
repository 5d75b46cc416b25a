package routes

import (
	"rvroofworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathAdvisors  = "/advisors"
	PathJobs      = "/jobs"
	PathEstimates = "/estimates"
)

func addShopRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, advisorHandler *handlers.AdvisorHandler, jobHandler *handlers.PreConfiguredJobHandler, estimateHandler *handlers.EstimateHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.POST("", customerHandler.CreateCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	advisors := rg.Group(PathAdvisors)
	{
		advisors.GET("", advisorHandler.ListAdvisors)
		advisors.GET("/:id", advisorHandler.GetAdvisor)
		advisors.POST("", advisorHandler.CreateAdvisor)
		advisors.PUT("/:id", advisorHandler.UpdateAdvisor)
		advisors.DELETE("/:id", advisorHandler.DeleteAdvisor)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.POST("", jobHandler.CreateJob)
		jobs.PUT("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
	}

	estimates := rg.Group(PathEstimates)
	{
		// Static routes must be registered before the /:id wildcard.
		estimates.GET("/new", estimateHandler.NewEstimate)
		estimates.POST("/prefill", estimateHandler.PrefillEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	}
}
