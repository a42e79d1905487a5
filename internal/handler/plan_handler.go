package handler

import (
	"hospital-emr-backend/internal/plans"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ListPlans handles GET /api/subscription-plans. ?active=true limits the
// list to plans open for sale.
func ListPlans(c *gin.Context) {
	if c.Query("active") == "true" {
		utils.SuccessResponse(c, plans.Active())
		return
	}
	utils.SuccessResponse(c, plans.All())
}
