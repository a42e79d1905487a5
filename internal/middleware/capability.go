package middleware

import (
	"net/http"
	"strconv"

	"hospital-emr-backend/internal/authz"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RequireCapability lets the request through only when the caller's role is
// granted action. Must run after AuthMiddleware.
func RequireCapability(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !authz.Allows(session.Role, action) {
			utils.AbortWithError(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Next()
	}
}

// RequireOwnHospital checks the hospital ID in the path parameter against
// the caller's hospital. Super admins may read any hospital.
func RequireOwnHospital(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		hospitalID, err := strconv.ParseUint(c.Param(param), 10, 32)
		if err != nil || hospitalID == 0 {
			utils.AbortWithError(c, http.StatusBadRequest, "Invalid hospital ID")
			return
		}

		if session.Role != models.RoleSuperAdmin && uint(hospitalID) != session.HospitalID {
			utils.AbortWithError(c, http.StatusForbidden, "Access denied: you don't have permission to access this hospital")
			return
		}

		c.Next()
	}
}
