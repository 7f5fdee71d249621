package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondOK writes the uniform success envelope. A nil data is omitted.
func respondOK(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"message": message, "success": true}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError maps an application error to its HTTP status and the
// uniform error envelope. Unknown errors become an opaque 500; nothing
// crashes the process.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		body := gin.H{"message": appErr.Message, "success": false}
		if appErr.Kind == apperrors.KindIneligible {
			body["nextEligibleDate"] = appErr.NextEligibleDate
		}
		c.JSON(statusForKind(appErr.Kind), body)
		return
	}
	log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "success": false})
}

// Duplicate responses/registrations and capacity violations are
// conflicts semantically but return 400 to match the original API
// contract.
func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindValidation, apperrors.KindConflict, apperrors.KindIneligible:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// currentUser reads the authenticated identity set by the JWT
// middleware. The false return aborts the request with 401.
func currentUser(c *gin.Context) (primitive.ObjectID, string, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated", "success": false})
		return primitive.NilObjectID, "", false
	}
	return id, c.GetString(middleware.ContextUserRole), true
}

// pathID parses an ObjectID path parameter. The false return aborts the
// request with 400.
func pathID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format", "success": false})
		return primitive.NilObjectID, false
	}
	return id, true
}
