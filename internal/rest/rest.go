package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func failResponse(message string) ResponseError {
	return ResponseError{Status: "fail", Message: message}
}

// ownerFromContext reads the authenticated user id set by the auth middleware.
func ownerFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	owner, ok := userID.(string)
	return owner, ok
}

// getStatusCode will get the http status code of the error raised by a usecase
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)

	var entityErr domain.EntityError
	if errors.As(err, &entityErr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
