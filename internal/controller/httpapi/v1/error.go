package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rf-toolkit/linkbudget/internal/entity/dto/v1"
	"github.com/rf-toolkit/linkbudget/internal/usecase/linkbudget"
	"github.com/rf-toolkit/linkbudget/internal/usecase/sessions"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

func ErrorResponse(c *gin.Context, err error) {
	var (
		validatorErr validator.ValidationErrors
		notValidErr  dto.NotValidError
		fieldErr     linkbudget.ValidationError
		storageErr   sessions.StorageError
	)

	switch {
	case errors.As(err, &fieldErr):
		msg := fieldErr.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &validatorErr):
		msg := validatorErr.Error()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &notValidErr):
		msg := notValidErr.Console.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &storageErr):
		msg := storageErr.Console.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: msg, Message: msg})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: "general error", Message: "general error"})
	}
}
