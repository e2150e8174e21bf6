package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/agustinbotella/articulos-api/internal/apierror"
	"github.com/agustinbotella/articulos-api/internal/query"
	"github.com/agustinbotella/articulos-api/internal/repository"
)

var validate = validator.New()

// bindQueryAndValidate binds query params and runs go-playground/validator
// tags. Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindQueryAndValidate(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(apierror.CodeInvalidRequest, "Parametros invalidos: "+err.Error()))
		return false
	}
	if err := validate.Struct(filter); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// responderError maps the service error taxonomy to HTTP responses. Internals
// (driver messages, DSNs) never reach the client.
func responderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, query.ErrMissingFilterCriteria):
		c.JSON(http.StatusBadRequest, apierror.New(apierror.CodeMissingFilter, err.Error()))
	case errors.Is(err, repository.ErrConexion):
		c.JSON(http.StatusServiceUnavailable, apierror.New(apierror.CodeUpstreamConnection, "No se pudo conectar con el catalogo"))
	case errors.Is(err, repository.ErrConsulta):
		c.JSON(http.StatusInternalServerError, apierror.New(apierror.CodeUpstreamQuery, "La consulta al catalogo fallo"))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New(apierror.CodeInternal, "Error interno del servidor"))
	}
}
