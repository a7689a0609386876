package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"

	"references-archive/models"
)

const (
	textError           = `error`
	textOk              = `ok`
	codeSuccess         = 200
	codeBadRequestError = 400
	codeForbiddenError  = 403
	codeNotFound        = 404
	codeConflictError   = 409
	codeValidationError = 422
	codeInternalError   = 500
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  string
	Data     interface{}
	Code     int // not the http code
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a helper with the request validator and its English
// translator registered.
func NewHTTPHelper() *HTTPHelper {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

// GetStatusCode maps the domain error taxonomy to HTTP statuses.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		validation models.ErrorValidation
		conflict   models.ErrorConflict
		notFound   models.ErrorNotFound
		missing    models.ErrorMissingResource
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &missing):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)

	return u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textError, message, data, codeBadRequestError, `badRequest`)

	return u.SendResponse(res)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeValidationError,
		"code_type":    "validationError",
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendConflictError ...
// Send conflict response to consumers (operation refused, state unchanged).
func (u *HTTPHelper) SendConflictError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeConflictError, `conflict`)
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeForbiddenError, `forbidden`)
}

// SendInternalServerError ...
// Send internal server error response to consumers.
func (u *HTTPHelper) SendInternalServerError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeInternalError, `internalServerError`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeNotFound, `notFound`)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, codeSuccess, `success`)

	return u.SendResponse(res)
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	var resCode int
	switch res.Code {
	case codeSuccess:
		resCode = http.StatusOK
	case codeNotFound:
		resCode = http.StatusNotFound
	case codeConflictError:
		resCode = http.StatusConflict
	case codeForbiddenError:
		resCode = http.StatusForbidden
	case codeInternalError:
		resCode = http.StatusInternalServerError
	default:
		resCode = http.StatusBadRequest
	}

	res.C.JSON(resCode, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}
