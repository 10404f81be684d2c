package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rf-toolkit/linkbudget/internal/audit"
	"github.com/rf-toolkit/linkbudget/internal/entity/dto/v1"
	"github.com/rf-toolkit/linkbudget/internal/usecase/linkbudget"
	"github.com/rf-toolkit/linkbudget/internal/usecase/sessions"
	"github.com/rf-toolkit/linkbudget/pkg/apperrors"
	"github.com/rf-toolkit/linkbudget/pkg/logger"
)

var ErrValidationLinkBudget = dto.NotValidError{Console: apperrors.CreateAppError("LinkBudgetAPI").WithMessage("invalid request payload")}

const (
	_lastCalculationKey     = "last_calculation"
	_noPreviousCalculation  = "No previous calculation"
	_internalErrorMessage   = "An internal error occurred. Please try again."
	_maxRequestBody         = 4 << 10
)

type linkBudgetRoutes struct {
	t          linkbudget.Feature
	s          sessions.Feature
	aud        *audit.Logger
	l          logger.Interface
	cookieName string
}

// NewLinkBudgetRoutes registers the legacy HTML endpoints on the engine root
// and the JSON endpoints on the API group.
func NewLinkBudgetRoutes(handler *gin.Engine, api *gin.RouterGroup, t linkbudget.Feature, s sessions.Feature, aud *audit.Logger, l logger.Interface, cookieName string) {
	r := &linkBudgetRoutes{t, s, aud, l, cookieName}

	handler.GET("/", r.form)
	handler.GET("/index.html", r.form)
	handler.POST("/calculate", r.calculateLegacy)

	h := api.Group("/linkbudget")
	{
		h.POST("", r.calculate)
		h.GET("/last", r.lastCalculation)
	}
}

func (r *linkBudgetRoutes) form(c *gin.Context) {
	renderFormPage(c)
}

// calculateLegacy preserves the wire behavior of the CGI program this service
// replaced: one line of key=value pairs (values not percent-decoded) in, a
// complete HTML document out, HTTP 200 even for handled errors.
func (r *linkBudgetRoutes) calculateLegacy(c *gin.Context) {
	token := sessionToken(c.GetHeader("Cookie"), r.cookieName)

	sess, err := r.s.Resolve(token)
	if err != nil {
		r.internalErrorPage(c, err, "calculateLegacy - Resolve")

		return
	}

	// the cookie decision is made before any write refreshes the session
	if token == "" || r.s.IsExpired(sess) {
		c.Header("Set-Cookie", r.cookieName+"="+sess.ID+"; HttpOnly; Secure")
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, _maxRequestBody))
	if err != nil {
		r.internalErrorPage(c, err, "calculateLegacy - ReadAll")

		return
	}

	fields := parseRawForm(firstLine(string(body)))

	in, err := r.t.ParseAndValidate(fields)
	if err != nil {
		r.aud.Log("Error occurred: " + err.Error())
		calculationsTotal.WithLabelValues("error").Inc()
		renderErrorPage(c, err.Error())

		return
	}

	result := linkbudget.FormatResult(r.t.Calculate(in))

	previous, err := r.s.Get(sess, _lastCalculationKey, _noPreviousCalculation)
	if err != nil {
		r.internalErrorPage(c, err, "calculateLegacy - Get")

		return
	}

	if err := r.s.Set(sess, _lastCalculationKey, result); err != nil {
		r.internalErrorPage(c, err, "calculateLegacy - Set")

		return
	}

	r.aud.Log("Calculation performed. Result: " + result + " dBm")
	calculationsTotal.WithLabelValues("ok").Inc()

	renderResultPage(c, result, previous, previous != result)
}

func (r *linkBudgetRoutes) calculate(c *gin.Context) {
	var req dto.LinkBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErr := ErrValidationLinkBudget.Wrap("calculate", "ShouldBindJSON", err)
		calculationsTotal.WithLabelValues("error").Inc()
		ErrorResponse(c, validationErr)

		return
	}

	token := sessionToken(c.GetHeader("Cookie"), r.cookieName)

	sess, err := r.s.Resolve(token)
	if err != nil {
		r.l.Error(err, "http - v1 - calculate")
		ErrorResponse(c, err)

		return
	}

	if token == "" || r.s.IsExpired(sess) {
		c.Header("Set-Cookie", r.cookieName+"="+sess.ID+"; HttpOnly; Secure")
	}

	result := linkbudget.FormatResult(r.t.Calculate(req.ToEntity()))

	previous, err := r.s.Get(sess, _lastCalculationKey, "")
	if err != nil {
		r.l.Error(err, "http - v1 - calculate")
		ErrorResponse(c, err)

		return
	}

	if err := r.s.Set(sess, _lastCalculationKey, result); err != nil {
		r.l.Error(err, "http - v1 - calculate")
		ErrorResponse(c, err)

		return
	}

	r.aud.Log("Calculation performed. Result: " + result + " dBm")
	calculationsTotal.WithLabelValues("ok").Inc()

	resp := dto.LinkBudgetResponse{
		ReceivedPower: result,
		Unit:          "dBm",
	}
	if previous != "" && previous != result {
		resp.Previous = previous
	}

	c.JSON(http.StatusOK, resp)
}

func (r *linkBudgetRoutes) lastCalculation(c *gin.Context) {
	token := sessionToken(c.GetHeader("Cookie"), r.cookieName)
	if token == "" {
		c.JSON(http.StatusNotFound, response{Error: "no previous calculation", Message: "no previous calculation"})

		return
	}

	sess, err := r.s.Resolve(token)
	if err != nil {
		r.l.Error(err, "http - v1 - lastCalculation")
		ErrorResponse(c, err)

		return
	}

	v, err := r.s.Get(sess, _lastCalculationKey, "")
	if err != nil {
		r.l.Error(err, "http - v1 - lastCalculation")
		ErrorResponse(c, err)

		return
	}

	if v == "" {
		c.JSON(http.StatusNotFound, response{Error: "no previous calculation", Message: "no previous calculation"})

		return
	}

	c.JSON(http.StatusOK, dto.LastCalculationResponse{LastCalculation: v})
}

func (r *linkBudgetRoutes) internalErrorPage(c *gin.Context, err error, where string) {
	r.l.Error(err, "http - v1 - "+where)
	calculationsTotal.WithLabelValues("error").Inc()
	renderErrorPage(c, _internalErrorMessage)
}
