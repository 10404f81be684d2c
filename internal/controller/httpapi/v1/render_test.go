package v1

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const hostileInput = `<script>&"'</script>`

func execRender(render func(c *gin.Context)) string {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	render(c)

	return w.Body.String()
}

func assertFullyEscaped(t *testing.T, body string) {
	t.Helper()

	assert.NotContains(t, body, hostileInput)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "&amp;")
	assert.Contains(t, body, "&#34;")
	assert.Contains(t, body, "&#39;")
}

func TestRenderErrorPage_EscapesMessage(t *testing.T) {
	t.Parallel()

	body := execRender(func(c *gin.Context) {
		renderErrorPage(c, hostileInput)
	})

	assert.Contains(t, body, "<h2>Error</h2>")
	assert.Contains(t, body, "Go Back")
	assertFullyEscaped(t, body)
}

func TestRenderResultPage_EscapesPreviousValue(t *testing.T) {
	t.Parallel()

	body := execRender(func(c *gin.Context) {
		renderResultPage(c, "-56.00", hostileInput, true)
	})

	assert.Contains(t, body, "Received Power: -56.00 dBm")
	assert.Contains(t, body, "Previous calculation:")
	assertFullyEscaped(t, body)
}

func TestRenderResultPage_PreviousLineToggle(t *testing.T) {
	t.Parallel()

	body := execRender(func(c *gin.Context) {
		renderResultPage(c, "-56.00", "-56.00", false)
	})

	assert.NotContains(t, body, "Previous calculation")
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(body, "</body></html>"))
}
