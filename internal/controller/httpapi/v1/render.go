package v1

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The document shell mirrors the page served by the program this service
// replaced, so existing scrapers keep working.
const (
	_pageHead = `<!DOCTYPE html><html lang='en'><head><meta charset='UTF-8'>` +
		`<title>RF Link Budget Result</title>` +
		`<style>body { font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; }` +
		`h1, h2 { color: #333; } .error { color: red; }</style></head><body>`
	_pageFoot = `<p><a href='/index.html'>Go Back</a></p></body></html>`
)

var (
	_resultTmpl = template.Must(template.New("result").Parse(
		_pageHead +
			`<h1>RF Link Budget Result</h1>` +
			`<p>Received Power: {{.ReceivedPower}} dBm</p>` +
			`{{if .ShowPrevious}}<p>Previous calculation: {{.Previous}} dBm</p>{{end}}` +
			_pageFoot))

	_errorTmpl = template.Must(template.New("error").Parse(
		_pageHead +
			`<h2>Error</h2>` +
			`<p class='error'>{{.Message}}</p>` +
			_pageFoot))

	_formTmpl = template.Must(template.New("form").Parse(
		_pageHead +
			`<h1>RF Link Budget Calculator</h1>` +
			`<form method='post' action='/calculate'>` +
			`{{range .}}<p><label>{{.Label}} ({{.Unit}}): <input type='text' name='{{.Key}}'></label></p>{{end}}` +
			`<p><input type='submit' value='Calculate'></p>` +
			`</form>` +
			`</body></html>`))
)

type formField struct {
	Key   string
	Label string
	Unit  string
}

var _formFields = []formField{
	{Key: "tx_power", Label: "Transmit Power", Unit: "dBm"},
	{Key: "tx_gain", Label: "Transmit Antenna Gain", Unit: "dB"},
	{Key: "free_space_loss", Label: "Free Space Loss", Unit: "dB"},
	{Key: "misc_loss", Label: "Miscellaneous Loss", Unit: "dB"},
	{Key: "rx_gain", Label: "Receiver Antenna Gain", Unit: "dB"},
	{Key: "rx_loss", Label: "Receiver Loss", Unit: "dB"},
}

func renderResultPage(c *gin.Context, received, previous string, showPrevious bool) {
	var buf bytes.Buffer

	_ = _resultTmpl.Execute(&buf, struct {
		ReceivedPower string
		Previous      string
		ShowPrevious  bool
	}{received, previous, showPrevious})

	c.Data(http.StatusOK, "text/html", buf.Bytes())
}

// renderErrorPage emits the error document. Handled errors still answer 200,
// matching the always-exit-0 behavior of the replaced program.
func renderErrorPage(c *gin.Context, message string) {
	var buf bytes.Buffer

	_ = _errorTmpl.Execute(&buf, struct{ Message string }{message})

	c.Data(http.StatusOK, "text/html", buf.Bytes())
}

func renderFormPage(c *gin.Context) {
	var buf bytes.Buffer

	_ = _formTmpl.Execute(&buf, _formFields)

	c.Data(http.StatusOK, "text/html", buf.Bytes())
}
