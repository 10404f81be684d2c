package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRawForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want map[string]string
	}{
		{
			name: "simple pairs",
			line: "tx_power=20&tx_gain=10",
			want: map[string]string{"tx_power": "20", "tx_gain": "10"},
		},
		{
			name: "values are not percent-decoded",
			line: "tx_power=1%2E5",
			want: map[string]string{"tx_power": "1%2E5"},
		},
		{
			name: "malformed pairs are skipped",
			line: "=20&tx_gain&rx_gain=&misc_loss=1&&",
			want: map[string]string{"misc_loss": "1"},
		},
		{
			name: "last value wins on duplicate keys",
			line: "tx_power=1&tx_power=2",
			want: map[string]string{"tx_power": "2"},
		},
		{
			name: "empty line",
			line: "",
			want: map[string]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, parseRawForm(tc.line))
		})
	}
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a=1", firstLine("a=1"))
	assert.Equal(t, "a=1", firstLine("a=1\nb=2"))
	assert.Equal(t, "a=1", firstLine("a=1\r\nb=2"))
}

func TestSessionToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "absent", header: "", want: ""},
		{name: "only cookie", header: "session_id=abc-123", want: "abc-123"},
		{name: "first of several", header: "session_id=abc; theme=dark", want: "abc"},
		{name: "after other cookies", header: "theme=dark; session_id=abc", want: "abc"},
		{name: "other cookie only", header: "theme=dark", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, sessionToken(tc.header, "session_id"))
		})
	}
}
