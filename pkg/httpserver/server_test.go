package httpserver

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServerServesOverInjectedListener(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := New(mux, Listener(ln), ShutdownTimeout(time.Second))

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", ln.Addr().String()))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, s.Shutdown())

	err = <-s.Notify()
	require.ErrorIs(t, err, http.ErrServerClosed)
}

func TestServerTLSRequiresCertAndKey(t *testing.T) {
	t.Parallel()

	s := New(http.NewServeMux(), TLS(true, "cert.pem", ""))

	err := <-s.Notify()
	require.ErrorIs(t, err, ErrTLSCertKeyMismatch)
}
