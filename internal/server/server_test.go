package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_ConfiguresListenAddr(t *testing.T) {
	srv := New(8080, http.NewServeMux(), zap.NewNop())

	assert.Equal(t, ":8080", srv.Addr())
}

func TestNew_SetsTimeouts(t *testing.T) {
	srv := New(8080, http.NewServeMux(), zap.NewNop())

	assert.NotZero(t, srv.httpServer.ReadHeaderTimeout)
	assert.NotZero(t, srv.httpServer.ReadTimeout)
	assert.NotZero(t, srv.httpServer.WriteTimeout)
	assert.NotZero(t, srv.httpServer.IdleTimeout)
}
