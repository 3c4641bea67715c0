package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/linguacrm/internal/config"
)

func TestShutdown_WithoutResources(t *testing.T) {
	s := &Server{config: &config.Config{}, router: gin.New(), logger: zerolog.Nop()}
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestShutdown_StopsHTTPServer(t *testing.T) {
	s := &Server{logger: zerolog.Nop(), http: &http.Server{Addr: "127.0.0.1:0", ReadHeaderTimeout: time.Second}}

	done := make(chan error, 1)
	go func() { done <- s.http.ListenAndServe() }()

	assert.NoError(t, s.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
