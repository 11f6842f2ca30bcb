package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeServer struct {
	basePath string
	startErr error
	closed   bool
}

func (s *fakeServer) SetupRoutes(basePath string) { s.basePath = basePath }

func (s *fakeServer) Start(context.Context) error { return s.startErr }

func (s *fakeServer) Close() { s.closed = true }

func TestServe_ClosesOnServerError(t *testing.T) {
	listenErr := errors.New("listen tcp :8080: bind: address already in use")
	srv := &fakeServer{startErr: listenErr}

	err := serve(context.Background(), srv, "/api/v1")
	assert.ErrorIs(t, err, listenErr)
	assert.True(t, srv.closed)
	assert.Equal(t, "/api/v1", srv.basePath)
}

func TestServe_ClosesOnShutdown(t *testing.T) {
	srv := &fakeServer{}

	assert.NoError(t, serve(context.Background(), srv, "/api/v1"))
	assert.True(t, srv.closed)
}
