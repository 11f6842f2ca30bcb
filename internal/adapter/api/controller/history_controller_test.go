package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/virtual-assistant/internal/domain/email"
	"github.com/hugohenrick/virtual-assistant/internal/domain/file"
	"github.com/hugohenrick/virtual-assistant/internal/domain/history"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

func newHistoryRouter(h *memoryHistory) *gin.Engine {
	c := NewHistoryController(h,
		statsFiles{stats: &file.Stats{Total: 2, TotalSize: 2048, Types: 1, Distribution: []file.TypeCount{{MimeType: "text/plain", Count: 2}}}},
		statsEmails{stats: &email.Stats{Total: 3, Sent: 2, Failed: 1}},
		logger.NewNopLogger())
	r := gin.New()
	r.GET("/history", c.List)
	r.DELETE("/history", c.Clear)
	r.DELETE("/history/:id", c.Delete)
	r.GET("/stats", c.Stats)
	return r
}

func seedHistory() *memoryHistory {
	h := &memoryHistory{}
	for _, e := range []*history.Entry{
		{CommandType: "create", Result: history.ResultSuccess},
		{CommandType: "email", Result: history.ResultError},
		{CommandType: "create", Result: history.ResultError},
	} {
		_ = h.Create(context.Background(), e)
	}
	return h
}

func TestHistoryController_List(t *testing.T) {
	h := seedHistory()
	r := newHistoryRouter(h)

	w := performRequest(t, r, http.MethodGet, "/history?action=create&status=error&limit=500", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.HistoryResponse `json:"data"`
	}
	decode(t, w, &resp)
	assert.Len(t, resp.Data.History, 1)
	// o total ignora os filtros
	assert.Equal(t, int64(3), resp.Data.Total)
	assert.Equal(t, history.MaxLimit, resp.Data.Limit)
	assert.Equal(t, history.MaxLimit, h.lastFilter.Limit)

	w = performRequest(t, r, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, history.DefaultLimit, h.lastFilter.Limit)

	w = performRequest(t, r, http.MethodGet, "/history?status=weird", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryController_DeleteAndClear(t *testing.T) {
	h := seedHistory()
	r := newHistoryRouter(h)

	w := performRequest(t, r, http.MethodDelete, "/history/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	decode(t, w, &resp)
	assert.Equal(t, "Entry deleted", resp.Message)

	w = performRequest(t, r, http.MethodDelete, "/history/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, r, http.MethodDelete, "/history/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, r, http.MethodDelete, "/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.Equal(t, "History cleared", resp.Message)
	assert.True(t, h.cleared)
}

func TestHistoryController_Stats(t *testing.T) {
	r := newHistoryRouter(seedHistory())

	w := performRequest(t, r, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.StatsResponse `json:"data"`
	}
	decode(t, w, &resp)
	assert.Equal(t, int64(2), resp.Data.Files.Total)
	assert.Equal(t, "2.0 KiB", resp.Data.Files.SizeHuman)
	assert.Equal(t, int64(3), resp.Data.Commands.Total)
	assert.Equal(t, int64(1), resp.Data.Commands.Successful)
	assert.Equal(t, int64(2), resp.Data.Commands.Failed)
	assert.Equal(t, int64(2), resp.Data.Emails.Sent)
	assert.Len(t, resp.Data.FileTypes, 1)
	assert.Len(t, resp.Data.RecentActivity, 3)
}
