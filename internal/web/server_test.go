package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardpatrol/internal/model"
	"guardpatrol/internal/patrol"
)

const canonicalMap = `....#.
.....#
......
..#...
..^...
#.....`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := NewServer("localhost:0", canonicalMap)
	require.NoError(t, err)
	return srv.Router(gin.New())
}

func get(t *testing.T, router *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestNewServer_RejectsBadMap(t *testing.T) {
	_, err := NewServer("localhost:0", "^^")
	assert.ErrorIs(t, err, patrol.ErrMultipleGuards)
}

func TestReport(t *testing.T) {
	router := newTestRouter(t)
	w := get(t, router, "/api/v1/report")
	require.Equal(t, http.StatusOK, w.Code)

	var report model.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 5, report.Steps)
	assert.Equal(t, 4, report.Guard.VisitedCells)
	assert.True(t, report.Guard.Exited)
	assert.Equal(t, 0, report.LoopCount)
	assert.Contains(t, w.Body.String(), `"direction":"Right"`)
}

func TestReport_Markdown(t *testing.T) {
	router := newTestRouter(t)
	w := get(t, router, "/api/v1/report?format=markdown")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Visited cell count: **4**")
}

func TestView(t *testing.T) {
	router := newTestRouter(t)
	w := get(t, router, "/api/v1/view?steps=2&rows=3&cols=3")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Steps)
	assert.Equal(t, model.Position{Row: 4, Col: 3}, resp.Guard.Position)
	assert.Equal(t, 3, resp.RowOffset)
	assert.Equal(t, 2, resp.ColOffset)
	assert.Equal(t, []string{"#..", "X>.", "..."}, resp.Rows)
}

func TestView_BadQuery(t *testing.T) {
	router := newTestRouter(t)
	for _, target := range []string{"/api/v1/view?steps=abc", "/api/v1/view?rows=-1", "/api/v1/view?cols=1.5"} {
		w := get(t, router, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestGrid(t *testing.T) {
	router := newTestRouter(t)
	w := get(t, router, "/api/v1/grid")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "....#.\n.....#\n......\n..#...\n..XXXX\n#.....", w.Body.String())
}
