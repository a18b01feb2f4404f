// Package web serves patrol runs as JSON.
package web

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"guardpatrol/internal/model"
	"guardpatrol/internal/patrol"
)

// Server answers every request with a fresh simulation of the same map, so
// no simulator is ever shared between requests.
type Server struct {
	addr    string
	mapText string
}

// ViewResponse is the body of GET /api/v1/view.
type ViewResponse struct {
	Steps     int               `json:"steps"`
	Guard     model.GuardStatus `json:"guard"`
	RowOffset int               `json:"row_offset"`
	ColOffset int               `json:"col_offset"`
	Rows      []string          `json:"rows"`
}

// NewServer validates the map once up front.
func NewServer(addr, mapText string) (*Server, error) {
	if _, _, err := patrol.Build(mapText); err != nil {
		return nil, err
	}
	return &Server{addr: addr, mapText: mapText}, nil
}

// Router registers the API routes.
func (s *Server) Router(engine *gin.Engine) *gin.Engine {
	api := engine.Group("/api/v1")
	{
		api.GET("/report", s.report)
		api.GET("/view", s.view)
		api.GET("/grid", s.grid)
	}
	return engine
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	fmt.Printf("Starting guardpatrol web server at http://%s\n", s.addr)
	fmt.Printf("Try http://%s/api/v1/report\n", s.addr)
	return s.Router(gin.Default()).Run(s.addr)
}

func (s *Server) newSimulator() (*patrol.Simulator, error) {
	return patrol.New(s.mapText)
}

// report runs the map to completion and returns the final report.
func (s *Server) report(ctx *gin.Context) {
	sim, err := s.newSimulator()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sim.RunToCompletion()

	report, err := patrol.BuildReport(sim, uuid.NewString())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[WEB] [INFO] run %s: %d visited, %d loop obstacles", report.RunID, report.Guard.VisitedCells, report.LoopCount)

	if ctx.Query("format") == "markdown" {
		verbose, _ := strconv.ParseBool(ctx.DefaultQuery("verbose", "false"))
		ctx.String(http.StatusOK, patrol.GenerateReport(report, verbose))
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// view advances a fresh run by ?steps= and returns the viewport around the guard.
func (s *Server) view(ctx *gin.Context) {
	steps, err := queryInt(ctx, "steps", 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := queryInt(ctx, "rows", 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cols, err := queryInt(ctx, "cols", 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sim, err := s.newSimulator()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sim.Advance(steps)

	view := sim.CurrentView(rows, cols)
	ctx.JSON(http.StatusOK, ViewResponse{
		Steps:     sim.Steps(),
		Guard:     sim.GuardSnapshot(),
		RowOffset: view.RowOffset,
		ColOffset: view.ColOffset,
		Rows:      renderRows(view.Cells),
	})
}

// grid returns the fully walked map as plain text.
func (s *Server) grid(ctx *gin.Context) {
	sim, err := s.newSimulator()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sim.RunToCompletion()
	ctx.String(http.StatusOK, sim.Grid().String())
}

func queryInt(ctx *gin.Context, name string, def int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("query parameter %s must be a non-negative integer", name)
	}
	return n, nil
}

func renderRows(cells [][]model.Cell) []string {
	rows := make([]string, len(cells))
	for i, row := range cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(c.Symbol())
		}
		rows[i] = sb.String()
	}
	return rows
}
