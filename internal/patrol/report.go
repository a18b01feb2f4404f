package patrol

import (
	"fmt"
	"strings"

	"guardpatrol/internal/model"
)

// BuildReport collects the final figures of a finished run.
func BuildReport(s *Simulator, runID string) (model.Report, error) {
	analysis, err := s.AnalyzeLoops()
	if err != nil {
		return model.Report{}, err
	}
	rows, cols := s.grid.Dimensions()
	return model.Report{
		RunID:         runID,
		Rows:          rows,
		Cols:          cols,
		Steps:         s.Steps(),
		Guard:         s.GuardSnapshot(),
		TurnEvents:    len(analysis.TurnEvents),
		LoopObstacles: analysis.Obstacles,
		LoopCount:     analysis.Count(),
		DistinctLoops: analysis.DistinctCount(),
	}, nil
}

// GenerateReport renders a report as markdown. Verbose adds the obstacle table.
func GenerateReport(r model.Report, verbose bool) string {
	var sb strings.Builder

	sb.WriteString("# Guard Patrol Report\n\n")
	if r.RunID != "" {
		sb.WriteString(fmt.Sprintf("Run `%s` on a %d x %d map.\n\n", r.RunID, r.Rows, r.Cols))
	}

	sb.WriteString("## Part 1\n\n")
	sb.WriteString(fmt.Sprintf("- Guard position: %s\n", r.Guard.Position))
	sb.WriteString(fmt.Sprintf("- Guard direction: %s\n", r.Guard.Direction))
	sb.WriteString(fmt.Sprintf("- Steps taken: %d\n", r.Steps))
	sb.WriteString(fmt.Sprintf("- Visited cell count: **%d**\n\n", r.Guard.VisitedCells))

	sb.WriteString("## Part 2\n\n")
	sb.WriteString(fmt.Sprintf("- Turn events: %d\n", r.TurnEvents))
	sb.WriteString(fmt.Sprintf("- New obstacles count: **%d** (%d distinct)\n", r.LoopCount, r.DistinctLoops))

	if len(r.LoopObstacles) == 0 {
		sb.WriteString("\nNo loop-inducing obstacle positions found.\n")
		return sb.String()
	}

	if !verbose {
		positions := make([]string, len(r.LoopObstacles))
		for i, p := range r.LoopObstacles {
			positions[i] = p.String()
		}
		sb.WriteString(fmt.Sprintf("- New obstacles: %s\n", strings.Join(positions, " ")))
		return sb.String()
	}

	sb.WriteString("\n| # | Row | Col |\n|---|-----|-----|\n")
	for i, p := range r.LoopObstacles {
		sb.WriteString(fmt.Sprintf("| %d | %d | %d |\n", i+1, p.Row, p.Col))
	}
	return sb.String()
}
