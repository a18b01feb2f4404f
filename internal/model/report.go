package model

// GuardStatus is the read-only status line shown by presentation adapters.
type GuardStatus struct {
	Position     Position  `json:"position"`
	Direction    Direction `json:"direction"`
	VisitedCells int       `json:"visited_cells"`
	Exited       bool      `json:"exited"`
}

// Report is the final result of a run.
type Report struct {
	RunID         string      `json:"run_id"`
	Rows          int         `json:"rows"`
	Cols          int         `json:"cols"`
	Steps         int         `json:"steps"`
	Guard         GuardStatus `json:"guard"`
	TurnEvents    int         `json:"turn_events"`
	LoopObstacles []Position  `json:"loop_obstacles"`
	LoopCount     int         `json:"loop_obstacle_count"`
	DistinctLoops int         `json:"distinct_loop_obstacle_count"`
}
