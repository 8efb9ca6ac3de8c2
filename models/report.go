package models

type ProjectProgress struct {
	ProjectID            int64   `json:"project_id"`
	ProjectName          string  `json:"project_name"`
	TotalTasks           int     `json:"total_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
	StatusBreakdown      struct {
		Todo       int `json:"todo"`
		InProgress int `json:"in_progress"`
		Done       int `json:"done"`
		Blocked    int `json:"blocked"`
	} `json:"status_breakdown"`
	PriorityBreakdown struct {
		High   int `json:"high"`
		Medium int `json:"medium"`
		Low    int `json:"low"`
	} `json:"priority_breakdown"`
	OverdueTasks int `json:"overdue_tasks"`
}

type TeamMemberWorkload struct {
	UserID          int64   `json:"user_id"`
	UserName        string  `json:"user_name"`
	UserEmail       string  `json:"user_email"`
	Role            string  `json:"role"`
	TotalTasks      int     `json:"total_tasks"`
	CompletedTasks  int     `json:"completed_tasks"`
	InProgressTasks int     `json:"in_progress_tasks"`
	TodoTasks       int     `json:"todo_tasks"`
	BlockedTasks    int     `json:"blocked_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
}

type TeamWorkload struct {
	ProjectID   int64                `json:"project_id"`
	ProjectName string               `json:"project_name"`
	TeamMembers []TeamMemberWorkload `json:"team_members"`
}

type TrendPoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Created   int    `json:"created"`
}

type CompletionTrends struct {
	ProjectID   int64  `json:"project_id"`
	ProjectName string `json:"project_name"`
	DateRange   struct {
		Start string `json:"start"`
		End   string `json:"end"`
		Days  int    `json:"days"`
	} `json:"date_range"`
	Trends  []TrendPoint `json:"trends"`
	Summary struct {
		TotalCompleted     int     `json:"total_completed"`
		TotalCreated       int     `json:"total_created"`
		AvgCompletedPerDay float64 `json:"avg_completed_per_day"`
	} `json:"summary"`
}

type ReportDashboard struct {
	Overview struct {
		TotalProjects   int `json:"total_projects"`
		TotalTasks      int `json:"total_tasks"`
		CompletedTasks  int `json:"completed_tasks"`
		InProgressTasks int `json:"in_progress_tasks"`
		OverdueTasks    int `json:"overdue_tasks"`
	} `json:"overview"`
	MyTasks struct {
		Total      int `json:"total"`
		Completed  int `json:"completed"`
		InProgress int `json:"in_progress"`
		Overdue    int `json:"overdue"`
	} `json:"my_tasks"`
	ProjectsProgress []struct {
		ProjectID            int64   `json:"project_id"`
		ProjectName          string  `json:"project_name"`
		TotalTasks           int     `json:"total_tasks"`
		CompletedTasks       int     `json:"completed_tasks"`
		CompletionPercentage float64 `json:"completion_percentage"`
	} `json:"projects_progress"`
}
