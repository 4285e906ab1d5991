package domain

// Statistics summarizes the tasks visible to one actor. The counts are
// computed over exactly the set the task list filter would return.
type Statistics struct {
	TotalTasks      int `json:"total_tasks"`
	TodoTasks       int `json:"todo_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	BlockedTasks    int `json:"blocked_tasks"`
	OverdueTasks    int `json:"overdue_tasks"`
	OpenBugs        int `json:"open_bugs"`
}
