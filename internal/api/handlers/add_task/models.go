package add_task

// AddTaskRequest HTTP request model
type AddTaskRequest struct {
	TaskID string `json:"taskId" validate:"required"`
}
