package leave

type SubmitLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Notes       string `json:"notes"`
}

type SubmitLeaveResponse struct {
	RequestID       string `json:"request_id"`
	Status          string `json:"status"`
	DaysRequested   int    `json:"days_requested"`
	ManagerID       string `json:"manager_id"`
	ManagerUsername string `json:"manager_username"`
}

type DecisionResponse struct {
	RequestID string `json:"request_id"`
	NewStatus string `json:"new_status"`
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	EmployeeEmail string  `json:"employee_email,omitempty"`
	LeaveTypeName string  `json:"leave_type_name"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysRequested int     `json:"days_requested"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
	ManagerName   string  `json:"manager_name,omitempty"`
	RequestedAt   string  `json:"requested_at"`
	DecidedAt     *string `json:"decided_at,omitempty"`
}
