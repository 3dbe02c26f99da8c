package balance

// RemainingDays carries no range validation: admin overrides may set any
// integer, including negative.
type SetBalanceRequest struct {
	LeaveTypeID   string `json:"leave_type_id" binding:"required,uuid"`
	RemainingDays int    `json:"remaining_days"`
}

type BalanceResponse struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	RemainingDays int    `json:"remaining_days"`
}
