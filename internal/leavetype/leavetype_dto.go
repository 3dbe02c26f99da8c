package leavetype

type CreateLeaveTypeRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=30"`
	DefaultQuota int    `json:"default_quota" binding:"gte=0"`
}

type LeaveTypeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DefaultQuota int    `json:"default_quota"`
}
