package user

type CreateUserRequest struct {
	Username        string         `json:"username" binding:"required,min=3,max=50"`
	Email           string         `json:"email" binding:"required,email"`
	Role            string         `json:"role" binding:"required,oneof=ADMIN MANAGER EMPLOYEE"`
	Password        string         `json:"password" binding:"omitempty,min=8"`
	ManagerUsername *string        `json:"manager_username"`
	InitialQuotas   map[string]int `json:"initial_quotas"` // leave_type_id -> days
}

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ManagerID *string `json:"manager_id,omitempty"`
}
