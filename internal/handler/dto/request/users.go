package request

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=member admin"`
}

type UpdateProfileRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=100"`
	LastName  string  `json:"last_name" binding:"required,max=100"`
	Tier      *string `json:"subscription_tier" binding:"omitempty,oneof=none basic performance champion"`
}
