package dto

// UserUpdateRequest 更新用户请求,密码为空时保持不变
type UserUpdateRequest struct {
	Username string `json:"username" binding:"required" validate:"required,username"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
	Password string `json:"password" validate:"omitempty,min=6"`
}
