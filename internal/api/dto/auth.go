package dto

// LoginDTO 登录请求
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserBriefDTO 登录响应中的用户信息
type UserBriefDTO struct {
	ID    uint64  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Role  string  `json:"role"`
}

// LoginResultDTO 登录响应，访问令牌短期、刷新令牌长期
type LoginResultDTO struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserBriefDTO `json:"user"`
}

// RefreshResultDTO 刷新响应，仅签发新的访问令牌
type RefreshResultDTO struct {
	AccessToken string `json:"accessToken"`
}
