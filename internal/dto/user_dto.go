package dto

// UserCreateRequest 用户注册请求参数
type UserCreateRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3"`
	Name     string `json:"name" form:"name" binding:"required"`
	// Password 长度在哈希之前校验，哈希长度不反映明文长度
	Password string `json:"password" form:"password" binding:"required,min=3"`
}

// UserLoginRequest 用户登录请求参数
type UserLoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// UserDTO 用户数据传输对象，永不携带密码哈希
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginDTO 登录成功响应
type LoginDTO struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
