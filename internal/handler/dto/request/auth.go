package request

type RegisterRequest struct {
	DNI      string `json:"dni" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	DNI      string `json:"dni" binding:"required"`
	Password string `json:"password" binding:"required"`
}
