package dto

type RegisterRequestDTO struct {
	Username  string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Sponsor   string `json:"sponsor" validate:"omitempty,min=3,max=50"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
