package models

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	IsTeacher   bool   `json:"is_teacher"`
	LoginCode   string `json:"login_code,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
	BlockNumber string `json:"block_number,omitempty"`
	School      string `json:"school,omitempty"`
	Grade       string `json:"grade,omitempty"`
}

// WithClass copies validated class metadata into the read-only profile fields.
func (r RegisterRequest) WithClass(class ClassInfo) RegisterRequest {
	r.ClassName = class.ClassName
	r.BlockNumber = class.BlockNumber
	r.School = class.School
	r.Grade = class.Grade
	return r
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}

type ValidateCodeRequest struct {
	Code string `json:"code" validate:"required"`
}
