package dto

type RegisterJobSeekerRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Phone      string `json:"phone" validate:"required,min=7,max=20"`
	WorkStatus string `json:"work_status" validate:"required,oneof=fresher experienced"`
	Promotions bool   `json:"promotions"`
}

type RegisterEmployerRequest struct {
	CompanyName  string `json:"company_name" validate:"required,min=2,max=150"`
	WebsiteURL   string `json:"website_url" validate:"omitempty,url"`
	IndustryType string `json:"industry_type" validate:"omitempty,max=100"`
	FullName     string `json:"full_name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobile_number" validate:"omitempty,min=7,max=20"`
	Designation  string `json:"designation" validate:"omitempty,max=100"`
	Password     string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the identity the frontend needs to route by role.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
