package dtos

// Register and profile update arrive as multipart/form-data because they
// may carry a resume file, hence `form` tags instead of `json`.
type RegisterRequest struct {
	FullName    string `form:"fullname" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	PhoneNumber string `form:"phoneNumber" binding:"required"`
	Password    string `form:"password" binding:"required"`
	Role        string `form:"role" binding:"required,oneof=student recruiter"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// All fields optional: absent fields leave stored values untouched.
type UpdateProfileRequest struct {
	FullName    string `form:"fullname"`
	Email       string `form:"email"`
	PhoneNumber string `form:"phoneNumber"`
	Bio         string `form:"bio"`
	// Comma separated, split and trimmed server-side
	Skills string `form:"skills"`
}
