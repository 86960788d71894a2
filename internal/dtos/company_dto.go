package dtos

type RegisterCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
}

// Multipart form: the update may carry a logo file.
type UpdateCompanyRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Website     string `form:"website"`
	Location    string `form:"location"`
}
