package dtos

type PostJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	// Delimiter-joined list, e.g. "Go.SQL.Linux"
	Requirements string `json:"requirements" binding:"required"`
	Salary       string `json:"salary" binding:"required"`
	Location     string `json:"location" binding:"required"`
	JobType      string `json:"jobType" binding:"required"`
	Experience   string `json:"experience" binding:"required"`
	Position     int    `json:"position" binding:"required"`
	CompanyID    uint   `json:"companyId" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
