package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName    string `gorm:"not null" json:"fullname"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"not null" json:"phoneNumber"`
	// bcrypt hash, never serialized
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`

	Profile Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}

// Profile is embedded in User; skills live in a text[] column.
type Profile struct {
	Bio                string         `json:"bio"`
	Skills             pq.StringArray `gorm:"type:text[]" json:"skills"`
	ResumeURL          string         `json:"resume"`
	ResumeOriginalName string         `json:"resumeOriginalName"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	LogoURL     string `json:"logo"`

	// Recruiter who registered the company
	CreatedByID uint `gorm:"index" json:"created_by"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	// Ordered list decoded from the delimiter-joined form input
	Requirements    pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Salary          float64        `json:"salary"`
	Location        string         `json:"location"`
	JobType         string         `json:"jobType"`
	ExperienceLevel string         `json:"experienceLevel"`
	Position        int            `json:"position"`

	// Foreign Keys. GORM needs Preload() to fill the associations.
	CompanyID   uint    `gorm:"not null;index" json:"company_id"`
	Company     Company `json:"company"`
	CreatedByID uint    `gorm:"index" json:"created_by"`
	CreatedBy   User    `gorm:"foreignKey:CreatedByID" json:"-"`

	Applications []Application `json:"applications,omitempty"`
}

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// One application per (job, applicant) pair
	JobID       uint `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	ApplicantID uint `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`

	Job       Job    `json:"job,omitempty"`
	Applicant User   `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Status    string `gorm:"default:'Pending'" json:"status"`
}
