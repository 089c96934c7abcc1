package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeNumber *string          `json:"employee_number,omitempty"`
	Series         *string          `json:"series,omitempty"`
	FirstName      string           `json:"first_name"`
	MiddleName     *string          `json:"middle_name,omitempty"`
	LastName       *string          `json:"last_name,omitempty"`
	Email          *string          `json:"email,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	Address        *string          `json:"address,omitempty"`
	DateOfBirth    *string          `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	HireDate       string           `json:"hire_date"`               // YYYY-MM-DD
	JobTitle       *string          `json:"job_title,omitempty"`
	Department     *string          `json:"department,omitempty"` // department name, resolved to an ID
	DepartmentID   *string          `json:"department_id,omitempty"`
	DesignationID  *string          `json:"designation_id,omitempty"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	EmploymentType string           `json:"employment_type"`
	Status         string           `json:"status"`
	Gender         *string          `json:"gender,omitempty"`
	UserID         *string          `json:"user_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs.Add("first_name", "first_name is required")
	}
	if len(r.FirstName) > 100 {
		errs.Add("first_name", "first_name must not exceed 100 characters")
	}

	if r.EmployeeNumber != nil && len(*r.EmployeeNumber) > 50 {
		errs.Add("employee_number", "employee_number must not exceed 50 characters")
	}
	if r.Series != nil && len(*r.Series) > 10 {
		errs.Add("series", "series must not exceed 10 characters")
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone must contain 7 to 15 digits")
	}

	if validator.IsEmpty(r.HireDate) {
		errs.Add("hire_date", "hire_date is required")
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		dob, ok := validator.IsValidDate(*r.DateOfBirth)
		if !ok {
			errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
		} else if dob.After(time.Now()) {
			errs.Add("date_of_birth", ErrFutureDateNotAllowed.Error())
		}
	}

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs.Add("department_id", "department_id must be a valid UUID")
	}
	if r.DesignationID != nil && !validator.IsValidUUID(*r.DesignationID) {
		errs.Add("designation_id", "designation_id must be a valid UUID")
	}
	if r.UserID != nil && validator.IsEmpty(*r.UserID) {
		errs.Add("user_id", "user_id must not be empty")
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs.Add("salary", ErrInvalidSalary.Error())
	}

	if r.EmploymentType == "" {
		r.EmploymentType = string(EmploymentTypeFullTime)
	}
	if !validator.IsInSlice(r.EmploymentType, EmploymentTypes) {
		errs.Add("employment_type", "employment_type must be one of: full-time, part-time, contract, intern")
	}

	r.Status = strings.ToLower(r.Status)
	if r.Status == "" {
		r.Status = string(EmploymentStatusActive)
	}
	if !validator.IsInSlice(r.Status, EmploymentStatuses) {
		errs.Add("status", "status must be one of: active, inactive")
	}

	if r.Gender != nil && !validator.IsInSlice(strings.ToLower(*r.Gender), Genders) {
		errs.Add("gender", "gender must be one of: male, female, other")
	}

	return errs.OrNil()
}

type EmployeeFilter struct {
	Search       *string `json:"search,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Status       *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // name, employee_number, hire_date
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs.Add("page", "page must be a positive number")
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs.Add("limit", "limit must not exceed 100")
	}

	if f.DepartmentID != nil && !validator.IsValidUUID(*f.DepartmentID) {
		errs.Add("department_id", "department_id must be a valid UUID")
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, EmploymentStatuses) {
		errs.Add("status", "status must be one of: active, inactive")
	}

	if f.SortBy != "" {
		if !validator.IsInSlice(f.SortBy, []string{"name", "employee_number", "hire_date"}) {
			errs.Add("sort_by", "sort_by must be one of: name, employee_number, hire_date")
		}
	} else {
		f.SortBy = "name"
	}

	if f.SortOrder != "" {
		f.SortOrder = strings.ToLower(f.SortOrder)
		if !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
			errs.Add("sort_order", "sort_order must be one of: asc, desc")
		}
	} else {
		f.SortOrder = "asc"
	}

	return errs.OrNil()
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	UserID           *string `json:"user_id,omitempty"`
	EmployeeNumber   string  `json:"employee_number"`
	FullName         string  `json:"full_name"`
	FirstName        string  `json:"first_name"`
	MiddleName       *string `json:"middle_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	HireDate         string  `json:"hire_date"`
	JobTitle         string  `json:"job_title"`
	DepartmentID     *string `json:"department_id,omitempty"`
	DepartmentName   string  `json:"department_name"`
	DesignationID    *string `json:"designation_id,omitempty"`
	DesignationTitle string  `json:"designation_title"`
	Salary           *string `json:"salary,omitempty"`
	EmploymentType   string  `json:"employment_type"`
	Status           string  `json:"status"`
	Gender           *string `json:"gender,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		UserID:           e.UserID,
		EmployeeNumber:   e.EmployeeNumber,
		FullName:         e.FullName(),
		FirstName:        e.FirstName,
		MiddleName:       e.MiddleName,
		LastName:         e.LastName,
		Email:            e.Email,
		Phone:            e.Phone,
		Address:          e.Address,
		HireDate:         e.HireDate.Format("2006-01-02"),
		JobTitle:         e.JobTitle,
		DepartmentID:     e.DepartmentID,
		DepartmentName:   Unassigned,
		DesignationID:    e.DesignationID,
		DesignationTitle: Unassigned,
		EmploymentType:   string(e.EmploymentType),
		Status:           string(e.Status),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}

	if e.DepartmentName != nil && *e.DepartmentName != "" {
		resp.DepartmentName = *e.DepartmentName
	}
	if e.DesignationTitle != nil && *e.DesignationTitle != "" {
		resp.DesignationTitle = *e.DesignationTitle
	}
	if e.DateOfBirth != nil {
		dob := e.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	if e.Salary != nil {
		salary := e.Salary.StringFixed(2)
		resp.Salary = &salary
	}
	if e.Gender != nil {
		gender := string(*e.Gender)
		resp.Gender = &gender
	}
	return resp
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}
