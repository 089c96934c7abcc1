package employee

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultSeries   = "EMP"
	DefaultJobTitle = "Employee"
	Unassigned      = "Unassigned"
)

type Employee struct {
	ID             string
	UserID         *string
	EmployeeNumber string
	FirstName      string
	MiddleName     *string
	LastName       *string
	Email          *string
	Phone          *string
	Address        *string
	DateOfBirth    *time.Time
	HireDate       time.Time
	JobTitle       string
	DepartmentID   *string
	DesignationID  *string
	Salary         *decimal.Decimal
	EmploymentType EmploymentType
	Status         EmploymentStatus
	Gender         *Gender
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for responses
	DepartmentName   *string
	DesignationTitle *string
}

// FullName joins the non-empty name parts with single spaces.
func (e Employee) FullName() string {
	parts := []string{e.FirstName}
	for _, p := range []*string{e.MiddleName, e.LastName} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	return strings.Join(parts, " ")
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

var Genders = []string{string(Male), string(Female), string(Other)}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full-time"
	EmploymentTypePartTime EmploymentType = "part-time"
	EmploymentTypeContract EmploymentType = "contract"
	EmploymentTypeIntern   EmploymentType = "intern"
)

var EmploymentTypes = []string{
	string(EmploymentTypeFullTime),
	string(EmploymentTypePartTime),
	string(EmploymentTypeContract),
	string(EmploymentTypeIntern),
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)

var EmploymentStatuses = []string{string(EmploymentStatusActive), string(EmploymentStatusInactive)}

// GenerateEmployeeNumber builds <series><last six digits of the unix nano clock>.
func GenerateEmployeeNumber(series string, now time.Time) string {
	if series == "" {
		series = DefaultSeries
	}
	nanos := strconv.FormatInt(now.UnixNano(), 10)
	return series + nanos[len(nanos)-6:]
}
