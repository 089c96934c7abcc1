package designation

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

type DesignationResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	AppraisalTemplate *string `json:"appraisal_template,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

func NewDesignationResponse(d Designation) DesignationResponse {
	return DesignationResponse{
		ID:                d.ID,
		Title:             d.Title,
		AppraisalTemplate: d.AppraisalTemplate,
		CreatedAt:         d.CreatedAt.Format(time.RFC3339),
	}
}

type CreateDesignationRequest struct {
	Title             string  `json:"title"`
	AppraisalTemplate *string `json:"appraisal_template,omitempty"`
}

func (r *CreateDesignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	}
	if len(r.Title) > 100 {
		errs.Add("title", "title must not exceed 100 characters")
	}
	if r.AppraisalTemplate != nil && len(*r.AppraisalTemplate) > 255 {
		errs.Add("appraisal_template", "appraisal_template must not exceed 255 characters")
	}

	return errs.OrNil()
}
