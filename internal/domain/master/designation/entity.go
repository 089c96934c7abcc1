package designation

import "time"

type Designation struct {
	ID                string
	Title             string
	AppraisalTemplate *string
	CreatedAt         time.Time
}
