package employee

import "time"

const (
	StatusActive     = "active"
	StatusTerminated = "terminated"

	TypeIntern   = "Intern"
	TypeFullTime = "Full Time"
	TypeContract = "Contract"

	DefaultDesignation = "Employee"
	DefaultWorkHours   = 8
)

type Employee struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Designation       string      `json:"designation"`
	EmployeeType      string      `json:"employeeType"`
	Status            string      `json:"status"`
	TerminationReason string      `json:"terminationReason,omitempty"`
	Salary            float64     `json:"salary"`
	WorkHours         float64     `json:"workHours"`
	PromotionHistory  []Promotion `json:"promotionHistory,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

type Promotion struct {
	Designation string    `json:"designation"`
	Date        time.Time `json:"date"`
	PromotedBy  string    `json:"promotedBy,omitempty"`
	Remarks     string    `json:"remarks,omitempty"`
}

func ValidType(employeeType string) bool {
	switch employeeType {
	case TypeIntern, TypeFullTime, TypeContract:
		return true
	}
	return false
}
