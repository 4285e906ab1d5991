package domain

import "time"

type TaskCategory string

const (
	CategoryWork     TaskCategory = "WORK"
	CategoryPersonal TaskCategory = "PERSONAL"
	CategoryShopping TaskCategory = "SHOPPING"
	CategoryHealth   TaskCategory = "HEALTH"
	CategoryFinance  TaskCategory = "FINANCE"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryShopping, CategoryHealth, CategoryFinance:
		return true
	}
	return false
}

// CategoryDetails is the satellite record attached 1:1 to a task. Each
// category has its own variant; a task only ever carries the variant
// matching its Category field.
type CategoryDetails interface {
	Category() TaskCategory
}

type WorkDetails struct {
	ProjectName string `json:"project_name,omitempty"`
	ClientName  string `json:"client_name,omitempty"`
	Billable    bool   `json:"billable"`
}

func (WorkDetails) Category() TaskCategory { return CategoryWork }

type PersonalDetails struct {
	Location string `json:"location,omitempty"`
	Reminder bool   `json:"reminder"`
}

func (PersonalDetails) Category() TaskCategory { return CategoryPersonal }

type ShoppingDetails struct {
	StoreName     string  `json:"store_name,omitempty"`
	Quantity      int     `json:"quantity,omitempty"`
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
}

func (ShoppingDetails) Category() TaskCategory { return CategoryShopping }

type HealthDetails struct {
	Provider      string     `json:"provider,omitempty"`
	AppointmentAt *time.Time `json:"appointment_at,omitempty"`
}

func (HealthDetails) Category() TaskCategory { return CategoryHealth }

type FinanceDetails struct {
	Account string  `json:"account,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
	TxnType string  `json:"txn_type,omitempty"`
}

func (FinanceDetails) Category() TaskCategory { return CategoryFinance }
