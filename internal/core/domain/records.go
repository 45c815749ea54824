package domain

import "time"

// Category is a tag attached to one of the admin modules (expenses,
// procedures, visits, ...). Names are unique per module.
type Category struct {
	ID        string    `json:"id"`
	Module    string    `json:"module"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Expense is one hospital-card purchase in the expense ledger.
type Expense struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Vendor    string    `json:"vendor"`
	Category  string    `json:"category,omitempty"`
	Amount    int64     `json:"amount"` // KRW
	Memo      string    `json:"memo,omitempty"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Procedure is one row of the C-arm procedure-counting log.
type Procedure struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Room      string    `json:"room,omitempty"`
	Operator  string    `json:"operator"`
	Count     int       `json:"count"`
	Memo      string    `json:"memo,omitempty"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Visit is one dosu (manual therapy) visit/revenue row.
type Visit struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Therapist string    `json:"therapist"`
	Patients  int       `json:"patients"`
	Revenue   int64     `json:"revenue"` // KRW
	Memo      string    `json:"memo,omitempty"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VisitSummaryRow aggregates dosu visits per therapist over a date range.
type VisitSummaryRow struct {
	Therapist string `json:"therapist"`
	Patients  int64  `json:"patients"`
	Revenue   int64  `json:"revenue"`
}
