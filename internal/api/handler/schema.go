package handler

import "github.com/gdcworld/clinic-backoffice/internal/core/domain"

// Every response carries the ok flag; failures additionally carry a message
// (rendered by the central error handler, see internal/api/error_handler.go).

type okResponse struct {
	OK bool `json:"ok"`
}

// userResponse is the slim account view returned by /login.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	OK    bool         `json:"ok"`
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type rolesResponse struct {
	OK    bool     `json:"ok"`
	Items []string `json:"items"`
}

type createRoleRequest struct {
	Name string `json:"name" validate:"required"`
}

type deleteByNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type accountListResponse struct {
	OK    bool             `json:"ok"`
	Items []domain.Account `json:"items"`
}

type accountItemResponse struct {
	OK   bool            `json:"ok"`
	Item *domain.Account `json:"item"`
}

type createAccountRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required"`
	Name     string `json:"name"     validate:"required,min=2"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`

	Hospital   string `json:"hospital"`
	WorkStatus string `json:"workStatus"`
	AdminType  string `json:"adminType"`
	Ward       string `json:"ward"`
	License    string `json:"license"`
	Branch     string `json:"branch"`
	Area       string `json:"area"`
	Position   string `json:"position"`
}

// updateAccountRequest is a partial patch; absent fields stay nil and are
// never written to the store.
type updateAccountRequest struct {
	ID       string  `json:"id" validate:"required"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`

	Hospital   *string `json:"hospital"`
	WorkStatus *string `json:"workStatus"`
	AdminType  *string `json:"adminType"`
	Ward       *string `json:"ward"`
	License    *string `json:"license"`
	Branch     *string `json:"branch"`
	Area       *string `json:"area"`
	Position   *string `json:"position"`
}

type deleteByIDRequest struct {
	ID string `json:"id" validate:"required"`
}

type categoryListResponse struct {
	OK    bool              `json:"ok"`
	Items []domain.Category `json:"items"`
}

type categoryItemResponse struct {
	OK   bool             `json:"ok"`
	Item *domain.Category `json:"item"`
}

type createCategoryRequest struct {
	Module string `json:"module" validate:"required"`
	Name   string `json:"name"   validate:"required"`
}

type renameCategoryRequest struct {
	ID   string `json:"id"   validate:"required"`
	Name string `json:"name" validate:"required"`
}

type expenseListResponse struct {
	OK    bool             `json:"ok"`
	Items []domain.Expense `json:"items"`
}

type expenseItemResponse struct {
	OK   bool            `json:"ok"`
	Item *domain.Expense `json:"item"`
}

type createExpenseRequest struct {
	Date     string `json:"date"   validate:"required,len=10"`
	Vendor   string `json:"vendor" validate:"required"`
	Category string `json:"category"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Memo     string `json:"memo"`
}

type updateExpenseRequest struct {
	ID       string  `json:"id" validate:"required"`
	Date     *string `json:"date"`
	Vendor   *string `json:"vendor"`
	Category *string `json:"category"`
	Amount   *int64  `json:"amount"`
	Memo     *string `json:"memo"`
}

type procedureListResponse struct {
	OK    bool               `json:"ok"`
	Items []domain.Procedure `json:"items"`
}

type procedureItemResponse struct {
	OK   bool              `json:"ok"`
	Item *domain.Procedure `json:"item"`
}

type createProcedureRequest struct {
	Date     string `json:"date"     validate:"required,len=10"`
	Room     string `json:"room"`
	Operator string `json:"operator" validate:"required"`
	Count    int    `json:"count"    validate:"required,gt=0"`
	Memo     string `json:"memo"`
}

type updateProcedureRequest struct {
	ID       string  `json:"id" validate:"required"`
	Date     *string `json:"date"`
	Room     *string `json:"room"`
	Operator *string `json:"operator"`
	Count    *int    `json:"count"`
	Memo     *string `json:"memo"`
}

type visitListResponse struct {
	OK    bool           `json:"ok"`
	Items []domain.Visit `json:"items"`
}

type visitItemResponse struct {
	OK   bool          `json:"ok"`
	Item *domain.Visit `json:"item"`
}

type createVisitRequest struct {
	Date      string `json:"date"      validate:"required,len=10"`
	Therapist string `json:"therapist" validate:"required"`
	Patients  int    `json:"patients"  validate:"required,gt=0"`
	Revenue   int64  `json:"revenue"   validate:"gte=0"`
	Memo      string `json:"memo"`
}

type updateVisitRequest struct {
	ID        string  `json:"id" validate:"required"`
	Date      *string `json:"date"`
	Therapist *string `json:"therapist"`
	Patients  *int    `json:"patients"`
	Revenue   *int64  `json:"revenue"`
	Memo      *string `json:"memo"`
}

type visitSummaryResponse struct {
	OK    bool                     `json:"ok"`
	Items []domain.VisitSummaryRow `json:"items"`
}

type healthResponse struct {
	OK   bool   `json:"ok"`
	Time string `json:"time"`
}
