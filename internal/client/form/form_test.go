package form

import (
	"context"
	"errors"
	"testing"
)

type stubSubmitter struct {
	createErr error
	updateErr error

	createdWith Values
	updatedID   string
	updatedWith Values
}

func (s *stubSubmitter) Create(_ context.Context, values Values) error {
	s.createdWith = values
	return s.createErr
}

func (s *stubSubmitter) Update(_ context.Context, id string, values Values) error {
	s.updatedID = id
	s.updatedWith = values
	return s.updateErr
}

func validCreateValues() Values {
	return Values{
		Email:     "new@clinic.kr",
		Password:  "longenough",
		Password2: "longenough",
		Name:      "Kim",
	}
}

func TestForm_Validate_Create(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Values)
		wantOK bool
	}{
		{"valid", func(*Values) {}, true},
		{"short name", func(v *Values) { v.Name = "K" }, false},
		{"missing email", func(v *Values) { v.Email = "" }, false},
		{"malformed email", func(v *Values) { v.Email = "not-an-email" }, false},
		{"short password", func(v *Values) { v.Password, v.Password2 = "short", "short" }, false},
		{"password mismatch", func(v *Values) { v.Password2 = "different123" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(&stubSubmitter{}, nil)
			c.OpenCreate()
			values := validCreateValues()
			tc.mutate(&values)
			c.SetValues(values)

			msg := c.Validate()
			if tc.wantOK && msg != "" {
				t.Fatalf("expected valid, got %q", msg)
			}
			if !tc.wantOK && msg == "" {
				t.Fatalf("expected validation message")
			}
		})
	}
}

func TestForm_Validate_EditPasswordsOptionalButPaired(t *testing.T) {
	c := New(&stubSubmitter{}, nil)
	c.OpenEdit("acc-1", Values{Email: "e@clinic.kr", Name: "Lee"})

	if msg := c.Validate(); msg != "" {
		t.Fatalf("edit without passwords should validate, got %q", msg)
	}

	v := c.Values()
	v.Password = "newpassword"
	c.SetValues(v)
	if msg := c.Validate(); msg == "" {
		t.Fatalf("lone password field must be rejected")
	}

	v.Password2 = "newpassword"
	c.SetValues(v)
	if msg := c.Validate(); msg != "" {
		t.Fatalf("paired matching passwords should validate, got %q", msg)
	}
}

func TestForm_Submit_SuccessClearsAndCloses(t *testing.T) {
	sub := &stubSubmitter{}
	reloaded := false
	c := New(sub, func(context.Context) { reloaded = true })

	c.OpenCreate()
	c.SetValues(validCreateValues())

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sub.createdWith.Email != "new@clinic.kr" {
		t.Fatalf("create not called with form values: %+v", sub.createdWith)
	}
	if c.IsOpen() {
		t.Fatalf("modal should close on success")
	}
	if v := c.Values(); v.Password != "" || v.Password2 != "" {
		t.Fatalf("passwords should be cleared on success")
	}
	if !reloaded {
		t.Fatalf("success should trigger the table reload")
	}
}

func TestForm_Submit_FailureKeepsValuesAndStaysOpen(t *testing.T) {
	sub := &stubSubmitter{createErr: errors.New("email already registered")}
	c := New(sub, nil)

	c.OpenCreate()
	c.SetValues(validCreateValues())

	if err := c.Submit(context.Background()); err == nil {
		t.Fatalf("expected submit error")
	}
	if !c.IsOpen() {
		t.Fatalf("modal must stay open on failure")
	}
	if v := c.Values(); v.Password != "longenough" || v.Email != "new@clinic.kr" {
		t.Fatalf("entered values must survive a failed submit: %+v", v)
	}
	if c.LastError() != "email already registered" {
		t.Fatalf("server message not surfaced, got %q", c.LastError())
	}
}

func TestForm_Submit_EditRoutesToUpdate(t *testing.T) {
	sub := &stubSubmitter{}
	c := New(sub, nil)

	c.OpenEdit("acc-7", Values{Email: "e@clinic.kr", Name: "Lee"})
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sub.updatedID != "acc-7" {
		t.Fatalf("expected update on acc-7, got %q", sub.updatedID)
	}
}

func TestForm_Submit_ValidationFailureDoesNotCallSubmitter(t *testing.T) {
	sub := &stubSubmitter{}
	c := New(sub, nil)

	c.OpenCreate()
	c.SetValues(Values{Email: "bad", Name: "K"})

	err := c.Submit(context.Background())
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if sub.createdWith.Email != "" {
		t.Fatalf("submitter must not be called on validation failure")
	}
	if !c.IsOpen() {
		t.Fatalf("modal must stay open")
	}
}
