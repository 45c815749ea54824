// Package form implements the create/edit modal state machine shared by the
// role-scoped account views.
package form

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

const (
	minPasswordLen = 8
	minNameLen     = 2
)

// Values holds the editable fields of the account form. Role-specific
// attributes travel in Extra and are passed through untouched.
type Values struct {
	Email     string
	Password  string
	Password2 string
	Name      string
	Phone     string
	Status    string
	Extra     map[string]string
}

// Submitter performs the actual create or update call.
type Submitter interface {
	Create(ctx context.Context, values Values) error
	Update(ctx context.Context, id string, values Values) error
}

// Controller tracks one modal instance: its mode, target record (in edit
// mode), current values and the last error to surface.
type Controller struct {
	mode     Mode
	targetID string
	open     bool
	values   Values
	lastErr  string

	submitter Submitter
	onSuccess func(ctx context.Context)
}

// New builds a closed controller. onSuccess runs after a successful submit,
// typically the owning table's reload.
func New(submitter Submitter, onSuccess func(ctx context.Context)) *Controller {
	return &Controller{submitter: submitter, onSuccess: onSuccess}
}

// OpenCreate opens the modal empty, in create mode.
func (c *Controller) OpenCreate() {
	c.mode = ModeCreate
	c.targetID = ""
	c.values = Values{}
	c.lastErr = ""
	c.open = true
}

// OpenEdit opens the modal prefilled with the target's current values.
// Password fields always start empty.
func (c *Controller) OpenEdit(id string, current Values) {
	c.mode = ModeEdit
	c.targetID = id
	current.Password = ""
	current.Password2 = ""
	c.values = current
	c.lastErr = ""
	c.open = true
}

func (c *Controller) Close() {
	c.open = false
	c.lastErr = ""
}

func (c *Controller) IsOpen() bool     { return c.open }
func (c *Controller) Mode() Mode       { return c.mode }
func (c *Controller) TargetID() string { return c.targetID }
func (c *Controller) Values() Values   { return c.values }
func (c *Controller) LastError() string { return c.lastErr }

// SetValues replaces the editable fields, e.g. on every input event.
func (c *Controller) SetValues(v Values) {
	c.values = v
}

// Validate checks the current values against the mode's rules and returns a
// user-facing message, or "" when the form may be submitted.
func (c *Controller) Validate() string {
	name := strings.TrimSpace(c.values.Name)
	if utf8.RuneCountInString(name) < minNameLen {
		return "name must be at least 2 characters"
	}

	email := strings.TrimSpace(c.values.Email)
	if email == "" {
		return "email is required"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "email is not valid"
	}

	pw, pw2 := c.values.Password, c.values.Password2
	switch c.mode {
	case ModeCreate:
		if len(pw) < minPasswordLen {
			return "password must be at least 8 characters"
		}
		if pw != pw2 {
			return "passwords do not match"
		}
	case ModeEdit:
		// Passwords are optional on edit, but must come as a matching pair.
		if pw == "" && pw2 == "" {
			break
		}
		if pw == "" || pw2 == "" {
			return "both password fields are required to change the password"
		}
		if pw != pw2 {
			return "passwords do not match"
		}
		if len(pw) < minPasswordLen {
			return "password must be at least 8 characters"
		}
	}

	return ""
}

// Submit validates and performs the create or update. On success the
// password fields are cleared, the modal closes and onSuccess fires. On
// failure the modal stays open with all entered values intact so the user
// can correct and resubmit.
func (c *Controller) Submit(ctx context.Context) error {
	if msg := c.Validate(); msg != "" {
		c.lastErr = msg
		return &ValidationError{Message: msg}
	}

	var err error
	switch c.mode {
	case ModeEdit:
		err = c.submitter.Update(ctx, c.targetID, c.values)
	default:
		err = c.submitter.Create(ctx, c.values)
	}
	if err != nil {
		c.lastErr = err.Error()
		return err
	}

	c.values.Password = ""
	c.values.Password2 = ""
	c.lastErr = ""
	c.open = false
	if c.onSuccess != nil {
		c.onSuccess(ctx)
	}
	return nil
}

// ValidationError reports a client-side validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
