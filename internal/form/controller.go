package form

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"go-portfolio-backend/pkg/validation"
)

// Step identifies a position in the contact form flow.
type Step int

const (
	StepIdentity Step = iota + 1
	StepCompanyEmail
	StepSubject
	StepMessage
	StepRecap

	TotalSteps = int(StepRecap)
)

// progressExponent shapes the eased completion curve. Values above 1
// front-load perceived progress on the early steps.
const progressExponent = 1.6

// ConfirmationDelay is how long the post-submit confirmation stays up
// before it dismisses itself.
const ConfirmationDelay = 3000 * time.Millisecond

// Values holds the raw per-field input of the form.
type Values struct {
	Name          string `json:"name"`
	LastName      string `json:"-"`
	Email         string `json:"email"`
	Company       string `json:"company,omitempty"`
	Subject       string `json:"subject"`
	CustomSubject string `json:"-"`
	Message       string `json:"message"`
	HP            string `json:"hp,omitempty"`
}

// Controller drives the multi-step contact form: it tracks the current
// step, field values and per-field errors, and gates submission on
// validity. Navigation is soft-gated: moving between steps is always
// allowed, invalid fields only surface inline errors.
type Controller struct {
	mu sync.Mutex

	step       Step
	values     Values
	errors     map[string]string
	rules      *Rules
	submitting bool
	confirmed  bool
}

// NewController starts a controller at the first step with the given
// field rules.
func NewController(rules *Rules) *Controller {
	return &Controller{
		step:   StepIdentity,
		errors: map[string]string{},
		rules:  rules,
	}
}

// Step returns the current step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Next advances one step, clamped at the last step. Navigation is blocked
// while a submission is in flight to avoid duplicate sends.
func (c *Controller) Next() Step {
	return c.Goto(int(c.Step()) + 1)
}

// Prev retreats one step, clamped at the first step.
func (c *Controller) Prev() Step {
	return c.Goto(int(c.Step()) - 1)
}

// Goto jumps to step n, clamped to [1, TotalSteps].
func (c *Controller) Goto(n int) Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return c.step
	}
	if n < 1 {
		n = 1
	}
	if n > TotalSteps {
		n = TotalSteps
	}
	c.step = Step(n)
	return c.step
}

// Progress maps the current step to a completion percentage on an eased
// curve, so early steps feel further along than a linear scale would.
func (c *Controller) Progress() int {
	return ProgressPercent(int(c.Step()), TotalSteps)
}

// ProgressPercent computes round((1-(1-t)^1.6)*100) for t=(step-1)/(total-1).
func ProgressPercent(step, total int) int {
	if total <= 1 {
		return 100
	}
	if step < 1 {
		step = 1
	}
	if step > total {
		step = total
	}
	t := float64(step-1) / float64(total-1)
	return int(math.Round((1 - math.Pow(1-t, progressExponent)) * 100))
}

// SetValues replaces the field values and clears stale inline errors.
func (c *Controller) SetValues(v Values) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = v
	c.errors = map[string]string{}
}

// Values returns a copy of the current field values.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// FieldErrors returns the inline errors from the last validation pass,
// keyed by field name.
func (c *Controller) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Validate runs every field rule across all steps and records inline
// errors. It reports whether the whole form is valid; only then is
// submission permitted.
func (c *Controller) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = map[string]string{}

	checks := []error{
		c.rules.Name("name")(c.values.Name),
		c.rules.LastName("last_name")(c.values.LastName),
		c.rules.Email("email")(c.values.Email),
		c.rules.Company("company")(c.values.Company),
		c.rules.Subject("subject", "custom_subject")(c.values.Subject, c.values.CustomSubject),
		c.rules.Message("message")(c.values.Message),
	}
	for _, err := range checks {
		var fe *validation.FieldError
		if errors.As(err, &fe) {
			c.errors[fe.Field] = fe.Message
		}
	}
	return len(c.errors) == 0
}

// CanSubmit reports whether submission is currently permitted: all rules
// pass and no submission is already in flight.
func (c *Controller) CanSubmit() bool {
	if c.Submitting() {
		return false
	}
	return c.Validate()
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Confirmed reports whether the post-submit confirmation is showing.
func (c *Controller) Confirmed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmed
}

// beginSubmit flips the in-flight flag; it fails if one is already running.
func (c *Controller) beginSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return false
	}
	c.submitting = true
	return true
}

// finishSubmit records the outcome. On success the form is cleared and the
// confirmation shows, dismissing itself after ConfirmationDelay. On
// failure the entered values are retained so the user can retry.
func (c *Controller) finishSubmit(result *SubmitResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if result == nil {
		return
	}
	if result.Sent {
		c.values = Values{}
		c.step = StepIdentity
		c.errors = map[string]string{}
		c.confirmed = true
		time.AfterFunc(ConfirmationDelay, func() {
			c.mu.Lock()
			c.confirmed = false
			c.mu.Unlock()
		})
		return
	}
	for field, msg := range result.FieldErrors {
		c.errors[field] = msg
	}
}

// trimmed returns values with surrounding whitespace stripped, the shape
// actually transmitted.
func (v Values) trimmed() Values {
	v.Name = strings.TrimSpace(v.Name)
	v.LastName = strings.TrimSpace(v.LastName)
	v.Email = strings.TrimSpace(v.Email)
	v.Company = strings.TrimSpace(v.Company)
	v.Subject = strings.TrimSpace(v.Subject)
	v.CustomSubject = strings.TrimSpace(v.CustomSubject)
	v.Message = strings.TrimSpace(v.Message)
	return v
}
