package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/internal/form"
	"go-portfolio-backend/internal/i18n"
)

func validValues() form.Values {
	return form.Values{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Company: "ACME",
		Subject: "client",
		Message: "I would like to discuss a project with you.",
	}
}

func TestControllerNavigation(t *testing.T) {
	c := form.NewController(form.NewRules(i18n.Dict("en")))

	t.Run("Starts at the first step", func(t *testing.T) {
		assert.Equal(t, form.StepIdentity, c.Step())
	})

	t.Run("Next advances and clamps at the last step", func(t *testing.T) {
		for i := 0; i < form.TotalSteps+3; i++ {
			c.Next()
		}
		assert.Equal(t, form.StepRecap, c.Step())
	})

	t.Run("Prev retreats and clamps at the first step", func(t *testing.T) {
		for i := 0; i < form.TotalSteps+3; i++ {
			c.Prev()
		}
		assert.Equal(t, form.StepIdentity, c.Step())
	})

	t.Run("Goto clamps to the valid range", func(t *testing.T) {
		assert.Equal(t, form.StepSubject, c.Goto(3))
		assert.Equal(t, form.StepRecap, c.Goto(99))
		assert.Equal(t, form.StepIdentity, c.Goto(-1))
	})

	t.Run("Navigation is soft-gated on invalid fields", func(t *testing.T) {
		c.SetValues(form.Values{}) // everything missing
		assert.Equal(t, form.StepCompanyEmail, c.Goto(2))
	})
}

func TestProgressPercent(t *testing.T) {
	t.Run("Eased curve front-loads early steps", func(t *testing.T) {
		assert.Equal(t, 0, form.ProgressPercent(1, 5))
		assert.Equal(t, 37, form.ProgressPercent(2, 5))
		assert.Equal(t, 67, form.ProgressPercent(3, 5))
		assert.Equal(t, 89, form.ProgressPercent(4, 5))
		assert.Equal(t, 100, form.ProgressPercent(5, 5))
	})

	t.Run("Monotonically non-decreasing", func(t *testing.T) {
		prev := -1
		for step := 1; step <= 5; step++ {
			pct := form.ProgressPercent(step, 5)
			assert.GreaterOrEqual(t, pct, prev)
			prev = pct
		}
	})

	t.Run("Out-of-range steps clamp", func(t *testing.T) {
		assert.Equal(t, 0, form.ProgressPercent(0, 5))
		assert.Equal(t, 100, form.ProgressPercent(9, 5))
	})
}

func TestControllerValidate(t *testing.T) {
	c := form.NewController(form.NewRules(i18n.Dict("en")))

	t.Run("All-valid form may submit", func(t *testing.T) {
		c.SetValues(validValues())
		assert.True(t, c.Validate())
		assert.True(t, c.CanSubmit())
		assert.Empty(t, c.FieldErrors())
	})

	t.Run("Invalid fields surface inline errors and block submit", func(t *testing.T) {
		v := validValues()
		v.Email = "nope"
		v.Message = "short"
		c.SetValues(v)

		assert.False(t, c.Validate())
		assert.False(t, c.CanSubmit())

		errs := c.FieldErrors()
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "message")
		assert.NotContains(t, errs, "name")
	})

	t.Run("Optional fields stay silent when empty", func(t *testing.T) {
		v := validValues()
		v.Company = ""
		v.LastName = ""
		c.SetValues(v)
		assert.True(t, c.Validate())
	})
}
