package guard

import (
	"testing"

	"task-manager-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCategoryDetails(t *testing.T) {
	t.Run("work", func(t *testing.T) {
		d := DecodeCategoryDetails(domain.CategoryWork, map[string]any{
			"project_name": "apollo",
			"client_name":  "acme",
			"billable":     true,
		})
		require.IsType(t, domain.WorkDetails{}, d)
		work := d.(domain.WorkDetails)
		assert.Equal(t, "apollo", work.ProjectName)
		assert.True(t, work.Billable)
		assert.Equal(t, domain.CategoryWork, d.Category())
	})

	t.Run("shopping numbers come from JSON floats", func(t *testing.T) {
		d := DecodeCategoryDetails(domain.CategoryShopping, map[string]any{
			"store_name":     "market",
			"quantity":       3.0,
			"estimated_cost": 49.9,
		})
		shopping := d.(domain.ShoppingDetails)
		assert.Equal(t, 3, shopping.Quantity)
		assert.Equal(t, 49.9, shopping.EstimatedCost)
	})

	t.Run("health parses the appointment time", func(t *testing.T) {
		d := DecodeCategoryDetails(domain.CategoryHealth, map[string]any{
			"provider":       "clinic",
			"appointment_at": "2026-09-15T09:30:00Z",
		})
		health := d.(domain.HealthDetails)
		require.NotNil(t, health.AppointmentAt)
		assert.Equal(t, 15, health.AppointmentAt.Day())
	})

	t.Run("malformed values fall back to zero values", func(t *testing.T) {
		d := DecodeCategoryDetails(domain.CategoryFinance, map[string]any{
			"account": 42,
			"amount":  "a lot",
		})
		finance := d.(domain.FinanceDetails)
		assert.Empty(t, finance.Account)
		assert.Zero(t, finance.Amount)
	})

	t.Run("foreign fields are ignored", func(t *testing.T) {
		d := DecodeCategoryDetails(domain.CategoryPersonal, map[string]any{
			"location":     "home",
			"project_name": "should not leak",
		})
		personal := d.(domain.PersonalDetails)
		assert.Equal(t, "home", personal.Location)
	})

	t.Run("nil payload yields nil", func(t *testing.T) {
		assert.Nil(t, DecodeCategoryDetails(domain.CategoryWork, nil))
	})

	t.Run("unknown category yields nil", func(t *testing.T) {
		assert.Nil(t, DecodeCategoryDetails("CHORES", map[string]any{"x": 1}))
	})
}
