package guard

import (
	"time"

	"task-manager-service/internal/domain"
)

// DecodeCategoryDetails builds the satellite record for a task out of the
// raw detail fields in an update request. Dispatch is a switch over the
// category variant; fields belonging to other categories are ignored, and
// malformed values fall back to their zero value. Satellite data is a
// soft-fail concern end to end, so this decoder never errors.
func DecodeCategoryDetails(category domain.TaskCategory, raw map[string]any) domain.CategoryDetails {
	if raw == nil {
		return nil
	}

	switch category {
	case domain.CategoryWork:
		return domain.WorkDetails{
			ProjectName: stringField(raw, "project_name"),
			ClientName:  stringField(raw, "client_name"),
			Billable:    boolField(raw, "billable"),
		}
	case domain.CategoryPersonal:
		return domain.PersonalDetails{
			Location: stringField(raw, "location"),
			Reminder: boolField(raw, "reminder"),
		}
	case domain.CategoryShopping:
		return domain.ShoppingDetails{
			StoreName:     stringField(raw, "store_name"),
			Quantity:      int(numberField(raw, "quantity")),
			EstimatedCost: numberField(raw, "estimated_cost"),
		}
	case domain.CategoryHealth:
		return domain.HealthDetails{
			Provider:      stringField(raw, "provider"),
			AppointmentAt: timeField(raw, "appointment_at"),
		}
	case domain.CategoryFinance:
		return domain.FinanceDetails{
			Account: stringField(raw, "account"),
			Amount:  numberField(raw, "amount"),
			TxnType: stringField(raw, "txn_type"),
		}
	}
	return nil
}

func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

func boolField(raw map[string]any, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

func numberField(raw map[string]any, key string) float64 {
	f, _ := raw[key].(float64)
	return f
}

func timeField(raw map[string]any, key string) *time.Time {
	s, ok := raw[key].(string)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
