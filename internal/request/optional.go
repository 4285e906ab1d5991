package request

import "encoding/json"

// OptionalString distinguishes "field absent" from "field set to null":
// unassigning requires sending an explicit null, while leaving the field
// out leaves the current value alone.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
