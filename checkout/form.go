package checkout

import (
	"sort"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

// Form is the checkout form: shipping details and card details.
type Form struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	Country    string `json:"country,omitempty"`
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

const ErrMsgInvalidForm = "Please correct the highlighted fields"

const formSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["fullName", "email", "phone", "address", "city", "state",
               "zipCode", "cardName", "cardNumber", "expiryDate", "cvv"],
  "properties": {
    "fullName":   {"type": "string", "minLength": 2},
    "email":      {"type": "string", "format": "email"},
    "phone":      {"type": "string", "minLength": 6},
    "address":    {"type": "string", "minLength": 5},
    "city":       {"type": "string", "minLength": 2},
    "state":      {"type": "string", "minLength": 2},
    "zipCode":    {"type": "string", "minLength": 3},
    "country":    {"type": "string"},
    "cardName":   {"type": "string", "minLength": 2},
    "cardNumber": {"type": "string", "minLength": 13},
    "expiryDate": {"type": "string", "minLength": 5},
    "cvv":        {"type": "string", "minLength": 3}
  }
}`

// fieldMessages holds the message shown next to each invalid input.
var fieldMessages = map[string]string{
	"fullName":   "Full name is required",
	"email":      "Invalid email address",
	"phone":      "Phone number is required",
	"address":    "Address is required",
	"city":       "City is required",
	"state":      "State is required",
	"zipCode":    "Zip code is required",
	"country":    "Country is invalid",
	"cardName":   "Name on card is required",
	"cardNumber": "Card number is required",
	"expiryDate": "Expiry date is required",
	"cvv":        "CVV is required",
}

// fieldOrder is the on-page order of the form inputs.
var fieldOrder = []string{
	"fullName", "email", "phone", "address", "city", "state", "zipCode",
	"country", "cardName", "cardNumber", "expiryDate", "cvv",
}

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(formSchema))
})

// Validate checks the form. Violations are reported once per field in
// on-page order.
func (f Form) Validate() error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(f))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	seen := make(map[string]bool)
	for _, re := range result.Errors() {
		field := re.Field()
		if field == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY {
			if p, ok := re.Details()["property"].(string); ok {
				field = p
			}
		}
		seen[field] = true
	}

	fields := make([]string, 0, len(seen))
	for field := range seen {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fieldRank(fields[i]) < fieldRank(fields[j])
	})

	violations := make([]common.FieldViolation, 0, len(fields))
	for _, field := range fields {
		msg, ok := fieldMessages[field]
		if !ok {
			msg = "Invalid value"
		}
		violations = append(violations, common.FieldViolation{Field: field, Description: msg})
	}
	return common.NewValidationError(ErrMsgInvalidForm, violations)
}

func fieldRank(field string) int {
	for i, f := range fieldOrder {
		if f == field {
			return i
		}
	}
	return len(fieldOrder)
}
