package usecases

import (
	"sepapay/internal/domain/acquirer"
)

// CheckoutCurrency is the currency object handed over by the host
// platform's checkout context.
type CheckoutCurrency struct {
	ID   uint
	Name string
}

// CheckoutCountry is the partner country object from the checkout
// context; only its name is forwarded.
type CheckoutCountry struct {
	Name string
}

// BuildCheckoutValues maps a transaction context onto the form values
// the gateway checkout template consumes. Amount and currency are
// contractually guaranteed by the caller; partner fields are optional.
// Pure function, no side effects on the input map.
func BuildCheckoutValues(acq *acquirer.Acquirer, txValues map[string]any) map[string]any {
	values := make(map[string]any, len(txValues)+8)
	for k, v := range txValues {
		values[k] = v
	}

	values["company"] = acq.CompanyName()

	if cur, ok := txValues["currency"].(CheckoutCurrency); ok {
		values["currency"] = cur.Name
		values["currency_id"] = cur.ID
	}

	values["address_line1"] = txValues["partner_address"]
	values["address_city"] = txValues["partner_city"]
	if country, ok := txValues["partner_country"].(CheckoutCountry); ok {
		values["address_country"] = country.Name
	} else {
		values["address_country"] = ""
	}
	values["email"] = txValues["partner_email"]
	values["address_zip"] = txValues["partner_zip"]
	values["name"] = txValues["partner_name"]
	values["phone"] = txValues["partner_phone"]

	returnURL, _ := values["return_url"].(string)
	delete(values, "return_url")
	values["returndata"] = returnURL

	return values
}

// mandatoryTokenFields are the submitted form fields required before a
// token can be created server-to-server. IBAN structure itself is left
// to the gateway.
var mandatoryTokenFields = []string{"iban"}

// ValidateTokenData reports whether submitted form data carries every
// mandatory field for direct token creation.
func ValidateTokenData(data map[string]string) bool {
	for _, field := range mandatoryTokenFields {
		if data[field] == "" {
			return false
		}
	}
	return true
}
