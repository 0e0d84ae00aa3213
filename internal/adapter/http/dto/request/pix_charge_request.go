package request

// PixChargeCreateRequest is the body of POST /pix. Amount is typed any because
// clients send it both as a JSON number and as a string; Value is the legacy
// alias some integrations still use.
type PixChargeCreateRequest struct {
	Amount      any            `json:"amount"`
	Value       any            `json:"value"`
	Description string         `json:"description"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	WebhookURL  string         `json:"webhook_url"`
	Metadata    map[string]any `json:"metadata"`
}

// ResolveAmount prefers amount over the legacy value field.
func (r PixChargeCreateRequest) ResolveAmount() any {
	if r.Amount != nil {
		return r.Amount
	}
	return r.Value
}
