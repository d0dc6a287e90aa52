package intake

// WebhookPayload is the page-change notification Meta delivers for leadgen
// events. Only the envelope shape matters here; the lead data itself is
// fetched separately by the pipeline.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry is one page entry within a webhook delivery.
type Entry struct {
	ID      string   `json:"id"`
	Time    int64    `json:"time"`
	Changes []Change `json:"changes"`
}

// Change is one field change within an entry.
type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue carries the leadgen event reference.
type ChangeValue struct {
	LeadgenID   string `json:"leadgen_id"`
	PageID      string `json:"page_id"`
	FormID      string `json:"form_id"`
	AdID        string `json:"ad_id"`
	CreatedTime int64  `json:"created_time"`
}

// LeadgenID extracts the lead-generation event id from the envelope, or ""
// when the payload does not match the expected page-change shape.
func (p WebhookPayload) LeadgenID() string {
	if p.Object != "page" {
		return ""
	}
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return ""
	}
	return p.Entry[0].Changes[0].Value.LeadgenID
}
