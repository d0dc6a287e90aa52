package meta

// FieldData is one name/value-list pair from a lead detail response.
type FieldData struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// LeadDetail is the Graph API response for a leadgen event.
type LeadDetail struct {
	ID          string      `json:"id"`
	AdID        string      `json:"ad_id"`
	FormID      string      `json:"form_id"`
	CreatedTime string      `json:"created_time"`
	FieldData   []FieldData `json:"field_data"`
}

// Insights carries the campaign metrics the refresher consumes.
type Insights struct {
	CTR   float64
	Spend float64
}

type createCampaignRequest struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	SpecialAdCategories []string `json:"special_ad_categories"`
}

type createCampaignResponse struct {
	ID    string     `json:"id"`
	Error *metaError `json:"error,omitempty"`
}

type metaError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

type insightsResponse struct {
	Data []struct {
		CTR   string `json:"ctr"`
		Spend string `json:"spend"`
	} `json:"data"`
}
