// Package transport defines the request and response shapes of the ad copy
// generation endpoints.
package transport

// GenerateRequest carries the campaign context for ad copy generation.
type GenerateRequest struct {
	Industry       string `json:"industry" validate:"required,max=100"`
	TargetAudience string `json:"targetAudience" validate:"required,max=500"`
	Objective      string `json:"objective" validate:"required,max=100"`
}

// HeadlinesResponse carries generated ad headlines.
type HeadlinesResponse struct {
	Headlines []string `json:"headlines"`
}

// DescriptionsResponse carries generated ad descriptions.
type DescriptionsResponse struct {
	Descriptions []string `json:"descriptions"`
}

// ImagesResponse carries suggested ad creative image URLs.
type ImagesResponse struct {
	Images []string `json:"images"`
}
