package email

import (
	"strings"
	"testing"
)

func TestRenderLeadCapturedTemplate(t *testing.T) {
	content, err := renderEmailTemplate("lead_captured.html", leadCapturedEmailData{
		baseEmailData: baseEmailData{
			Title:   "New lead captured",
			Heading: "New lead captured",
		},
		LeadName:     "Jane Doe",
		LeadEmail:    "jane@acme.test",
		Company:      "Acme",
		CampaignName: "Acme Launch",
		LeadScore:    95,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Jane Doe", "jane@acme.test", "Acme Launch", "95"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderTemplate_EscapesHTML(t *testing.T) {
	content, err := renderEmailTemplate("lead_captured.html", leadCapturedEmailData{
		baseEmailData: baseEmailData{Title: "t", Heading: "h"},
		LeadName:      `<script>alert("x")</script>`,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(content, "<script>") {
		t.Fatal("lead fields must be HTML-escaped")
	}
}
