package templates_test

import (
	"strings"
	"testing"

	tpl "github.com/kashvi-creations/storefront-api/pkg/mailer/templates"
)

func TestRenderInvoiceInjectsMarkupVerbatim(t *testing.T) {
	data := tpl.EmailData{
		Name:        "Asha",
		StoreName:   "Kashvi Creations",
		InvoiceHTML: `<table><tr><td>Banarasi Silk Saree</td><td>₹3999</td></tr></table>`,
	}
	html, err := tpl.RenderHTML(tpl.Invoice, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, data.InvoiceHTML) {
		t.Error("invoice markup was escaped or dropped")
	}
	if !strings.Contains(html, "Kashvi Creations") {
		t.Error("store branding missing")
	}
}

func TestRenderInvoiceWithMapData(t *testing.T) {
	// the email worker passes EmailJob.Data, which round-trips through JSON
	data := tpl.ToMap(tpl.EmailData{
		Name:        "Asha",
		StoreName:   "Kashvi Creations",
		InvoiceHTML: "<p>order summary</p>",
	})
	html, err := tpl.RenderHTML(tpl.Invoice, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "<p>order summary</p>") {
		t.Error("invoice markup missing after map round-trip")
	}
}

func TestRenderResetPassword(t *testing.T) {
	data := tpl.EmailData{
		Name:          "Asha",
		StoreName:     "Kashvi Creations",
		ResetURL:      "https://shop.example.com/reset-password/abc123",
		ExpiresInText: "1 hour",
	}
	html, err := tpl.RenderHTML(tpl.ResetPassword, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, data.ResetURL) {
		t.Error("reset link missing from body")
	}
	if !strings.Contains(html, "1 hour") {
		t.Error("expiry text missing from body")
	}
}

func TestRenderLoginNotification(t *testing.T) {
	data := tpl.EmailData{
		Name:      "Asha",
		StoreName: "Kashvi Creations",
		Time:      "2024-06-01 10:00 UTC",
		IP:        "203.0.113.9",
		UserAgent: "Mozilla/5.0",
	}
	html, err := tpl.RenderHTML(tpl.LoginNotification, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{data.Time, data.IP, data.UserAgent} {
		if !strings.Contains(html, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSubjectFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{tpl.Invoice, "Your Order Invoice - Kashvi Creations"},
		{tpl.ResetPassword, "Password Reset Request - Kashvi Creations"},
		{tpl.LoginNotification, "New login to your account - Kashvi Creations"},
		{"unknown", "Kashvi Creations"},
	}
	for _, tt := range tests {
		if got := tpl.SubjectFor(tt.name, "Kashvi Creations"); got != tt.want {
			t.Errorf("SubjectFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
