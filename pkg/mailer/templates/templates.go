package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmpl "html/template"
)

//go:embed *.tmpl
var FS embed.FS

// Template names.
const (
	Invoice           = "invoice"
	ResetPassword     = "reset_password"
	LoginNotification = "login_notification"
)

// EmailData carries the fields the storefront templates render.
type EmailData struct {
	Name           string `json:"Name"`
	RecipientEmail string `json:"RecipientEmail"`

	// Store identity
	StoreName    string `json:"StoreName"`
	StoreAddress string `json:"StoreAddress"`
	SupportEmail string `json:"SupportEmail"`

	// Flow-specific fields
	ResetURL      string `json:"ResetURL"`
	ExpiresInText string `json:"ExpiresInText"`
	InvoiceHTML   string `json:"InvoiceHTML"`
	Time          string `json:"Time"`
	IP            string `json:"IP"`
	UserAgent     string `json:"UserAgent"`
}

// ToMap converts EmailData to a map[string]any for EmailJob.Data
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

var funcs = htmpl.FuncMap{
	// The invoice body arrives as pre-rendered markup from the order
	// flow; it is injected verbatim inside the branded shell.
	"raw": func(s string) htmpl.HTML { return htmpl.HTML(s) },
}

var parsed = htmpl.Must(htmpl.New("emails").Funcs(funcs).ParseFS(FS, "*.tmpl"))

// RenderHTML renders the named template with the given data.
func RenderHTML(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// SubjectFor returns the subject line for a template, branded with the
// store name.
func SubjectFor(name, storeName string) string {
	switch name {
	case Invoice:
		return "Your Order Invoice - " + storeName
	case ResetPassword:
		return "Password Reset Request - " + storeName
	case LoginNotification:
		return "New login to your account - " + storeName
	default:
		return storeName
	}
}
