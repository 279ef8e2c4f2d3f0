package dto

// TemplateResponse describes a per-status message template.
type TemplateResponse struct {
	Status string `json:"status"`
	Body   string `json:"body"`
}

// TemplateUpdateRequest replaces a template body.
type TemplateUpdateRequest struct {
	Body string `json:"body"`
}

// NotificationPreviewResponse carries a rendered message and wa.me link.
type NotificationPreviewResponse struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
}
