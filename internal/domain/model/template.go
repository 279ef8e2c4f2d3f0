package model

import (
	"fmt"
	"net/url"
	"strings"
)

// MessageTemplate is a per-status WhatsApp notification template. The body may
// reference {customer_name} and {order_number} placeholders.
type MessageTemplate struct {
	Status OrderStatus
	Body   string
}

// Render substitutes template placeholders with order values.
func (t MessageTemplate) Render(customerName string, orderNumber int64) string {
	replacer := strings.NewReplacer(
		"{customer_name}", customerName,
		"{order_number}", fmt.Sprintf("%d", orderNumber),
	)
	return replacer.Replace(t.Body)
}

// WhatsAppLink builds a wa.me link that opens a chat with the customer phone
// and the rendered message prefilled. Non-digit characters are stripped from
// the phone number.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(message)
}

// DefaultTemplates seeds one template per lifecycle status.
func DefaultTemplates() []MessageTemplate {
	return []MessageTemplate{
		{Status: OrderStatusPending, Body: "Hello {customer_name}, we received your order #{order_number}. Our team will contact you shortly to confirm it."},
		{Status: OrderStatusConfirmed, Body: "Thank you {customer_name}, your order #{order_number} is confirmed and being prepared."},
		{Status: OrderStatusShipped, Body: "Good news {customer_name}, your order #{order_number} has been shipped and is on its way."},
		{Status: OrderStatusDelivered, Body: "Dear {customer_name}, your order #{order_number} was delivered. Thank you for shopping with us!"},
		{Status: OrderStatusCancelled, Body: "Hello {customer_name}, unfortunately your order #{order_number} has been cancelled. We are happy to help you place a new one."},
	}
}
