package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageTemplateRender(t *testing.T) {
	tmpl := MessageTemplate{
		Status: OrderStatusConfirmed,
		Body:   "Hi {customer_name}, order #{order_number} is confirmed.",
	}

	got := tmpl.Render("Mona", 42)
	assert.Equal(t, "Hi Mona, order #42 is confirmed.", got)
}

func TestMessageTemplateRenderRepeatedPlaceholders(t *testing.T) {
	tmpl := MessageTemplate{Body: "{customer_name} {customer_name} #{order_number}"}
	assert.Equal(t, "Ali Ali #7", tmpl.Render("Ali", 7))
}

func TestMessageTemplateRenderNoPlaceholders(t *testing.T) {
	tmpl := MessageTemplate{Body: "plain text"}
	assert.Equal(t, "plain text", tmpl.Render("Mona", 1))
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+20 100-000-0001", "Hi Mona & co")
	assert.Equal(t, "https://wa.me/201000000001?text=Hi+Mona+%26+co", link)
}

func TestWhatsAppLinkStripsNonDigits(t *testing.T) {
	link := WhatsAppLink("(012) 345 678", "x")
	assert.Equal(t, "https://wa.me/012345678?text=x", link)
}

func TestDefaultTemplatesCoverEveryStatus(t *testing.T) {
	templates := DefaultTemplates()
	require.Len(t, templates, 5)

	seen := make(map[OrderStatus]bool)
	for _, tmpl := range templates {
		require.True(t, tmpl.Status.Valid(), "template for unknown status %q", tmpl.Status)
		assert.NotEmpty(t, tmpl.Body)
		assert.Contains(t, tmpl.Body, "{customer_name}")
		assert.Contains(t, tmpl.Body, "{order_number}")
		seen[tmpl.Status] = true
	}
	assert.Len(t, seen, 5)
}
