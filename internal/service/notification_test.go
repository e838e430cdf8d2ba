package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"print4me/internal/domain"
	"print4me/internal/pricing"
	"print4me/internal/service"
)

func notificationOrder() *domain.Order {
	order := &domain.Order{
		ID:      uuid.MustParse("7f1c2a4e-2b7d-4a56-9f0e-1d2c3b4a5e6f"),
		Name:    `Mona "M" <b>Adel</b>`,
		Mobile:  "01012345678",
		Address: "12 Tahrir St & Co",
		Notes:   "Staple please",
		Options: domain.PrintOptions{
			ColorMode: domain.ColorModeMonochrome,
			PaperSize: domain.PaperSizeA3,
			Sides:     domain.SidesSingle,
			Copies:    2,
		},
		Items: []domain.OrderItem{
			{
				File:          domain.UploadedFile{OriginalName: "thesis.pdf", ContentType: "application/pdf", Size: 1024},
				DetectedPages: 10,
				BilledPages:   5,
				Selection:     &domain.FileSelection{Paginated: true, Mode: domain.SelectRange, From: 3, To: 7},
			},
			{
				File:        domain.UploadedFile{OriginalName: "poster.png", ContentType: "image/png", Size: 2048},
				BilledPages: 4,
				Manual:      true,
			},
		},
	}
	order.Quote = pricing.Quote(order.Options, 0, order.TotalPages())
	return order
}

func TestBuildNotification_TextBody(t *testing.T) {
	msg, attach, err := service.BuildNotification(notificationOrder(), "admin@print4me.app", 1<<20)
	require.NoError(t, err)

	assert.True(t, attach)
	assert.Equal(t, "admin@print4me.app", msg.To)
	assert.Equal(t, `Print4me - New Print Request from Mona "M" <b>Adel</b>`, msg.Subject)
	assert.Contains(t, msg.TextBody, "You have a new print request.\n\n")
	assert.Contains(t, msg.TextBody, "Order ID: 7f1c2a4e-2b7d-4a56-9f0e-1d2c3b4a5e6f\n")
	assert.Contains(t, msg.TextBody, "Color Mode: monochrome\n")
	assert.Contains(t, msg.TextBody, "Paper Size: A3\n")
	assert.Contains(t, msg.TextBody, "Copies: 2\n")
	assert.Contains(t, msg.TextBody, "Pages: 9\n")
	assert.Contains(t, msg.TextBody, "Estimated Total: EGP 43\n")
	assert.Contains(t, msg.TextBody, "Breakdown: EGP 1 × 9 pages × 2 copies = EGP 18 + delivery EGP 25 = EGP 43\n")
	assert.Contains(t, msg.TextBody, "Notes: Staple please\n")
	assert.Contains(t, msg.TextBody, "Files: thesis.pdf, poster.png")
	assert.NotContains(t, msg.TextBody, "[Note]")
}

func TestBuildNotification_HTMLEscapesUserInput(t *testing.T) {
	msg, _, err := service.BuildNotification(notificationOrder(), "admin@print4me.app", 1<<20)
	require.NoError(t, err)

	assert.NotContains(t, msg.HTMLBody, "<b>Adel</b>")
	assert.Contains(t, msg.HTMLBody, "&lt;b&gt;Adel&lt;/b&gt;")
	assert.Contains(t, msg.HTMLBody, "12 Tahrir St &amp; Co")
	assert.Contains(t, msg.HTMLBody, "<li>thesis.pdf - application/pdf - pages used: 5 (range 3-7)</li>")
	assert.Contains(t, msg.HTMLBody, "<li>poster.png - image/png - pages used: 4 (entered manually)</li>")
}

func TestBuildNotification_OverLimit(t *testing.T) {
	order := notificationOrder()
	order.Items[0].File.Size = 30 * 1024 * 1024

	msg, attach, err := service.BuildNotification(order, "admin@print4me.app", 20*1024*1024)
	require.NoError(t, err)

	assert.False(t, attach)
	assert.Contains(t, msg.TextBody, "\n\n[Note] Attachments not included (combined size 30.0MB exceeds limit).")
}
