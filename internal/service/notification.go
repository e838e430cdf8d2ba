package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"print4me/internal/domain"
	"print4me/internal/port"
	"print4me/internal/pricing"
)

var notificationHTML = template.Must(template.New("order").Parse(`<h2>New Print Request</h2>
<p><strong>Order ID:</strong> {{.Order.ID}}</p>
<p><strong>Name:</strong> {{.Order.Name}}</p>
<p><strong>Mobile:</strong> {{.Order.Mobile}}</p>
<p><strong>Address:</strong> {{.Order.Address}}</p>
<p><strong>Color Mode:</strong> {{.Order.Options.ColorMode}}</p>
<p><strong>Paper Size:</strong> {{.Order.Options.PaperSize}}</p>
<p><strong>Sides:</strong> {{.Order.Options.Sides}}</p>
<p><strong>Copies:</strong> {{.Order.Options.Copies}}</p>
<p><strong>Pages:</strong> {{.Pages}}</p>
<p><strong>Estimated Total:</strong> {{.Total}}</p>
<p><strong>Breakdown:</strong> {{.Breakdown}}</p>
{{- if .Order.Notes}}
<p><strong>Notes:</strong> {{.Order.Notes}}</p>
{{- end}}
<p><strong>Files:</strong></p>
<ul>
{{- range .Files}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- if .Note}}
<p><em>{{.Note}}</em></p>
{{- end}}
`))

// NotificationSubject is the subject line of the admin email for an order.
func NotificationSubject(order *domain.Order) string {
	return "Print4me - New Print Request from " + order.Name
}

// fileLine describes one item of an order for the admin.
func fileLine(item domain.OrderItem) string {
	line := fmt.Sprintf("%s - %s - pages used: %d", item.File.OriginalName, item.File.ContentType, item.BilledPages)
	switch {
	case item.Manual:
		line += " (entered manually)"
	case item.Selection.IsRange():
		line += fmt.Sprintf(" (range %d-%d)", item.Selection.From, item.Selection.To)
	}
	return line
}

// attachmentNote explains why files were left off the email.
func attachmentNote(size int64) string {
	return fmt.Sprintf("[Note] Attachments not included (combined size %.1fMB exceeds limit).", float64(size)/1024/1024)
}

// BuildNotification renders the admin email for order. Attachments are not
// loaded here; the second return value says whether they should be.
func BuildNotification(order *domain.Order, to string, attachmentLimit int64) (port.EmailMessage, bool, error) {
	q := order.Quote
	pages := order.TotalPages()
	total := q.Currency + " " + pricing.FormatAmount(q.GrandTotal)
	breakdown := pricing.Breakdown(q)

	size := order.TotalSize()
	attach := size <= attachmentLimit
	note := ""
	if !attach {
		note = attachmentNote(size)
	}

	names := make([]string, len(order.Items))
	lines := make([]string, len(order.Items))
	for i, item := range order.Items {
		names[i] = item.File.OriginalName
		lines[i] = fileLine(item)
	}

	var text strings.Builder
	text.WriteString("You have a new print request.\n\n")
	fmt.Fprintf(&text, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&text, "Name: %s\n", order.Name)
	fmt.Fprintf(&text, "Mobile: %s\n", order.Mobile)
	fmt.Fprintf(&text, "Address: %s\n", order.Address)
	fmt.Fprintf(&text, "Color Mode: %s\n", order.Options.ColorMode)
	fmt.Fprintf(&text, "Paper Size: %s\n", order.Options.PaperSize)
	fmt.Fprintf(&text, "Sides: %s\n", order.Options.Sides)
	fmt.Fprintf(&text, "Copies: %d\n", order.Options.Copies)
	fmt.Fprintf(&text, "Pages: %d\n", pages)
	fmt.Fprintf(&text, "Estimated Total: %s\n", total)
	fmt.Fprintf(&text, "Breakdown: %s\n", breakdown)
	if order.Notes != "" {
		fmt.Fprintf(&text, "Notes: %s\n", order.Notes)
	}
	fmt.Fprintf(&text, "Files: %s", strings.Join(names, ", "))
	if note != "" {
		text.WriteString("\n\n" + note)
	}

	var html bytes.Buffer
	if err := notificationHTML.Execute(&html, map[string]any{
		"Order":     order,
		"Pages":     pages,
		"Total":     total,
		"Breakdown": breakdown,
		"Files":     lines,
		"Note":      note,
	}); err != nil {
		return port.EmailMessage{}, false, fmt.Errorf("rendering html body: %w", err)
	}

	return port.EmailMessage{
		To:       to,
		Subject:  NotificationSubject(order),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, attach, nil
}
