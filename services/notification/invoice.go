package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"carexyz/models"
)

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"amount": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <div style="max-width: 600px; margin: 0 auto; padding: 24px;">
    <h1 style="color: #2563eb;">Booking Invoice</h1>
    <p>Thank you for booking with Care.xyz. Your booking has been received.</p>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td><strong>Booking ID:</strong></td><td>{{.ID}}</td></tr>
      <tr><td><strong>Service:</strong></td><td>{{.ServiceName}}</td></tr>
      <tr><td><strong>Duration:</strong></td><td>{{.Duration}} {{.DurationType}}</td></tr>
      <tr><td><strong>Location:</strong></td><td>{{.Division}}, {{.District}}</td></tr>
      <tr><td><strong>Address:</strong></td><td>{{.Address}}</td></tr>
      <tr><td><strong>Status:</strong></td><td>{{.Status}}</td></tr>
    </table>
    <h2>Total Cost: {{amount .TotalCost}} BDT</h2>
    <p style="font-size: 12px; color: #6b7280;">Care.xyz - Trusted Care Services<br>info@care.xyz</p>
  </div>
</body>
</html>`))

type invoiceView struct {
	ID           string
	ServiceName  string
	Duration     int
	DurationType models.DurationType
	Division     string
	District     string
	Address      string
	Status       models.BookingStatus
	TotalCost    float64
}

func newInvoiceView(b models.Booking) invoiceView {
	return invoiceView{
		ID:           b.ID.Hex(),
		ServiceName:  b.ServiceName,
		Duration:     b.Duration,
		DurationType: b.DurationType,
		Division:     b.Division,
		District:     b.District,
		Address:      b.Address,
		Status:       b.Status,
		TotalCost:    b.TotalCost,
	}
}

// InvoiceSubject is the subject line of the invoice email for b.
func InvoiceSubject(b models.Booking) string {
	return fmt.Sprintf("Booking Invoice - Care.xyz (%s)", b.ID.Hex())
}

// RenderInvoice renders the HTML invoice body for b.
func RenderInvoice(b models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, newInvoiceView(b)); err != nil {
		return "", fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.String(), nil
}
