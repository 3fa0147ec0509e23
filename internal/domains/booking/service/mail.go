package service

import (
	"bytes"
	"fmt"
	"html/template"

	"maludy/config"
	"maludy/infras/mailer"
	"maludy/internal/domains/booking/model"
	"maludy/shared/constant"
)

var customerEmailTmpl = template.Must(template.New("customer").Parse(`
<h1>{{.Agency.Name}}</h1>
<h2>Booking confirmation #{{.Booking.No}}</h2>
<p>Hi {{.Booking.CustomerName}}, your reservation is confirmed.</p>
<table>
  <tr><td>Activity</td><td>{{.ActivityName}}</td></tr>
  <tr><td>Date</td><td>{{.Date}}</td></tr>
  <tr><td>Schedule</td><td>{{.Booking.Schedule}}</td></tr>
  <tr><td>Pickup</td><td>{{.Booking.PickupLocation}}</td></tr>
  <tr><td>Guests</td><td>{{.TotalPeople}}</td></tr>
  <tr><td>Total</td><td>${{.Booking.TotalPrice}}</td></tr>
</table>
<p>Your receipt is attached. Keep your reservation code handy: <strong>{{.Booking.No}}</strong>.</p>
<p>{{.Agency.Name}} | {{.Agency.Email}} | {{.Agency.Phone}} | <a href="{{.Agency.Web}}">{{.Agency.Web}}</a></p>
`))

var companyEmailTmpl = template.Must(template.New("company").Parse(`
<h2>New booking #{{.Booking.No}}</h2>
<table>
  <tr><td>Activity</td><td>{{.ActivityName}}</td></tr>
  <tr><td>Date</td><td>{{.Date}}</td></tr>
  <tr><td>Schedule</td><td>{{.Booking.Schedule}}</td></tr>
  <tr><td>Pickup</td><td>{{.Booking.PickupLocation}}</td></tr>
  <tr><td>Guests</td><td>{{.TotalPeople}}</td></tr>
  <tr><td>Payment</td><td>{{.Booking.PaymentMethod}}</td></tr>
  <tr><td>Total</td><td>${{.Booking.TotalPrice}}</td></tr>
</table>
<h3>Customer</h3>
<p>{{.Booking.CustomerName}}<br/>{{.Booking.CustomerEmail}}<br/>{{.Booking.CustomerPhone}}</p>
`))

type emailData struct {
	Booking      model.Booking
	ActivityName string
	Date         string
	TotalPeople  int
	Agency       config.Agency
}

func buildBookingEmails(cfg *config.Config, booking model.Booking, activityName, receiptURL string) (customer, company mailer.Email, err error) {
	data := emailData{
		Booking:      booking,
		ActivityName: activityName,
		Date:         booking.Date.Format(constant.CalendarDayFormat),
		TotalPeople:  booking.Seniors + booking.Adults + booking.Youths + booking.Children + booking.Babies,
		Agency:       cfg.Agency,
	}

	attachment := mailer.Attachment{
		Filename:    booking.No + ".pdf",
		Path:        receiptURL,
		ContentType: constant.ContentTypePDF,
	}

	var customerBody bytes.Buffer
	if err = customerEmailTmpl.Execute(&customerBody, data); err != nil {
		return customer, company, fmt.Errorf("failed to render customer email: %w", err)
	}

	var companyBody bytes.Buffer
	if err = companyEmailTmpl.Execute(&companyBody, data); err != nil {
		return customer, company, fmt.Errorf("failed to render company email: %w", err)
	}

	customer = mailer.Email{
		To:          []string{booking.CustomerEmail},
		Subject:     fmt.Sprintf("Booking confirmation #%s", booking.No),
		HTML:        customerBody.String(),
		Attachments: []mailer.Attachment{attachment},
	}

	company = mailer.Email{
		To:          []string{cfg.Agency.Email},
		Subject:     fmt.Sprintf("New booking: #%s", booking.No),
		HTML:        companyBody.String(),
		Attachments: []mailer.Attachment{attachment},
	}

	return customer, company, nil
}
