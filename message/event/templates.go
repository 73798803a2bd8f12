package event

import "html/template"

var purchaseTemplate = template.Must(template.New("purchase").Parse(`
<html>
<body>
	<h2>Your Ticket Purchase Confirmation</h2>
	<p>Thank you for your purchase, {{.UserName}}!</p>
	<p>Event: <strong>{{.EventName}}</strong> (ID: {{.EventID}})</p>
	<p>Date: {{.EventDate.Format "Mon, 02 Jan 2006 15:04"}}</p>
	<p>Ticket ID: {{.TicketID}}</p>
	<p>Seat: {{.SeatNo}}</p>
	<p>Category: {{.SeatCategory}}</p>
	<p>Price: ${{.Price}}</p>
	<p>Please show this email or your ticket ID when checking in.</p>
</body>
</html>`))

var resaleBuyerTemplate = template.Must(template.New("resale_buyer").Parse(`
<html>
<body>
	<h2>Resale Ticket Purchase Confirmation</h2>
	<p>Hello {{.BuyerName}},</p>
	<p>You have successfully purchased a resale ticket!</p>
	<p>Event: <strong>{{.EventName}}</strong> (ID: {{.EventID}})</p>
	<p>Ticket ID: {{.TicketID}}</p>
	<p>Seat: {{.SeatNo}}</p>
	<p>Category: {{.SeatCategory}}</p>
	<p>Price: ${{.Price}}</p>
</body>
</html>`))

var resaleSellerTemplate = template.Must(template.New("resale_seller").Parse(`
<html>
<body>
	<h2>Ticket Resale Confirmation</h2>
	<p>Hello {{.SellerName}},</p>
	<p>Your ticket has been successfully resold!</p>
	<p>Event: <strong>{{.EventName}}</strong> (ID: {{.EventID}})</p>
	<p>Ticket ID: {{.TicketID}}</p>
	<p>Seat: {{.SeatNo}}</p>
	<p>Category: {{.SeatCategory}}</p>
	<p>Resale Price: ${{.Price}}</p>
	<p>You have been refunded ${{.RefundAmount}}</p>
</body>
</html>`))

var waitlistTemplate = template.Must(template.New("waitlist").Parse(`
<html>
<body>
	<h2>Waitlist Notification</h2>
	<p>Good news! Tickets are now available for resale for event:</p>
	<p><strong>{{.EventName}}</strong> (ID: {{.EventID}}) on {{.EventDate.Format "Mon, 02 Jan 2006 15:04"}}</p>
	<p>As you were on our waitlist, you now have priority access to purchase tickets.</p>
	<p><strong>This offer expires at: {{.ExpirationTime.Format "Mon, 02 Jan 2006 15:04"}}</strong></p>
	<p>Please log in to your account to complete your purchase.</p>
</body>
</html>`))

var checkInTemplate = template.Must(template.New("checkin").Parse(`
<html>
<body>
	<h2>Event Check-in Confirmation</h2>
	<p>You have successfully checked in to {{.EventName}}!</p>
	<p>Ticket ID: {{.TicketID}}</p>
	<p>Check-in Time: {{.Header.PublishedAt.Format "Mon, 02 Jan 2006 15:04"}}</p>
	<p>Enjoy the event!</p>
</body>
</html>`))

var paymentTemplate = template.Must(template.New("payment").Parse(`
<html>
<body>
	<h2>Payment Confirmation</h2>
	<p>Your payment has been successfully processed.</p>
	<p>Amount: ${{.Amount}}</p>
	<p>Payment ID: {{.PaymentID}}</p>
	<p>Ticket ID: {{.TicketID}}</p>
	<p>Thank you for your purchase!</p>
</body>
</html>`))
