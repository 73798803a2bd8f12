package http

import "html/template"

var displayQRPage = template.Must(template.New("display_qr").Parse(`<!DOCTYPE html>
<html>
<head><title>Your Ticket</title></head>
<body>
	<h2>Ticket {{.TicketID}}</h2>
	<p>Present this QR code at the entrance.</p>
	<img src="/generateqr/{{.TicketID}}" alt="check-in QR code" width="256" height="256">
</body>
</html>`))

var alreadyCheckedInPage = template.Must(template.New("already_checked_in").Parse(`<!DOCTYPE html>
<html>
<head><title>Already Checked In</title></head>
<body>
	<h2>Ticket {{.TicketID}}</h2>
	<p>This ticket has already been checked in.</p>
</body>
</html>`))

var checkInSuccessPage = template.Must(template.New("check_in_success").Parse(`<!DOCTYPE html>
<html>
<head><title>Checked In</title></head>
<body>
	<h2>Welcome!</h2>
	<p>Ticket {{.TicketID}} is now checked in. Enjoy the event.</p>
</body>
</html>`))

var checkInFailedPage = template.Must(template.New("check_in_failed").Parse(`<!DOCTYPE html>
<html>
<head><title>Check-in Failed</title></head>
<body>
	<h2>Check-in failed</h2>
	<p>Ticket {{.TicketID}} could not be checked in. Please try again or contact staff.</p>
</body>
</html>`))
