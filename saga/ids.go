package saga

import (
	"strings"

	"github.com/lithammer/shortuuid/v3"
)

func newTicketID() string {
	return "TKT-" + strings.ToUpper(shortuuid.New()[:8])
}

func newTransactionID() string {
	return "TXN-" + strings.ToUpper(shortuuid.New()[:12])
}
