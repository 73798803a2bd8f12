package mail

import (
	"context"
	"sync"
)

type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// SenderMock records sent messages in memory for tests.
type SenderMock struct {
	lock sync.Mutex

	SendErr error
	sent    []SentMessage
}

func (m *SenderMock) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.SendErr != nil {
		return m.SendErr
	}

	m.sent = append(m.sent, SentMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *SenderMock) Sent() []SentMessage {
	m.lock.Lock()
	defer m.lock.Unlock()

	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}
