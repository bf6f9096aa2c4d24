package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
)

// SMTPNotifier sends advice by plain-text email.
type SMTPNotifier struct {
	addr string // host:port
	from string
}

// NewSMTPNotifier creates an SMTP-backed notifier.
func NewSMTPNotifier(addr, from string) *SMTPNotifier {
	return &SMTPNotifier{addr: addr, from: from}
}

// Send delivers one email. SMTP has no server-side identifier for plain
// submissions, so a generated Message-ID header doubles as the returned
// message identifier.
func (n *SMTPNotifier) Send(ctx context.Context, address, subject, body string) (string, error) {
	if _, err := mail.ParseAddress(address); err != nil {
		return "", fmt.Errorf("%w: invalid recipient %q: %v", ErrPermanent, address, err)
	}

	messageID := fmt.Sprintf("<%s@govwatcher>", uuid.NewString())

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", address)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Message-ID: %s\r\n", messageID)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	// net/smtp has no context support; honor cancellation before dialing
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransient, err)
	}

	if err := smtp.SendMail(n.addr, nil, n.from, []string{address}, []byte(msg.String())); err != nil {
		return "", classifySMTPErr(err)
	}
	return messageID, nil
}

func classifySMTPErr(err error) error {
	// Network failures are retryable; protocol rejections are not
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return fmt.Errorf("%w: %v", ErrPermanent, err)
}
