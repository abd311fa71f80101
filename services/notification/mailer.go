package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPConfig holds the settings of the outgoing mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPMailer sends invoices through an SMTP relay.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPMailer{cfg: cfg}
}

// SendInvoice dials the relay and delivers one invoice. A client is created per
// send so concurrent workers never share a connection.
func (m *SMTPMailer) SendInvoice(ctx context.Context, inv Invoice) error {
	msg, err := buildInvoiceMessage(m.cfg.From, inv)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send invoice for booking %s: %w", inv.Booking.ID.Hex(), err)
	}
	return nil
}

func buildInvoiceMessage(from string, inv Invoice) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(inv.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", inv.To, err)
	}
	msg.Subject(InvoiceSubject(inv.Booking))
	msg.SetDate()
	if err := msg.SetBodyHTMLTemplate(invoiceTemplate, newInvoiceView(inv.Booking)); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return msg, nil
}

// LogMailer writes invoices to the log instead of sending them. Used when no
// SMTP credentials are configured.
type LogMailer struct {
	Logger *zap.Logger
}

func (m *LogMailer) SendInvoice(_ context.Context, inv Invoice) error {
	body, err := RenderInvoice(inv.Booking)
	if err != nil {
		return err
	}
	m.Logger.Info("invoice email (not sent, SMTP disabled)",
		zap.String("to", inv.To),
		zap.String("subject", InvoiceSubject(inv.Booking)),
		zap.Int("bodyBytes", len(body)))
	return nil
}
