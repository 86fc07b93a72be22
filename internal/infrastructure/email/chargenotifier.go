package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"sepapay/internal/domain/transaction"
	"sepapay/internal/shared/config"
)

// ChargeNotifier mails the paying customer about charge lifecycle
// events observed in the gateway event log.
type ChargeNotifier struct {
	cfg    config.MailerConfig
	dialer *gomail.Dialer
}

func NewChargeNotifier(cfg config.MailerConfig) *ChargeNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &ChargeNotifier{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (n *ChargeNotifier) NotifyChargeFailed(ctx context.Context, tx *transaction.Transaction) error {
	subject := "Your payment could not be processed"
	body := fmt.Sprintf(
		"The direct debit of %s for payment %s was refused by your bank. Please check your bank account or use another payment method.",
		tx.Amount().String(), tx.Reference(),
	)
	return n.send(tx.PartnerEmail(), subject, body)
}

func (n *ChargeNotifier) NotifyChargeExpired(ctx context.Context, tx *transaction.Transaction) error {
	subject := "Your payment expired"
	body := fmt.Sprintf(
		"The direct debit of %s for payment %s expired before it could be collected. Please retry the payment.",
		tx.Amount().String(), tx.Reference(),
	)
	return n.send(tx.PartnerEmail(), subject, body)
}

func (n *ChargeNotifier) send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("no recipient address on transaction")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
