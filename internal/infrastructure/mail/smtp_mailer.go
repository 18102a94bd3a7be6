// Package mail envía las notificaciones transaccionales por SMTP.
// Si SMTP no está configurado los envíos se omiten sin error: el negocio
// nunca depende de que el correo salga.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/premiarte/premiarte-api/internal/application/auth"
	"github.com/premiarte/premiarte-api/internal/application/budgets"
	"github.com/premiarte/premiarte-api/internal/application/usecase"
	"github.com/premiarte/premiarte-api/pkg/config"
	"github.com/premiarte/premiarte-api/pkg/logger"
)

var _ budgets.Notifier = (*SMTPMailer)(nil)
var _ usecase.ContactNotifier = (*SMTPMailer)(nil)
var _ auth.ResetMailer = (*SMTPMailer)(nil)

// SMTPMailer implementa los puertos de notificación sobre un servidor SMTP.
type SMTPMailer struct {
	cfg config.SMTPConfig
	log *logger.Logger

	// dial permite inyectar un sender falso en tests.
	dial func() (gomail.SendCloser, error)
}

// NewSMTPMailer construye el mailer con la configuración SMTP dada.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg, log: log}
	m.dial = func() (gomail.SendCloser, error) {
		return gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password).Dial()
	}
	return m
}

// SendBudgetCreated notifica al administrador que entró un presupuesto nuevo.
func (m *SMTPMailer) SendBudgetCreated(ctx context.Context, data budgets.BudgetEmailData) error {
	subject := fmt.Sprintf("Nuevo presupuesto N° %d - %s", data.BudgetNumber, data.CustomerName)
	return m.send(ctx, m.cfg.AdminEmail, subject, budgetCreatedBody(data))
}

// SendContactReceived notifica al administrador una consulta de contacto.
func (m *SMTPMailer) SendContactReceived(ctx context.Context, data usecase.ContactEmailData) error {
	subject := "Nueva consulta de contacto - " + data.Name
	return m.send(ctx, m.cfg.AdminEmail, subject, contactReceivedBody(data))
}

// SendPasswordReset envía al usuario el token de recuperación de contraseña.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, email, name, token string) error {
	return m.send(ctx, email, "Recuperación de contraseña", passwordResetBody(name, token))
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if !m.cfg.Enabled() {
		m.log.Debug().Str("to", to).Str("subject", subject).Msg("SMTP deshabilitado, correo omitido")
		return nil
	}
	if to == "" {
		return fmt.Errorf("mail: destinatario vacío")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	sender, err := m.dial()
	if err != nil {
		return fmt.Errorf("mail: conectar a SMTP: %w", err)
	}
	defer sender.Close()

	if err := gomail.Send(sender, msg); err != nil {
		return fmt.Errorf("mail: enviar a %s: %w", to, err)
	}
	m.log.Info().Str("to", to).Str("subject", subject).Msg("correo enviado")
	return nil
}

// ── cuerpos HTML ──────────────────────────────────────────────────────────────

func budgetCreatedBody(data budgets.BudgetEmailData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Nuevo presupuesto N° %d</h2>", data.BudgetNumber)
	fmt.Fprintf(&b, "<p><strong>Cliente:</strong> %s<br>", escape(data.CustomerName))
	fmt.Fprintf(&b, "<strong>Email:</strong> %s<br>", escape(data.CustomerEmail))
	fmt.Fprintf(&b, "<strong>Teléfono:</strong> %s</p>", escape(data.CustomerPhone))
	if data.Message != "" {
		fmt.Fprintf(&b, "<p><strong>Mensaje:</strong> %s</p>", escape(data.Message))
	}

	b.WriteString(`<table border="1" cellpadding="6" cellspacing="0">`)
	b.WriteString("<tr><th>Producto</th><th>Cantidad</th><th>Precio</th><th>Importe</th></tr>")
	for _, it := range data.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>$%s</td><td>$%s</td></tr>",
			escape(it.ProductName), it.Quantity, centsToPesos(it.Price), centsToPesos(it.Amount))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p><strong>Total: $%s</strong></p>", centsToPesos(data.TotalAmount))
	return b.String()
}

func contactReceivedBody(data usecase.ContactEmailData) string {
	var b strings.Builder
	b.WriteString("<h2>Nueva consulta de contacto</h2>")
	fmt.Fprintf(&b, "<p><strong>Nombre:</strong> %s<br>", escape(data.Name))
	fmt.Fprintf(&b, "<strong>Email:</strong> %s<br>", escape(data.Email))
	fmt.Fprintf(&b, "<strong>Teléfono:</strong> %s</p>", escape(data.Phone))
	fmt.Fprintf(&b, "<p><strong>Mensaje:</strong></p><p>%s</p>", escape(data.Message))
	return b.String()
}

func passwordResetBody(name, token string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Hola %s</h2>", escape(name))
	b.WriteString("<p>Recibimos un pedido para restablecer tu contraseña. ")
	b.WriteString("Usá el siguiente código dentro de la próxima hora:</p>")
	fmt.Fprintf(&b, "<p><code>%s</code></p>", escape(token))
	b.WriteString("<p>Si no fuiste vos, ignorá este correo.</p>")
	return b.String()
}

// ── helpers ───────────────────────────────────────────────────────────────────

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
)

func escape(s string) string { return htmlEscaper.Replace(s) }

// centsToPesos formatea centavos como pesos con coma decimal. Ej: 150000 → "1500,00"
func centsToPesos(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d", sign, cents/100, cents%100)
}
