package mail

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"

	"github.com/premiarte/premiarte-api/internal/application/budgets"
	"github.com/premiarte/premiarte-api/pkg/config"
	"github.com/premiarte/premiarte-api/pkg/logger"
)

type fakeSender struct {
	from string
	to   []string
	body bytes.Buffer
}

func (f *fakeSender) Send(from string, to []string, msg io.WriterTo) error {
	f.from = from
	f.to = append(f.to, to...)
	_, err := msg.WriteTo(&f.body)
	return err
}

func (f *fakeSender) Close() error { return nil }

func newTestMailer(sender gomail.SendCloser) *SMTPMailer {
	m := NewSMTPMailer(config.SMTPConfig{
		Host:       "smtp.test",
		Port:       587,
		User:       "premiarte",
		Password:   "secret",
		From:       "no-reply@premiarte.test",
		AdminEmail: "admin@premiarte.test",
	}, logger.New(logger.Config{Env: "test", Level: "disabled"}))
	m.dial = func() (gomail.SendCloser, error) { return sender, nil }
	return m
}

func TestSendBudgetCreated(t *testing.T) {
	sender := &fakeSender{}
	m := newTestMailer(sender)

	err := m.SendBudgetCreated(context.Background(), budgets.BudgetEmailData{
		BudgetNumber:  1001,
		CustomerName:  "Acme <SA>",
		CustomerEmail: "compras@acme.test",
		CustomerPhone: "1144556677",
		TotalAmount:   750000,
		Items: []budgets.BudgetEmailItem{
			{ProductName: "Taza esmaltada", Quantity: 5, Price: 150000, Amount: 750000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"admin@premiarte.test"}, sender.to)
	body := sender.body.String()
	assert.Contains(t, body, "1001")
	assert.Contains(t, body, "Taza esmaltada")
	assert.Contains(t, body, "Acme &lt;SA&gt;")
	assert.NotContains(t, body, "<SA>")
}

func TestSendSkippedWhenSMTPDisabled(t *testing.T) {
	sender := &fakeSender{}
	m := newTestMailer(sender)
	m.cfg.Host = ""

	err := m.SendPasswordReset(context.Background(), "user@test", "Ana", "tok123")
	require.NoError(t, err)
	assert.Empty(t, sender.to)
}

func TestSendRequiresRecipient(t *testing.T) {
	sender := &fakeSender{}
	m := newTestMailer(sender)
	m.cfg.AdminEmail = ""

	err := m.SendBudgetCreated(context.Background(), budgets.BudgetEmailData{BudgetNumber: 1001})
	require.Error(t, err)
}

func TestCentsToPesos(t *testing.T) {
	assert.Equal(t, "1500,00", centsToPesos(150000))
	assert.Equal(t, "0,05", centsToPesos(5))
	assert.Equal(t, "-12,50", centsToPesos(-1250))
}
