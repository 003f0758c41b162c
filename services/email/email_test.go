package emailsvc

import (
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/bulletin/core"
	logsvc "github.com/trezcool/bulletin/services/logger"
)

type welcomeData struct {
	Name  string
	Email string
}

func newWelcome() *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Name: "Jane Doe", Address: "jane@test.cd"}},
		Cc:           []mail.Address{{Address: "office@test.cd"}},
		Subject:      "Welcome, Jane Doe",
		TemplateName: "welcome",
		TemplateData: welcomeData{Name: "Jane Doe", Email: "jane@test.cd"},
	}
}

func TestConsoleServiceMock_SendMessages(t *testing.T) {
	conf := core.NewTestConfig()
	logger := logsvc.NewDiscardLogger(conf)
	core.ParseEmailTemplates(logger)

	svc := NewConsoleServiceMock(conf, logger)
	svc.SendMessages(
		newWelcome(),
		&core.EmailMessage{Subject: "no recipients", BodyStr: "hello"},
		&core.EmailMessage{To: []mail.Address{{Address: "x@test.cd"}}, Subject: "no content"},
	)

	sent := svc.SentMessages()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].TextContent, "Hi Jane Doe,")
	assert.Contains(t, sent[0].TextContent, conf.FrontendBaseURL)
	assert.Contains(t, sent[0].HTMLContent, "<strong>jane@test.cd</strong>")
}

func Test_consoleService_format(t *testing.T) {
	conf := core.NewTestConfig()
	logger := logsvc.NewDiscardLogger(conf)
	core.ParseEmailTemplates(logger)

	svc := NewConsoleServiceMock(conf, logger)
	body := svc.sendMessage(newWelcome())

	assert.Contains(t, body, "From: \"Bulletin\" <noreply@localhost>\r\n")
	assert.Contains(t, body, "Subject: [Bulletin] Welcome, Jane Doe\r\n")
	assert.Contains(t, body, "To: \"Jane Doe\" <jane@test.cd>\r\n")
	assert.Contains(t, body, "CC: <office@test.cd>\r\n")
	assert.Contains(t, body, "Content-Type: text/plain")
	assert.Contains(t, body, "Content-Type: text/html")
}

func Test_sendgridService_prepare(t *testing.T) {
	conf := core.NewTestConfig()
	svc := NewSendgridService(conf, logsvc.NewDiscardLogger(conf)).(*sendgridService)

	msg := newWelcome()
	msg.TextContent = "text"
	msg.HTMLContent = "<p>html</p>"
	m := svc.prepare(*msg)

	require.Len(t, m.Personalizations, 1)
	p := m.Personalizations[0]
	assert.Equal(t, "[Bulletin] Welcome, Jane Doe", p.Subject)
	require.Len(t, p.To, 1)
	assert.Equal(t, "jane@test.cd", p.To[0].Address)
	require.Len(t, p.CC, 1)
	assert.Equal(t, "noreply@localhost", m.From.Address)
	require.Len(t, m.Content, 2)
	assert.Equal(t, "text/plain", m.Content[0].Type)
	assert.Equal(t, "text/html", m.Content[1].Type)
}
