package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"mime"
	"net/http"
	"net/smtp"
	"strings"
	"time"
)

// Config holds mail provider settings.
type Config struct {
	Enable    bool   `json:"enable"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	User      string `json:"user"`
	Pass      string `json:"pass"`
	From      string `json:"from"`
	ReplyTo   string `json:"reply_to"`
	UseResend bool   `json:"use_resend"`
	ResendKey string `json:"resend_key"`
}

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender sends emails via SMTP or the Resend HTTP API.
type Sender struct {
	cfg Config
}

func New(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send dispatches an email. Uses Resend if configured, otherwise SMTP.
func (s *Sender) Send(msg Message) error {
	if !s.cfg.Enable {
		return nil
	}
	if s.cfg.UseResend && s.cfg.ResendKey != "" {
		return s.sendResend(msg)
	}
	return s.sendSMTP(msg)
}

func (s *Sender) sendSMTP(msg Message) error {
	host := s.cfg.Host
	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", encodeSubject(msg.Subject)))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	if s.cfg.ReplyTo != "" {
		body.WriteString(fmt.Sprintf("Reply-To: %s\r\n", s.cfg.ReplyTo))
	}
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, host)
	return smtp.SendMail(addr, auth, from, msg.To, body.Bytes())
}

// encodeSubject makes a subject safe for the SMTP header. Korean subjects
// need RFC 2047 encoding; plain ASCII passes through unchanged.
func encodeSubject(subject string) string {
	return mime.QEncoding.Encode("utf-8", subject)
}

func (s *Sender) sendResend(msg Message) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"from":    from,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
	})

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("resend error %d: %s", resp.StatusCode, errResp.Message)
	}
	return nil
}

const subscribeVerifyTpl = `<!DOCTYPE html>
<html>
<body style="font-family:Georgia,'Nanum Myeongjo',serif;background:#faf8f4;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border:1px solid #d9c9a3;border-radius:4px;padding:32px">
  <h2 style="color:#2b2b2b;font-weight:400;letter-spacing:.08em">{{.SiteName}}</h2>
  <p style="color:#444">구독해 주셔서 감사합니다. 아래 버튼을 눌러 이메일 주소를 확인해 주세요.<br/>
  Thank you for subscribing. Please confirm your email address below.</p>
  <p style="margin-top:28px">
    <a href="{{.VerifyURL}}" style="background:#9a7b2d;color:#fff;padding:10px 22px;text-decoration:none;border-radius:2px;letter-spacing:.05em">이메일 확인 · Confirm</a>
  </p>
  <p style="color:#999;font-size:12px">본인이 신청하지 않았다면 이 메일을 무시하셔도 됩니다.<br/>If you did not request this, you can safely ignore this email.</p>
</div>
</body>
</html>`

const newsletterShellTpl = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta http-equiv="Content-Type" content="text/html; charset=UTF-8" /></head>
<body style="background:#faf8f4;margin:0 auto;font-family:Georgia,'Nanum Myeongjo',serif;padding:.5rem">
  <table align="center" width="100%" role="presentation" cellspacing="0" cellpadding="0" border="0" style="max-width:100%;border:1px solid #d9c9a3;border-radius:4px;margin:40px auto;padding:24px;width:580px;background:#fff">
    <tbody>
      <tr><td>
        <p style="text-align:center;letter-spacing:.18em;color:#9a7b2d;font-size:12px;margin:0">{{.SiteName}}</p>
        <h1 style="font-size:22px;text-align:center;font-weight:400;color:#2b2b2b">{{.Subject}}</h1>
        <div style="font-size:14px;line-height:26px;color:#333">{{.Body}}</div>
        <hr style="width:100%;border:none;border-top:1px solid #eee4cf;margin:28px 0" />
        <p style="font-size:11px;line-height:20px;text-align:center;color:#b0a786">
          {{if .UnsubscribeURL}}<a href="{{.UnsubscribeURL}}" style="color:#b0a786">수신 거부 · Unsubscribe</a><br/>{{end}}
          ©{{year}} {{.SiteName}}
        </p>
      </td></tr>
    </tbody>
  </table>
</body>
</html>`

// SubscribeVerifyData is the data for subscription verification emails.
type SubscribeVerifyData struct {
	SiteName  string
	VerifyURL string
}

// NewsletterData is the data for one newsletter email.
type NewsletterData struct {
	SiteName       string
	Subject        string
	Body           template.HTML
	Lang           string
	UnsubscribeURL string
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"year": func() int {
			return time.Now().Year()
		},
	}).Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendSubscribeVerify sends a verification email to a new subscriber.
func (s *Sender) SendSubscribeVerify(to string, data SubscribeVerifyData) error {
	if strings.TrimSpace(data.SiteName) == "" {
		data.SiteName = "Maison Lumière"
	}
	html, err := renderTemplate(subscribeVerifyTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("[%s] 구독 확인 · Confirm your subscription", data.SiteName),
		HTML:    html,
	})
}

// RenderNewsletter renders a campaign body into the branded email shell.
func RenderNewsletter(data NewsletterData) (string, error) {
	if strings.TrimSpace(data.SiteName) == "" {
		data.SiteName = "Maison Lumière"
	}
	if data.Lang == "" {
		data.Lang = "ko"
	}
	return renderTemplate(newsletterShellTpl, data)
}

// SendNewsletter renders and sends one newsletter email.
func (s *Sender) SendNewsletter(to string, data NewsletterData) error {
	html, err := RenderNewsletter(data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: data.Subject,
		HTML:    html,
	})
}
