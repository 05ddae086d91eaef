package email

import (
	"gopkg.in/gomail.v2"
)

// Sender 定義通知寄送介面，process 啟動時建立一次並注入 handler
type Sender interface {
	Send(to, subject, body string, html bool) error
}

// SMTPSender 透過 gomail 寄送外部郵件
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(to, subject, body string, html bool) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if html {
		m.SetBody("text/html", body)
	} else {
		m.SetBody("text/plain", body)
	}
	return s.dialer.DialAndSend(m)
}

type FakeSender struct {
	SendFn func(to, subject, body string, html bool) error
}

// Send 執行 Fake 設定或 panic
func (f *FakeSender) Send(to, subject, body string, html bool) error {
	if f.SendFn != nil {
		return f.SendFn(to, subject, body, html)
	}
	panic("unexpected Send")
}
