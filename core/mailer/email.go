// Package mailer gửi email thông báo qua SMTP relay.
package mailer

import (
	"fmt"

	"page_builder/core/common"

	gomail "gopkg.in/gomail.v2"
)

// Sender gửi một email HTML tới một người nhận
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender gửi email qua SMTP bằng gomail
type SMTPSender struct {
	Host     string // SMTP host
	Port     int    // SMTP port
	Username string // Tài khoản SMTP
	Password string // Mật khẩu SMTP
	From     string // Địa chỉ gửi
	FromName string // Tên hiển thị của người gửi
}

// NewSMTPSender tạo sender với cấu hình SMTP
func NewSMTPSender(host string, port int, username, password, from, fromName string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
		FromName: fromName,
	}
}

// Send gửi một email HTML. Mỗi lần gửi mở một kết nối SMTP mới.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.FromName, s.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return common.NewError(common.ErrCodeExternalEmail, common.MsgInternalError, common.StatusBadGateway, err)
	}
	return nil
}
