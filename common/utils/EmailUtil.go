package utils

import (
	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"github.com/zeromicro/go-zero/core/logx"
	"gopkg.in/gomail.v2"
)

// Sender gomail.Dialer 實作此介面
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewMailMessage(from string, to []string, subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return msg
}

func SendEmail(mailService Sender, from string, to []string, subject, body string) error {
	if err := mailService.DialAndSend(NewMailMessage(from, to, subject, body)); err != nil {
		logx.Error("发送邮件失败: ", err)
		return errorz.New(response.SEND_MAIL_FAIL, err.Error())
	}
	return nil
}
