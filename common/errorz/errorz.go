package errorz

import (
	"errors"
	"strings"
)

// Err 帶回應碼的錯誤，Error() 回傳回應碼供 handler 直接輸出
type Err struct {
	code    string
	message string
}

func New(code string, msgs ...string) *Err {
	return &Err{
		code:    code,
		message: strings.Join(msgs, ", "),
	}
}

func (e *Err) Error() string {
	return e.code
}

func (e *Err) GetCode() string {
	return e.code
}

func (e *Err) GetMessage() string {
	return e.message
}

// CodeOf 取得錯誤的回應碼，非 *Err 時回傳 fallback
func CodeOf(err error, fallback string) string {
	var v *Err
	if errors.As(err, &v) {
		return v.code
	}
	return fallback
}
