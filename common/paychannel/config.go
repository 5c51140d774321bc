package paychannel

import (
	"fmt"
	"net/url"
	"strings"

	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"com.galaxy/pay_channel/common/signer"
)

type JumpMode string

const (
	JumpRedirect JumpMode = "REDIRECT" // 跳轉至渠道收銀台
	JumpInline   JumpMode = "INLINE"   // 前端直接渲染
)

// ResponseFields 渠道回應 JSON 的欄位名稱
type ResponseFields struct {
	Code     string `json:",optional"`
	Message  string `json:",optional"`
	Data     string `json:",optional"`
	Redirect string `json:",optional"`
	Status   string `json:",optional"`
	Balance  string `json:",optional"`
}

// NotifyFields 渠道回調參數的欄位名稱
type NotifyFields struct {
	OrderNo      string `json:",optional"`
	Status       string `json:",optional"`
	Amount       string `json:",optional"`
	Fee          string `json:",optional"`
	MerchantCode string `json:",optional"`
}

// Config 單一渠道的靜態配置，啟動時載入後唯讀
type Config struct {
	Code    string
	Name    string
	BaseURL string

	RechargePath      string `json:",optional"`
	RechargeQueryPath string `json:",optional"`
	WithdrawPath      string `json:",optional"`
	BalancePath       string `json:",optional"`

	SuccessCode         string `json:",optional"` // API 呼叫成功代碼
	SuccessStatus       string `json:",optional"` // 訂單成功狀態
	RechargeNotifyPrint string `json:",optional"` // 代收回調應答
	WithdrawNotifyPrint string `json:",optional"` // 代付回調應答
	JumpMode            JumpMode `json:",optional"`

	SignSuffix  string   `json:",optional"`
	SignExclude []string `json:",optional"`
	SignHash    string   `json:",optional"` // MD5 | SHA256

	Currency    string `json:",optional"`
	AmountScale int32  `json:",optional"`

	Response ResponseFields    `json:",optional"`
	Notify   NotifyFields      `json:",optional"`
	Banks    map[string]string `json:",optional"`

	UnknownBankName string `json:",optional"` // 銀行代碼不在對照表時代入的名稱，空值則拒絕請求
}

// WithDefaults 回傳補齊預設值的副本
func (c Config) WithDefaults() Config {
	setDefault(&c.RechargePath, "/api/recharge")
	setDefault(&c.RechargeQueryPath, "/api/recharge/query")
	setDefault(&c.WithdrawPath, "/api/withdraw")
	setDefault(&c.BalancePath, "/api/balance")
	setDefault(&c.SuccessCode, "0")
	setDefault(&c.SuccessStatus, "SUCCESS")
	setDefault(&c.RechargeNotifyPrint, "success")
	setDefault(&c.WithdrawNotifyPrint, "success")
	setDefault((*string)(&c.JumpMode), string(JumpRedirect))
	setDefault(&c.SignSuffix, signer.DefaultSuffix)
	setDefault(&c.SignHash, "MD5")
	setDefault(&c.Currency, "TWD")

	setDefault(&c.Response.Code, "code")
	setDefault(&c.Response.Message, "message")
	setDefault(&c.Response.Data, "data")
	setDefault(&c.Response.Redirect, "redirectUrl")
	setDefault(&c.Response.Status, "status")
	setDefault(&c.Response.Balance, "balance")

	setDefault(&c.Notify.OrderNo, "orderNo")
	setDefault(&c.Notify.Status, "status")
	setDefault(&c.Notify.Amount, "amount")
	setDefault(&c.Notify.Fee, "fee")
	setDefault(&c.Notify.MerchantCode, "merchantCode")

	if len(c.SignExclude) == 0 {
		c.SignExclude = append([]string(nil), signer.DefaultExclude...)
	} else {
		c.SignExclude = append([]string(nil), c.SignExclude...)
	}

	banks := make(map[string]string, len(c.Banks))
	for k, v := range c.Banks {
		banks[k] = v
	}
	c.Banks = banks

	return c
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return errorz.New(response.CHANNEL_CONFIG_ERROR, "channel code is required")
	}
	if c.BaseURL == "" {
		return errorz.New(response.CHANNEL_CONFIG_ERROR, fmt.Sprintf("channel %s: base url is required", c.Code))
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return errorz.New(response.CHANNEL_CONFIG_ERROR, fmt.Sprintf("channel %s: invalid base url %q", c.Code, c.BaseURL))
	}
	if c.JumpMode != JumpRedirect && c.JumpMode != JumpInline {
		return errorz.New(response.CHANNEL_CONFIG_ERROR, fmt.Sprintf("channel %s: unknown jump mode %q", c.Code, c.JumpMode))
	}
	if _, ok := hashes[strings.ToUpper(c.SignHash)]; !ok {
		return errorz.New(response.CHANNEL_CONFIG_ERROR, fmt.Sprintf("channel %s: unsupported sign hash %q", c.Code, c.SignHash))
	}
	if c.AmountScale < 0 {
		return errorz.New(response.CHANNEL_CONFIG_ERROR, fmt.Sprintf("channel %s: negative amount scale", c.Code))
	}
	return nil
}

func (c Config) endpoint(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + path
}

var hashes = map[string]signer.HashFunc{
	"MD5":    signer.MD5,
	"SHA256": signer.SHA256,
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
