package paychannel

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"com.galaxy/pay_channel/common/signer"
	"com.galaxy/pay_channel/common/utils"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const (
	opRecharge       = "代收請求"
	opRechargeQuery  = "代收查詢"
	opWithdraw       = "代付請求"
	opBalance        = "查詢餘額"
	opRechargeNotify = "代收回調"
	opWithdrawNotify = "代付回調"
)

type Option func(*Adapter)

// WithHTTPClient 指定底層 http.Client，未指定時使用 httpc 預設
func WithHTTPClient(cli *http.Client) Option {
	return func(a *Adapter) {
		a.httpClient = cli
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		a.now = now
	}
}

// Adapter 以 Config 參數化的渠道對接，建立後唯讀，可併發使用
type Adapter struct {
	conf       Config
	signer     signer.Signer
	banks      BankTable
	client     httpc.Service
	httpClient *http.Client
	now        func() time.Time
	prefix     string
}

func NewAdapter(c Config, opts ...Option) (*Adapter, error) {
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	a := &Adapter{
		conf: c,
		signer: signer.New(
			signer.WithExclude(c.SignExclude...),
			signer.WithSuffix(c.SignSuffix),
			signer.WithHash(hashes[strings.ToUpper(c.SignHash)]),
		),
		banks:  NewBankTable(c.Banks),
		now:    time.Now,
		prefix: fmt.Sprintf("[%s][支付編號:%s]", c.Name, c.Code),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.httpClient != nil {
		a.client = httpc.NewServiceWithClient(c.Code, a.httpClient)
	} else {
		a.client = httpc.NewService(c.Code)
	}

	return a, nil
}

func (a *Adapter) Config() Config {
	return a.conf
}

func (a *Adapter) Code() string {
	return a.conf.Code
}

func (a *Adapter) Signer() signer.Signer {
	return a.signer
}

func (a *Adapter) Banks() BankTable {
	return a.banks
}

// BuildRechargeParams 產生代收請求參數(含 sign)
func (a *Adapter) BuildRechargeParams(req RechargeRequest) (map[string]string, error) {
	if err := checkRequest(req.Account, req, &req.Amount); err != nil {
		return nil, err
	}

	params := map[string]string{
		"merchantCode": req.Account.MerchantCode,
		"orderNo":      req.OrderNo,
		"amount":       utils.FormatAmount(req.Amount, a.conf.AmountScale),
		"currency":     a.conf.Currency,
		"notifyUrl":    req.Account.RechargeNotifyURL,
		"timestamp":    a.timestamp(),
	}
	if req.PayType != "" {
		params["payType"] = req.PayType
	}
	if req.UserIP != "" {
		params["clientIp"] = req.UserIP
	}

	return a.sign(opRecharge, params, req.Account.PrivateKey), nil
}

func (a *Adapter) BuildRechargeQueryParams(req RechargeQueryRequest) (map[string]string, error) {
	if err := checkRequest(req.Account, req, nil); err != nil {
		return nil, err
	}

	params := map[string]string{
		"merchantCode": req.Account.MerchantCode,
		"orderNo":      req.OrderNo,
		"timestamp":    a.timestamp(),
	}

	return a.sign(opRechargeQuery, params, req.Account.PrivateKey), nil
}

// BuildWithdrawParams 產生代付請求參數，銀行名稱未提供時由銀行代碼表補上
func (a *Adapter) BuildWithdrawParams(req WithdrawRequest) (map[string]string, error) {
	if err := checkRequest(req.Account, req, &req.Amount); err != nil {
		return nil, err
	}

	bankName := req.BankName
	if bankName == "" {
		name, ok := a.banks.Name(req.BankCode)
		switch {
		case ok:
			bankName = name
		case a.conf.UnknownBankName != "":
			bankName = a.conf.UnknownBankName
		default:
			return nil, errorz.New(response.INVALID_PARAMETER, "unknown bank code: "+req.BankCode)
		}
	}

	params := map[string]string{
		"merchantCode": req.Account.MerchantCode,
		"orderNo":      req.OrderNo,
		"amount":       utils.FormatAmount(req.Amount, a.conf.AmountScale),
		"bankName":     bankName,
		"bankCode":     req.BankCode,
		"bankAccount":  req.BankAccount,
		"accountName":  req.AccountName,
		"bankBranch":   req.BankBranch,
		"notifyUrl":    req.Account.WithdrawNotifyURL,
		"timestamp":    a.timestamp(),
	}

	return a.sign(opWithdraw, params, req.Account.PrivateKey), nil
}

func (a *Adapter) BuildBalanceParams(acct Account) (map[string]string, error) {
	if err := acct.validate(); err != nil {
		return nil, err
	}

	params := map[string]string{
		"merchantCode": acct.MerchantCode,
		"timestamp":    a.timestamp(),
	}

	return a.sign(opBalance, params, acct.PrivateKey), nil
}

func (a *Adapter) timestamp() string {
	return strconv.FormatInt(a.now().Unix(), 10)
}

func (a *Adapter) sign(op string, params map[string]string, privateKey string) map[string]string {
	signed := a.signer.Attach(params, privateKey)
	logx.Debugf("%s[%s] 待签名字符串: %s%s%s", a.prefix, op,
		a.signer.Canonicalizer().Query(params), a.conf.SignSuffix, utils.MaskSensitive(privateKey, 2, 2))
	return signed
}

// maskParams 日誌用，隱藏銀行帳號與戶名
func maskParams(params map[string]string) map[string]string {
	masked := make(map[string]string, len(params))
	for k, v := range params {
		switch k {
		case "bankAccount":
			masked[k] = utils.MaskSensitive(v, 4, 4)
		case "accountName":
			masked[k] = utils.MaskSensitive(v, 1, 0)
		default:
			masked[k] = v
		}
	}
	return masked
}
