package paychannel

import "github.com/shopspring/decimal"

// FailureKind 區分失敗來源
type FailureKind int

const (
	FailureNone      FailureKind = iota
	FailureRemote                // 網路或 HTTP 層錯誤，渠道不可達
	FailureMalformed             // 渠道回應無法解析
	FailureDecline               // 渠道可達但拒絕(非成功碼)
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureRemote:
		return "remote"
	case FailureMalformed:
		return "malformed"
	case FailureDecline:
		return "decline"
	default:
		return "unknown"
	}
}

// Outcome 每次渠道呼叫的共用結果
type Outcome struct {
	Success     bool        `json:"success"`
	Failure     FailureKind `json:"-"`
	FailureName string      `json:"failure,omitempty"`
	RespCode    string      `json:"respCode,omitempty"`
	RespMessage string      `json:"respMessage,omitempty"`
	RawData     string      `json:"rawData,omitempty"`
	HTTPStatus  int         `json:"httpStatus,omitempty"`
	Err         error       `json:"-"`
}

func (o *Outcome) fail(kind FailureKind, err error) {
	o.Success = false
	o.Failure = kind
	o.FailureName = kind.String()
	o.Err = err
}

type RechargeResult struct {
	Outcome
	RedirectURL string   `json:"redirectUrl,omitempty"`
	JumpMode    JumpMode `json:"jumpMode"`
}

type RechargeQueryResult struct {
	Outcome
	OrderStatus string `json:"orderStatus,omitempty"`
	Paid        bool   `json:"paid"`
}

type WithdrawResult struct {
	Outcome
}

type BalanceResult struct {
	Outcome
	Balance string `json:"balance"`
}

// RechargeNotifyResult 代收回調結果
type RechargeNotifyResult struct {
	Success bool            `json:"success"`
	OrderNo string          `json:"orderNo"`
	Amount  decimal.Decimal `json:"amount"`
	Fee     decimal.Decimal `json:"fee"`
	Status  string          `json:"status"`
	Reason  string          `json:"reason,omitempty"`
}

// WithdrawNotifyResult 代付回調結果
type WithdrawNotifyResult struct {
	Success bool   `json:"success"`
	OrderNo string `json:"orderNo"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}
