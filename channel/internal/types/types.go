package types

type ChannelAccountRequest struct {
	ChannelCode  string `json:"channelCode" validate:"required"`
	MerchantCode string `json:"merchantCode,optional"`
}

type RechargeRequest struct {
	ChannelAccountRequest
	OrderNo string `json:"orderNo" validate:"required"`
	Amount  string `json:"amount" validate:"required"`
	PayType string `json:"payType,optional"`
	UserIP  string `json:"userIp,optional"`
}

type RechargeQueryRequest struct {
	ChannelAccountRequest
	OrderNo string `json:"orderNo" validate:"required"`
}

type WithdrawRequest struct {
	ChannelAccountRequest
	OrderNo     string `json:"orderNo" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	BankCode    string `json:"bankCode" validate:"required"`
	BankName    string `json:"bankName,optional"`
	BankBranch  string `json:"bankBranch,optional"`
	BankAccount string `json:"bankAccount" validate:"required"`
	AccountName string `json:"accountName" validate:"required"`
}

type BalanceRequest struct {
	ChannelAccountRequest
}

type GenerateSignRequest struct {
	ChannelAccountRequest
	Params map[string]string `json:"params"`
}

type NotifyPathRequest struct {
	Channel string `path:"channel"`
}

// ChannelOutcome 渠道呼叫結果，失敗時保留渠道原始回應
type ChannelOutcome struct {
	Success     bool   `json:"success"`
	FailureName string `json:"failure,omitempty"`
	RespCode    string `json:"respCode,omitempty"`
	RespMessage string `json:"respMessage,omitempty"`
	RawData     string `json:"rawData,omitempty"`
	HTTPStatus  int    `json:"httpStatus,omitempty"`
}

type RechargeResponse struct {
	ChannelOutcome
	ChannelCode string `json:"channelCode"`
	OrderNo     string `json:"orderNo"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	JumpMode    string `json:"jumpMode"`
}

type RechargeQueryResponse struct {
	ChannelOutcome
	ChannelCode string `json:"channelCode"`
	OrderNo     string `json:"orderNo"`
	OrderStatus string `json:"orderStatus,omitempty"`
	Paid        bool   `json:"paid"`
}

type WithdrawResponse struct {
	ChannelOutcome
	ChannelCode string `json:"channelCode"`
	OrderNo     string `json:"orderNo"`
}

type BalanceResponse struct {
	ChannelOutcome
	ChannelCode  string `json:"channelCode"`
	MerchantCode string `json:"merchantCode"`
	Balance      string `json:"balance"`
}

type GenerateSignResponse struct {
	Sign   string            `json:"sign"`
	Params map[string]string `json:"params"`
}
