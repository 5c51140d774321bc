package paychannel

import (
	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"com.galaxy/pay_channel/common/utils"
	"github.com/shopspring/decimal"
)

// Account 渠道商戶帳戶，PrivateKey 只用於簽名，不會送出
type Account struct {
	MerchantCode      string `validate:"required"`
	PrivateKey        string
	RechargeNotifyURL string
	WithdrawNotifyURL string
}

func (a Account) validate() error {
	if a.PrivateKey == "" {
		return errorz.New(response.CHANNEL_PRIVATE_KEY_EMPTY, "merchant: "+a.MerchantCode)
	}
	if err := utils.MyValidator.Struct(a); err != nil {
		return errorz.New(response.INVALID_PARAMETER, err.Error())
	}
	return nil
}

// RechargeRequest 代收請求
type RechargeRequest struct {
	Account Account
	OrderNo string          `validate:"required"`
	Amount  decimal.Decimal `validate:"-"`
	PayType string
	UserIP  string
}

// RechargeQueryRequest 代收查詢請求
type RechargeQueryRequest struct {
	Account Account
	OrderNo string `validate:"required"`
}

// WithdrawRequest 代付請求
type WithdrawRequest struct {
	Account     Account
	OrderNo     string          `validate:"required"`
	Amount      decimal.Decimal `validate:"-"`
	BankCode    string          `validate:"required"`
	BankName    string
	BankBranch  string
	BankAccount string `validate:"required"`
	AccountName string `validate:"required"`
}

func checkRequest(acct Account, req interface{}, amount *decimal.Decimal) error {
	if err := acct.validate(); err != nil {
		return err
	}
	if err := utils.MyValidator.Struct(req); err != nil {
		return errorz.New(response.INVALID_PARAMETER, err.Error())
	}
	if amount != nil && !amount.IsPositive() {
		return errorz.New(response.INVALID_PARAMETER, "amount must be greater than 0")
	}
	return nil
}
