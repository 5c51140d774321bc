package paychannel

import (
	"context"

	"com.galaxy/pay_channel/common/signer"
	"com.galaxy/pay_channel/common/utils"
	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
)

// NotifyPayload 渠道回調的扁平參數
type NotifyPayload map[string]string

func (p NotifyPayload) Sign() string {
	return p[signer.FieldSign]
}

// NotifyState 單筆回調的處理狀態
type NotifyState string

const (
	NotifyReceived         NotifyState = "RECEIVED"
	NotifySignatureChecked NotifyState = "SIGNATURE_CHECKED"
	NotifyRejected         NotifyState = "REJECTED"      // 驗簽失敗，不應答，渠道重送
	NotifyStatusMapped     NotifyState = "STATUS_MAPPED" // 已轉換結果
	NotifyAcknowledged     NotifyState = "ACKNOWLEDGED"  // 已保存並應答
)

// IsValidSignature 以帳戶密鑰驗簽，不會修改 notify
func (a *Adapter) IsValidSignature(ctx context.Context, notify NotifyPayload, acct Account) bool {
	logger := logx.WithContext(ctx)

	if acct.PrivateKey == "" {
		logger.Errorf("%s[回調驗簽] 商户 %s 未配置密钥", a.prefix, acct.MerchantCode)
		return false
	}

	received := notify.Sign()
	if received == "" {
		logger.Infof("%s[回調驗簽] 缺少签名参数", a.prefix)
		return false
	}

	ok := a.signer.Verify(notify, acct.PrivateKey)
	if !ok {
		logger.Errorf("%s[回調驗簽] 签名验证失败, 三方签名: %s, 我方签名: %s",
			a.prefix, received, a.signer.Sign(notify, acct.PrivateKey))
	}
	return ok
}

// HandleRechargeNotify 代收回調狀態轉換，成功狀態帶出訂單號與實收金額
func (a *Adapter) HandleRechargeNotify(ctx context.Context, notify NotifyPayload) RechargeNotifyResult {
	logx.WithContext(ctx).Infof("%s[%s] 处理回调: %v", a.prefix, opRechargeNotify, maskParams(notify))

	f := a.conf.Notify
	result := RechargeNotifyResult{
		OrderNo: notify[f.OrderNo],
		Status:  notify[f.Status],
		Amount:  decimal.Zero,
		Fee:     decimal.Zero,
	}

	if result.Status != a.conf.SuccessStatus {
		result.Reason = "代收失败订单状态: " + result.Status
		return result
	}

	amount, err := utils.ParseAmount(notify[f.Amount])
	if err != nil {
		logx.WithContext(ctx).Errorf("%s[%s] 金额格式错误: %q", a.prefix, opRechargeNotify, notify[f.Amount])
		result.Reason = "代收回调金额格式错误: " + notify[f.Amount]
		return result
	}
	result.Amount = amount

	if raw := notify[f.Fee]; raw != "" {
		if fee, err := utils.ParseAmount(raw); err == nil {
			result.Fee = fee
		} else {
			logx.WithContext(ctx).Infof("%s[%s] 手续费格式错误, 忽略: %q", a.prefix, opRechargeNotify, raw)
		}
	}

	result.Success = true
	return result
}

// HandleWithdrawNotify 代付回調狀態轉換
func (a *Adapter) HandleWithdrawNotify(ctx context.Context, notify NotifyPayload) WithdrawNotifyResult {
	logx.WithContext(ctx).Infof("%s[%s] 处理回调: %v", a.prefix, opWithdrawNotify, maskParams(notify))

	f := a.conf.Notify
	result := WithdrawNotifyResult{
		OrderNo: notify[f.OrderNo],
		Status:  notify[f.Status],
	}

	if result.Status != a.conf.SuccessStatus {
		result.Reason = "代付失败订单状态: " + result.Status
		return result
	}

	result.Success = true
	return result
}

// MerchantCode 回調中的渠道商戶號
func (a *Adapter) MerchantCode(notify NotifyPayload) string {
	return notify[a.conf.Notify.MerchantCode]
}

// OrderNo 回調中的訂單號
func (a *Adapter) OrderNo(notify NotifyPayload) string {
	return notify[a.conf.Notify.OrderNo]
}

// RechargeAck 代收回調應答字串，需與渠道要求完全一致
func (a *Adapter) RechargeAck() string {
	return a.conf.RechargeNotifyPrint
}

func (a *Adapter) WithdrawAck() string {
	return a.conf.WithdrawNotifyPrint
}
