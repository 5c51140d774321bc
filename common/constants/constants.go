package constants

// 訂單類型
const (
	ORDER_TYPE_ZF = "ZF" // 代收
	ORDER_TYPE_DF = "DF" // 代付
)

// 渠道商戶帳戶狀態
const (
	ACCOUNT_STATUS_DISABLE = "0"
	ACCOUNT_STATUS_ENABLE  = "1"
)

// 回調處理結果
const (
	NOTIFY_STATUS_SUCCESS  = "SUCCESS"
	NOTIFY_STATUS_FAIL     = "FAIL"
	NOTIFY_STATUS_REJECTED = "REJECTED"
)

// 回調鎖前綴，key 為 <渠道編號>-<訂單號>
const (
	RECHARGE_NOTIFY_LOCK = "recharge-notify:"
	WITHDRAW_NOTIFY_LOCK = "withdraw-notify:"
	NOTIFY_LOCK_EXPIRE   = 5
)

// 回調驗簽失敗應答，渠道收到後會重送
const NOTIFY_REJECT_PRINT = "fail"
