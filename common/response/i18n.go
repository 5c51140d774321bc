package response

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	supported = []language.Tag{language.English, language.SimplifiedChinese}
	matcher   = language.NewMatcher(supported)
)

var messages = map[string][2]string{
	SUCCESS:                     {"Success", "操作成功"},
	FAIL:                        {"Failure", "操作失败"},
	API_SUCCESS:                 {"Success", "成功"},
	GENERAL_EXCEPTION:           {"General error", "通用错误"},
	INVALID_PARAMETER:           {"Invalid parameter", "无效的参数"},
	DATABASE_FAILURE:            {"Database error", "数据库错误"},
	CACHE_FAILURE:               {"Cache service error", "缓存服务错误"},
	TRANSACTION_PROCESSING:      {"Transaction is processing, do not resubmit", "交易处理中，请勿重复提交"},
	SERVICE_RESPONSE_DATA_ERROR: {"Service response data error", "服务回传资料错误"},
	CHANNEL_IS_NOT_EXIST:        {"Channel does not exist", "渠道不存在"},
	CHANNEL_CONFIG_ERROR:        {"Channel configuration error", "渠道配置错误"},
	CHANNEL_ACCOUNT_NOT_EXIST:   {"Channel merchant account does not exist", "渠道商户号不存在"},
	CHANNEL_PRIVATE_KEY_EMPTY:   {"Channel merchant key is not configured", "渠道商户密钥未配置"},
	CHANNEL_REPLY_ERROR:         {"Channel reply error", "渠道返回错误"},
	INVALID_STATUS_CODE:         {"Channel replied with invalid HTTP status", "渠道返回 HTTP 状态错误"},
	CHANNEL_RESPONSE_INVALID:    {"Channel reply is malformed", "渠道返回格式错误"},
	CHANNEL_CALL_FAILURE:        {"Channel connection failed", "渠道连线失败"},
	CHANNEL_DECLINED:            {"Channel declined the transaction", "渠道拒绝交易"},
	SIGN_KEY_FAIL:               {"Signature verification failed", "加签错误，请确认加签规则"},
	IP_DENIED:                   {"IP is not in whitelist", "IP 不在白名单"},
	ORDER_NUMBER_NOT_EXIST:      {"Order number does not exist", "订单号不存在"},
	NOTIFY_PERSIST_FAILURE:      {"Failed to save notify result", "回调结果保存失败"},
	SEND_MAIL_FAIL:              {"Failed to send mail", "发送邮件失败"},
	INVALID_NOTIFY_AMOUNT:       {"Invalid notify amount", "回调金额格式错误"},
}

func init() {
	for code, msg := range messages {
		_ = message.SetString(language.English, code, msg[0])
		_ = message.SetString(language.SimplifiedChinese, code, msg[1])
	}
}

// Sprintf 依語系取得回應碼訊息，未登錄的碼原樣回傳
func Sprintf(lang language.Tag, code string) string {
	return message.NewPrinter(lang).Sprintf(code)
}

// Lang 依 Accept-Language 選擇語系，預設英文
func Lang(r *http.Request) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}
