package response

var (
	/**
	 * 通用讯息码
	 */
	SUCCESS                     = "0"       // "操作成功"
	FAIL                        = "1"       // "操作失败"
	API_SUCCESS                 = "000"     // "成功"
	GENERAL_EXCEPTION           = "1041001" // "通用错误"
	INVALID_PARAMETER           = "1062005" // "无效的参数"
	DATABASE_FAILURE            = "1042111" // "数据库错误"
	CACHE_FAILURE               = "1042112" // "缓存服务错误"
	TRANSACTION_PROCESSING      = "1041002" // "交易处理中，请勿重复提交"
	SERVICE_RESPONSE_DATA_ERROR = "1041003" // "服务回传资料错误"

	/**
	 * 渠道设定
	 */
	CHANNEL_IS_NOT_EXIST      = "1063037" // "渠道不存在"
	CHANNEL_CONFIG_ERROR      = "1063041" // "渠道配置错误"
	CHANNEL_ACCOUNT_NOT_EXIST = "1063042" // "渠道商户号不存在"
	CHANNEL_PRIVATE_KEY_EMPTY = "1063043" // "渠道商户密钥未配置"

	/**
	 * 渠道请求
	 */
	CHANNEL_REPLY_ERROR      = "1064001" // "渠道返回错误"
	INVALID_STATUS_CODE      = "1064002" // "渠道返回 HTTP 状态错误"
	CHANNEL_RESPONSE_INVALID = "1064003" // "渠道返回格式错误"
	CHANNEL_CALL_FAILURE     = "1064004" // "渠道连线失败"
	CHANNEL_DECLINED         = "1064005" // "渠道拒绝交易"

	/**
	 * 渠道回调
	 */
	SIGN_KEY_FAIL            = "1109001" // "加签错误，请确认加签规则"
	IP_DENIED                = "1109002" // "IP 不在白名单"
	ORDER_NUMBER_NOT_EXIST   = "1109003" // "订单号不存在"
	NOTIFY_PERSIST_FAILURE   = "1109004" // "回调结果保存失败"
	SEND_MAIL_FAIL           = "1109005" // "发送邮件失败"
	INVALID_NOTIFY_AMOUNT    = "1109006" // "回调金额格式错误"
)
