package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"com.galaxy/pay_channel/channel/internal/model"
	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/common/constants"
	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/paychannel"
	"com.galaxy/pay_channel/common/redislock"
	"com.galaxy/pay_channel/common/response"
	"com.galaxy/pay_channel/common/utils"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

// Notify 單筆回調請求
type Notify struct {
	ChannelCode string
	ClientIP    string
	Payload     paychannel.NotifyPayload
}

type NotifyLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
	state  paychannel.NotifyState
}

func NewNotifyLogic(ctx context.Context, svcCtx *svc.ServiceContext) NotifyLogic {
	return NotifyLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
		state:  paychannel.NotifyReceived,
	}
}

func (l *NotifyLogic) State() paychannel.NotifyState {
	return l.state
}

// RechargeNotify 代收回調，成功回傳渠道要求的應答字串；回傳 error 時不應答，由渠道重送
func (l *NotifyLogic) RechargeNotify(req Notify) (ack string, err error) {
	return l.process(constants.ORDER_TYPE_ZF, req, func(adapter *paychannel.Adapter, row *model.NotifyLog) {
		result := adapter.HandleRechargeNotify(l.ctx, req.Payload)
		if err := copier.Copy(row, &result); err != nil {
			l.Errorf("copy notify result failed: %v", err)
		}
		row.ChannelStatus = result.Status
		row.Status = notifyStatus(result.Success)
	}, (*paychannel.Adapter).RechargeAck)
}

// WithdrawNotify 代付回調
func (l *NotifyLogic) WithdrawNotify(req Notify) (ack string, err error) {
	return l.process(constants.ORDER_TYPE_DF, req, func(adapter *paychannel.Adapter, row *model.NotifyLog) {
		result := adapter.HandleWithdrawNotify(l.ctx, req.Payload)
		if err := copier.Copy(row, &result); err != nil {
			l.Errorf("copy notify result failed: %v", err)
		}
		row.ChannelStatus = result.Status
		row.Status = notifyStatus(result.Success)
	}, (*paychannel.Adapter).WithdrawAck)
}

func (l *NotifyLogic) process(orderType string, req Notify,
	mapResult func(*paychannel.Adapter, *model.NotifyLog),
	ackOf func(*paychannel.Adapter) string) (string, error) {

	adapter, err := l.svcCtx.Channels.Get(req.ChannelCode)
	if err != nil {
		return "", err
	}

	orderNo := adapter.OrderNo(req.Payload)
	if orderNo == "" {
		return "", errorz.New(response.ORDER_NUMBER_NOT_EXIST, "channel: "+req.ChannelCode)
	}

	account, err := l.svcCtx.Accounts.Find(l.ctx, req.ChannelCode, adapter.MerchantCode(req.Payload))
	if err != nil {
		return "", err
	}

	// 白名單未設定則不限制
	if account.IPWhitelist != "" && !utils.IPChecker(req.ClientIP, account.IPWhitelist) {
		l.Errorf("回調IP不在白名單, channel: %s, ip: %s", req.ChannelCode, req.ClientIP)
		return "", errorz.New(response.IP_DENIED, req.ClientIP)
	}

	acct, err := svc.ToAccount(account)
	if err != nil {
		return "", err
	}

	row := &model.NotifyLog{
		ChannelCode:  req.ChannelCode,
		OrderType:    orderType,
		OrderNo:      orderNo,
		MerchantCode: account.MerchantCode,
		Amount:       decimal.Zero,
		Fee:          decimal.Zero,
		RequestIP:    req.ClientIP,
		Payload:      payloadJSON(req.Payload),
	}

	if !adapter.IsValidSignature(l.ctx, req.Payload, acct) {
		l.state = paychannel.NotifyRejected
		row.Status = constants.NOTIFY_STATUS_REJECTED
		row.Reason = "签名验证失败"
		if err := l.svcCtx.NotifyLogs.Create(l.ctx, row); err != nil {
			l.Errorf("保存驗簽失敗紀錄失敗: %v", err)
		}
		l.alert(req, orderNo)
		return "", errorz.New(response.SIGN_KEY_FAIL, "orderNo: "+orderNo)
	}
	l.state = paychannel.NotifySignatureChecked

	lock := redislock.New(l.svcCtx.RedisClient, fmt.Sprintf("%s-%s", req.ChannelCode, orderNo), lockPrefix(orderType))
	lock.SetExpire(constants.NOTIFY_LOCK_EXPIRE)
	isOK, err := lock.AcquireCtx(l.ctx)
	if err != nil {
		return "", errorz.New(response.CACHE_FAILURE, err.Error())
	}
	if !isOK {
		l.Infof("回調處理中, channel: %s, orderNo: %s", req.ChannelCode, orderNo)
		return "", errorz.New(response.TRANSACTION_PROCESSING)
	}
	defer lock.ReleaseCtx(l.ctx)

	mapResult(adapter, row)
	l.state = paychannel.NotifyStatusMapped

	if err := l.svcCtx.NotifyLogs.Create(l.ctx, row); err != nil {
		return "", err
	}

	l.state = paychannel.NotifyAcknowledged
	l.Infof("回調完成, channel: %s, orderNo: %s, status: %s", req.ChannelCode, orderNo, row.Status)
	return ackOf(adapter), nil
}

// alert 驗簽失敗通知維運，未配置郵件時略過
func (l *NotifyLogic) alert(req Notify, orderNo string) {
	mail := l.svcCtx.Config.Mail
	if l.svcCtx.Mailer == nil || len(mail.To) == 0 {
		return
	}

	subject := fmt.Sprintf("[%s] 回调验签失败 %s", req.ChannelCode, orderNo)
	body := fmt.Sprintf("渠道: %s<br>订单号: %s<br>来源IP: %s", req.ChannelCode, orderNo, req.ClientIP)
	threading.GoSafe(func() {
		_ = utils.SendEmail(l.svcCtx.Mailer, mail.From, mail.To, subject, body)
	})
}

func lockPrefix(orderType string) string {
	if orderType == constants.ORDER_TYPE_DF {
		return constants.WITHDRAW_NOTIFY_LOCK
	}
	return constants.RECHARGE_NOTIFY_LOCK
}

func notifyStatus(success bool) string {
	if success {
		return constants.NOTIFY_STATUS_SUCCESS
	}
	return constants.NOTIFY_STATUS_FAIL
}

// payloadJSON 留存原始回調，帳號類欄位遮蔽
func payloadJSON(payload paychannel.NotifyPayload) string {
	masked := make(map[string]string, len(payload))
	for k, v := range payload {
		if strings.Contains(strings.ToLower(k), "account") {
			v = utils.MaskSensitive(v, 4, 4)
		}
		masked[k] = v
	}
	b, _ := json.Marshal(masked)
	return string(b)
}
