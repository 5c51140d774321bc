package paychannel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"com.galaxy/pay_channel/common/signer"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

const maxReplySize = 1 << 20

// Recharge 代收下單。網路與業務失敗都以結果回傳，只有請求或帳戶配置錯誤才回傳 error。
func (a *Adapter) Recharge(ctx context.Context, req RechargeRequest) (*RechargeResult, error) {
	params, err := a.BuildRechargeParams(req)
	if err != nil {
		return nil, err
	}

	result := &RechargeResult{JumpMode: a.conf.JumpMode}
	body := a.call(ctx, opRecharge, a.conf.RechargePath, params, &result.Outcome)
	if result.Success {
		result.RedirectURL = body.str(a.conf.Response.Redirect)
		logx.WithContext(ctx).Infof("%s[%s] 跳转URL: %s", a.prefix, opRecharge, result.RedirectURL)
	}
	return result, nil
}

// QueryRecharge 代收查詢，Paid 僅在渠道成功且訂單狀態為成功時為 true
func (a *Adapter) QueryRecharge(ctx context.Context, req RechargeQueryRequest) (*RechargeQueryResult, error) {
	params, err := a.BuildRechargeQueryParams(req)
	if err != nil {
		return nil, err
	}

	result := &RechargeQueryResult{}
	body := a.call(ctx, opRechargeQuery, a.conf.RechargeQueryPath, params, &result.Outcome)
	if result.Success {
		result.OrderStatus = body.str(a.conf.Response.Status)
		result.Paid = result.OrderStatus == a.conf.SuccessStatus
	}
	return result, nil
}

// Withdraw 代付下單，失敗時保留渠道的 code/message/data
func (a *Adapter) Withdraw(ctx context.Context, req WithdrawRequest) (*WithdrawResult, error) {
	params, err := a.BuildWithdrawParams(req)
	if err != nil {
		return nil, err
	}

	result := &WithdrawResult{}
	a.call(ctx, opWithdraw, a.conf.WithdrawPath, params, &result.Outcome)
	return result, nil
}

// QueryBalance 查詢渠道商戶餘額，失敗時餘額為 "0"
func (a *Adapter) QueryBalance(ctx context.Context, acct Account) (*BalanceResult, error) {
	params, err := a.BuildBalanceParams(acct)
	if err != nil {
		return nil, err
	}

	result := &BalanceResult{Balance: "0"}
	body := a.call(ctx, opBalance, a.conf.BalancePath, params, &result.Outcome)
	if result.Success {
		if balance := body.str(a.conf.Response.Balance); balance != "" {
			result.Balance = balance
		}
		logx.WithContext(ctx).Infof("%s[%s] 余额: %s", a.prefix, opBalance, result.Balance)
	}
	return result, nil
}

// call 送出請求並依成功碼判定結果，回傳解析後的回應(網路錯誤或格式錯誤時為 nil)
func (a *Adapter) call(ctx context.Context, op, path string, params map[string]string, out *Outcome) reply {
	logger := logx.WithContext(ctx)
	endpoint := a.conf.endpoint(path)
	logger.Infof("%s[%s] 调用API: %s, 参数: %v", a.prefix, op, endpoint, maskParams(params))

	status, raw, err := a.post(ctx, endpoint, params)
	out.HTTPStatus = status
	if err != nil {
		logger.Errorf("%s[%s] 渠道连线失败: %v", a.prefix, op, err)
		out.RespMessage = err.Error()
		out.RawData = string(raw)
		out.fail(FailureRemote, errorz.New(response.CHANNEL_CALL_FAILURE, err.Error()))
		return nil
	}
	logger.Infof("%s[%s] API响应: %s", a.prefix, op, raw)

	body, err := parseReply(raw)
	if err != nil {
		logger.Errorf("%s[%s] 渠道返回格式错误: %v", a.prefix, op, err)
		out.RespMessage = err.Error()
		out.RawData = string(raw)
		out.fail(FailureMalformed, errorz.New(response.CHANNEL_RESPONSE_INVALID, err.Error()))
		return nil
	}

	out.RespCode = body.str(a.conf.Response.Code)
	out.RespMessage = body.str(a.conf.Response.Message)
	if out.RespCode != a.conf.SuccessCode {
		out.RawData = body.str(a.conf.Response.Data)
		logger.Infof("%s[%s] 失败: code=%s, message=%s", a.prefix, op, out.RespCode, out.RespMessage)
		out.fail(FailureDecline, errorz.New(response.CHANNEL_DECLINED, out.RespCode, out.RespMessage))
		return body
	}

	out.Success = true
	return body
}

func (a *Adapter) post(ctx context.Context, endpoint string, params map[string]string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(EncodeForm(params)))
	if err != nil {
		return 0, nil, errors.Wrap(err, "build request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.DoRequest(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "http request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "read response failed")
	}
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, raw, errors.Errorf("unexpected http status %d", resp.StatusCode)
	}
	return resp.StatusCode, raw, nil
}

// EncodeForm 依欄位名稱排序編碼，sign 放在最後
func EncodeForm(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == signer.FieldSign {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if _, ok := params[signer.FieldSign]; ok {
		keys = append(keys, signer.FieldSign)
	}

	var buf strings.Builder
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(k))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(params[k]))
	}
	return buf.String()
}

type reply map[string]interface{}

func parseReply(raw []byte) (reply, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body reply
	if err := dec.Decode(&body); err != nil {
		return nil, errors.Wrap(err, "parse JSON response failed")
	}
	if body == nil {
		return nil, errors.New("empty JSON response")
	}
	return body, nil
}

// str 取欄位字串值，數字保持原樣，物件與陣列輸出 JSON
func (r reply) str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
