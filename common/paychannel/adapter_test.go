package paychannel

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Unix(1700000000, 0) }

func testAccount() Account {
	return Account{
		MerchantCode:      "M1",
		PrivateKey:        "key1",
		RechargeNotifyURL: "https://merchant.example/notify/recharge",
		WithdrawNotifyURL: "https://merchant.example/notify/withdraw",
	}
}

func testConfig(baseURL string) Config {
	return Config{
		Code:    "TEST",
		Name:    "測試渠道",
		BaseURL: baseURL,
		Banks: map[string]string{
			"004": "臺灣銀行",
			"005": "土地銀行",
			"006": "合庫商銀",
		},
	}
}

type capture struct {
	path        string
	contentType string
	body        string
	form        url.Values
}

// channelServer 回傳固定內容，並記錄最後一次請求
func channelServer(t *testing.T, status int, reply string) (*httptest.Server, *capture) {
	t.Helper()
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		c.path = r.URL.Path
		c.contentType = r.Header.Get("Content-Type")
		c.body = string(raw)
		c.form, _ = url.ParseQuery(c.body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func newTestAdapter(t *testing.T, c Config) *Adapter {
	t.Helper()
	a, err := NewAdapter(c, WithClock(fixedNow), WithHTTPClient(&http.Client{Timeout: 2 * time.Second}))
	require.NoError(t, err)
	return a
}

func TestNewAdapter_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		conf Config
	}{
		{"缺少編號", Config{BaseURL: "http://x"}},
		{"缺少網址", Config{Code: "A"}},
		{"網址格式錯誤", Config{Code: "A", BaseURL: "not a url"}},
		{"未知跳轉模式", Config{Code: "A", BaseURL: "http://x", JumpMode: "POPUP"}},
		{"未知雜湊", Config{Code: "A", BaseURL: "http://x", SignHash: "SHA1"}},
		{"負數精度", Config{Code: "A", BaseURL: "http://x", AmountScale: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAdapter(tt.conf)
			require.Error(t, err)
			assert.Equal(t, response.CHANNEL_CONFIG_ERROR, err.Error())
		})
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	banks := map[string]string{"004": "臺灣銀行"}
	c := Config{Code: "A", BaseURL: "http://x", Banks: banks}.WithDefaults()

	assert.Equal(t, "/api/recharge", c.RechargePath)
	assert.Equal(t, "0", c.SuccessCode)
	assert.Equal(t, "SUCCESS", c.SuccessStatus)
	assert.Equal(t, "success", c.RechargeNotifyPrint)
	assert.Equal(t, JumpRedirect, c.JumpMode)
	assert.Equal(t, "&key=", c.SignSuffix)
	assert.Equal(t, "TWD", c.Currency)
	assert.Equal(t, []string{"sign", "timestamp"}, c.SignExclude)
	assert.Equal(t, "redirectUrl", c.Response.Redirect)

	c.Banks["005"] = "土地銀行"
	assert.Len(t, banks, 1, "預設值不可改動原配置")
}

func TestBuildRechargeParams(t *testing.T) {
	a := newTestAdapter(t, testConfig("http://channel.example"))
	req := RechargeRequest{
		Account: testAccount(),
		OrderNo: "12345",
		Amount:  decimal.NewFromInt(1000),
		UserIP:  "1.2.3.4",
	}

	params, err := a.BuildRechargeParams(req)
	require.NoError(t, err)

	assert.Equal(t, "M1", params["merchantCode"])
	assert.Equal(t, "12345", params["orderNo"])
	assert.Equal(t, "1000", params["amount"])
	assert.Equal(t, "TWD", params["currency"])
	assert.Equal(t, "1700000000", params["timestamp"])
	assert.Equal(t, "1.2.3.4", params["clientIp"])
	assert.NotContains(t, params, "payType")
	assert.Equal(t, a.Signer().Sign(params, "key1"), params["sign"])
	assert.Len(t, params["sign"], 32)
	assert.NotContains(t, params, "key1")
}

func TestBuildRechargeParams_AmountScale(t *testing.T) {
	c := testConfig("http://channel.example")
	c.AmountScale = 2
	a := newTestAdapter(t, c)

	params, err := a.BuildRechargeParams(RechargeRequest{
		Account: testAccount(),
		OrderNo: "1",
		Amount:  decimal.RequireFromString("10.129"),
	})
	require.NoError(t, err)
	assert.Equal(t, "10.12", params["amount"])
}

func TestBuildRechargeParams_InvalidRequest(t *testing.T) {
	a := newTestAdapter(t, testConfig("http://channel.example"))

	noKey := testAccount()
	noKey.PrivateKey = ""

	tests := []struct {
		name string
		req  RechargeRequest
		code string
	}{
		{"缺少密鑰", RechargeRequest{Account: noKey, OrderNo: "1", Amount: decimal.NewFromInt(1)}, response.CHANNEL_PRIVATE_KEY_EMPTY},
		{"缺少訂單號", RechargeRequest{Account: testAccount(), Amount: decimal.NewFromInt(1)}, response.INVALID_PARAMETER},
		{"金額為零", RechargeRequest{Account: testAccount(), OrderNo: "1"}, response.INVALID_PARAMETER},
		{"金額為負", RechargeRequest{Account: testAccount(), OrderNo: "1", Amount: decimal.NewFromInt(-5)}, response.INVALID_PARAMETER},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.BuildRechargeParams(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.code, errorz.CodeOf(err, ""))
		})
	}
}

func TestBuildWithdrawParams_BankName(t *testing.T) {
	a := newTestAdapter(t, testConfig("http://channel.example"))
	req := WithdrawRequest{
		Account:     testAccount(),
		OrderNo:     "W1",
		Amount:      decimal.NewFromInt(500),
		BankCode:    "004",
		BankAccount: "62250000123456789",
		AccountName: "張三",
	}

	params, err := a.BuildWithdrawParams(req)
	require.NoError(t, err)
	assert.Equal(t, "臺灣銀行", params["bankName"])

	req.BankName = "自填銀行"
	params, err = a.BuildWithdrawParams(req)
	require.NoError(t, err)
	assert.Equal(t, "自填銀行", params["bankName"])

	req.BankName = ""
	req.BankCode = "999"
	_, err = a.BuildWithdrawParams(req)
	require.Error(t, err)
	assert.Equal(t, response.INVALID_PARAMETER, err.Error())
}

func TestBuildWithdrawParams_UnknownBankFallback(t *testing.T) {
	c := testConfig("http://channel.example")
	c.UnknownBankName = "未知银行"
	a := newTestAdapter(t, c)

	params, err := a.BuildWithdrawParams(WithdrawRequest{
		Account:     testAccount(),
		OrderNo:     "W1",
		Amount:      decimal.NewFromInt(500),
		BankCode:    "999",
		BankAccount: "62250000123456789",
		AccountName: "張三",
	})
	require.NoError(t, err)
	assert.Equal(t, "未知银行", params["bankName"])
	assert.Equal(t, "999", params["bankCode"])
}

func TestRecharge_Success(t *testing.T) {
	srv, got := channelServer(t, http.StatusOK, `{"code":"0","redirectUrl":"https://pay.example/x"}`)
	a := newTestAdapter(t, testConfig(srv.URL))

	res, err := a.Recharge(context.Background(), RechargeRequest{
		Account: testAccount(),
		OrderNo: "12345",
		Amount:  decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, FailureNone, res.Failure)
	assert.Equal(t, "https://pay.example/x", res.RedirectURL)
	assert.Equal(t, JumpRedirect, res.JumpMode)

	assert.Equal(t, "/api/recharge", got.path)
	assert.Equal(t, "application/x-www-form-urlencoded", got.contentType)
	assert.Equal(t, "1000", got.form.Get("amount"))
	assert.Regexp(t, `&sign=[0-9A-F]{32}$`, got.body)

	sent := map[string]string{}
	for k := range got.form {
		sent[k] = got.form.Get(k)
	}
	assert.True(t, a.Signer().Verify(sent, "key1"), "渠道端應能以相同密鑰驗簽")
}

func TestRecharge_Decline(t *testing.T) {
	srv, _ := channelServer(t, http.StatusOK, `{"code":"1001","message":"bad params","data":{"field":"amount"}}`)
	a := newTestAdapter(t, testConfig(srv.URL))

	res, err := a.Recharge(context.Background(), RechargeRequest{
		Account: testAccount(),
		OrderNo: "12345",
		Amount:  decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, FailureDecline, res.Failure)
	assert.Equal(t, "decline", res.FailureName)
	assert.Equal(t, "1001", res.RespCode)
	assert.Equal(t, "bad params", res.RespMessage)
	assert.JSONEq(t, `{"field":"amount"}`, res.RawData)
	assert.Empty(t, res.RedirectURL)
	assert.Equal(t, response.CHANNEL_DECLINED, res.Err.Error())
}

func TestRecharge_NumericCode(t *testing.T) {
	srv, _ := channelServer(t, http.StatusOK, `{"code":0,"redirectUrl":"https://pay.example/y"}`)
	a := newTestAdapter(t, testConfig(srv.URL))

	res, err := a.Recharge(context.Background(), RechargeRequest{
		Account: testAccount(),
		OrderNo: "1",
		Amount:  decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "https://pay.example/y", res.RedirectURL)
}

func TestRecharge_RemoteFailures(t *testing.T) {
	t.Run("非200狀態", func(t *testing.T) {
		srv, _ := channelServer(t, http.StatusBadGateway, `{"code":"0"}`)
		a := newTestAdapter(t, testConfig(srv.URL))

		res, err := a.Recharge(context.Background(), RechargeRequest{Account: testAccount(), OrderNo: "1", Amount: decimal.NewFromInt(1)})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, FailureRemote, res.Failure)
		assert.Equal(t, http.StatusBadGateway, res.HTTPStatus)
	})

	t.Run("無法連線", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()
		a := newTestAdapter(t, testConfig(base))

		res, err := a.Recharge(context.Background(), RechargeRequest{Account: testAccount(), OrderNo: "1", Amount: decimal.NewFromInt(1)})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, FailureRemote, res.Failure)
		assert.Equal(t, response.CHANNEL_CALL_FAILURE, res.Err.Error())
	})

	t.Run("回應非JSON", func(t *testing.T) {
		srv, _ := channelServer(t, http.StatusOK, `<html>oops</html>`)
		a := newTestAdapter(t, testConfig(srv.URL))

		res, err := a.Recharge(context.Background(), RechargeRequest{Account: testAccount(), OrderNo: "1", Amount: decimal.NewFromInt(1)})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, FailureMalformed, res.Failure)
		assert.Equal(t, "<html>oops</html>", res.RawData)
	})

	t.Run("回應為null", func(t *testing.T) {
		srv, _ := channelServer(t, http.StatusOK, `null`)
		a := newTestAdapter(t, testConfig(srv.URL))

		res, err := a.Recharge(context.Background(), RechargeRequest{Account: testAccount(), OrderNo: "1", Amount: decimal.NewFromInt(1)})
		require.NoError(t, err)
		assert.Equal(t, FailureMalformed, res.Failure)
	})
}

func TestRecharge_InvalidRequestNotSent(t *testing.T) {
	srv, got := channelServer(t, http.StatusOK, `{"code":"0"}`)
	a := newTestAdapter(t, testConfig(srv.URL))

	res, err := a.Recharge(context.Background(), RechargeRequest{Account: testAccount(), OrderNo: "1"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Empty(t, got.path)
}

func TestQueryRecharge(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		ok     bool
		paid   bool
		status string
	}{
		{"已支付", `{"code":"0","status":"SUCCESS"}`, true, true, "SUCCESS"},
		{"處理中", `{"code":"0","status":"PENDING"}`, true, false, "PENDING"},
		{"查詢失敗", `{"code":"2001","message":"order not found","status":"SUCCESS"}`, false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, got := channelServer(t, http.StatusOK, tt.reply)
			a := newTestAdapter(t, testConfig(srv.URL))

			res, err := a.QueryRecharge(context.Background(), RechargeQueryRequest{Account: testAccount(), OrderNo: "12345"})
			require.NoError(t, err)
			assert.Equal(t, tt.ok, res.Success)
			assert.Equal(t, tt.paid, res.Paid)
			assert.Equal(t, tt.status, res.OrderStatus)
			assert.Equal(t, "/api/recharge/query", got.path)
		})
	}
}

func TestWithdraw(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		srv, got := channelServer(t, http.StatusOK, `{"code":"0","message":"ok"}`)
		a := newTestAdapter(t, testConfig(srv.URL))

		res, err := a.Withdraw(context.Background(), WithdrawRequest{
			Account:     testAccount(),
			OrderNo:     "W1",
			Amount:      decimal.NewFromInt(500),
			BankCode:    "005",
			BankAccount: "62250000123456789",
			AccountName: "張三",
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "土地銀行", got.form.Get("bankName"))
		assert.Equal(t, "62250000123456789", got.form.Get("bankAccount"))
		assert.Equal(t, "/api/withdraw", got.path)
	})

	t.Run("渠道拒絕保留原始資料", func(t *testing.T) {
		srv, _ := channelServer(t, http.StatusOK, `{"code":"3001","message":"insufficient balance","data":"balance=0"}`)
		a := newTestAdapter(t, testConfig(srv.URL))

		res, err := a.Withdraw(context.Background(), WithdrawRequest{
			Account:     testAccount(),
			OrderNo:     "W2",
			Amount:      decimal.NewFromInt(500),
			BankCode:    "004",
			BankAccount: "62250000123456789",
			AccountName: "張三",
		})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "3001", res.RespCode)
		assert.Equal(t, "insufficient balance", res.RespMessage)
		assert.Equal(t, "balance=0", res.RawData)
	})
}

func TestQueryBalance(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		srv, got := channelServer(t, http.StatusOK, `{"code":"0","balance":"12345.67"}`)
		a := newTestAdapter(t, testConfig(srv.URL))

		res, err := a.QueryBalance(context.Background(), testAccount())
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "12345.67", res.Balance)
		assert.Equal(t, "/api/balance", got.path)
	})

	t.Run("失敗時為0", func(t *testing.T) {
		srv, _ := channelServer(t, http.StatusOK, `{"code":"9","message":"denied","balance":"100"}`)
		a := newTestAdapter(t, testConfig(srv.URL))

		res, err := a.QueryBalance(context.Background(), testAccount())
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "0", res.Balance)
	})
}

func TestCustomResponseFields(t *testing.T) {
	srv, _ := channelServer(t, http.StatusOK, `{"ret":"200","msg":"ok","payUrl":"https://pay.example/z"}`)
	c := testConfig(srv.URL)
	c.SuccessCode = "200"
	c.JumpMode = JumpInline
	c.Response = ResponseFields{Code: "ret", Message: "msg", Redirect: "payUrl"}
	a := newTestAdapter(t, c)

	res, err := a.Recharge(context.Background(), RechargeRequest{Account: testAccount(), OrderNo: "1", Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "https://pay.example/z", res.RedirectURL)
	assert.Equal(t, JumpInline, res.JumpMode)
}

func TestEncodeForm(t *testing.T) {
	assert.Equal(t, "", EncodeForm(nil))
	assert.Equal(t, "a=1&b=x+y&sign=ABC", EncodeForm(map[string]string{"sign": "ABC", "b": "x y", "a": "1"}))
	assert.Equal(t, "notifyUrl=https%3A%2F%2Fm.example%2Fn", EncodeForm(map[string]string{"notifyUrl": "https://m.example/n"}))
}

func TestRegistry(t *testing.T) {
	reg, err := NewRegistry([]Config{
		{Code: "B", BaseURL: "http://b.example"},
		{Code: "A", BaseURL: "http://a.example"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, reg.Codes())

	a, err := reg.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "A", a.Code())

	_, err = reg.Get("C")
	require.Error(t, err)
	assert.Equal(t, response.CHANNEL_IS_NOT_EXIST, err.Error())

	_, err = NewRegistry([]Config{
		{Code: "A", BaseURL: "http://a.example"},
		{Code: "A", BaseURL: "http://a2.example"},
	})
	require.Error(t, err)
	assert.Equal(t, response.CHANNEL_CONFIG_ERROR, err.Error())
}

func TestBankTable(t *testing.T) {
	src := map[string]string{"006": "合庫商銀"}
	banks := NewBankTable(src)
	src["007"] = "第一銀行"

	name, ok := banks.Name("006")
	assert.True(t, ok)
	assert.Equal(t, "合庫商銀", name)

	_, ok = banks.Name("007")
	assert.False(t, ok)
	assert.Equal(t, 1, banks.Len())
}
