package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"com.galaxy/pay_channel/channel/internal/logic/test"
	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/channel/internal/types"
	"com.galaxy/pay_channel/common/response"
	"com.galaxy/pay_channel/common/utils"
	"go.opentelemetry.io/otel/trace"
)

func GenerateSignHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ChannelCode  string                 `json:"channelCode"`
			MerchantCode string                 `json:"merchantCode"`
			Params       map[string]interface{} `json:"params"`
		}

		span := trace.SpanFromContext(r.Context())
		defer span.End()

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			response.Json(w, r, response.FAIL, nil, err)
			return
		}

		dec := json.NewDecoder(bytes.NewReader(bodyBytes))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			response.Json(w, r, response.FAIL, nil, err)
			return
		}

		req := types.GenerateSignRequest{
			ChannelAccountRequest: types.ChannelAccountRequest{ChannelCode: body.ChannelCode, MerchantCode: body.MerchantCode},
			Params:                make(map[string]string, len(body.Params)),
		}
		for k, v := range body.Params {
			switch t := v.(type) {
			case string:
				req.Params[k] = t
			case json.Number:
				req.Params[k] = t.String()
			}
		}

		if err := utils.MyValidator.Struct(req); err != nil {
			response.Json(w, r, response.INVALID_PARAMETER, nil, err)
			return
		}

		l := test.NewGenerateSignLogic(r.Context(), ctx)
		resp, err := l.GenerateSign(req)
		if err != nil {
			response.Json(w, r, err.Error(), nil, err)
		} else {
			response.Json(w, r, response.SUCCESS, resp, err)
		}
	}
}
