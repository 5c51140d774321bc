package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"com.galaxy/pay_channel/common/errorz"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/rest/httpx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Body struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Trace   string      `json:"trace"`
}

// Json 輸出統一格式回應並記錄於 span
func Json(w http.ResponseWriter, r *http.Request, code string, resp interface{}, err error) {
	var body Body

	span := trace.SpanFromContext(r.Context())

	body.Code = code
	body.Message = Sprintf(Lang(r), code)
	body.Data = resp
	if err != nil {
		var v *errorz.Err
		if errors.As(err, &v) && v.GetMessage() != "" {
			body.Message += ": " + v.GetMessage()
			span.RecordError(fmt.Errorf("(%s)%s", code, v.GetMessage()))
		} else {
			span.RecordError(fmt.Errorf("(%s)%s %s", code, body.Message, err.Error()))
		}
	}
	body.Trace = span.SpanContext().TraceID().String()

	if responseBytes, err := json.Marshal(body); err == nil {
		span.SetAttributes(attribute.KeyValue{
			Key:   "response",
			Value: attribute.StringValue(string(responseBytes)),
		})
	}

	httpx.OkJson(w, body)
}

// Text 回調應答，渠道只認純文字
func Text(w http.ResponseWriter, r *http.Request, text string) {
	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("response", text))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
