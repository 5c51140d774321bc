package notify

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"com.galaxy/pay_channel/common/paychannel"
	"github.com/pkg/errors"
)

const maxNotifySize = 1 << 20

// parsePayload 回調參數可能是 query、form 或 JSON，統一轉為字串 map
func parsePayload(r *http.Request) (paychannel.NotifyPayload, error) {
	payload := paychannel.NotifyPayload{}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		for k, v := range r.URL.Query() {
			payload[k] = v[0]
		}

		raw, err := io.ReadAll(io.LimitReader(r.Body, maxNotifySize))
		if err != nil {
			return nil, errors.Wrap(err, "read notify body failed")
		}
		if len(bytes.TrimSpace(raw)) == 0 {
			return payload, nil
		}

		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var body map[string]interface{}
		if err := dec.Decode(&body); err != nil {
			return nil, errors.Wrap(err, "parse notify JSON failed")
		}
		for k, v := range body {
			payload[k] = stringify(v)
		}
		return payload, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, errors.Wrap(err, "parse notify form failed")
	}
	for k, v := range r.Form {
		if len(v) > 0 {
			payload[k] = v[0]
		}
	}
	return payload, nil
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
