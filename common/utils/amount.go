package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount 依渠道要求的小數位數輸出金額(無條件捨去)，scale=0 即整數
func FormatAmount(amount decimal.Decimal, scale int32) string {
	return amount.Truncate(scale).StringFixed(scale)
}

// ParseAmount 解析渠道回傳的金額字串
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// MaskSensitive 日誌脫敏，保留前 showPrefix 與後 showSuffix 個字元
func MaskSensitive(data string, showPrefix, showSuffix int) string {
	runes := []rune(data)
	if len(runes) == 0 || len(runes) <= showPrefix+showSuffix {
		return "****"
	}
	return string(runes[:showPrefix]) + "****" + string(runes[len(runes)-showSuffix:])
}
