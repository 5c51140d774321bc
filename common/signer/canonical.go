package signer

import (
	"sort"
	"strings"
)

const (
	FieldSign      = "sign"
	FieldTimestamp = "timestamp"
)

// DefaultExclude 預設不參與簽名的欄位
var DefaultExclude = []string{FieldSign, FieldTimestamp}

// Pair 排序後的單一參數
type Pair struct {
	Name  string
	Value string
}

// Canonicalizer 依欄位名稱(ASCII)排序參數，並排除不參與簽名的欄位
type Canonicalizer struct {
	exclude map[string]struct{}
}

func NewCanonicalizer(exclude ...string) Canonicalizer {
	if len(exclude) == 0 {
		exclude = DefaultExclude
	}
	set := make(map[string]struct{}, len(exclude)+1)
	for _, name := range exclude {
		set[name] = struct{}{}
	}
	// sign 永遠不進入自身的簽名
	set[FieldSign] = struct{}{}
	return Canonicalizer{exclude: set}
}

// Excluded reports whether name is left out of the signing input.
func (c Canonicalizer) Excluded(name string) bool {
	_, ok := c.exclude[name]
	return ok
}

func (c Canonicalizer) Canonicalize(params map[string]string) []Pair {
	keys := make([]string, 0, len(params))
	for k := range params {
		if c.Excluded(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Name: k, Value: params[k]})
	}
	return pairs
}

// Query 組成 a=b&c=d 格式，空參數回傳空字串
func (c Canonicalizer) Query(params map[string]string) string {
	return JoinPairs(c.Canonicalize(params))
}

func JoinPairs(pairs []Pair) string {
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}
