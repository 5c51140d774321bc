package signer

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// DefaultSuffix 拼接在排序字串與密鑰之間
const DefaultSuffix = "&key="

// HashFunc 摘要演算法
type HashFunc func(data []byte) []byte

func MD5(data []byte) []byte {
	sum := md5.Sum(data)
	return sum[:]
}

func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

type Option func(*Signer)

func WithExclude(fields ...string) Option {
	return func(s *Signer) {
		s.canon = NewCanonicalizer(fields...)
	}
}

func WithSuffix(suffix string) Option {
	return func(s *Signer) {
		s.suffix = suffix
	}
}

func WithHash(hash HashFunc) Option {
	return func(s *Signer) {
		s.hash = hash
	}
}

// Signer 簽名與驗簽，不持有任何可變狀態，可併發使用
type Signer struct {
	canon  Canonicalizer
	suffix string
	hash   HashFunc
}

func New(opts ...Option) Signer {
	s := Signer{
		canon:  NewCanonicalizer(),
		suffix: DefaultSuffix,
		hash:   MD5,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Signer) Canonicalizer() Canonicalizer {
	return s.canon
}

// Source 待簽名字串: 排序參數 + suffix + secret
func (s Signer) Source(params map[string]string, secret string) string {
	return s.canon.Query(params) + s.suffix + secret
}

// Sign 回傳大寫 hex 摘要
func (s Signer) Sign(params map[string]string, secret string) string {
	digest := s.hash([]byte(s.Source(params, secret)))
	return strings.ToUpper(hex.EncodeToString(digest))
}

// Verify 取出 sign 欄位並以相同演算法重算比對。缺少簽名或發生異常一律回傳 false。
// params 不會被修改。
func (s Signer) Verify(params map[string]string, secret string) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			logx.Errorf("验签异常: %v", p)
			ok = false
		}
	}()

	received := params[FieldSign]
	if received == "" {
		return false
	}

	expected := s.Sign(params, secret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(received)) == 1
}

// Attach 回傳帶有 sign 的新參數表，原參數不變
func (s Signer) Attach(params map[string]string, secret string) map[string]string {
	signed := make(map[string]string, len(params)+1)
	for k, v := range params {
		signed[k] = v
	}
	signed[FieldSign] = s.Sign(params, secret)
	return signed
}
