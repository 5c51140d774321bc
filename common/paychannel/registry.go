package paychannel

import (
	"sort"

	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
)

// BankTable 銀行代碼與名稱對照，由渠道配置建立，唯讀
type BankTable struct {
	names map[string]string
}

func NewBankTable(names map[string]string) BankTable {
	copied := make(map[string]string, len(names))
	for k, v := range names {
		copied[k] = v
	}
	return BankTable{names: copied}
}

func (b BankTable) Name(code string) (string, bool) {
	name, ok := b.names[code]
	return name, ok
}

func (b BankTable) Len() int {
	return len(b.names)
}

// Registry 依渠道編號取得 Adapter，啟動時建立
type Registry struct {
	adapters map[string]*Adapter
}

func NewRegistry(confs []Config, opts ...Option) (*Registry, error) {
	r := &Registry{adapters: make(map[string]*Adapter, len(confs))}
	for _, c := range confs {
		if _, dup := r.adapters[c.Code]; dup {
			return nil, errorz.New(response.CHANNEL_CONFIG_ERROR, "duplicated channel code: "+c.Code)
		}
		adapter, err := NewAdapter(c, opts...)
		if err != nil {
			return nil, err
		}
		r.adapters[c.Code] = adapter
	}
	return r, nil
}

func (r *Registry) Get(code string) (*Adapter, error) {
	adapter, ok := r.adapters[code]
	if !ok {
		return nil, errorz.New(response.CHANNEL_IS_NOT_EXIST, "channel: "+code)
	}
	return adapter, nil
}

func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.adapters))
	for code := range r.adapters {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
