package model

import (
	"context"
	"errors"
	"time"

	"com.galaxy/pay_channel/common/constants"
	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"gorm.io/gorm"
)

const channelMerchantAccountTable = "ch_channel_merchant_accounts"

// ChannelMerchantAccount 我方在渠道開立的商戶帳戶
type ChannelMerchantAccount struct {
	ID                uint      `gorm:"primaryKey"`
	ChannelCode       string    `gorm:"size:32;index:idx_channel_merchant,unique"`
	MerchantCode      string    `gorm:"size:64;index:idx_channel_merchant,unique"`
	PrivateKey        string    `gorm:"size:255"`
	RechargeNotifyURL string    `gorm:"size:255"`
	WithdrawNotifyURL string    `gorm:"size:255"`
	IPWhitelist       string    `gorm:"size:1024"` // 逗號分隔，可為 CIDR，空值不限制
	Status            string    `gorm:"size:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ChannelMerchantAccount) TableName() string {
	return channelMerchantAccountTable
}

type AccountStore interface {
	// Find merchantCode 為空時取該渠道第一個啟用帳戶
	Find(ctx context.Context, channelCode, merchantCode string) (*ChannelMerchantAccount, error)
}

type accountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) AccountStore {
	return &accountStore{db: db}
}

func (s *accountStore) Find(ctx context.Context, channelCode, merchantCode string) (*ChannelMerchantAccount, error) {
	var account ChannelMerchantAccount

	tx := s.db.WithContext(ctx).Table(channelMerchantAccountTable).
		Where("channel_code = ? AND status = ?", channelCode, constants.ACCOUNT_STATUS_ENABLE)
	if merchantCode != "" {
		tx = tx.Where("merchant_code = ?", merchantCode)
	}

	if err := tx.Order("id").Take(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.New(response.CHANNEL_ACCOUNT_NOT_EXIST, channelCode+"/"+merchantCode)
		}
		return nil, errorz.New(response.DATABASE_FAILURE, err.Error())
	}
	return &account, nil
}
