package model

import (
	"context"
	"time"

	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const notifyLogTable = "ch_notify_logs"

// NotifyLog 每筆已處理的渠道回調，驗簽失敗的也會留存
type NotifyLog struct {
	ID            uint            `gorm:"primaryKey"`
	ChannelCode   string          `gorm:"size:32;index:idx_notify_order"`
	OrderType     string          `gorm:"size:2"`
	OrderNo       string          `gorm:"size:64;index:idx_notify_order"`
	MerchantCode  string          `gorm:"size:64"`
	Status        string          `gorm:"size:16"`
	ChannelStatus string          `gorm:"size:32"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4)"`
	Fee           decimal.Decimal `gorm:"type:decimal(20,4)"`
	Reason        string          `gorm:"size:255"`
	RequestIP     string          `gorm:"size:64"`
	Payload       string          `gorm:"type:text"`
	CreatedAt     time.Time
}

func (NotifyLog) TableName() string {
	return notifyLogTable
}

type NotifyLogStore interface {
	Create(ctx context.Context, log *NotifyLog) error
	ListByOrder(ctx context.Context, channelCode, orderNo string) ([]NotifyLog, error)
}

type notifyLogStore struct {
	db *gorm.DB
}

func NewNotifyLogStore(db *gorm.DB) NotifyLogStore {
	return &notifyLogStore{db: db}
}

func (s *notifyLogStore) Create(ctx context.Context, log *NotifyLog) error {
	if err := s.db.WithContext(ctx).Table(notifyLogTable).Create(log).Error; err != nil {
		return errorz.New(response.NOTIFY_PERSIST_FAILURE, err.Error())
	}
	return nil
}

func (s *notifyLogStore) ListByOrder(ctx context.Context, channelCode, orderNo string) ([]NotifyLog, error) {
	var logs []NotifyLog
	if err := s.db.WithContext(ctx).Table(notifyLogTable).
		Where("channel_code = ? AND order_no = ?", channelCode, orderNo).
		Order("id").
		Find(&logs).Error; err != nil {
		return nil, errorz.New(response.DATABASE_FAILURE, err.Error())
	}
	return logs, nil
}
