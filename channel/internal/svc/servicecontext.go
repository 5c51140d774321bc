package svc

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"com.galaxy/pay_channel/channel/internal/config"
	"com.galaxy/pay_channel/channel/internal/model"
	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/paychannel"
	"com.galaxy/pay_channel/common/response"
	"com.galaxy/pay_channel/common/utils"
	"github.com/go-redis/redis/v8"
	"github.com/jinzhu/copier"
	"gopkg.in/gomail.v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServiceContext struct {
	Config      config.Config
	RedisClient redis.UniversalClient
	MyDB        *gorm.DB
	Channels    *paychannel.Registry
	Accounts    model.AccountStore
	NotifyLogs  model.NotifyLogStore
	Mailer      utils.Sender // 未配置時為 nil
}

func NewServiceContext(c config.Config) *ServiceContext {

	// Redis
	var redisCache redis.UniversalClient
	if c.RedisCache.RedisSentinelNode != "" {
		redisCache = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    c.RedisCache.RedisMasterName,
			SentinelAddrs: strings.Split(c.RedisCache.RedisSentinelNode, ";"),
			DB:            c.RedisCache.RedisDB,
		})
	} else {
		redisCache = redis.NewClient(&redis.Options{
			Addr: c.RedisCache.RedisAddr,
			DB:   c.RedisCache.RedisDB,
		})
	}

	// DB
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.Mysql.UserName, c.Mysql.Password, c.Mysql.Host, c.Mysql.Port, c.Mysql.DBName)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(c.Mysql.DebugLevel)),
	})
	if err != nil {
		panic(err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxIdleConns(50)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(180 * time.Second)
	}

	// Channels
	registry, err := paychannel.NewRegistry(c.Channels,
		paychannel.WithHTTPClient(&http.Client{Timeout: time.Duration(c.CallTimeout) * time.Second}))
	if err != nil {
		log.Fatalf("渠道配置错误: %v", err)
	}

	svcCtx := &ServiceContext{
		Config:      c,
		RedisClient: redisCache,
		MyDB:        db,
		Channels:    registry,
		Accounts:    model.NewAccountStore(db),
		NotifyLogs:  model.NewNotifyLogStore(db),
	}

	// Mail
	if c.Mail.Host != "" {
		svcCtx.Mailer = gomail.NewDialer(c.Mail.Host, c.Mail.Port, c.Mail.UserName, c.Mail.Password)
	}

	return svcCtx
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Error
	}
}

// LoadChannel 取得渠道與商戶帳戶，merchantCode 為空時使用該渠道預設帳戶
func (s *ServiceContext) LoadChannel(ctx context.Context, channelCode, merchantCode string) (*paychannel.Adapter, *model.ChannelMerchantAccount, error) {
	adapter, err := s.Channels.Get(channelCode)
	if err != nil {
		return nil, nil, err
	}

	account, err := s.Accounts.Find(ctx, channelCode, merchantCode)
	if err != nil {
		return nil, nil, err
	}
	return adapter, account, nil
}

// ToAccount 轉為簽名用帳戶
func ToAccount(account *model.ChannelMerchantAccount) (paychannel.Account, error) {
	var acct paychannel.Account
	if err := copier.Copy(&acct, account); err != nil {
		return acct, errorz.New(response.GENERAL_EXCEPTION, err.Error())
	}
	return acct, nil
}
