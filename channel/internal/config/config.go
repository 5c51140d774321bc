package config

import (
	"com.galaxy/pay_channel/common/paychannel"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Mysql struct {
		Host       string
		Port       int
		DBName     string
		UserName   string
		Password   string `json:",optional"`
		DebugLevel string `json:",default=error,options=silent|error|warn|info"`
	}
	RedisCache struct {
		RedisSentinelNode string `json:",optional"`
		RedisMasterName   string `json:",optional"`
		RedisAddr         string `json:",optional"` // 未配置哨兵時使用單機
		RedisDB           int    `json:",optional"`
	}
	Mail struct {
		Host     string   `json:",optional"`
		Port     int      `json:",optional"`
		UserName string   `json:",optional"`
		Password string   `json:",optional"`
		From     string   `json:",optional"`
		To       []string `json:",optional"`
	} `json:",optional"`
	CallTimeout int64 `json:",default=30"` // 渠道呼叫逾時秒數
	Channels    []paychannel.Config
}
