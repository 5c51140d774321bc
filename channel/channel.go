package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"com.galaxy/pay_channel/channel/internal/config"
	"com.galaxy/pay_channel/channel/internal/handler"
	"com.galaxy/pay_channel/channel/internal/svc"
	"github.com/joho/godotenv"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/channel-api.yaml", "the config file")
var envFile = flag.String("env", "etc/.env", "the env file")

func main() {
	flag.Parse()
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatal("Error loading .env file")
	}

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	ctx := svc.NewServiceContext(c)
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d, channels: %v...\n", c.Host, c.Port, ctx.Channels.Codes())
	server.Start()
}
