// @title Skillmap 后端 API
// @version 1.0
// @description 技能路线图服务：按职业目标生成技能列表并跟踪学习进度。

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"skillmap_backend/internal/app"
	"skillmap_backend/internal/config"
	"skillmap_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件所在目录")
	storageType := flag.String("storage", "", "覆盖配置中的存储类型 (memory|local|redis|mysql|minio|oss)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *storageType != "" {
		cfg.Storage.Type = *storageType
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid storage override: %v", err)
		}
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer logger.Log.Sync()

	application.Run()
}
