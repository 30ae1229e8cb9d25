package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func setDefaults() {
	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("server.node_id", 1)
	viper.SetDefault("server.allow_origins", []string{"http://localhost:8870", "http://localhost:8888"})
	viper.SetDefault("server.temp_dir", filepath.Join(os.TempDir(), "videotube"))
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("jwt.timeout", "24h")
	viper.SetDefault("sentinel.qps", 500)
}

// viper对于大小写并不敏感, 配置文件缺失时使用默认值继续启动
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")
	setDefaults()

	for _, path := range []string{"../../config", "./config", "../config", "."} {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	load()

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	checkSecrets()
}

// checkSecrets only warns: the consumer runs without a jwt secret, the api
// refuses to start without one.
func checkSecrets() {
	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("jwt.secret is empty, the api server will exit at startup")
	}
}

func load() {
	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.NodeId = viper.GetInt64("server.node_id")
	ConfigInfo.Server.Pprof = viper.GetBool("server.pprof")
	ConfigInfo.Server.AllowOrigins = viper.GetStringSlice("server.allow_origins")
	ConfigInfo.Server.TempDir = viper.GetString("server.temp_dir")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.Minio.Endpoint = getEnvOrDefault("MINIO_ENDPOINT", viper.GetString("minio.endpoint"))
	ConfigInfo.Minio.AccessKey = getEnvOrDefault("MINIO_ACCESS_KEY", viper.GetString("minio.access_key"))
	ConfigInfo.Minio.SecretKey = getEnvOrDefault("MINIO_SECRET_KEY", viper.GetString("minio.secret_key"))
	ConfigInfo.Minio.UseSSL = getEnvOrDefault("MINIO_USE_SSL", viper.GetString("minio.use_ssl")) == "true"
	ConfigInfo.Minio.PublicHost = viper.GetString("minio.public_host")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")

	ConfigInfo.Jwt.Secret = getEnvOrDefault("JWT_SECRET", viper.GetString("jwt.secret"))
	ConfigInfo.Jwt.Timeout = viper.GetString("jwt.timeout")

	ConfigInfo.Jaeger.Enable = viper.GetBool("jaeger.enable")
	ConfigInfo.Jaeger.AgentAddr = viper.GetString("jaeger.agent_addr")

	ConfigInfo.Sentinel.Qps = viper.GetFloat64("sentinel.qps")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
