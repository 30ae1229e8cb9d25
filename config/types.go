package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Jaeger   jaeger   `yaml:"jaeger" mapstructure:"jaeger"`
	Sentinel sentinel `yaml:"sentinel" mapstructure:"sentinel"`
}

type server struct {
	Addr         string   `yaml:"addr"`
	NodeId       int64    `yaml:"node_id" mapstructure:"node_id"`
	Pprof        bool     `yaml:"pprof"`
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	TempDir      string   `yaml:"temp_dir" mapstructure:"temp_dir"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type minio struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey  string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL     bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	PublicHost string `yaml:"public_host" mapstructure:"public_host"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type jwt struct {
	Secret  string `yaml:"secret"`
	Timeout string `yaml:"timeout"`
}

type jaeger struct {
	Enable    bool   `yaml:"enable"`
	AgentAddr string `yaml:"agent_addr" mapstructure:"agent_addr"`
}

type sentinel struct {
	Qps float64 `yaml:"qps"`
}
