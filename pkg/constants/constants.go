package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "PORTFOLIO"
	DefaultPort  = 5000

	AppName    = "portfolio"
	AppVersion = "2.0.0"
)
