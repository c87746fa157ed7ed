package config

// Environment variable keys
const (
	EnvKeyPort           = "PORT"
	EnvKeyEnvironment    = "ENVIRONMENT"
	EnvKeyLogLevel       = "LOG_LEVEL"
	EnvKeyLogFormat      = "LOG_FORMAT"
	EnvKeyDBUser         = "DB_USER"
	EnvKeyDBPassword     = "DB_PASSWORD"
	EnvKeyDBHost         = "DB_HOST"
	EnvKeyDBPort         = "DB_PORT"
	EnvKeyDBName         = "DB_NAME"
	EnvKeyAPIKey         = "API_KEY"
	EnvKeyContentDir     = "CONTENT_DIR"
	EnvKeyTrustedProxies = "TRUSTED_PROXIES"
)

// Default values
const (
	DefaultPort        = "8080"
	DefaultEnvironment = "dev"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultDBUser      = "postgres"
	DefaultDBPassword  = "postgres"
	DefaultDBHost      = "localhost"
	DefaultDBPort      = "5432"
	DefaultDBName      = "shopquest"
	DefaultContentDir  = "configs/gamification"
)

// Content file names within ContentDir
const (
	ContentFileRecipes    = "recipes.json"
	ContentFileQuests     = "quests.json"
	ContentFileThemes     = "themes.json"
	ContentFileTableSkins = "table_skins.json"
)
