package config

// AppConfig holds runtime configuration loaded from YAML plus env overrides.
type AppConfig struct {
	Port           int              `yaml:"port"`
	DSN            string           `yaml:"dsn"` // Postgres DSN
	RedisURL       string           `yaml:"redis_url"`
	Env            string           `yaml:"env"` // "development" | "production"
	JWTSecret      string           `yaml:"jwt_secret"`
	AllowedOrigins []string         `yaml:"allowed_origins"`
	Site           SiteConfig       `yaml:"site"`
	Admin          AdminSeedConfig  `yaml:"admin"`
	Mail           MailConfig       `yaml:"mail"`
	S3             S3Config         `yaml:"s3"`
	AI             AIConfig         `yaml:"ai"`
	Newsletter     NewsletterConfig `yaml:"newsletter"`
}

// SiteConfig describes the public site identity.
type SiteConfig struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Keywords      []string `yaml:"keywords"`
	WebURL        string   `yaml:"web_url"`
	ServerURL     string   `yaml:"server_url"`
	DefaultLocale string   `yaml:"default_locale"` // "ko" | "en"
}

// AdminSeedConfig seeds the single editor account on first migration.
type AdminSeedConfig struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

// MailConfig holds SMTP or Resend transport settings.
type MailConfig struct {
	Enable    bool   `yaml:"enable"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Pass      string `yaml:"pass"`
	From      string `yaml:"from"`
	ReplyTo   string `yaml:"reply_to"`
	UseResend bool   `yaml:"use_resend"`
	ResendKey string `yaml:"resend_key"`
}

// S3Config holds object storage settings for media uploads.
type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// AIConfig lists the configured generative providers.
type AIConfig struct {
	Providers     []AIProvider `yaml:"providers"`
	TextProvider  string       `yaml:"text_provider"`  // provider id for text generation
	ImageProvider string       `yaml:"image_provider"` // provider id for image generation
}

// AIProvider is one configured generative-AI endpoint.
type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // openai | anthropic | openai-compatible
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint"`
	DefaultModel string `yaml:"default_model"`
	ImageModel   string `yaml:"image_model"`
	Enabled      bool   `yaml:"enabled"`
}

// NewsletterConfig tunes campaign dispatch.
type NewsletterConfig struct {
	BatchSize int `yaml:"batch_size"`
}
