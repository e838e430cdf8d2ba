package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Upload    UploadConfig
	Storage   StorageConfig
	S3        S3Config
	Email     EmailConfig
	SMTP      SMTPConfig
	Gmail     GmailConfig
	PageCount PageCountConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// CORSConfig holds CORS settings. An empty list allows every origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds per-request upload limits.
type UploadConfig struct {
	Dir           string        `mapstructure:"dir"`
	MaxFileSizeMB int64         `mapstructure:"max_file_size_mb"`
	MaxFiles      int           `mapstructure:"max_files"`
	SweepAge      time.Duration `mapstructure:"sweep_age"`
}

// MaxFileSizeBytes returns the per-file limit in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// MaxRequestBytes bounds a whole multipart request body.
func (u *UploadConfig) MaxRequestBytes() int64 {
	return int64(u.MaxFiles)*u.MaxFileSizeBytes() + 1024*1024
}

// StorageConfig selects where uploads are held while a request is processed.
type StorageConfig struct {
	Provider string `mapstructure:"provider"`
}

// S3Config holds AWS S3 settings for the s3 storage provider.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// EmailConfig holds order notification settings.
type EmailConfig struct {
	Provider             string        `mapstructure:"provider"`
	Region               string        `mapstructure:"region"`
	AdminEmail           string        `mapstructure:"admin_email"`
	FromAddress          string        `mapstructure:"from_address"`
	FromName             string        `mapstructure:"from_name"`
	AttachmentLimitBytes int64         `mapstructure:"attachment_limit_bytes"`
	SendTimeout          time.Duration `mapstructure:"send_timeout"`
}

// SMTPConfig holds SMTP transport credentials.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Secure   bool   `mapstructure:"secure"`
}

// Configured reports whether enough SMTP settings are present to send mail.
func (s *SMTPConfig) Configured() bool {
	return s.Host != "" && s.User != "" && s.Password != ""
}

// GmailConfig holds the Gmail app-password fallback transport.
type GmailConfig struct {
	User        string `mapstructure:"user"`
	AppPassword string `mapstructure:"app_password"`
}

// Configured reports whether Gmail credentials are present.
func (g *GmailConfig) Configured() bool {
	return g.User != "" && g.AppPassword != ""
}

// PageCountConfig holds page detection settings.
type PageCountConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// SenderAddress returns the From address, falling back to the SMTP or Gmail user.
func (c *Config) SenderAddress() string {
	switch {
	case c.Email.FromAddress != "":
		return c.Email.FromAddress
	case c.SMTP.User != "":
		return c.SMTP.User
	default:
		return c.Gmail.User
	}
}

// Load reads configuration from environment variables with the PRINT4ME_ prefix.
// Missing mail credentials are not an error here; they surface when a
// notification is sent.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PRINT4ME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":4000")
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "90s")
	v.SetDefault("server.environment", "development")

	// CORS defaults (empty allows all origins)
	v.SetDefault("cors.allowed_origins", "")

	// Upload defaults
	v.SetDefault("upload.dir", "./uploads")
	v.SetDefault("upload.max_file_size_mb", 25)
	v.SetDefault("upload.max_files", 5)
	v.SetDefault("upload.sweep_age", "30m")

	// Storage defaults
	v.SetDefault("storage.provider", "local")
	v.SetDefault("s3.region", "eu-central-1")
	v.SetDefault("s3.bucket", "print4me-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.prefix", "uploads")

	// Email defaults
	v.SetDefault("email.provider", "smtp")
	v.SetDefault("email.region", "eu-central-1")
	v.SetDefault("email.admin_email", "")
	v.SetDefault("email.from_address", "")
	v.SetDefault("email.from_name", "Print4me")
	v.SetDefault("email.attachment_limit_bytes", 20*1024*1024)
	v.SetDefault("email.send_timeout", "2m")

	// SMTP defaults
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 0)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.secure", true)

	v.SetDefault("pagecount.concurrency", 2)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "PRINT4ME_SERVER_PORT",
		"server.read_timeout":          "PRINT4ME_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "PRINT4ME_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":      "PRINT4ME_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":           "PRINT4ME_SERVER_ENVIRONMENT",
		"cors.allowed_origins":         "PRINT4ME_CORS_ALLOWED_ORIGINS",
		"upload.dir":                   "PRINT4ME_UPLOAD_DIR",
		"upload.max_file_size_mb":      "PRINT4ME_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_files":             "PRINT4ME_UPLOAD_MAX_FILES",
		"upload.sweep_age":             "PRINT4ME_UPLOAD_SWEEP_AGE",
		"storage.provider":             "PRINT4ME_STORAGE_PROVIDER",
		"s3.region":                    "PRINT4ME_S3_REGION",
		"s3.bucket":                    "PRINT4ME_S3_BUCKET",
		"s3.endpoint":                  "PRINT4ME_S3_ENDPOINT",
		"s3.access_key":                "PRINT4ME_S3_ACCESS_KEY",
		"s3.secret_key":                "PRINT4ME_S3_SECRET_KEY",
		"s3.prefix":                    "PRINT4ME_S3_PREFIX",
		"email.provider":               "PRINT4ME_EMAIL_PROVIDER",
		"email.region":                 "PRINT4ME_EMAIL_REGION",
		"email.admin_email":            "PRINT4ME_EMAIL_ADMIN_EMAIL",
		"email.from_address":           "PRINT4ME_EMAIL_FROM_ADDRESS",
		"email.from_name":              "PRINT4ME_EMAIL_FROM_NAME",
		"email.attachment_limit_bytes": "PRINT4ME_EMAIL_ATTACHMENT_LIMIT_BYTES",
		"email.send_timeout":           "PRINT4ME_EMAIL_SEND_TIMEOUT",
		"smtp.host":                    "PRINT4ME_SMTP_HOST",
		"smtp.port":                    "PRINT4ME_SMTP_PORT",
		"smtp.user":                    "PRINT4ME_SMTP_USER",
		"smtp.password":                "PRINT4ME_SMTP_PASSWORD",
		"smtp.secure":                  "PRINT4ME_SMTP_SECURE",
		"gmail.user":                   "PRINT4ME_GMAIL_USER",
		"gmail.app_password":           "PRINT4ME_GMAIL_APP_PASSWORD",
		"pagecount.concurrency":        "PRINT4ME_PAGECOUNT_CONCURRENCY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PRINT4ME_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PRINT4ME_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Upload = UploadConfig{
		Dir:           v.GetString("upload.dir"),
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxFiles:      v.GetInt("upload.max_files"),
		SweepAge:      v.GetDuration("upload.sweep_age"),
	}
	cfg.Storage = StorageConfig{
		Provider: v.GetString("storage.provider"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		Prefix:    v.GetString("s3.prefix"),
	}

	cfg.Email = EmailConfig{
		Provider:             v.GetString("email.provider"),
		Region:               v.GetString("email.region"),
		AdminEmail:           v.GetString("email.admin_email"),
		FromAddress:          v.GetString("email.from_address"),
		FromName:             v.GetString("email.from_name"),
		AttachmentLimitBytes: v.GetInt64("email.attachment_limit_bytes"),
		SendTimeout:          v.GetDuration("email.send_timeout"),
	}
	cfg.SMTP = SMTPConfig{
		Host:     v.GetString("smtp.host"),
		Port:     v.GetInt("smtp.port"),
		User:     v.GetString("smtp.user"),
		Password: v.GetString("smtp.password"),
		Secure:   v.GetBool("smtp.secure"),
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
		if cfg.SMTP.Secure {
			cfg.SMTP.Port = 465
		}
	}
	cfg.Gmail = GmailConfig{
		User:        v.GetString("gmail.user"),
		AppPassword: v.GetString("gmail.app_password"),
	}

	cfg.PageCount = PageCountConfig{
		Concurrency: v.GetInt("pagecount.concurrency"),
	}

	return cfg, nil
}
