package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Site URLs
	AppURL      string `yaml:"APP_URL"`
	FrontendURL string `yaml:"FRONTEND_URL"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	DefaultFromEmail string `yaml:"DEFAULT_FROM_EMAIL"`

	// Comma-separated list of addresses notified about new comments.
	CommentNotificationRecipients string `yaml:"COMMENT_NOTIFICATION_RECIPIENTS"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Upstash Search configuration
	UpstashSearchEnabled bool   `yaml:"UPSTASH_SEARCH_ENABLED"`
	UpstashSearchURL     string `yaml:"UPSTASH_SEARCH_REST_URL"`
	UpstashSearchToken   string `yaml:"UPSTASH_SEARCH_REST_TOKEN"`
	UpstashSearchIndex   string `yaml:"UPSTASH_SEARCH_INDEX"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Mirror keys that should also be reachable via os.Getenv.
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("UPSTASH_SEARCH_ENABLED", getBoolString(config.UpstashSearchEnabled))
	os.Setenv("UPSTASH_SEARCH_REST_URL", config.UpstashSearchURL)
	os.Setenv("UPSTASH_SEARCH_REST_TOKEN", config.UpstashSearchToken)
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "APP_URL":
		return config.AppURL
	case "FRONTEND_URL":
		return config.FrontendURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "DEFAULT_FROM_EMAIL":
		return config.DefaultFromEmail
	case "COMMENT_NOTIFICATION_RECIPIENTS":
		return config.CommentNotificationRecipients
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "UPSTASH_SEARCH_ENABLED":
		return getBoolString(config.UpstashSearchEnabled)
	case "UPSTASH_SEARCH_REST_URL":
		return config.UpstashSearchURL
	case "UPSTASH_SEARCH_REST_TOKEN":
		return config.UpstashSearchToken
	case "UPSTASH_SEARCH_INDEX":
		return config.UpstashSearchIndex
	default:
		return os.Getenv(key)
	}
}
