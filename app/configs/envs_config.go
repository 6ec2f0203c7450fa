package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string
	APP_ENV    string

	JWTSecret      string
	AllowedOrigins []string

	EmailHost        string
	EmailPort        string
	EmailUsername    string
	EmailPassword    string
	EmailFromName    string
	EmailFromAddress string

	WhatsAppNumber    string
	CallMeBotAPIKey   string
	StoreBaseURL      string
	SendEmailWhatsApp bool
	AllowRegister     bool
	AllowResetMock    bool
	Locale            string

	StorageEndpoint  string
	StorageRegion    string
	StorageBucket    string
	StorageAccessKey string
	StorageSecretKey string
	StoragePublicURL string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),
		APP_ENV:    os.Getenv("APP_ENV"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),

		EmailHost:        os.Getenv("EMAIL_SMTP_HOST"),
		EmailPort:        os.Getenv("EMAIL_SMTP_PORT"),
		EmailUsername:    os.Getenv("EMAIL_SMTP_USER"),
		EmailPassword:    os.Getenv("EMAIL_SMTP_PASS"),
		EmailFromName:    os.Getenv("EMAIL_FROM_NAME"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),

		WhatsAppNumber:    os.Getenv("WHATSAPP_NUMBER"),
		CallMeBotAPIKey:   os.Getenv("CALLMEBOT_API_KEY"),
		StoreBaseURL:      os.Getenv("STORE_BASE_URL"),
		SendEmailWhatsApp: os.Getenv("SEND_EMAIL_WHATSAPP") == "true",
		AllowRegister:     os.Getenv("ALLOW_REGISTER") == "true",
		AllowResetMock:    os.Getenv("ALLOW_RESET_MOCK_DATA") == "true",
		Locale:            os.Getenv("LOCALE"),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageRegion:    os.Getenv("STORAGE_REGION"),
		StorageBucket:    os.Getenv("STORAGE_BUCKET"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StoragePublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
	}

}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

var LoadENV = LoadEnv()
