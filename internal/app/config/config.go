package config

import (
	"medibook-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URL:    utils.GetEnvString("MONGO_URL", "mongodb://localhost:27017"),
			DbName: utils.GetEnvString("MONGO_DB_NAME", "medibook"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", ""),
			Password:   utils.GetEnvString("MINIO_PASSWORD", ""),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medibook-profile-pictures"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                             utils.GetEnvString("APP_ENV", "development"),
			Port:                            ":" + utils.GetEnvString("PORT", "8000"),
			ClientSiteURL:                   utils.GetEnvString("CLIENT_SITE_URL", "http://localhost:3000"),
			CORSAllowedOrigins:              splitOrigins(utils.GetEnvString("CORS_ALLOWED_ORIGINS", "https://front-end-i-clinic.vercel.app,http://localhost:3000")),
			MailerEmailSender:               utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@medibook.local"),
			RabbitMQMailerQueue:             utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "medibook_mailer_queue"),
			MaxRequests:                     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			ProfilePictureMaxUploadSizeInMB: utils.GetEnvInt64("APP_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Stripe: Stripe{
			SecretKey: utils.GetEnvString("STRIPE_SECRET_KEY", ""),
			Currency:  utils.GetEnvString("STRIPE_CURRENCY", "pkr"),
		},
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
