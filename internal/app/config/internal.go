package config

type (
	InternalConfig struct {
		App    App
		JWT    JWT
		Stripe Stripe
	}
	App struct {
		Env                             string
		Port                            string
		ClientSiteURL                   string
		CORSAllowedOrigins              []string
		MailerEmailSender               string
		RabbitMQMailerQueue             string
		MaxRequests                     int
		ShutdownTimeout                 int
		ProfilePictureMaxUploadSizeInMB int64
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	Stripe struct {
		SecretKey string
		Currency  string
	}
)
