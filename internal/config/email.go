package config

type EmailConfig struct {
	BrevoAPIKey string `yaml:"brevo_api_key"`
	SenderName  string `yaml:"sender_name"`
	SenderEmail string `yaml:"sender_email"`
	SMTPHost    string `yaml:"smtp_host"`
	SMTPPort    int    `yaml:"smtp_port"`
	SMTPUser    string `yaml:"smtp_user"`
	SMTPPass    string `yaml:"smtp_pass"`
}

func loadEmailConfig() *EmailConfig {
	return &EmailConfig{
		BrevoAPIKey: getEnv("BREVO_API_KEY", ""),
		SenderName:  getEnv("EMAIL_SENDER_NAME", "CycleRoute"),
		SenderEmail: getEnv("EMAIL_SENDER_ADDRESS", "noreply@cycleroute.app"),
		SMTPHost:    getEnv("SMTP_HOST", "localhost"),
		SMTPPort:    getEnvAsInt("SMTP_PORT", 1025),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
	}
}
