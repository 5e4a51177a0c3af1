package cmd

import "time"

// Config carries all process configuration resolved from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Notification settings.
	EnabledChannels   []string
	WebhookBaseURL    string
	WebhookPath       string
	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
	RetryMultiplier   float64
	EmailTo           string
	EmailFrom         string
	SMSTo             string
	SMSFrom           string

	EventQueueSize int
}
