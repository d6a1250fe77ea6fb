package configs

import (
	"log"
	"os"
	"sync"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	JWTSecret         string
	ServerPort        string
	CarrierAccountSID string
	CarrierAuthToken  string
	CarrierBaseURL    string
	SMSWebhookBaseURL string
	LogLevel          string
}

const (
	defaultJWTSecret  = "noshow"         // Default JWT secret, used if env var is not set.
	envJWTSecretKey   = "JWT_SECRET_KEY" // Environment variable name for the JWT secret.
	defaultServerPort = "8080"           // Default server port.
	envServerPortKey  = "SERVER_PORT"    // Environment variable name for the server port.

	envCarrierAccountSID = "CARRIER_ACCOUNT_SID" // Carrier account identifier (Twilio Account SID).
	envCarrierAuthToken  = "CARRIER_AUTH_TOKEN"  // Carrier API auth token.
	envCarrierBaseURL    = "CARRIER_BASE_URL"    // Carrier API base URL, overridable for tests.
	defaultCarrierURL    = "https://api.twilio.com"

	envSMSWebhookBaseURL     = "SMS_WEBHOOK_BASE_URL" // Public base URL the carrier posts inbound SMS to.
	defaultSMSWebhookBaseURL = "http://localhost:8080"

	envLogLevel     = "LOG_LEVEL"
	defaultLogLevel = "info"
)

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Printf("Warning: %s is not set. Falling back to the default JWT secret; set it in production.", envJWTSecretKey)
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("Info: %s is not set. Using default port %s.", envServerPortKey, defaultServerPort)
		}

		carrierBaseURL := os.Getenv(envCarrierBaseURL)
		if carrierBaseURL == "" {
			carrierBaseURL = defaultCarrierURL
		}

		carrierAccountSID := os.Getenv(envCarrierAccountSID)
		carrierAuthToken := os.Getenv(envCarrierAuthToken)
		if carrierAccountSID == "" || carrierAuthToken == "" {
			log.Printf("Warning: %s/%s are not set. Carrier provisioning calls will be rejected upstream.", envCarrierAccountSID, envCarrierAuthToken)
		}

		smsWebhookBaseURL := os.Getenv(envSMSWebhookBaseURL)
		if smsWebhookBaseURL == "" {
			smsWebhookBaseURL = defaultSMSWebhookBaseURL
			log.Printf("Info: %s is not set. Using default webhook base URL %s; this is likely wrong outside local development.", envSMSWebhookBaseURL, defaultSMSWebhookBaseURL)
		}

		logLevel := os.Getenv(envLogLevel)
		if logLevel == "" {
			logLevel = defaultLogLevel
		}

		AppConfig = Configuration{
			JWTSecret:         jwtSecret,
			ServerPort:        serverPort,
			CarrierAccountSID: carrierAccountSID,
			CarrierAuthToken:  carrierAuthToken,
			CarrierBaseURL:    carrierBaseURL,
			SMSWebhookBaseURL: smsWebhookBaseURL,
			LogLevel:          logLevel,
		}

		log.Println("Application configuration loaded.")
	})
}
