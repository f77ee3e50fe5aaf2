package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string
	JWTKey string

	// Mastery tuning. These are product-calibration knobs, not code constants.
	MasteryThreshold  float64 // confidence at or above this marks an item mastered
	ReviewThreshold   float64 // confidence below this puts an item in the review tier
	ConfidenceGain    float64 // step toward 1 on a correct answer
	ConfidencePenalty float64 // step toward 0 on a wrong answer, weighted heavier

	// Answer matching tolerance for speech-transcription noise
	FuzzyMaxEdit    int     // max edit distance still accepted as a match
	MinTokenOverlap float64 // min shared-token ratio still accepted as a match

	// Rewards
	XPPerCorrect      int
	XPCompletionBonus int

	// Session policy
	AllowEarlyComplete   bool
	DefaultQuestionCount int

	EmailSender string
	Password    string // SMTP Password
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "voxquiz"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		MasteryThreshold:  getEnvFloat("MASTERY_THRESHOLD", 0.8),
		ReviewThreshold:   getEnvFloat("REVIEW_THRESHOLD", 0.7),
		ConfidenceGain:    getEnvFloat("CONFIDENCE_GAIN", 0.3),
		ConfidencePenalty: getEnvFloat("CONFIDENCE_PENALTY", 0.5),

		FuzzyMaxEdit:    getEnvInt("FUZZY_MAX_EDIT", 2),
		MinTokenOverlap: getEnvFloat("MIN_TOKEN_OVERLAP", 0.8),

		XPPerCorrect:      getEnvInt("XP_PER_CORRECT", 10),
		XPCompletionBonus: getEnvInt("XP_COMPLETION_BONUS", 0),

		AllowEarlyComplete:   getEnvBool("ALLOW_EARLY_COMPLETE", false),
		DefaultQuestionCount: getEnvInt("DEFAULT_QUESTION_COUNT", 5),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.MasteryThreshold <= AppConfig.ReviewThreshold {
		log.Println("Warning: MASTERY_THRESHOLD should be above REVIEW_THRESHOLD.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default float value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}

// getEnvBool retrieves an environment variable as a bool or returns the default bool value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
