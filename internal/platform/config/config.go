package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Appwrite backend
	AppwriteEndpoint  string
	AppwriteProjectID string
	AppwriteAPIKey    string
	AppwriteDatabase  string

	// Collection IDs
	ContactCollectionID     string
	ApplicationCollectionID string
	BlogCollectionID        string
	InvoiceCollectionID     string

	// Bucket IDs
	BlogImagesBucketID string
	ResumesBucketID    string

	// Session tokens issued by this service after Appwrite login
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// CORS
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("APPWRITE_ENDPOINT", "https://cloud.appwrite.io/v1")
	viper.SetDefault("APPWRITE_PROJECT_ID", "")
	viper.SetDefault("APPWRITE_API_KEY", "")
	viper.SetDefault("APPWRITE_DATABASE_ID", "")
	viper.SetDefault("APPWRITE_CONTACT_COLLECTION_ID", "contacts")
	viper.SetDefault("APPWRITE_CAREERS_COLLECTION_ID", "applications")
	viper.SetDefault("APPWRITE_BLOGS_COLLECTION_ID", "blogs")
	viper.SetDefault("APPWRITE_INVOICES_COLLECTION_ID", "invoices")
	viper.SetDefault("APPWRITE_BLOG_IMAGES_BUCKET_ID", "blog-images")
	viper.SetDefault("APPWRITE_CAREERS_BUCKET_ID", "resumes")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "apromax-admin-backend")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AppwriteEndpoint = strings.TrimRight(viper.GetString("APPWRITE_ENDPOINT"), "/")
	cfg.AppwriteProjectID = viper.GetString("APPWRITE_PROJECT_ID")
	if cfg.AppwriteProjectID == "" {
		log.Println("Warning: APPWRITE_PROJECT_ID environment variable not set.")
	}
	cfg.AppwriteAPIKey = viper.GetString("APPWRITE_API_KEY")
	if cfg.AppwriteAPIKey == "" {
		log.Println("Warning: APPWRITE_API_KEY environment variable not set. Data operations will fail.")
	}
	cfg.AppwriteDatabase = viper.GetString("APPWRITE_DATABASE_ID")
	if cfg.AppwriteDatabase == "" {
		log.Println("Warning: APPWRITE_DATABASE_ID environment variable not set.")
	}

	cfg.ContactCollectionID = viper.GetString("APPWRITE_CONTACT_COLLECTION_ID")
	cfg.ApplicationCollectionID = viper.GetString("APPWRITE_CAREERS_COLLECTION_ID")
	cfg.BlogCollectionID = viper.GetString("APPWRITE_BLOGS_COLLECTION_ID")
	cfg.InvoiceCollectionID = viper.GetString("APPWRITE_INVOICES_COLLECTION_ID")

	cfg.BlogImagesBucketID = viper.GetString("APPWRITE_BLOG_IMAGES_BUCKET_ID")
	cfg.ResumesBucketID = viper.GetString("APPWRITE_CAREERS_BUCKET_ID")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}
