package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		Session
		Export
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path       string
		LogQueries bool
	}
	UI struct {
		TemplatesPath string // Empty means the templates embedded in the binary
	}
	Session struct {
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local use without HTTPS
		CSRFSecret    string
	}
	Export struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
		Dir      string
		Format   string // csv or markdown
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

// loadEnvFiles reads the optional dotenv files from the working directory.
func loadEnvFiles() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		_ = godotenv.Load(name)
	}
}

func NewConfig() *Config {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_queries", false)
	v.SetDefault("templates_path", "")

	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("session_secure_cookies", false)
	v.SetDefault("csrf_secret", "") // Auto-generated if empty

	v.SetDefault("export_enabled", false)
	v.SetDefault("export_schedule", DefaultExportSchedule)
	v.SetDefault("export_dir", "./exports")
	v.SetDefault("export_format", "csv")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:       v.GetString("DATABASE_PATH"),
			LogQueries: v.GetBool("DATABASE_LOG_QUERIES"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
		},
		Session: Session{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SESSION_SECURE_COOKIES"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
		},
		Export: Export{
			Enabled:  v.GetBool("EXPORT_ENABLED"),
			Schedule: v.GetString("EXPORT_SCHEDULE"),
			Dir:      v.GetString("EXPORT_DIR"),
			Format:   v.GetString("EXPORT_FORMAT"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}
