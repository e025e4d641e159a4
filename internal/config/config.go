package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	SMTP     SMTPConfig
	Payroll  PayrollConfig
	Company  CompanyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// WorkingDaysPolicy selects the denominator used for per-day salary.
type WorkingDaysPolicy string

const (
	// WorkingDaysCalendar uses the actual number of days in the period's month.
	WorkingDaysCalendar WorkingDaysPolicy = "calendar"
	// WorkingDaysFixed uses a fixed constant regardless of the month.
	WorkingDaysFixed WorkingDaysPolicy = "fixed"
)

// PayrollConfig gathers the policy constants that were previously scattered
// as literals across call sites.
type PayrollConfig struct {
	WorkingDaysPolicy WorkingDaysPolicy
	FixedWorkingDays  int
	CurrencySymbol    string

	// LateCutoff is the HH:MM threshold for the daily summary's late count.
	LateCutoff string
	// HeatmapLateHour is the hour at or after which an open check-in
	// classifies as LATE in the monthly heatmap. Intentionally a different
	// threshold than LateCutoff.
	HeatmapLateHour int
}

// CompanyConfig feeds the payslip header block.
type CompanyConfig struct {
	Name    string
	Address string
	Contact string
}

func Load() (*Config, error) {
	// Missing .env is fine; environment variables may be set directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "hr@cloudhrms.local"),
		FromName: getEnv("SMTP_FROM_NAME", "Cloud HRMS"),
	}

	fixedDays, err := strconv.Atoi(getEnv("PAYROLL_FIXED_WORKING_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_FIXED_WORKING_DAYS: %w", err)
	}

	heatmapLateHour, err := strconv.Atoi(getEnv("ATTENDANCE_HEATMAP_LATE_HOUR", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_HEATMAP_LATE_HOUR: %w", err)
	}

	config.Payroll = PayrollConfig{
		WorkingDaysPolicy: WorkingDaysPolicy(getEnv("PAYROLL_WORKING_DAYS_POLICY", string(WorkingDaysCalendar))),
		FixedWorkingDays:  fixedDays,
		CurrencySymbol:    getEnv("PAYROLL_CURRENCY_SYMBOL", "Rs."),
		LateCutoff:        getEnv("ATTENDANCE_LATE_CUTOFF", "09:30"),
		HeatmapLateHour:   heatmapLateHour,
	}

	config.Company = CompanyConfig{
		Name:    getEnv("COMPANY_NAME", "XYZ Technologies Pvt. Ltd."),
		Address: getEnv("COMPANY_ADDRESS", "Chennai, Tamil Nadu, India"),
		Contact: getEnv("COMPANY_CONTACT", "Email: hr@xyztech.com | Phone: +91-9876543210"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	switch c.Payroll.WorkingDaysPolicy {
	case WorkingDaysCalendar, WorkingDaysFixed:
	default:
		return fmt.Errorf("PAYROLL_WORKING_DAYS_POLICY must be %q or %q", WorkingDaysCalendar, WorkingDaysFixed)
	}
	if c.Payroll.FixedWorkingDays <= 0 {
		return fmt.Errorf("PAYROLL_FIXED_WORKING_DAYS must be positive")
	}
	if _, err := ParseClock(c.Payroll.LateCutoff); err != nil {
		return fmt.Errorf("invalid ATTENDANCE_LATE_CUTOFF: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Clock is a time of day without a date attached.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return Clock{}, fmt.Errorf("expected HH:MM, got %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("clock out of range: %q", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
