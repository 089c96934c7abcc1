package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-secret-key-for-jwt")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, "09:00", cfg.Attendance.WorkdayStart)
	assert.Equal(t, 15*time.Minute, cfg.Attendance.GracePeriod)
	assert.Equal(t, "UTC", cfg.Attendance.Timezone)
	assert.True(t, cfg.Seed.LeaveTypes)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD is required")
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY is required")
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"DB_PORT":                 "not-a-port",
		"ATTENDANCE_GRACE_PERIOD": "fifteen",
		"SEED_LEAVE_TYPES":        "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidate_AttendanceSettings(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Password: "x", MaxConns: 5, MinConns: 1},
		JWT:      JWTConfig{Secret: "x", AccessExpiration: "1h"},
		Attendance: AttendanceConfig{
			Timezone:     "Mars/Olympus",
			WorkdayStart: "9 o'clock",
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATTENDANCE_TIMEZONE")
	assert.Contains(t, err.Error(), "ATTENDANCE_WORKDAY_START")
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "hr", Password: "pw", Name: "hr_admin", SSLMode: "require",
	}}
	assert.Equal(t, "postgres://hr:pw@db:5433/hr_admin?sslmode=require", cfg.DatabaseURL())
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{}
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	} {
		cfg.App.LogLevel = in
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}
