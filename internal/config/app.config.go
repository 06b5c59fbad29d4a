package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	HTTPAddr string

	SessionBackend string // redis | file
	SessionFile    string
	RedisAddr      string
	RedisPass      string

	OTPSendDelay    time.Duration
	OTPVerifyDelay  time.Duration
	OTPCooldownSecs int
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		SessionBackend:  getEnv("SESSION_BACKEND", "file"),
		SessionFile:     getEnv("SESSION_FILE", "vip_session.json"),
		RedisAddr:       getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass:       getEnv("REDIS_PASS", ""),
		OTPSendDelay:    getDuration("OTP_SEND_DELAY", 650*time.Millisecond),
		OTPVerifyDelay:  getDuration("OTP_VERIFY_DELAY", 550*time.Millisecond),
		OTPCooldownSecs: getInt("OTP_COOLDOWN_SECS", 30),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
