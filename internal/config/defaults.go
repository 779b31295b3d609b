package config

import (
	"time"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "app.db")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 24*time.Hour)
	v.SetDefault("jwt.cookie_name", "fitness-jwt")
	v.SetDefault("jwt.cookie_secure", false)

	v.SetDefault("frontend.url", "http://localhost:5173/")

	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:5173",
		"https://wellstride-fitness-tracker.vercel.app",
		"https://wellstride-fitness-tracker.onrender.com",
	})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-Requested-With", "X-XSRF-TOKEN", "Accept"})
	v.SetDefault("cors.exposed_headers", []string{"Authorization", "X-XSRF-TOKEN"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", time.Hour)

	v.SetDefault("oauth2.google.client_id", "")
	v.SetDefault("oauth2.google.client_secret", "")
	v.SetDefault("oauth2.google.redirect_url", "http://localhost:8080/login/oauth2/code/google")
	v.SetDefault("oauth2.google.scopes", []string{"openid", "email", "profile"})
	v.SetDefault("oauth2.state_ttl", 10*time.Minute)
	v.SetDefault("oauth2.purge_schedule", "@every 5m")

	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "WellStride <no-reply@wellstride.app>")
	v.SetDefault("smtp.timeout", 10*time.Second)

	v.SetDefault("static.dir", "")

	v.SetDefault("seed.users", []map[string]any{
		{"username": "user1", "email": "user1@example.com", "password": "password1", "role": "ROLE_USER"},
		{"username": "admin", "email": "admin@example.com", "password": "adminPass", "role": "ROLE_ADMIN"},
	})
}
