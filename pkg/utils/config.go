package utils

import (
	"os"
	"strconv"
	"time"
)

type SiteConfig struct {
	BaseOrigin string // absolute origin relative cover paths resolve against
	ShellPath  string // SPA shell document served to every page request
	Addr       string
}

func LoadSiteConfig() SiteConfig {
	origin := os.Getenv("SERIPREVIEW_BASE_ORIGIN")
	if origin == "" {
		origin = "https://serioku.net"
	}

	shell := os.Getenv("SERIPREVIEW_SHELL_PATH")
	if shell == "" {
		shell = "web/index.html"
	}

	addr := os.Getenv("SERIPREVIEW_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return SiteConfig{
		BaseOrigin: origin,
		ShellPath:  shell,
		Addr:       addr,
	}
}

type AdminConfig struct {
	PasswordHash string // bcrypt hash of the admin password
	JWTSecret    string
	JWTIssuer    string
	JWTDuration  time.Duration
}

func LoadAdminConfig() AdminConfig {
	secret := os.Getenv("SERIPREVIEW_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("SERIPREVIEW_JWT_ISSUER")
	if issuer == "" {
		issuer = "seripreview"
	}

	// bcrypt hash of "password" unless overridden
	hash := os.Getenv("SERIPREVIEW_ADMIN_HASH")
	if hash == "" {
		hash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	}

	ttl := 24 * time.Hour
	if s := os.Getenv("SERIPREVIEW_JWT_TTL_HOURS"); s != "" {
		if h, err := strconv.Atoi(s); err == nil && h > 0 {
			ttl = time.Duration(h) * time.Hour
		}
	}

	return AdminConfig{
		PasswordHash: hash,
		JWTSecret:    secret,
		JWTIssuer:    issuer,
		JWTDuration:  ttl,
	}
}
