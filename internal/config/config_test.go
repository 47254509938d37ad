package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("S3_BUCKET", "")

	cfg := Load()
	if cfg.Port != "8081" {
		t.Errorf("Port: got %q, want 8081", cfg.Port)
	}
	if cfg.Timezone != "Europe/Vilnius" {
		t.Errorf("Timezone: got %q", cfg.Timezone)
	}
	if cfg.RabbitMQ.Exchange != "menu.events" {
		t.Errorf("Exchange: got %q", cfg.RabbitMQ.Exchange)
	}
	if cfg.S3.Enabled() {
		t.Error("S3 should be disabled without a bucket")
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://a.test, https://b.test,,")

	cfg := Load()
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.test" {
		t.Errorf("CORSOrigins: got %v", cfg.CORSOrigins)
	}
}

func TestS3ConfigEnabled(t *testing.T) {
	c := S3Config{Bucket: "menu", AccessKey: "k", SecretKey: "s"}
	if !c.Enabled() {
		t.Error("expected enabled")
	}
	c.SecretKey = ""
	if c.Enabled() {
		t.Error("expected disabled without secret")
	}
}
