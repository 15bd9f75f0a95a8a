package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"openai": map[string]any{
			"apiKey": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "OPENAI_APIKEY", want: "openai.apiKey"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Admin.Username != "admin" || cfg.Admin.Password != "admin123" {
		t.Fatalf("unexpected admin defaults: %q / %q", cfg.Admin.Username, cfg.Admin.Password)
	}
	if cfg.HTTP.MaxRequestBodySize != "100KB" {
		t.Fatalf("unexpected body size default: %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.OpenAI.Timeout <= 0 || cfg.OpenAI.MaxTokens <= 0 || cfg.OpenAI.Model == "" {
		t.Fatalf("openai defaults not applied: %+v", cfg.OpenAI)
	}
	if cfg.Analytics.DefaultQueryLimit <= 0 || cfg.Analytics.MaxQueryLimit < cfg.Analytics.DefaultQueryLimit {
		t.Fatalf("analytics defaults not applied: %+v", cfg.Analytics)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{}
	cfg.Admin.Username = "operator"
	cfg.Admin.Password = "s3cret"
	cfg.ApplyDefaults()

	if cfg.Admin.Username != "operator" || cfg.Admin.Password != "s3cret" {
		t.Fatalf("configured credentials were overwritten: %+v", cfg.Admin)
	}
}
