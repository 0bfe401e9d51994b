package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{
			"access":  "",
			"refresh": "",
		},
		"sqlite": map[string]any{
			"path": "users.db",
		},
		"auth": map[string]any{
			"bcryptCost":   10,
			"cookieSecure": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SECRETKEY_REFRESH", want: "secretKey.refresh"},
		{envKey: "SQLITE_PATH", want: "sqlite.path"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
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
