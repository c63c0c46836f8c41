package signatures

import (
	"strings"
	"testing"
)

func TestGenericSecretAssignment(t *testing.T) {
	m, ok := sigGenericSecret.Match(`password = "s3cr3t-Va1ue-9881"`)
	if !ok || m != "s3cr3t-Va1ue-9881" {
		t.Fatalf("expected value match, got %q ok=%v", m, ok)
	}
}

func TestGenericSecretSuppressesPlaceholders(t *testing.T) {
	lines := []string{
		`password = "changeme"`,
		`secret: <your-key>`,
		`token = "${API_TOKEN}"`,
		`passwd = {{ vault_password }}`,
		`password = "` + strings.Repeat("x", 39) + `"`,
		`pwd = "short"`,
	}
	for _, l := range lines {
		if m, ok := sigGenericSecret.Match(l); ok {
			t.Fatalf("%q should be suppressed, matched %q", l, m)
		}
	}
}

func TestGenericAPIKey(t *testing.T) {
	m, ok := sigGenericAPIKey.Match("api_key=Zq81jdLpWn4xT7cVbK2msQ")
	if !ok || m != "Zq81jdLpWn4xT7cVbK2msQ" {
		t.Fatalf("expected api key value, got %q ok=%v", m, ok)
	}
	if _, ok := sigGenericAPIKey.Match("api_key=tooshort"); ok {
		t.Fatalf("short value should not match")
	}
}

func TestAzureKey(t *testing.T) {
	m, ok := sigAzureKey.Match("AZURE_STORAGE_KEY: dGhpcyBpcyBub3QgYSByZWFsIGtleQ==")
	if !ok || m == "" {
		t.Fatalf("expected azure key match")
	}
}

func TestPlausibleValue(t *testing.T) {
	if plausibleValue("aaaaaaaaaaaa") {
		t.Fatalf("repeated run accepted")
	}
	if plausibleValue("Placeholder") {
		t.Fatalf("placeholder literal accepted")
	}
	if !plausibleValue("u8AbCd31kQz7RgT2") {
		t.Fatalf("random-looking value rejected")
	}
}
