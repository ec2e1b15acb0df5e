package app

import (
	"testing"
	"time"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	cfg := TokenConfig{
		SecretKey: "user-secret",
		Expiry:    1 * time.Hour,
		Issuer:    "test-issuer",
	}
	tm := NewTokenManager(cfg)

	// 测试数据
	uid := "6f1b0f40-1111-4222-8333-9aaabbbbcccc"
	username := "mluukkai"

	// 1. 测试生成和解析
	token, err := tm.Generate(uid, username)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if claims.UID != uid {
		t.Errorf("Expected UID %s, got %s", uid, claims.UID)
	}
	if claims.Username != username {
		t.Errorf("Expected Username %s, got %s", username, claims.Username)
	}

	// 验证 ExpiresAt (由于只存了秒级 Unix 戳，允许 1 秒内的误差)
	expectedExp := time.Now().Add(cfg.Expiry)
	if claims.ExpiresAt.Unix() < expectedExp.Unix()-1 || claims.ExpiresAt.Unix() > expectedExp.Unix()+1 {
		t.Errorf("Expected ExpiresAt around %v, got %v", expectedExp, claims.ExpiresAt)
	}

	// 2. 测试错误的密钥
	wrongKeyCfg := cfg
	wrongKeyCfg.SecretKey = "wrong-secret"
	tmWrongKey := NewTokenManager(wrongKeyCfg)

	wrongToken, _ := tmWrongKey.Generate(uid, username)
	if _, err := tm.Parse(wrongToken); err == nil {
		t.Error("Expected error when parsing token with wrong secret key, but got nil")
	}

	// 3. 测试篡改后的 Token
	if _, err := tm.Parse(token + "tampered"); err == nil {
		t.Error("Expected error when parsing tampered token, but got nil")
	}

	// 4. 测试 Validate
	if err := tm.Validate(token); err != nil {
		t.Errorf("Validate failed for valid token: %v", err)
	}
	if err := tm.Validate("not-a-jwt"); err == nil {
		t.Error("Expected error when validating malformed token, but got nil")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "user-secret",
		Expiry:    -1 * time.Minute,
	})

	token, err := tm.Generate("uid-1", "root")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := tm.Parse(token); err == nil {
		t.Error("Expected error when parsing expired token, but got nil")
	}
}
