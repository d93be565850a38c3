package utils

import (
	"testing"
)

// TestHashAndCheckPassword 测试密码哈希与校验
func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}
	if hash == "secret123" {
		t.Errorf("哈希结果不应等于明文")
	}

	if err := CheckPassword("secret123", hash); err != nil {
		t.Errorf("正确密码校验应通过: %v", err)
	}
	if err := CheckPassword("wrong", hash); err == nil {
		t.Errorf("错误密码校验应失败")
	}
}
