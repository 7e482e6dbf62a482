package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCode(t *testing.T) {
	code, err := GenerateConfirmationCode()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "HS"))
	assert.Len(t, code, 14)

	// 4 ký tự cuối chỉ dùng bảng chữ đã loại ký tự dễ nhầm (0, O, 1, I)
	for _, ch := range code[10:] {
		assert.Contains(t, confirmationSuffixChars, string(ch))
	}
}

func TestGenerateConfirmationCode_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateConfirmationCode()
		require.NoError(t, err)
		seen[code] = true
	}
	// Cùng một mili giây vẫn có 4 ký tự ngẫu nhiên, trùng toàn bộ 50 mã là bất thường
	assert.Greater(t, len(seen), 1)
}
