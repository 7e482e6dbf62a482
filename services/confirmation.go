package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

const confirmationSuffixChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateConfirmationCode sinh mã xác nhận cho booking, dạng
// HS + 8 số cuối của timestamp + 4 ký tự ngẫu nhiên.
// Việc sinh mã là bước tường minh trong engine, không phải hook của storage;
// caller kiểm tra trùng trong DB và gọi lại nếu cần.
func GenerateConfirmationCode() (string, error) {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}

	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(confirmationSuffixChars))))
		if err != nil {
			return "", fmt.Errorf("không thể sinh mã xác nhận: %v", err)
		}
		suffix[i] = confirmationSuffixChars[n.Int64()]
	}

	return "HS" + ts + string(suffix), nil
}
