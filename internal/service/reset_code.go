// File: internal/service/reset_code.go
package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

var randInt = rand.Int

// GenerateResetCode 產生 100000–999999 的六位數重設密碼驗證碼
func GenerateResetCode() (string, error) {
	n, err := randInt(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
