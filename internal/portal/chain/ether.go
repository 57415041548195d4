package chain

import (
	"errors"
	"math/big"
	"strings"
)

var ErrInvalidAmount = errors.New("chain: invalid ether amount")

const weiDecimals = 18

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(weiDecimals), nil)

// ParseEther converts a positive decimal ether string such as "0.05" to wei.
// More than 18 fractional digits, signs, exponents and zero are rejected.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, ErrInvalidAmount
	}
	if len(frac) > weiDecimals || !digits(whole) || !digits(frac) {
		return nil, ErrInvalidAmount
	}

	wei := new(big.Int)
	if whole != "" {
		wei.SetString(whole, 10)
		wei.Mul(wei, weiPerEther)
	}
	if frac != "" {
		f, _ := new(big.Int).SetString(frac+strings.Repeat("0", weiDecimals-len(frac)), 10)
		wei.Add(wei, f)
	}
	if wei.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	return wei, nil
}

// FormatEther renders wei as a decimal ether string without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	neg := wei.Sign() < 0
	abs := new(big.Int).Abs(wei)
	q, r := new(big.Int).QuoRem(abs, weiPerEther, new(big.Int))

	out := q.String()
	if r.Sign() != 0 {
		frac := r.String()
		frac = strings.Repeat("0", weiDecimals-len(frac)) + frac
		out += "." + strings.TrimRight(frac, "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

func digits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
