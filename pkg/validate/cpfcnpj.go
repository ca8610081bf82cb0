package validate

// IsCpfCnpj reports whether s is a valid CPF (11 digits) or CNPJ
// (14 digits), checking the mod-11 verification digits. Punctuation is
// ignored.
func IsCpfCnpj(s string) bool {
	digits := make([]int, 0, 14)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	switch len(digits) {
	case 11:
		return isCpf(digits)
	case 14:
		return isCnpj(digits)
	}
	return false
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func isCpf(digits []int) bool {
	if allEqual(digits) {
		return false
	}
	for _, n := range []int{9, 10} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += digits[i] * (n + 1 - i)
		}
		check := (sum * 10) % 11 % 10
		if check != digits[n] {
			return false
		}
	}
	return true
}

var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

func isCnpj(digits []int) bool {
	if allEqual(digits) {
		return false
	}
	for _, n := range []int{12, 13} {
		weights := cnpjWeights[len(cnpjWeights)-n:]
		sum := 0
		for i := 0; i < n; i++ {
			sum += digits[i] * weights[i]
		}
		check := sum % 11
		if check < 2 {
			check = 0
		} else {
			check = 11 - check
		}
		if check != digits[n] {
			return false
		}
	}
	return true
}
