package blend

import "testing"

func BenchmarkMulDiv255(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = mulDiv255(byte(i), byte(i>>8))
	}
}
