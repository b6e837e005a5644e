package assign_test

import (
	"testing"

	"github.com/katalvlaran/opsearch/assign"
	"github.com/katalvlaran/opsearch/operator"
)

// BenchmarkGenerate_Extended10 materializes 3^10 assignments.
func BenchmarkGenerate_Extended10(b *testing.B) {
	alpha := operator.Extended()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := assign.Generate(10, alpha); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkIterator_Extended10 walks 3^10 assignments lazily.
func BenchmarkIterator_Extended10(b *testing.B) {
	it, err := assign.NewIterator(10, operator.Extended())
	if err != nil {
		b.Fatalf("NewIterator failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it.Reset()
		for it.Next() {
		}
	}
}
