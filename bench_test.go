package jscan_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"testing"

	"github.com/creachadair/jscan"
)

func BenchmarkScanner(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s, err := jscan.New(input)
			if err != nil {
				b.Fatalf("New failed: %v", err)
			}
			for {
				err := s.Next()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}

				// The standard library Decoder converts tokens to values.
				// For a fair comparison, do the same for strings and numbers.
				switch s.Kind() {
				case jscan.String, jscan.FieldName:
					jscan.Unescape(s.Text())
				case jscan.Number:
					strconv.ParseFloat(string(s.Text()), 64)
				}
			}
		}
	})
}
