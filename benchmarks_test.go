package bitmix

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

// genPayload builds a JSON document with n array elements, each a small
// object, wide enough to exercise string, number and nesting codecs in one
// buffer. Each element is about 85 bytes, and the root array's payload must
// stay within the 2048-byte container limit, so n is at most 24.
func genPayload(n int) []byte {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"id": `)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`, "name": "item-`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`", "active": `)
		if i%2 == 0 {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
		b.WriteString(`, "score": `)
		b.WriteString(strconv.FormatFloat(float64(i)*1.5, 'f', -1, 64))
		b.WriteString(`, "tags": ["a", "b", "c"]}`)
	}
	b.WriteByte(']')
	return []byte(b.String())
}

func benchmarkParse(b *testing.B, n int) {
	msg := genPayload(n)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	buf := make([]byte, len(msg))
	for i := 0; i < b.N; i++ {
		copy(buf, msg)
		if _, err := Parse(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseSmall(b *testing.B)  { benchmarkParse(b, 10) }
func BenchmarkParseMedium(b *testing.B) { benchmarkParse(b, 20) }
func BenchmarkParseLarge(b *testing.B)  { benchmarkParse(b, 24) }

func benchmarkSonic(b *testing.B, n int) {
	msg := genPayload(n)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := sonic.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSonicSmall(b *testing.B)  { benchmarkSonic(b, 10) }
func BenchmarkSonicMedium(b *testing.B) { benchmarkSonic(b, 20) }
func BenchmarkSonicLarge(b *testing.B)  { benchmarkSonic(b, 24) }

func benchmarkJsoniter(b *testing.B, n int) {
	msg := genPayload(n)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	var cfg = jsoniter.ConfigCompatibleWithStandardLibrary
	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := cfg.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJsoniterSmall(b *testing.B)  { benchmarkJsoniter(b, 10) }
func BenchmarkJsoniterMedium(b *testing.B) { benchmarkJsoniter(b, 20) }
func BenchmarkJsoniterLarge(b *testing.B)  { benchmarkJsoniter(b, 24) }

func benchmarkEncodingJSON(b *testing.B, n int) {
	msg := genPayload(n)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodingJSONSmall(b *testing.B)  { benchmarkEncodingJSON(b, 10) }
func BenchmarkEncodingJSONMedium(b *testing.B) { benchmarkEncodingJSON(b, 20) }
func BenchmarkEncodingJSONLarge(b *testing.B)  { benchmarkEncodingJSON(b, 24) }
