package keyid

import (
	"testing"
)

var benchInputs = map[string]string{
	"uuid":    "0828398c-5965-11e0-84c8-0026b937c8e1",
	"base64":  "++++VpWW999gvYaw",
	"goog128": "CAESEAYra3NIxLT9C8twKrzqaA",
	"bigdec":  "7394206091425759590",
	"short":   "hello",
	"text":    "helloiamaverylongstring",
}

var sinkID Identifier
var sinkStr string
var sinkU64 uint64

func BenchmarkParse(b *testing.B) {
	for name, in := range benchInputs {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(in)))
			for i := 0; i < b.N; i++ {
				sinkID = Parse(in)
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	for name, in := range benchInputs {
		id := Parse(in)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkStr = id.String()
			}
		})
	}
}

func BenchmarkHash(b *testing.B) {
	for name, in := range benchInputs {
		id := Parse(in)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkU64 = id.Hash()
			}
		})
	}
}

func BenchmarkCombine(b *testing.B) {
	x := Parse("hello")
	y := Parse("world")
	for i := 0; i < b.N; i++ {
		sinkID = Combine(x, y)
	}
}
