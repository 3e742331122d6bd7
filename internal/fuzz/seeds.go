package fuzztests

import "testing"

const (
	maxFuzzInput = 1 << 16 // 64 KiB
)

var seedModels = []string{
	"",
	"domain Shop is { ??? }",
	"domain Shop is {\n  type Sku is String\n  type Sku is UUID\n  context cart is { ??? }\n}",
	"domain A is {\n  context B is { type Id2 is String }\n  context C is { type Id2 is String }\n}",
	"// comment\r\ndomain X is {\r\n  author Ann is { name is \"Ann\" }\r\n}\r\n",
	"/* unterminated",
	"type Name is \"unterminated\n",
	"domain 𝔸lpha is { type Ünï is String }",
	"entity Basket is { state Items of Sku\n  handler H is { ??? } }",
	"domain A is { type B is Id(C] }",
	"|markdown line\n| another\n",
	"a->b => c ??? 42 @ #",
}

func addSeeds(f *testing.F) {
	for _, s := range seedModels {
		f.Add([]byte(s))
	}
}

func clampInput(input []byte) string {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return string(input)
}
