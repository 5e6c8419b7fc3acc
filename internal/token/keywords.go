package token

// Keywords, in lexing priority order. Matched only on a word boundary:
// a keyword immediately followed by an alphanumeric character is part
// of an identifier instead.
var Keywords = []string{
	"driver",
	"fn",
	"namespace",
	"struct",
}

// BuiltinTypes, in lexing priority order.
var BuiltinTypes = []string{
	"u8", "u16", "u32", "u64",
	"i8", "i16", "i32", "i64",
	"f32", "f64",
	"bool", "char", "string", "bytes", "void",
}

// Separators recognised by the lexer.
var Separators = []string{"{", "}", "(", ")", "[", "]", ";", ","}

// Operators recognised by the lexer. Multi-byte operators precede
// single-byte ones so "->" is never split.
var Operators = []string{"->", "<", ">", ":"}
