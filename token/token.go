package token

// Kind identifies the lexical class of a token. Two tokens of the same kind
// match for grammar purposes regardless of any carried value.
type Kind int

const (
	INVALID Kind = iota

	EOF
	ID
	INT
	FLOAT
	CHAR
	STRING

	PLUS              // +
	MINUS             // -
	MULTIPLY          // *
	DIVIDE            // /
	MOD               // %
	AND               // &
	OR                // |
	XOR               // ^
	SHIFT_LEFT        // <<
	SHIFT_RIGHT       // >>
	EQUAL             // =
	EQUAL_EQUAL       // ==
	NOT_EQUAL         // !=
	LESS              // <
	LESS_EQUAL        // <=
	GREATER           // >
	GREATER_EQUAL     // >=
	AND_AND           // &&
	OR_OR             // ||
	PLUS_PLUS         // ++
	MINUS_MINUS       // --
	PLUS_EQUAL        // +=
	MINUS_EQUAL       // -=
	MULTIPLY_EQUAL    // *=
	DIVIDE_EQUAL      // /=
	MOD_EQUAL         // %=
	AND_EQUAL         // &=
	OR_EQUAL          // |=
	XOR_EQUAL         // ^=
	SHIFT_LEFT_EQUAL  // <<=
	SHIFT_RIGHT_EQUAL // >>=
	ARROW             // ->

	OPEN_PAREN  // (
	CLOSE_PAREN // )
	OPEN_CURLY  // {
	CLOSE_CURLY // }
	COMMA       // ,
	SEMICOLON   // ;
)

var kindNames = map[Kind]string{
	INVALID:           "INVALID",
	EOF:               "EOF",
	ID:                "ID",
	INT:               "INT",
	FLOAT:             "FLOAT",
	CHAR:              "CHAR",
	STRING:            "STRING",
	PLUS:              "PLUS",
	MINUS:             "MINUS",
	MULTIPLY:          "MULTIPLY",
	DIVIDE:            "DIVIDE",
	MOD:               "MOD",
	AND:               "AND",
	OR:                "OR",
	XOR:               "XOR",
	SHIFT_LEFT:        "SHIFT_LEFT",
	SHIFT_RIGHT:       "SHIFT_RIGHT",
	EQUAL:             "EQUAL",
	EQUAL_EQUAL:       "EQUAL_EQUAL",
	NOT_EQUAL:         "NOT_EQUAL",
	LESS:              "LESS",
	LESS_EQUAL:        "LESS_EQUAL",
	GREATER:           "GREATER",
	GREATER_EQUAL:     "GREATER_EQUAL",
	AND_AND:           "AND_AND",
	OR_OR:             "OR_OR",
	PLUS_PLUS:         "PLUS_PLUS",
	MINUS_MINUS:       "MINUS_MINUS",
	PLUS_EQUAL:        "PLUS_EQUAL",
	MINUS_EQUAL:       "MINUS_EQUAL",
	MULTIPLY_EQUAL:    "MULTIPLY_EQUAL",
	DIVIDE_EQUAL:      "DIVIDE_EQUAL",
	MOD_EQUAL:         "MOD_EQUAL",
	AND_EQUAL:         "AND_EQUAL",
	OR_EQUAL:          "OR_EQUAL",
	XOR_EQUAL:         "XOR_EQUAL",
	SHIFT_LEFT_EQUAL:  "SHIFT_LEFT_EQUAL",
	SHIFT_RIGHT_EQUAL: "SHIFT_RIGHT_EQUAL",
	ARROW:             "ARROW",
	OPEN_PAREN:        "OPEN_PAREN",
	CLOSE_PAREN:       "CLOSE_PAREN",
	OPEN_CURLY:        "OPEN_CURLY",
	CLOSE_CURLY:       "CLOSE_CURLY",
	COMMA:             "COMMA",
	SEMICOLON:         "SEMICOLON",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "INVALID"
}

// Token is a single lexical unit. Literal is the matched source text. The
// value fields are populated only for the kind they correspond to: IntValue
// for INT, StringValue for STRING, and CharValue for CHAR.
type Token struct {
	Kind        Kind
	Literal     string
	IntValue    int32
	StringValue string
	CharValue   rune
}

// Is reports whether the token has the given kind, ignoring any carried
// value. This is the comparison grammar matching uses.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}
