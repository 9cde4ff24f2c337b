package syntax

import (
	"errors"
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// Expression rendering

func TestUnparseExpr(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		// Every binary operation parenthesizes itself.
		{"a + b", "(a + b)"},
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a && b || c", "((a && b) || c)"},
		{"a < b", "(a < b)"},
		{"a >= b", "(a >= b)"},

		// Source parentheses vanish into tree shape; grouping survives
		// through the self-parenthesization instead.
		{"(a + b) * c", "((a + b) * c)"},
		{"((a))", "a"},

		// == forces one extra layer around its right operand.
		{"a == b", "(a == (b))"},
		{"a == b + c", "(a == ((b + c)))"},
		{"a == b == c", "((a == (b)) == (c))"},

		// != does not.
		{"a != b", "(a != b)"},
		{"a != b + c", "(a != (b + c))"},

		// Unary operators print bare.
		{"-a", "-a"},
		{"!a", "!a"},
		{"-a + b", "(-a + b)"},
		{"!a && !b", "(!a && !b)"},
		{"!!a", "!!a"},

		// A doubled unary minus must not fuse into the -- token.
		{"-(-a)", "-(-a)"},
		{"- - a", "-(-a)"},

		// Locations and calls
		{"a.b.c", "a.b.c"},
		{"f()", "f()"},
		{"f(a, b + c)", "f(a, (b + c))"},
		{"f(g(x))", "f(g(x))"},

		// Assignment as expression
		{"a = b = c", "a = b = c"},

		// An assignment in operand position keeps its parentheses, or
		// the reparse would fold the rest of the expression into its
		// right side.
		{"(a = b) + c", "((a = b) + c)"},
		{"c + (a = b)", "(c + (a = b))"},
		{"(a = b) == c", "((a = b) == (c))"},
		{"c == (a = b)", "(c == (a = b))"},
		{"-(a = b)", "-(a = b)"},
		{"!(a = b)", "!(a = b)"},
		{"(a = b = c) * d", "((a = b = c) * d)"},
		{"f((a = b))", "f(a = b)"},

		// Literals
		{"42", "42"},
		{"true", "true"},
		{"false", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := String(parseRHS(t, tt.src))
			if got != tt.want {
				t.Errorf("unparse:\ngot:  %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestUnparseStringLiteral(t *testing.T) {
	tests := []struct {
		name string
		src  string // the literal as written in source
	}{
		{"plain", `"hello"`},
		{"empty", `""`},
		{"newline", `"line\n"`},
		{"tab", `"a\tb"`},
		{"quote", `"say \"hi\""`},
		{"backslash", `"a\\b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The scanner decodes escapes; the unparser must re-escape
			// them so the output scans back to the same content.
			got := String(parseRHS(t, tt.src))
			if got != tt.src {
				t.Errorf("unparse = %s, want %s", got, tt.src)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Statement and declaration rendering

func TestUnparseProgram(t *testing.T) {
	src := `struct Point {
int x;
int y;
};
int max(int a, int b) {
if (a > b) { return a; } else { return b; }
}
void main() {
struct Point p;
int n;
p.x = 1;
n = 0;
while (n < 10) { cout << n; n++; }
repeat (3) { n--; }
cin >> p.y;
max(p.x, p.y);
return;
}`

	want := `struct Point {
    int x;
    int y;
};
int max(int a, int b) {
    if ((a > b)) {
        return a;
    } else {
        return b;
    }
}
void main() {
    struct Point p;
    int n;
    p.x = 1;
    n = 0;
    while ((n < 10)) {
        cout << n;
        n++;
    }
    repeat (3) {
        n--;
    }
    cin >> p.y;
    max(p.x, p.y);
    return;
}
`

	got := String(parseProgram(t, src))
	if got != want {
		t.Errorf("unparse mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestUnparseNestedBlocks(t *testing.T) {
	src := `void f() { if (a) { if (b) { x = 1; } } }`
	want := `void f() {
    if (a) {
        if (b) {
            x = 1;
        }
    }
}
`
	got := String(parseProgram(t, src))
	if got != want {
		t.Errorf("unparse mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// ----------------------------------------------------------------------------
// Round-trip stability

func TestUnparseRoundTrip(t *testing.T) {
	sources := []string{
		"int x;",
		"struct Point { int x; int y; };",
		"void main() { }",
		"int add(int a, int b) { return a + b; }",
		"void f() { x = a + b * c - d / e; }",
		"void f() { x = (a + b) * c; }",
		"void f() { ok = a == b + c && d != e; }",
		"void f() { x = -(-y); }",
		"void f() { x = -y * !z; }",
		`void f() { cout << "a\nb\t\"c\""; }`,
		"void f() { if (a || b && c) { f(x, y.z); } else { cin >> q.r; } }",
		"void f() { while (i <= n) { i++; } repeat (k) { j--; } }",
		"void f() { a.b.c = d = e; }",
		"void f() { x = (a = b) + c; }",
		"void f() { x = c * (a = b); }",
		"void f() { x = -(a = b); }",
		"void f() { x = (a = b) == c; }",
		"void f() { g((a = b), (c = d) + e); }",
	}

	for _, src := range sources {
		name := src
		if len(name) > 30 {
			name = name[:30]
		}
		t.Run(name, func(t *testing.T) {
			first := String(parseProgram(t, src))

			p := NewParser("reparse.mini", strings.NewReader(first))
			prog, err := p.Parse()
			if err != nil {
				t.Fatalf("output does not re-parse: %v\noutput:\n%s", err, first)
			}

			second := String(prog)
			if second != first {
				t.Errorf("unparse is not a fixpoint:\nfirst:\n%s\nsecond:\n%s", first, second)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Malformed trees

func TestUnparsePlaceholders(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"empty_fn", &FnDecl{}, "<missing type> <missing name>() <missing body>\n"},
		{"fn_no_body", &FnDecl{
			Result: &PrimType{Kind: VoidType},
			Name:   &Name{Value: "f"},
		}, "void f() <missing body>\n"},
		{"read_no_target", &ReadStmt{}, "cin >> <missing exp>;\n"},
		{"write_no_exp", &WriteStmt{}, "cout << <missing exp>;\n"},
		{"assign_no_expr", &AssignStmt{}, "<missing exp>;\n"},
		{"if_no_cond", &IfStmt{Body: &Block{}}, "if (<missing exp>) {\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := String(tt.node)
			if got != tt.want {
				t.Errorf("unparse = %q, want %q", got, tt.want)
			}
		})
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("sink closed") }

func TestFprintWriteError(t *testing.T) {
	prog := parseProgram(t, "int x;")
	if err := Fprint(failWriter{}, prog); err == nil {
		t.Error("Fprint did not propagate the write error")
	}
}

// ----------------------------------------------------------------------------
// Debug dump

func TestFdump(t *testing.T) {
	src := `void main() {
    int x;
    x = 1 + 2;
}`
	prog := parseProgram(t, src)

	var sb strings.Builder
	Fdump(&sb, prog)
	out := sb.String()

	for _, want := range []string{"Program", "FnDecl", "VarDecl", "AssignStmt", "BinaryOp", "BasicLit"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestFprintJSON(t *testing.T) {
	prog := parseProgram(t, "int add(int a, int b) { return a + b; }")

	var sb strings.Builder
	if err := FprintJSON(&sb, prog); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}
	out := sb.String()

	for _, want := range []string{`"type": "Program"`, `"type": "FnDecl"`, `"type": "ReturnStmt"`, `"op": "+"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON missing %q:\n%s", want, out)
		}
	}
}
