package rlox

import "testing"

// TestCheck tests that the context checker accepts well-placed break and
// return statements and reports every misplaced one.
func TestCheck(t *testing.T) {
	cases := map[string]struct {
		source string
		diags  string
	}{
		"TopBreak":     {"break;", "[line 1] Error : Break found outside of loop body.\n"},
		"TopReturn":    {"return;", "[line 1] Error : Return found outside of function body.\n"},
		"BlockBreak":   {"{ break; }", "[line 1] Error : Break found outside of loop body.\n"},
		"IfBreak":      {"if (x) break;", "[line 1] Error : Break found outside of loop body.\n"},
		"WhileBreak":   {"while (true) break;", ""},
		"ForBreak":     {"for (;;) break;", ""},
		"DeepBreak":    {"while (true) { if (x) { break; } }", ""},
		"AfterLoop":    {"while (true) x;\nbreak;", "[line 2] Error : Break found outside of loop body.\n"},
		"FunReturn":    {"fun f() { return 1; }", ""},
		"BareReturn":   {"fun f() { return; }", ""},
		"LoopReturn":   {"fun f() { while (true) return 1; }", ""},
		"NestedReturn": {"fun f() { fun g() { return; } return; }", ""},
		"FunBreak":     {"while (true) { fun f() { break; } }", "[line 1] Error : Break found outside of loop body.\n"},
		"EveryError": {
			source: "break;\nreturn;\nif (x) break;",
			diags: "[line 1] Error : Break found outside of loop body.\n" +
				"[line 2] Error : Return found outside of function body.\n" +
				"[line 3] Error : Break found outside of loop body.\n",
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			stmts, rep, diags := parse(t, c.source)
			if rep.HadError() {
				t.Fatalf("%q failed to parse:\n%s", c.source, diags)
			}
			Check(stmts, rep)
			if diags.String() != c.diags {
				t.Errorf("%q produced wrong diagnostics:\nwant %q\nhave %q", c.source, c.diags, diags.String())
			}
			if rep.HadError() != (c.diags != "") {
				t.Errorf("wrong HadError for %q: want %t, have %t", c.source, c.diags != "", rep.HadError())
			}
		})
	}
}
