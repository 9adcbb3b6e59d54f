/*
Package rlox implements an interpreter for rlox, a small dynamically typed
scripting language.

rlox has C-style syntax, lexical scoping, and first-class functions. Values
are numbers (64-bit floating point), strings, booleans, nil, and functions.
Programs are sequences of statements; the interpreter scans, parses, and
checks a whole program before executing any of it, so a program with a
syntax error or a misplaced break never runs at all and every such error is
reported at once.

The interpreter embeds in another program with New, which creates an
interpreter with its builtin functions defined, and Run, which executes
source text. Output from print statements and diagnostics go to writers
configured with the WithOutput and WithErrorOutput options. An interpreter
keeps its global environment between calls to Run, so a driver can feed it a
line at a time and definitions persist; this is how the REPL works. Run
returns ErrStatic when the program was rejected before execution, and the
runtime error itself when execution failed.

Language Primer

Hello World in rlox:

	print "Hello, world!";

Every statement ends with a semicolon. The print statement evaluates its
expression and writes the value's display form followed by a newline.

Variables are declared with var and assigned with =:

	var x = 1;
	x = x + 1;
	print x; // 2

A declaration without an initializer creates the variable in an
uninitialized state. Assigning to it works; reading it before any
assignment is a runtime error, which is distinct from holding nil:

	var y;
	y = 3;  // fine
	var z;
	print z; // error: Uninitialized variable

Blocks introduce scopes. A declaration inside a block shadows one outside
it, and assignment always affects the nearest declaration:

	var a = "outer";
	{
		var a = "inner";
		print a; // inner
	}
	print a; // outer

Expressions include arithmetic (+ - * /), comparison (< <= > >=), equality
(== !=), logical and/or, the conditional operator ?:, and comma sequencing.
Logical operators short-circuit and yield one of their operand values
rather than a boolean made from it. In conditions, nil and false are false
and every other value is true. The + operator adds two numbers; if either
operand is not a number, both convert to their display forms and
concatenate:

	print 1 + 2;       // 3
	print "n = " + 17; // n = 17

Equality never coerces: values of different types are simply unequal.
Dividing by zero is a runtime error rather than an infinity.

Control flow uses if, while, and for, with break to leave the nearest
enclosing loop:

	for (var i = 0; i < 10; i = i + 1) {
		if (i == 3) break;
		print i;
	}

A for loop is syntactic sugar; the parser rewrites it into a block holding
the initializer and a while loop, so the evaluator only ever sees while.

Functions are declared with fun and return values with return. A function
that falls off its end returns nil. Functions close over the environment
where their declaration executed:

	fun makeCounter() {
		var n = 0;
		fun count() {
			n = n + 1;
			return n;
		}
		return count;
	}
	var c = makeCounter();
	print c(); // 1
	print c(); // 2

Two functions are built in: clock() returns the seconds elapsed since the
interpreter started, and date(format) formats the current time per a
strftime format string.

Errors before execution are reported one per line in the form

	[line 4] Error x: Expected ';' after expression.

where the text between Error and the colon is the offending lexeme, or "at
end" when input ended too soon. Runtime errors name the failing operation
and its line:

	Error: Division by zero, at: '/' on line 7
*/
package rlox
