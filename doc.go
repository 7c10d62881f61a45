/* Package main: YAFI -- Yet Another Forth Interpreter

YAFI is a small interpreter for a subset of Forth-79 over signed 32-bit cells.
There is no compiler: no colon definitions, no control flow, no variables.
Every word read from input is looked up and executed at once, and anything that
is not a word but reads as a decimal number is pushed onto the stack.

The machine has a data stack, a return stack, and a main memory of cells. Main
memory may also be read and written a byte at a time; the byte view overlays
the same storage as the cell view, in the host's byte order, so that cell N
covers bytes 4N through 4N+3.

Words are kept in a fixed dictionary, each tagged with the operands it needs:
the console, the data stack, the return stack, or a view of memory. The
interpreter hands a word only those operands, so for example a stack shuffling
word cannot touch memory, and no word can reach into the interpreter itself.

Errors come in two kinds. An unknown word is reported on the output stream as
"Unknown word: NAME" and skipped; interpretation goes on with the next token.
Anything else a word cannot do (stack underflow or overflow, an address
outside memory, division by zero, an invalid character code or count) halts
the machine with an error naming the word and the input line, like:

	prog.fs:2: DROP: data stack underflow

EXIT also halts the machine, but normally.

Input comes from any number of files, then standard input, read one line at a
time. Unless run quietly, the interpreter prints a banner, a prompt before
each line, and the data stack after each line:

	> 1 2 +

	Stack: 3

The vocabulary:

	arithmetic   + - * / MOD /MOD NEGATE ABS MIN MAX 1+ 1- 2+ 2-
	double cells D+ DNEGATE
	comparison   < = > 0< 0= 0> NOT
	logic        AND OR XOR
	stack        DUP DROP SWAP OVER ROT PICK ROLL DEPTH
	return stack >R R> R@
	memory       @ ! ? C@ C! MOVE CMOVE FILL COUNT
	output       . EMIT CR SPACE SPACES TYPE
	control      EXIT

Configuration may be given in a TOML file with -config; see Config. A machine
that halts on an error may leave a core file behind with -core, which -inspect
prints back out.
*/
package main
