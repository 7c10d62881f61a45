package main

func opCR(con console)    { con.writeByte('\n') }
func opSpace(con console) { con.writeByte(' ') }
func opExit(con console)  { con.exit() }

func opEmit(con console, ds cellStack) { con.writeByte(checkChar(con, ds.pop())) }

func opSpaces(con console, ds cellStack) {
	n := ds.pop()
	if n < 0 {
		con.haltFunc(countError(n))
	}
	con.spaces(int(n))
}

func opPrint(con console, ds cellStack) { con.printf("%d\n", ds.pop()) }

// checkChar halts unless val is a character code 0 through 255.
func checkChar(con console, val int32) byte {
	if val < 0 || val > 255 {
		con.haltFunc(charError(val))
	}
	return byte(val)
}
