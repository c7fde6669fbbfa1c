// Package lua runs the optional selection hook script.
//
// A hook script is a Lua file that may define a global function
//
//	function on_select_slot(slot)
//	    return string.format("%s: %d day(s)", slot.action, slot["end"] - slot.start + 1)
//	end
//
// The slot table carries start, end (cell indices), action ("click" or
// "select"), and first/last (the dates of the first and last cell). A
// string result replaces the host's status message; nil keeps the default.
//
// Scripts run in a restricted state: only the base, table, string and math
// libraries are opened, file loading functions are removed, and print is
// redirected to the host's logger. Each call is bounded by a timeout.
package lua
