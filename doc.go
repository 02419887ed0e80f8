// Copyright 2025 Jonathan Amsterdam.

/*
Package argspec parses command-line arguments from a compact,
declarative specification. The specification is a sequence of
alternating declaration strings and default values:

	res, err := argspec.Parse([]interface{}{
		"-nodisk", false,
		"-workers|-w=num", 0,
		"-out=filepath", nil,
	}, os.Args[1:])

Parsing yields a Result: one shared slot per declared option, holding
the coerced value and a presence flag, plus the positional tokens in
Unnamed in order of appearance.

# Declarations

A declaration string has the form

	name[|synonym][=type[=value,value,...]]

The name (and optional synonym) includes the leading "-". A
declaration without "=type" declares a flag. The types are:

	flag      boolean; true when the option appears, value part ignored
	num       base-10 integer; "," and "_" may separate digits
	str       string, used as-is
	[str]     strings, split on ";"
	yesno     boolean; y, yes, 1, n, no, 0 (any case)
	dir       existing directory, stored as an absolute path
	file      existing regular file, stored as an absolute path
	filepath  file path whose directory must exist, stored absolute
	[dir]     directories, split on ";", each validated as dir
	[file]    files, split on ";", each validated as file
	list      one of the declared allowed values

Option names match case-insensitively; declared casing is preserved in
the Result keys. A synonym aliases the same slot as its primary name,
so -w above sets the value read under both "w" and "workers".

# Tokens

Tokens are scanned left to right in a single pass. A token that does
not start with "-" is a positional and goes to Unnamed verbatim. An
option token is split at its first "=", so "-name=a=b" carries the raw
value "a=b". A non-flag option without a value part is an error, as is
an undeclared option name. The first bad token stops the scan and no
result is returned. If the same option appears more than once, the
last occurrence wins. Values keep their casing; only yesno parsing and
list membership compare case-insensitively.

# Failure modes

Parse and Run report errors as values: compilation failures are
*SpecError, scanning failures are *ParseError with an ErrorKind. Main
instead prints the failure to standard output and exits with status 1.
The disposition is always chosen by the caller through the entry point
or the Run mode parameter; the package keeps no global state, so
parsing can be tested by passing literal token slices to Parse.

# Completion

Shell completion for common shells is supported with the
github.com/posener/complete/v2 package. Programs that call Main answer
completion requests automatically; to install completion for a
program, run it with the COMP_INSTALL environment variable set to 1.
List options complete their allowed values, and path-typed options
complete file or directory names.
*/
package argspec
