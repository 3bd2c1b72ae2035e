/*
Package arith compiles and evaluates arithmetic expressions.

Grammar

	program --> expr* ;
	expr    --> term ( ( "+" | "-" ) term )* ;
	term    --> value ( ( "*" | "/" | "%" ) value )* ;
	value   --> factor ( "**" factor )* ;
	factor  --> ( "+" | "-" ) factor
	          | INTEGER | FLOAT | "NaN" | "Infinity" | "PI" | "E"
	          | "(" expr ")"
	          | EOF ;

Every binary level folds to the left, "**" included, so "2 ** 3 ** 2" is
"(2 ** 3) ** 2". Statements are not separated by anything: "1 2" holds the two
statements "1" and "2".

Tokens

	INTEGER  --> DIGIT+ ;
	FLOAT    --> DIGIT+ "." DIGIT* ;

A number may not start with a dot, nor hold two of them. Spaces and tabs
between tokens are ignored.

Compiling a source scans and parses all of it at once, so lexical and syntax
errors surface before anything is evaluated.
*/
package arith

//go:generate go run ../cmd/ast_codegen .
