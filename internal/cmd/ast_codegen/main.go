package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// we do it the scripting way, instead of having types support from Go stdlib
var expressionTypes = []string{
	"Binary: Op *token.Token, Left Expr, Right Expr",
	"Literal: Value *token.Token",
	"Unary: Op *token.Token, Operand Expr",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	if err := defineAst(outputDir, "Expr", expressionTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defineAst(outputDir string, baseName string, types []string) error {
	dir, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	writeAst(&buf, filepath.Base(dir), baseName, types)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated %s: %w", baseName, err)
	}

	fpath := filepath.Join(
		dir,
		fmt.Sprintf("%s.go", strings.ToLower(baseName)),
	)
	return os.WriteFile(fpath, src, 0644)
}

func writeAst(writer io.Writer, packageName string, baseName string, types []string) {
	fmt.Fprintf(writer, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(writer, "package %s\n\n", packageName)
	fmt.Fprintf(writer, "import \"github.com/ltungv/calc/internal/token\"\n\n")

	// Interface for Expr in AST, sealed by the unexported isNil method
	fmt.Fprintf(writer, "type %s interface {\n", baseName)
	fmt.Fprintf(writer, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(writer, "\tString() string\n")
	fmt.Fprintf(writer, "\tisNil() bool\n")
	fmt.Fprintf(writer, "}\n\n")

	defineVisitor(writer, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(writer, baseName, typeName, fields)
	}
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
	}

	// Struct definition
	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	var params []string
	var fieldNames []string
	for _, f := range fields {
		parts := strings.SplitN(f, " ", 2)
		param := strings.ToLower(parts[0][:1]) + parts[0][1:]
		params = append(params, param+" "+parts[1])
		fieldNames = append(fieldNames, param)
	}
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(params, ", "),
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Sealing method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) isNil() bool {\n\treturn %s == nil\n}\n\n",
		strings.ToLower(baseName),
		typeName, baseName,
		strings.ToLower(baseName),
	)
}
