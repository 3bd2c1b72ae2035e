package calc_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltungv/calc"
)

func ExampleEval() {
	v, ok, err := calc.Eval("(4 - 2)**(1 * 2)")
	fmt.Println(v, ok, err)
	// Output: 4 true <nil>
}

func ExampleEval_empty() {
	_, ok, err := calc.Eval("   ")
	fmt.Println(ok, err)
	// Output: false <nil>
}

func ExampleCompile() {
	e, err := calc.Compile("1 + 2 * 3   2 ** 3 ** 2")
	if err != nil {
		fmt.Println(err)
		return
	}
	for stmt, ok := e.Next(); ok; stmt, ok = e.Next() {
		fmt.Println(stmt)
	}
	values, _ := e.RunAll()
	fmt.Println(values)
	// Output:
	// (+ 1 (* 2 3))
	// (** (** 2 3) 2)
	// [7 64]
}

func ExampleCompile_error() {
	_, err := calc.Compile("(1 + 2")
	fmt.Println(err)
	// Output: [offset 6] Error at end: Expect ')' but found 'EOF'.
}

func ExampleStringify() {
	v, _, _ := calc.Eval("-1 / 0")
	fmt.Println(calc.Stringify(v))
	// Output: -Infinity
}

func TestEvalScenarios(t *testing.T) {
	assert := assert.New(t)

	_, ok, err := calc.Eval("")
	assert.NoError(err)
	assert.False(ok)

	v, ok, err := calc.Eval("1 + 2")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(3.0, v)

	v, _, err = calc.Eval("5 % 3")
	assert.NoError(err)
	assert.Equal(2.0, v)

	v, _, err = calc.Eval("NaN")
	assert.NoError(err)
	assert.True(math.IsNaN(v))

	v, _, err = calc.Eval("PI * E")
	assert.NoError(err)
	assert.InDelta(8.539734, v, 1e-6)
}

func TestEvalErrors(t *testing.T) {
	_, ok, err := calc.Eval("1 +")
	assert.False(t, ok)
	var parseErr *calc.ParseError
	if assert.True(t, errors.As(err, &parseErr)) {
		assert.Equal(t, 2, parseErr.Pos())
	}

	_, _, err = calc.Eval("2 ^ 3")
	var lexErr *calc.LexError
	if assert.True(t, errors.As(err, &lexErr)) {
		assert.Equal(t, "^", lexErr.Lexeme)
	}
}

func FuzzEval(f *testing.F) {
	for _, src := range []string{"1 + 2", "5 % 3", "-(PI)", "1 2", "((", "7 **"} {
		f.Add(src)
	}
	f.Fuzz(func(t *testing.T, src string) {
		v, ok, err := calc.Eval(src)
		if err != nil {
			var evalErr *calc.EvalError
			if errors.As(err, &evalErr) {
				t.Fatalf("%q: %v", src, err)
			}
			if ok || v != 0 {
				t.Fatalf("%q: value %v returned with %v", src, v, err)
			}
		}
	})
}
