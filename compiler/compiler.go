package compiler

import (
	"errors"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/PickledChair/BrainFucker/program"
)

const (
	EXPAND_LIMIT = 1 << 20 // Largest integer run a $(...) expansion may produce.
)

// Compiler is a single pass brainfuck compiler.
type Compiler struct {
	Verbose bool // If set, logs the size of each compiler pass.
	Expand  bool // If set, evaluates $(...) expressions before compiling.
	MaxRun  int  // Longest run folded into one instruction. Zero is unbounded.
	NoClear bool // If set, "[-]" is compiled as a literal loop.

	predefine map[string]string // Predefines visible to $(...) expressions.
}

// op is an instruction under construction, with its source line.
type op struct {
	program.Instruction
	LineNo int
}

// Predefine defines a new name for $(...) expressions, or redefines an
// existing one.
func (cc *Compiler) Predefine(name string, value string) {
	if cc.predefine == nil {
		cc.predefine = map[string]string{name: value}
	} else {
		cc.predefine[name] = value
	}
}

// Parse reads all of input and compiles it.
func (cc *Compiler) Parse(input io.Reader) (prog *program.Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return cc.Compile(string(data))
}

// Compile compiles source text into a program.
func (cc *Compiler) Compile(source string) (prog *program.Program, err error) {
	if cc.Expand {
		source, err = cc.expand(source)
		if err != nil {
			return
		}
	}

	tokens := filter(source)
	ops := cc.fold(tokens)
	folded := len(ops)
	if !cc.NoClear {
		ops = peephole(ops)
	}

	if cc.Verbose {
		log.Printf("compiler: %v symbols, %v folded, %v optimized", len(tokens), folded, len(ops))
	}

	err = pair(ops)
	if err != nil {
		return
	}

	code := make([]program.Instruction, len(ops))
	lines := make([]int, len(ops))
	for n, op := range ops {
		code[n] = op.Instruction
		lines[n] = op.LineNo
	}

	return program.New(code, lines)
}

// filter keeps only the eight symbols, tagged with their source line.
func filter(source string) (tokens []op) {
	lineno := 1
	for n := 0; n < len(source); n++ {
		symbol := source[n]
		if symbol == '\n' {
			lineno++
			continue
		}
		kind, ok := program.KindOf(symbol)
		if !ok {
			continue
		}
		tokens = append(tokens, op{Instruction: program.Instruction{Kind: kind}, LineNo: lineno})
	}

	return
}

// fold merges runs of identical counted operations.
func (cc *Compiler) fold(tokens []op) (ops []op) {
	for _, tok := range tokens {
		if !tok.Kind.Counted() {
			ops = append(ops, tok)
			continue
		}
		if len(ops) > 0 {
			last := &ops[len(ops)-1]
			if last.Kind == tok.Kind && (cc.MaxRun <= 0 || last.Arg < cc.MaxRun) {
				last.Arg++
				continue
			}
		}
		tok.Arg = 1
		ops = append(ops, tok)
	}

	return
}

// isClearLoop matches the exact open, decrement-by-one, close shape.
func isClearLoop(ops []op) bool {
	return len(ops) >= 3 &&
		ops[0].Kind == program.OP_JZ &&
		ops[1].Kind == program.OP_SUB && ops[1].Arg == 1 &&
		ops[2].Kind == program.OP_JNZ
}

// peephole replaces each clear loop with a single clear instruction.
func peephole(ops []op) (out []op) {
	out = make([]op, 0, len(ops))
	for n := 0; n < len(ops); n++ {
		if isClearLoop(ops[n:]) {
			out = append(out, op{
				Instruction: program.Instruction{Kind: program.OP_CLEAR},
				LineNo:      ops[n].LineNo,
			})
			n += 2
			continue
		}
		out = append(out, ops[n])
	}

	return
}

// pair resolves every loop bracket to the index of its partner.
func pair(ops []op) (err error) {
	var open []int
	for n := range ops {
		switch ops[n].Kind {
		case program.OP_JZ:
			open = append(open, n)
		case program.OP_JNZ:
			if len(open) == 0 {
				return &ErrBracket{Index: n, LineNo: ops[n].LineNo, Err: ErrUnbalancedBrackets}
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			ops[start].Arg = n
			ops[n].Arg = start
		}
	}

	if len(open) > 0 {
		start := open[0]
		return &ErrBracket{Index: start, LineNo: ops[start].LineNo, Err: ErrUnbalancedBrackets}
	}

	return
}

var reExpand = regexp.MustCompile(`\$\([^\$]*\)`)

// expand performs the $(...) evaluations, line by line.
func (cc *Compiler) expand(source string) (text string, err error) {
	lines := strings.Split(source, "\n")
	for n, line := range lines {
		lines[n] = reExpand.ReplaceAllStringFunc(line, func(str string) string {
			if err != nil {
				return str
			}
			value, _err := cc.parenEval(str[2 : len(str)-1])
			if _err != nil {
				err = &ErrSyntax{LineNo: n + 1, Line: line, Err: _err}
				return str
			}
			return value
		})
		if err != nil {
			return
		}
	}

	text = strings.Join(lines, "\n")
	return
}

// parenEval evaluates a single $(...) expression.
func (cc *Compiler) parenEval(expr string) (text string, err error) {
	thread := starlark.Thread{Name: "expand"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range cc.predefine {
		number, perr := strconv.Atoi(value)
		if perr == nil {
			pred[key] = starlark.MakeInt(number)
		} else {
			pred[key] = starlark.String(value)
		}
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.String:
		text = string(rc)
	case starlark.Int:
		count, ok := rc.Int64()
		if !ok || count > EXPAND_LIMIT || count < -EXPAND_LIMIT {
			err = ErrExpandLimit
			return
		}
		if count >= 0 {
			text = strings.Repeat("+", int(count))
		} else {
			text = strings.Repeat("-", int(-count))
		}
	default:
		err = ErrParseExpression(expr)
	}

	return
}
