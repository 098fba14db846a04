// Package builtins implements the process-wide builtin-symbol catalog:
// constants, library functions, and event signatures provided by the
// runtime environment rather than by user source, loaded once from a text
// manifest (or a compiled-in fallback) before any compilation begins.
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/kasl-lang/kasl/constant"
	"github.com/kasl-lang/kasl/diagnostics"
	"github.com/kasl-lang/kasl/strlit"
	"github.com/kasl-lang/kasl/symtab"
	"github.com/kasl-lang/kasl/types"
)

// Catalog is the populated builtin table: one flat symtab.Table holding
// every constant, function, and event, looked up by (name, kind).
type Catalog struct {
	Table *symtab.Table
}

var (
	reFunction = regexp.MustCompile(`^(\w+)\s+(\w+)\s*\((.*)\)$`)
	reEvent    = regexp.MustCompile(`^event\s+(\w+)\s*\((.*)\)$`)
	reConst    = regexp.MustCompile(`^const\s+(\w+)\s+(\w+)\s*=\s*(.+)$`)
	reParam    = regexp.MustCompile(`^(\w+)\s+(\w+)$`)
)

// Load reads the manifest at path and builds a Catalog from it. A parse
// failure aborts the process via diagnostics.Abort — per the source
// model, the manifest is a trusted input, and a malformed one is a
// build-environment defect rather than something compilation should
// merely report and continue past.
func Load(path string) *Catalog {
	f, err := os.Open(path)
	if err != nil {
		diagnostics.Abort(diagnostics.Fatalf("builtins: cannot open manifest %s: %v", path, err))
	}
	defer f.Close()
	return load(path, f)
}

// LoadDefault builds a Catalog from the compiled-in fallback manifest,
// used when no manifest path is configured.
func LoadDefault() *Catalog {
	return load("<builtin>", strings.NewReader(defaultManifest))
}

func load(source string, r io.Reader) *Catalog {
	table := symtab.New(nil)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if err := parseRecord(table, line); err != nil {
			diagnostics.Abort(diagnostics.Fatalf("builtins: %s:%d: %v", source, lineNo, err))
		}
	}
	if err := scanner.Err(); err != nil {
		diagnostics.Abort(diagnostics.Fatalf("builtins: %s: %v", source, err))
	}
	return &Catalog{Table: table}
}

func parseRecord(table *symtab.Table, line string) error {
	switch {
	case strings.HasPrefix(line, "const "):
		return parseConst(table, line)
	case strings.HasPrefix(line, "event "):
		return parseEvent(table, line)
	default:
		return parseFunction(table, line)
	}
}

func parseParams(raw string) ([]symtab.Param, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	params := make([]symtab.Param, 0, len(parts))
	for _, p := range parts {
		m := reParam.FindStringSubmatch(strings.TrimSpace(p))
		if m == nil {
			return nil, fmt.Errorf("malformed parameter %q", p)
		}
		typ := types.ByName(m[1])
		if typ == nil {
			return nil, fmt.Errorf("unknown parameter type %q", m[1])
		}
		params = append(params, symtab.Param{Name: m[2], Type: typ})
	}
	return params, nil
}

func parseFunction(table *symtab.Table, line string) error {
	m := reFunction.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("malformed function record %q", line)
	}
	retType := types.ByName(m[1])
	if retType == nil {
		return fmt.Errorf("unknown return type %q", m[1])
	}
	params, err := parseParams(m[3])
	if err != nil {
		return err
	}
	sym := symtab.NewSymbol(m[2], retType, symtab.Function, symtab.Builtin)
	sym.Signature = &symtab.Signature{Params: params, Return: retType}
	table.Define(sym)
	return nil
}

func parseEvent(table *symtab.Table, line string) error {
	m := reEvent.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("malformed event record %q", line)
	}
	params, err := parseParams(m[2])
	if err != nil {
		return err
	}
	sym := symtab.NewSymbol(m[1], types.Get(types.Null), symtab.Event, symtab.Builtin)
	sym.Signature = &symtab.Signature{Params: params, Return: types.Get(types.Null)}
	table.Define(sym)
	return nil
}

func parseConst(table *symtab.Table, line string) error {
	m := reConst.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("malformed const record %q", line)
	}
	typeName, name, literal := m[1], m[2], strings.TrimSpace(m[3])

	// The language has no key literal syntax; a declared-key constant is
	// narrowed to a string value with the key type tag applied separately.
	isKey := typeName == "key"
	if isKey {
		typeName = "string"
	}
	typ := types.ByName(typeName)
	if typ == nil {
		return fmt.Errorf("unknown const type %q", typeName)
	}

	value, err := parseLiteral(typ, literal)
	if err != nil {
		return fmt.Errorf("const %s %s: %v", typeName, name, err)
	}
	if s, ok := value.(*constant.String); ok && isKey {
		s.IsKey = true
	}

	sym := symtab.NewSymbol(name, typ, symtab.Variable, symtab.Builtin)
	sym.Constant = value
	table.Define(sym)
	return nil
}

func parseLiteral(typ *types.Type, literal string) (constant.Value, error) {
	switch typ.Kind() {
	case types.Integer:
		var n int64
		var err error
		if strings.HasPrefix(literal, "0x") || strings.HasPrefix(literal, "0X") {
			n, err = strconv.ParseInt(literal[2:], 16, 64)
		} else {
			n, err = strconv.ParseInt(literal, 10, 64)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal %q: %w", literal, err)
		}
		return &constant.Integer{V: int32(n)}, nil
	case types.Float:
		f, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal %q: %w", literal, err)
		}
		return &constant.Float{V: float32(f)}, nil
	case types.String:
		if !strings.HasPrefix(literal, `"`) || !strings.HasSuffix(literal, `"`) || len(literal) < 2 {
			return nil, fmt.Errorf("invalid string literal %q", literal)
		}
		return &constant.String{V: strlit.Parse(literal[1:len(literal)-1], false)}, nil
	case types.Vector:
		var x, y, z float32
		if n, _ := fmt.Sscanf(literal, "<%f, %f, %f>", &x, &y, &z); n != 3 {
			return nil, fmt.Errorf("invalid vector literal %q", literal)
		}
		return &constant.Vector{X: x, Y: y, Z: z}, nil
	case types.Quaternion:
		var x, y, z, s float32
		if n, _ := fmt.Sscanf(literal, "<%f, %f, %f, %f>", &x, &y, &z, &s); n != 4 {
			return nil, fmt.Errorf("invalid quaternion literal %q", literal)
		}
		return &constant.Quaternion{X: x, Y: y, Z: z, S: s}, nil
	default:
		return nil, fmt.Errorf("type %s has no constant literal form", typ)
	}
}

// Lookup resolves a builtin by name and kind.
func (c *Catalog) Lookup(name string, kind symtab.Kind) (*symtab.Symbol, bool) {
	return c.Table.Lookup(name, kind)
}
