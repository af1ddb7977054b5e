package formats

import (
	"bufio"
	"bytes"
	stdmath "math"
	"strconv"
	"strings"

	"github.com/Faultbox/objview/pkg/math"
)

// maxLineSize bounds a single line of OBJ/MTL text.
const maxLineSize = 1 << 20

// lineHandler receives the 1-based line number and the whitespace-separated
// tokens of one non-empty, non-comment line.
type lineHandler func(line int, tokens []string) error

// scanLines feeds every meaningful line of data to handle and wraps any error
// with its line number.
func scanLines(data []byte, handle lineHandler) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}
		if err := handle(lineNum, tokens); err != nil {
			return &ParseError{Line: lineNum, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return &ParseError{Line: lineNum + 1, Err: malformed("%v", err)}
	}
	return nil
}

// parseFloats parses the n arguments following the directive in tokens.
// Extra trailing arguments are ignored.
func parseFloats(tokens []string, n int) ([]float32, error) {
	if len(tokens)-1 < n {
		return nil, malformed("%q expects %d arguments, got %d", tokens[0], n, len(tokens)-1)
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, ok := parseDecimal(tokens[i+1])
		if !ok {
			return nil, malformed("%q argument %d: %q is not a number", tokens[0], i+1, tokens[i+1])
		}
		out[i] = v
	}
	return out, nil
}

// parseDecimal parses a finite decimal number. Hex floats, digit
// separators, NaN and infinities are rejected.
func parseDecimal(token string) (float32, bool) {
	if strings.IndexFunc(token, func(r rune) bool {
		return (r < '0' || r > '9') && !strings.ContainsRune("+-.eE", r)
	}) >= 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 32)
	if err != nil || stdmath.IsNaN(v) || stdmath.IsInf(v, 0) {
		return 0, false
	}
	return float32(v), true
}

// parseFloat32 parses the single scalar argument of a directive.
func parseFloat32(tokens []string) (float32, error) {
	v, err := parseFloats(tokens, 1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

// parseVec2 parses a two-component row such as "vt u v".
func parseVec2(tokens []string) (math.Vec2, error) {
	v, err := parseFloats(tokens, 2)
	if err != nil {
		return math.Vec2{}, err
	}
	return math.Vec2{X: v[0], Y: v[1]}, nil
}

// parseVec3 parses a three-component row such as "v x y z" or "Kd r g b".
func parseVec3(tokens []string) (math.Vec3, error) {
	v, err := parseFloats(tokens, 3)
	if err != nil {
		return math.Vec3{}, err
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// singleArg returns the one argument of a directive such as "mtllib" or "newmtl".
func singleArg(tokens []string) (string, error) {
	if len(tokens) != 2 {
		return "", malformed("%q expects 1 argument, got %d", tokens[0], len(tokens)-1)
	}
	return tokens[1], nil
}

// resolveIndex converts a 1-based index token into a 0-based offset into a
// buffer of the given length.
func resolveIndex(token string, bufLen int) (int, error) {
	index, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return -1, malformed("index %q is not an integer", token)
	}
	if index < 1 || int(index) > bufLen {
		return -1, malformed("index %d out of range [1, %d]", index, bufLen)
	}
	return int(index - 1), nil
}
