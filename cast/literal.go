package cast

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/coregx/coregex"
	"github.com/shabbyrobe/go-num"
	"github.com/spf13/cast"
)

// intLiteral matches Go integer literals without the legacy leading-zero
// octal form, so "0123" is read as the decimal float 123 rather than 83.
var intLiteral = mustCompile(`^[+-]?(?:0[xX](?:_?[0-9a-fA-F])+|0[oO](?:_?[0-7])+|0[bB](?:_?[01])+|0|[1-9](?:_?[0-9])*)$`)

func mustCompile(pattern string) *coregex.Regex {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}

	return re
}

// parseNumber reads s as a number. Integer literals are read exactly and fail
// when they do not fit in 128 bits; everything else goes through float64.
func parseNumber(s string) (ToPrimitive, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrUnsupported)
	}

	if intLiteral.MatchString(s) {
		if n, ok := new(big.Int).SetString(s, 0); ok {
			return wideOf(n, s)
		}
	}

	// cast.ToFloat64E reads "" as zero; the empty case is rejected above.
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}

	return Of(f), nil
}

// wideOf returns n as an I128 when negative and as a U128 otherwise.
func wideOf(n *big.Int, s string) (ToPrimitive, error) {
	if n.Sign() < 0 {
		if v, accurate := num.I128FromBigInt(n); accurate {
			return Of(v), nil
		}
	} else if v, accurate := num.U128FromBigInt(n); accurate {
		return Of(v), nil
	}

	return nil, fmt.Errorf("%w: %s does not fit in 128 bits", ErrNotRepresentable, s)
}
