package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/colorvp/color"
	"github.com/viant/colorvp/vector"
	sqlite "modernc.org/sqlite"
)

var registration struct {
	once sync.Once
	err  error
}

// RegisterFunctions registers color_distance and vec_l2 with the driver, once
// per process. Connections opened before the first call do not see them.
func RegisterFunctions() error {
	registration.once.Do(func() {
		if err := sqlite.RegisterDeterministicScalarFunction("color_distance", 2, colorDistanceImpl); err != nil {
			registration.err = fmt.Errorf("engine: register color_distance: %w", err)
			return
		}
		if err := sqlite.RegisterDeterministicScalarFunction("vec_l2", 2, vecL2Impl); err != nil {
			registration.err = fmt.Errorf("engine: register vec_l2: %w", err)
		}
	})
	return registration.err
}

// asColor accepts either a hex TEXT value or an LCh BLOB.
func asColor(arg driver.Value) (*color.Color, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case string:
		c, err := color.FromHex(v)
		if err != nil {
			return nil, err
		}
		return &c, nil
	case []byte:
		c, err := DecodeColor(v)
		if err != nil {
			return nil, err
		}
		return &c, nil
	default:
		return nil, fmt.Errorf("color_distance: unsupported argument type %T; want TEXT or BLOB", arg)
	}
}

func colorDistanceImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("color_distance: expected 2 arguments, got %d", len(args))
	}
	a, err := asColor(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asColor(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	return color.Distance(*a, *b), nil
}

func vecL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("vec_l2: expected 2 arguments, got %d", len(args))
	}
	var vecs [2]vector.Vector
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
			return nil, nil
		case []byte:
			decoded, err := vector.Decode(v)
			if err != nil {
				return nil, err
			}
			vecs[i] = decoded
		default:
			return nil, fmt.Errorf("vec_l2: unsupported argument type %T; want BLOB", arg)
		}
	}
	d, err := vecs[0].L2(vecs[1])
	if err != nil {
		return nil, err
	}
	return d, nil
}
