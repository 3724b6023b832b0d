package shape

import (
	"testing"

	"vexc/hwintrin"
	"vexc/ir"
	"vexc/report"
	"vexc/types"
)

func vecVal(elem types.PrimitiveType, bits int) ir.Value {
	return &ir.Identifier{
		ValueBase: ir.NewValueBase(nil, &types.VectorType{Elem: elem, Bits: bits}),
		Name:      "v",
	}
}

func intVal(pt types.PrimitiveType) ir.Value {
	return &ir.Identifier{ValueBase: ir.NewValueBase(nil, pt), Name: "n"}
}

func constVal(v int64) ir.Value {
	return &ir.ConstInt{ValueBase: ir.NewValueBase(nil, types.PrimTypeU8), IntValue: v}
}

func callOf(id hwintrin.Intrinsic, operands ...ir.Value) *ir.HWIntrinsicCall {
	return &ir.HWIntrinsicCall{
		ValueBase: ir.NewValueBase(nil, types.BoolType{}),
		Intrin:    id,
		Operands:  operands,
	}
}

func TestOperandCount(t *testing.T) {
	if got := OperandCount(callOf(hwintrin.SseAdd, vecVal(types.PrimTypeF32, 128), vecVal(types.PrimTypeF32, 128))); got != 2 {
		t.Errorf("fixed count = %d, want 2", got)
	}

	// Entries authored without a fixed count take theirs from the call.
	twoOp := callOf(hwintrin.Sse2Shuffle, vecVal(types.PrimTypeI32, 128), constVal(1))
	threeOp := callOf(hwintrin.Sse2Shuffle,
		vecVal(types.PrimTypeF64, 128), vecVal(types.PrimTypeF64, 128), constVal(1))

	if got := OperandCount(twoOp); got != 2 {
		t.Errorf("per-call count = %d, want 2", got)
	}

	if got := OperandCount(threeOp); got != 3 {
		t.Errorf("per-call count = %d, want 3", got)
	}
}

func TestIsImmOp(t *testing.T) {
	v := vecVal(types.PrimTypeI16, 128)

	tests := []struct {
		name string
		call *ir.HWIntrinsicCall
		want bool
	}{
		{
			name: "shuffle control byte",
			call: callOf(hwintrin.SseShuffle,
				vecVal(types.PrimTypeF32, 128), vecVal(types.PrimTypeF32, 128), constVal(0xB1)),
			want: true,
		},
		{
			name: "plain arithmetic",
			call: callOf(hwintrin.SseAdd,
				vecVal(types.PrimTypeF32, 128), vecVal(types.PrimTypeF32, 128)),
			want: false,
		},
		{
			name: "shift by scalar count",
			call: callOf(hwintrin.Sse2ShiftLeftLogical, v, constVal(3)),
			want: true,
		},
		{
			name: "shift by vector count",
			call: callOf(hwintrin.Sse2ShiftLeftLogical, v, vecVal(types.PrimTypeI16, 128)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImmOp(tt.call); got != tt.want {
				t.Errorf("IsImmOp = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanImmOperand(t *testing.T) {
	f32 := vecVal(types.PrimTypeF32, 128)

	tests := []struct {
		name    string
		call    *ir.HWIntrinsicCall
		want    ImmLowering
		wantErr bool
	}{
		{
			name: "constant in range",
			call: callOf(hwintrin.Sse41Extract, f32, constVal(3)),
			want: ImmDirect,
		},
		{
			name:    "constant past the lane count",
			call:    callOf(hwintrin.Sse41Extract, f32, constVal(4)),
			wantErr: true,
		},
		{
			name:    "negative constant",
			call:    callOf(hwintrin.Sse41Extract, f32, constVal(-1)),
			wantErr: true,
		},
		{
			name: "unknown control byte falls back to a jump table",
			call: callOf(hwintrin.Avx2Shuffle,
				vecVal(types.PrimTypeI8, 256), intVal(types.PrimTypeU8)),
			want: ImmJumpTable,
		},
		{
			name: "shift counts may not jump table",
			call: callOf(hwintrin.Sse2ShiftLeftLogical,
				vecVal(types.PrimTypeI16, 128), intVal(types.PrimTypeU8)),
			wantErr: true,
		},
		{
			name: "no immediate to plan",
			call: callOf(hwintrin.SseAdd, f32, f32),
			want: ImmNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanImmOperand(tt.call)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}

				if _, ok := err.(*report.CompileError); !ok {
					t.Fatalf("error %T is not a compile error", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if got != tt.want {
				t.Errorf("lowering = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveBaseType(t *testing.T) {
	tests := []struct {
		name string
		call *ir.HWIntrinsicCall
		want types.PrimitiveType
	}{
		{
			name: "from first operand vector",
			call: callOf(hwintrin.SseMoveMask, vecVal(types.PrimTypeF32, 128)),
			want: types.PrimTypeF32,
		},
		{
			name: "from second operand scalar",
			call: callOf(hwintrin.SseConvertScalarToVector128Single,
				vecVal(types.PrimTypeF32, 128), intVal(types.PrimTypeI32)),
			want: types.PrimTypeI32,
		},
		{
			name: "default from first operand",
			call: callOf(hwintrin.Sse2Add,
				vecVal(types.PrimTypeI16, 128), vecVal(types.PrimTypeI16, 128)),
			want: types.PrimTypeI16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ResolveBaseType(tt.call); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if tt.call.BaseType != tt.want {
				t.Errorf("base type = %s, want %s", tt.call.BaseType.Repr(), tt.want.Repr())
			}
		})
	}

	t.Run("explicit type argument wins", func(t *testing.T) {
		call := callOf(hwintrin.SseSetAllVector128, intVal(types.PrimTypeF32))
		call.TypeArgs = []types.Type{types.PrimTypeF32}

		if err := ResolveBaseType(call); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if call.BaseType != types.PrimTypeF32 {
			t.Errorf("base type = %s, want f32", call.BaseType.Repr())
		}
	})

	t.Run("unusable operand type", func(t *testing.T) {
		call := callOf(hwintrin.SseMoveMask,
			&ir.Identifier{ValueBase: ir.NewValueBase(nil, types.BoolType{}), Name: "b"})

		err := ResolveBaseType(call)
		if err == nil {
			t.Fatal("expected an error")
		}

		if _, ok := err.(*report.CompileError); !ok {
			t.Fatalf("error %T is not a compile error", err)
		}
	})
}

func TestCheckTypeArguments(t *testing.T) {
	oneArg := func(id hwintrin.Intrinsic, typeArgs ...types.Type) *ir.HWIntrinsicCall {
		call := callOf(id, intVal(types.PrimTypeI32))
		call.TypeArgs = typeArgs
		return call
	}

	tests := []struct {
		name    string
		call    *ir.HWIntrinsicCall
		wantErr bool
	}{
		{"one type generic with one arg", oneArg(hwintrin.SseSetAllVector128, types.PrimTypeF32), false},
		{"one type generic with none", oneArg(hwintrin.SseSetAllVector128), true},
		{"two type generic with two args", oneArg(hwintrin.SseStaticCast, types.PrimTypeF32, types.PrimTypeI32), false},
		{"two type generic with one arg", oneArg(hwintrin.SseStaticCast, types.PrimTypeF32), true},
		{"non-generic with an arg", oneArg(hwintrin.SseAdd, types.PrimTypeF32), true},
		{"non-generic with none", oneArg(hwintrin.SseAdd), false},
		{"non-numeric type argument", oneArg(hwintrin.SseSetAllVector128, types.BoolType{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTypeArguments(tt.call)
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			} else if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %s", err)
			}
		})
	}
}

func TestValidateForCodegen(t *testing.T) {
	expectICE := func(t *testing.T, call *ir.HWIntrinsicCall) {
		t.Helper()
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected a panic")
			} else if _, ok := r.(*report.InternalError); !ok {
				t.Fatalf("panic value %T is not an internal error", r)
			}
		}()

		ValidateForCodegen(call)
	}

	t.Run("expandable helper reached codegen", func(t *testing.T) {
		call := callOf(hwintrin.SseStaticCast, vecVal(types.PrimTypeF32, 128))
		expectICE(t, call)
	})

	t.Run("no opcode for the resolved element type", func(t *testing.T) {
		call := callOf(hwintrin.SseAdd,
			vecVal(types.PrimTypeF64, 128), vecVal(types.PrimTypeF64, 128))
		call.BaseType = types.PrimTypeF64
		expectICE(t, call)
	})

	t.Run("well formed call passes", func(t *testing.T) {
		call := callOf(hwintrin.SseAdd,
			vecVal(types.PrimTypeF32, 128), vecVal(types.PrimTypeF32, 128))
		call.BaseType = types.PrimTypeF32
		ValidateForCodegen(call)
	})

	t.Run("multi instruction helpers pass without a row", func(t *testing.T) {
		call := callOf(hwintrin.AvxSetAllVector256, intVal(types.PrimTypeI32))
		call.BaseType = types.PrimTypeI32
		ValidateForCodegen(call)
	})
}
