package interp

import (
	"strings"

	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/errors"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// builtinLen returns the length of a str (in runes) or list.
func (i *Interpreter) builtinLen(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case *object.StrValue:
		return &object.IntValue{Value: int64(len([]rune(val.Value)))}, nil
	case *object.ListValue:
		return &object.IntValue{Value: int64(len(val.Elements))}, nil
	default:
		return nil, errors.New(errors.Type,
			"Argument of 'len' should be 'str' or 'list', not '%s'.", v.Type())
	}
}

// builtinRange builds a list of ints from start (inclusive) to end
// (exclusive) advancing by step, which must be nonzero.
func (i *Interpreter) builtinRange(args []*ast.Node) (object.Value, error) {
	ints := make([]*object.IntValue, 3)
	ordinals := []string{"First", "Second", "Third"}

	for idx := range args {
		v, err := i.evalNode(args[idx])
		if err != nil {
			return nil, err
		}
		iv, ok := v.(*object.IntValue)
		if !ok {
			return nil, errors.New(errors.Type,
				"%s argument of 'range' should be 'int', not '%s'.", ordinals[idx], v.Type())
		}
		ints[idx] = iv
	}

	start, end, step := ints[0].Value, ints[1].Value, ints[2].Value
	if step == 0 {
		return nil, errors.New(errors.Type,
			"Third argument of 'range' should be nonzero.")
	}

	var elements []object.Value
	if step > 0 {
		for v := start; v < end; v += step {
			elements = append(elements, &object.IntValue{Value: v})
		}
	} else {
		for v := start; v > end; v += step {
			elements = append(elements, &object.IntValue{Value: v})
		}
	}
	return object.NewList(elements), nil
}

// seqLength returns the length of a str or list value, or -1 when the
// value is neither.
func seqLength(v object.Value) int {
	switch val := v.(type) {
	case *object.StrValue:
		return len([]rune(val.Value))
	case *object.ListValue:
		return len(val.Elements)
	}
	return -1
}

// normalizeIndex validates an index against a sequence length. Negative
// indices wrap once: the valid range is [-length, length).
func normalizeIndex(index int64, length int) (int, bool) {
	if index < int64(-length) || index >= int64(length) {
		return 0, false
	}
	if index < 0 {
		return int(index) + length, true
	}
	return int(index), true
}

// builtinGet returns the element of a str or list at an index.
func (i *Interpreter) builtinGet(args []*ast.Node) (object.Value, error) {
	seq, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	index, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}

	length := seqLength(seq)
	if length < 0 {
		return nil, errors.New(errors.Type,
			"First argument of 'get' should be 'str' or 'list', not '%s'.", seq.Type())
	}
	iv, ok := index.(*object.IntValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Second argument of 'get' should be 'int', not '%s'.", index.Type())
	}

	pos, ok := normalizeIndex(iv.Value, length)
	if !ok {
		return nil, errors.New(errors.Index,
			"Can't 'get' %dth item of '%s' whose length is %d.",
			iv.Value, seq.Type(), length)
	}

	switch val := seq.(type) {
	case *object.StrValue:
		return &object.StrValue{Value: string([]rune(val.Value)[pos])}, nil
	default:
		return i.force(seq.(*object.ListValue).Elements[pos])
	}
}

// builtinSet returns a new sequence with the element at the index
// replaced. For strings the replacement must be a one-character string;
// the input sequence is left unchanged.
func (i *Interpreter) builtinSet(args []*ast.Node) (object.Value, error) {
	seq, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	index, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}
	repl, err := i.evalNode(args[2])
	if err != nil {
		return nil, err
	}

	length := seqLength(seq)
	if length < 0 {
		return nil, errors.New(errors.Type,
			"First argument of 'set' should be 'str' or 'list', not '%s'.", seq.Type())
	}
	iv, ok := index.(*object.IntValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Second argument of 'set' should be 'int', not '%s'.", index.Type())
	}

	pos, ok := normalizeIndex(iv.Value, length)
	if !ok {
		return nil, errors.New(errors.Index,
			"Can't 'set' %dth item of '%s' whose length is %d.",
			iv.Value, seq.Type(), length)
	}

	switch val := seq.(type) {
	case *object.StrValue:
		rs, ok := repl.(*object.StrValue)
		if !ok {
			return nil, errors.New(errors.Type,
				"For the strings, third argument of 'set' should be 'str', not '%s'.",
				repl.Type())
		}
		if len([]rune(rs.Value)) != 1 {
			return nil, errors.New(errors.Type,
				"For the strings, length of the third argument of 'set' should be 1.")
		}
		runes := []rune(val.Value)
		return &object.StrValue{
			Value: string(runes[:pos]) + rs.Value + string(runes[pos+1:]),
		}, nil

	default:
		src := seq.(*object.ListValue).Elements
		elements := make([]object.Value, len(src))
		copy(elements, src)
		elements[pos] = repl
		return object.NewList(elements), nil
	}
}

// sliceIndices computes the index sequence of a slice with the given
// bounds and nonzero step, clamping out-of-range bounds the way the
// language's indexing rules demand.
func sliceIndices(length int, start, end, step int64) []int {
	clamp := func(v int64) int {
		if v < 0 {
			v += int64(length)
			if v < 0 {
				if step < 0 {
					return -1
				}
				return 0
			}
			return int(v)
		}
		if step < 0 {
			if v >= int64(length) {
				return length - 1
			}
			return int(v)
		}
		if v > int64(length) {
			return length
		}
		return int(v)
	}

	s, e := clamp(start), clamp(end)

	var indices []int
	if step > 0 {
		for idx := s; idx < e; idx += int(step) {
			indices = append(indices, idx)
		}
	} else {
		for idx := s; idx > e; idx += int(step) {
			indices = append(indices, idx)
		}
	}
	return indices
}

// builtinSlice returns a new sequence of the same tag built from the
// elements selected by start, end and step.
func (i *Interpreter) builtinSlice(args []*ast.Node) (object.Value, error) {
	seq, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	bounds := make([]int64, 3)
	ordinals := []string{"Second", "Third", "Fourth"}
	for idx := 0; idx < 3; idx++ {
		v, err := i.evalNode(args[idx+1])
		if err != nil {
			return nil, err
		}
		iv, ok := v.(*object.IntValue)
		if !ok {
			return nil, errors.New(errors.Type,
				"%s argument of 'slice' should be 'int', not '%s'.", ordinals[idx], v.Type())
		}
		bounds[idx] = iv.Value
	}

	length := seqLength(seq)
	if length < 0 {
		return nil, errors.New(errors.Type,
			"First argument of 'slice' should be 'str' or 'list', not '%s'.", seq.Type())
	}

	start, end, step := bounds[0], bounds[1], bounds[2]
	if step == 0 {
		return nil, errors.New(errors.Type,
			"Fourth argument of 'slice' should be nonzero.")
	}

	indices := sliceIndices(length, start, end, step)

	switch val := seq.(type) {
	case *object.StrValue:
		runes := []rune(val.Value)
		var sb strings.Builder
		for _, idx := range indices {
			sb.WriteRune(runes[idx])
		}
		return &object.StrValue{Value: sb.String()}, nil

	default:
		src := seq.(*object.ListValue).Elements
		elements := make([]object.Value, 0, len(indices))
		for _, idx := range indices {
			elements = append(elements, src[idx])
		}
		return object.NewList(elements), nil
	}
}
