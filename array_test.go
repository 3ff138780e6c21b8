package exactarr

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestArrayAccess(t *testing.T) {
	arr := TransferOrAbort([]string{"a", "b", "c"}, 3)
	require.Equal(t, 3, arr.Len())

	v, err := arr.At(1)
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = arr.At(3)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = arr.At(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	require.NoError(t, arr.Set(0, "z"))
	require.ErrorIs(t, arr.Set(3, "x"), ErrOutOfRange)
	require.Equal(t, []string{"z", "b", "c"}, arr.Elements())
	require.Equal(t, 3, arr.Len())
}

func TestArrayElementsIsACopy(t *testing.T) {
	arr := TransferOrAbort([]int{1, 2}, 2)
	elems := arr.Elements()
	elems[0] = 42
	v, err := arr.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestArrayAllStopsEarly(t *testing.T) {
	arr := TransferOrAbort([]int{1, 2, 3, 4}, 4)
	var got []int
	for i, v := range arr.All() {
		if i == 2 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2}, got)
}

func TestZeroArray(t *testing.T) {
	var arr Array[int]
	require.Equal(t, 0, arr.Len())
	_, err := arr.At(0)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Empty(t, arr.Elements())
}

func TestArrayMarshal(t *testing.T) {
	arr := TransferOrAbort([]uint32{300, 1, 2}, 3)
	data, err := cbor.Marshal(arr)
	require.NoError(t, err)
	var back []uint32
	require.NoError(t, cbor.Unmarshal(data, &back))
	require.Equal(t, []uint32{300, 1, 2}, back)

	empty := TransferOrAbort([]uint32{}, 0)
	data, err = cbor.Marshal(empty)
	require.NoError(t, err)
	// 0x80 is an empty CBOR array; null would be 0xf6.
	require.Equal(t, []byte{0x80}, data)

	out, err := yaml.Marshal(arr)
	require.NoError(t, err)
	require.Equal(t, "- 300\n- 1\n- 2\n", string(out))
}

func TestSizeMismatchError(t *testing.T) {
	err := &SizeMismatchError{Expected: 4, Found: 3}
	require.EqualError(t, err, "Expected vector of size 4, but found size 3")
	require.ErrorIs(t, err, ErrSizeMismatch)
	require.NotErrorIs(t, err, ErrOutOfRange)
}
