package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFQPatchID(t *testing.T) {
	tests := []struct {
		in   string
		want FQPatchID
	}{
		{"328469,145,145", FQPatchID{PatchID: 328469, ZoneID: 145, HillID: 145}},
		{"328469    145    145", FQPatchID{PatchID: 328469, ZoneID: 145, HillID: 145}},
		{"1/2/3", FQPatchID{PatchID: 1, ZoneID: 2, HillID: 3}},
		{"-5, 0, 7", FQPatchID{PatchID: -5, ZoneID: 0, HillID: 7}},
	}

	for _, tt := range tests {
		got, err := ParseFQPatchID(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseFQPatchID_Invalid(t *testing.T) {
	for _, in := range []string{"", "1,2", "1,2,3,4", "a,b,c", "99999999999,1,1"} {
		_, err := ParseFQPatchID(in)
		assert.Error(t, err, in)
	}
}

func TestFQPatchID_HillDistinguishesPatches(t *testing.T) {
	a := FQPatchID{PatchID: 10, ZoneID: 1, HillID: 1}
	b := FQPatchID{PatchID: 10, ZoneID: 1, HillID: 2}

	seen := map[FQPatchID]bool{a: true}
	assert.False(t, seen[b])
	assert.Equal(t, "10/1/2", b.String())
}
