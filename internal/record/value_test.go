package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Filled(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"null", Null(), false},
		{"empty scalar", Scalar(""), false},
		{"whitespace scalar", Scalar("  \t"), false},
		{"scalar", Scalar("x"), true},
		{"empty object", ObjectValue(Object{}), false},
		{"whitespace object", ObjectValue(Object{Identifier: " ", Label: "\n"}), false},
		{"object with literal only", ObjectValue(Object{Literal: "free text"}), true},
		{"object with identifier", ObjectValue(Object{Identifier: "C0001"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Filled())
		})
	}
}

func TestValue_TextAndEqual(t *testing.T) {
	o := ObjectValue(Object{Label: "Female", Literal: "F"})
	assert.Equal(t, "Female", o.Text())
	assert.Equal(t, "x", Scalar("x").Text())
	assert.Equal(t, "", Null().Text())

	assert.True(t, Null().Equal(Scalar(" ")), "unfilled values are equal")
	assert.True(t, Scalar("a").Equal(Scalar("a")))
	assert.False(t, Scalar("a").Equal(Scalar("A")), "comparison is exact")
	assert.False(t, Scalar("F").Equal(ObjectValue(Object{Identifier: "F"})))
}
