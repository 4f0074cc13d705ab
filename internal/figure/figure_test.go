package figure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Normalized(t *testing.T) {
	o := Options{}.Normalized()
	assert.Equal(t, Options{Rows: 1, Cols: 1, Width: 7, Height: 7}, o)

	o = Options{Rows: 2, Cols: 3, Width: 10, Height: 4, Title: "x"}.Normalized()
	assert.Equal(t, Options{Rows: 2, Cols: 3, Width: 10, Height: 4, Title: "x"}, o)
}

func TestDispatch_StopsAtFirstHandler(t *testing.T) {
	var calls []string
	ignore := KeyHandlerFunc(func(key string) (bool, error) {
		calls = append(calls, "ignore")
		return false, nil
	})
	take := KeyHandlerFunc(func(key string) (bool, error) {
		calls = append(calls, "take")
		return key == "right", nil
	})
	never := KeyHandlerFunc(func(key string) (bool, error) {
		calls = append(calls, "never")
		return true, nil
	})

	handled, err := Dispatch([]KeyHandler{ignore, take, never}, "right")
	assert.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, []string{"ignore", "take"}, calls)
}

func TestDispatch_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	h := KeyHandlerFunc(func(string) (bool, error) { return true, boom })
	_, err := Dispatch([]KeyHandler{h}, "left")
	assert.ErrorIs(t, err, boom)

	handled, err := Dispatch(nil, "left")
	assert.NoError(t, err)
	assert.False(t, handled)
}
