package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterouob/gobasics/tutorial"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	cmd := newRootCommand(out)
	cmd.SetArgs(args)
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCompareCommand(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected string
	}{
		{a: "1", b: "2", expected: "1 2 Less\n"},
		{a: "2", b: "1", expected: "2 1 Greater\n"},
		{a: "5", b: "5", expected: "5 5 Equal\n"},
		{a: "-3", b: "0", expected: "-3 0 Less\n"},
		{a: "0", b: "-3", expected: "0 -3 Greater\n"},
		{a: "-7", b: "-7", expected: "-7 -7 Equal\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			out, err := execute(t, "compare", tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}

	t.Run("Separator", func(t *testing.T) {
		out, err := execute(t, "compare", "--", "-3", "0")
		require.NoError(t, err)
		assert.Equal(t, "-3 0 Less\n", out)
	})
	t.Run("NotInteger", func(t *testing.T) {
		_, err := execute(t, "compare", "one", "2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `parse "one"`)
	})
	t.Run("ArgCount", func(t *testing.T) {
		_, err := execute(t, "compare", "1")
		require.Error(t, err)

		_, err = execute(t, "compare", "1", "2", "3")
		require.Error(t, err)
	})
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "--no-headings", "enums", "tagged-unions")
	require.NoError(t, err)
	assert.Equal(t, "more\nthis is ok!\nnot ok\n", out)

	out, err = execute(t, "run", "--no-headings", "--no-color", "vectors")
	require.NoError(t, err)
	assert.Equal(t, "the number of vals in vec is now 4\n", out)

	out, err = execute(t, "run", "--no-color", "slices")
	require.NoError(t, err)
	assert.Equal(t, "━━━ Slices ━━━\n1\n2\n3\n", out)

	_, err = execute(t, "run", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tutorial.ErrUnknownLesson))

	_, err = execute(t, "--log-level", "loud", "enums")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "bindings\tBindings and mutability", lines[0])
	assert.Equal(t, "slices\tSlices", lines[12])

	out, err = execute(t, "list", "--sorted")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "arrays\tArrays", lines[0])
	assert.Equal(t, "vectors\tVectors", lines[12])
}

func TestInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	assert.False(t, interrupted(ctx, errors.New("boom")), "context still live")

	cancel()
	assert.True(t, interrupted(ctx, context.Canceled))
	assert.True(t, interrupted(ctx, errors.Wrap(context.Canceled, "lesson")))
	assert.False(t, interrupted(ctx, errors.New("boom")))
}

func TestSingleLessonUsesSeeds(t *testing.T) {
	out, err := execute(t, "--no-headings", "enums")
	require.NoError(t, err)
	assert.Equal(t, "more\n", out, "seeds X=5, Y=1")

	out, err = execute(t, "--no-headings", "bindings", "if", "enums")
	require.NoError(t, err)
	assert.Equal(t, "y is 1\nnow it's 2\nx is five!\nhey\nless\n", out)
}
