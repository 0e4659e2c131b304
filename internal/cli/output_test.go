package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/cardport/internal/testutil"
)

type mockDataWithID struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(mockDataWithID{ID: 7, Name: "seven"}))
	})

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "seven", data["name"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f := &OutputFormatter{Quiet: true}
	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(mockDataWithID{ID: 42}))
	})
	assert.Equal(t, "42\n", output)
}

func TestOutputFormatter_Fail_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	var err error
	output := testutil.CaptureOutput(t, func() {
		err = f.Fail(ExitNotFound, "CARD_NOT_FOUND", errors.New("card not found"), "try another")
	})

	assert.Equal(t, ExitNotFound, ExitCodeFor(err))
	assert.True(t, IsReported(err))

	var result struct {
		Success bool `json:"success"`
		Error   struct {
			Code       string `json:"code"`
			Message    string `json:"message"`
			Suggestion string `json:"suggestion"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "CARD_NOT_FOUND", result.Error.Code)
	assert.Equal(t, "card not found", result.Error.Message)
	assert.Equal(t, "try another", result.Error.Suggestion)
}

func TestOutputFormatter_Fail_HumanWritesNothingToStdout(t *testing.T) {
	f := &OutputFormatter{}
	output := testutil.CaptureOutput(t, func() {
		_ = f.Fail(ExitUsage, "MISSING_ARGUMENT", errors.New("missing"), "")
	})
	assert.Empty(t, output)
}

func TestExitCodeFor(t *testing.T) {
	sentinel := errors.New("boom")

	assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
	assert.Equal(t, ExitError, ExitCodeFor(sentinel))
	assert.Equal(t, ExitValidation, ExitCodeFor(Exit(ExitValidation, sentinel)))
	assert.ErrorIs(t, Exit(ExitValidation, sentinel), sentinel)
	assert.Equal(t, ExitUsage, ExitCodeFor(Exit(ExitUsage, nil)))
	assert.False(t, IsReported(sentinel))
}
