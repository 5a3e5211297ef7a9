package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDialogState_StartsAtGender(t *testing.T) {
	state := NewDialogState(1)
	require.Equal(t, int64(1), state.UserID)
	require.Equal(t, StepGender, state.Step)
	require.Equal(t, Draft{}, state.Draft)
}

func TestStep_String(t *testing.T) {
	require.Equal(t, "gender", StepGender.String())
	require.Equal(t, "age", StepAge.String())
	require.Equal(t, "matching", StepMatching.String())
	require.Equal(t, "edit_description", StepEditDescription.String())
	require.Equal(t, "unknown", Step(99).String())
}
