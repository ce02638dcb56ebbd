package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvedMode(t *testing.T) {
	tests := []struct {
		name string
		req  GenerateRequest
		want string
	}{
		{"explicit chat wins over profile fields", GenerateRequest{Mode: ModeChat, Prompt: "hi", Education: "BSc"}, ModeChat},
		{"explicit recommend", GenerateRequest{Mode: ModeRecommend, Education: "BSc"}, ModeRecommend},
		{"education implies recommend", GenerateRequest{Education: "BSc CS"}, ModeRecommend},
		{"goals imply recommend", GenerateRequest{Goals: "learn go"}, ModeRecommend},
		{"prompt only implies chat", GenerateRequest{Prompt: "hello"}, ModeChat},
		{"empty request defaults to chat", GenerateRequest{}, ModeChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.ResolvedMode())
		})
	}
}

func TestValidate(t *testing.T) {
	valid := GenerateRequest{Mode: ModeRecommend, Education: "BSc", Goals: "learn go"}
	assert.NoError(t, valid.Validate())

	chatNoPrompt := GenerateRequest{Mode: ModeChat}
	assert.Error(t, chatNoPrompt.Validate())

	badMode := GenerateRequest{Mode: "summarize"}
	assert.Error(t, badMode.Validate())

	empty := GenerateRequest{}
	assert.NoError(t, empty.Validate())
}

func TestProfile(t *testing.T) {
	req := GenerateRequest{
		Education:   "BSc Math",
		Goals:       "data science",
		FileContent: "internship at a lab",
	}

	profile := req.Profile()

	require.Equal(t, "BSc Math", profile.Education)
	require.Equal(t, "data science", profile.Goals)
	require.Equal(t, "internship at a lab", profile.SupportingText)
}

func TestCombinedText(t *testing.T) {
	profile := UserProfile{Education: "BSc Math", Goals: "learn statistics"}
	assert.Equal(t, "BSc Math learn statistics", profile.CombinedText())
}
