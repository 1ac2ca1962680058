package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/remsodo/internal/llm"
	"github.com/alexanderramin/remsodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_SendCarriesHistory(t *testing.T) {
	client := testutil.NewFakeLLMClient("first answer", "second answer")
	svc := NewChatService(client)
	conv := &Conversation{CourseTitle: "Intro to Go"}

	reply, err := svc.Send(context.Background(), conv, "what is a goroutine?")
	require.NoError(t, err)
	assert.Equal(t, "first answer", reply)

	_, err = svc.Send(context.Background(), conv, "and a channel?")
	require.NoError(t, err)

	req := client.LastRequest()
	assert.Equal(t, llm.TaskChat, req.Task)
	assert.Contains(t, req.SystemPrompt, `teaching assistant for the course "Intro to Go"`)
	require.Len(t, req.History, 2)
	assert.Equal(t, "what is a goroutine?", req.History[0].Text)
	assert.Equal(t, llm.RoleModel, req.History[1].Role)
	assert.Len(t, conv.Turns, 4)
}

func TestChatService_FailureLeavesConversation(t *testing.T) {
	client := &testutil.FakeLLMClient{Err: llm.ErrUnavailable}
	conv := &Conversation{}

	_, err := NewChatService(client).Send(context.Background(), conv, "hello")
	assert.ErrorIs(t, err, llm.ErrUnavailable)
	assert.Empty(t, conv.Turns)
	assert.Equal(t, GeneralChatErrorReply, conv.ErrorReply())
}

func TestConversation_Greetings(t *testing.T) {
	assert.Equal(t, GeneralGreeting, (&Conversation{}).Greeting())
	assert.Equal(t, `Hello! I'm your assistant for "Go". How can I help you today?`,
		(&Conversation{CourseTitle: "Go"}).Greeting())
	assert.Equal(t, CourseChatErrorReply, (&Conversation{CourseTitle: "Go"}).ErrorReply())
}

func TestAssistant_SendBeforeStartFails(t *testing.T) {
	a := NewAssistant(NewChatService(testutil.NewFakeLLMClient("hi")))
	_, err := a.SendChatMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrChatNotStarted)
}

func TestAssistant_StartChatResetsCourseConversation(t *testing.T) {
	client := testutil.NewFakeLLMClient("a1", "a2", "a3")
	a := NewAssistant(NewChatService(client))

	a.StartChat("Go")
	_, err := a.SendChatMessage(context.Background(), "q1")
	require.NoError(t, err)

	a.StartChat("Rust")
	_, err = a.SendChatMessage(context.Background(), "q2")
	require.NoError(t, err)

	req := client.LastRequest()
	assert.Empty(t, req.History)
	assert.Contains(t, req.SystemPrompt, `"Rust"`)
}

func TestAssistant_StartChatWithHistory(t *testing.T) {
	client := testutil.NewFakeLLMClient("a")
	a := NewAssistant(NewChatService(client))

	a.StartChat("Go", llm.Turn{Role: llm.RoleUser, Text: "earlier"}, llm.Turn{Role: llm.RoleModel, Text: "reply"})
	assert.Equal(t, "Go", a.CourseTitle())
	_, err := a.SendChatMessage(context.Background(), "next")
	require.NoError(t, err)
	assert.Len(t, client.LastRequest().History, 2)
}

func TestAssistant_GeneralChatIsLazyAndSeparate(t *testing.T) {
	client := testutil.NewFakeLLMClient("hey", "again")
	a := NewAssistant(NewChatService(client))

	_, err := a.SendGeneralChatMessage(context.Background(), "hi")
	require.NoError(t, err)
	_, err = a.SendGeneralChatMessage(context.Background(), "suggest a course")
	require.NoError(t, err)

	req := client.LastRequest()
	assert.Contains(t, req.SystemPrompt, "You are Remi")
	assert.Len(t, req.History, 2)

	_, err = a.SendChatMessage(context.Background(), "x")
	assert.ErrorIs(t, err, ErrChatNotStarted)
}
