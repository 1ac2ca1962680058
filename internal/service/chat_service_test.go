package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/intelligence"
	"github.com/alexanderramin/remsodo/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_CourseChatNeedsStart(t *testing.T) {
	svc := newTestEnv(t).chatService()
	_, err := svc.SendChatMessage(context.Background(), &domain.User{Email: student}, "hello")
	assert.ErrorIs(t, err, intelligence.ErrChatNotStarted)

	_, err = svc.StartChat(context.Background(), nil, "Intro to AI")
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestChatService_CourseChatPersistsTranscript(t *testing.T) {
	env := newTestEnv(t, "Gradient descent walks downhill.", "Learning rate sets the step.")
	ctx := context.Background()
	user := &domain.User{Email: student}

	svc := env.chatService()
	sess, err := svc.StartChat(ctx, user, "Intro to AI")
	require.NoError(t, err)
	assert.Contains(t, sess.Greeting, "Intro to AI")
	assert.Empty(t, sess.Transcript)

	reply, err := svc.SendChatMessage(ctx, user, "What is gradient descent?")
	require.NoError(t, err)
	assert.False(t, reply.Failed)
	assert.Equal(t, "Gradient descent walks downhill.", reply.Message.Text)

	// A new process resumes with the stored history sent to the model.
	svc = env.chatService()
	sess, err = svc.StartChat(ctx, user, "Intro to AI")
	require.NoError(t, err)
	require.Len(t, sess.Transcript, 2)
	assert.Equal(t, domain.SenderUser, sess.Transcript[0].Sender)

	_, err = svc.SendChatMessage(ctx, user, "And the learning rate?")
	require.NoError(t, err)
	req := env.llm.LastRequest()
	require.Len(t, req.History, 2)
	assert.Equal(t, llm.RoleModel, req.History[1].Role)
	assert.Contains(t, req.SystemPrompt, "Intro to AI")
}

func TestChatService_FailureShowsApology(t *testing.T) {
	env := newTestEnv(t)
	env.llm.Err = llm.ErrUnavailable
	ctx := context.Background()
	user := &domain.User{Email: student}
	svc := env.chatService()

	_, err := svc.StartChat(ctx, user, "Intro to AI")
	require.NoError(t, err)
	reply, err := svc.SendChatMessage(ctx, user, "hello?")
	require.NoError(t, err)
	assert.True(t, reply.Failed)
	assert.Equal(t, intelligence.CourseChatErrorReply, reply.Message.Text)

	env.llm.Err = nil
	env.llm.Responses = []string{"Hi!"}
	_, err = svc.SendChatMessage(ctx, user, "hello again")
	require.NoError(t, err)
	assert.Empty(t, env.llm.LastRequest().History, "failed exchange is not model history")

	msgs, err := env.chats.Transcript(ctx, student, "course:Intro to AI")
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.True(t, msgs[1].Failed)
}

func TestChatService_GeneralChat(t *testing.T) {
	env := newTestEnv(t, "I'm Remi!")
	ctx := context.Background()
	user := &domain.User{Email: student}
	svc := env.chatService()

	sess, err := svc.OpenGeneralChat(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, intelligence.GeneralGreeting, sess.Greeting)

	reply, err := svc.SendGeneralChatMessage(ctx, user, "who are you?")
	require.NoError(t, err)
	assert.Equal(t, "I'm Remi!", reply.Message.Text)
	assert.Contains(t, env.llm.LastRequest().SystemPrompt, "Remi")

	msgs, err := env.chats.Transcript(ctx, student, "general")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	require.NoError(t, svc.Clear(ctx, user, ""))
	msgs, err = env.chats.Transcript(ctx, student, "general")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestChatService_GeneralChatNeedsSignIn(t *testing.T) {
	env := newTestEnv(t, "hi")
	ctx := context.Background()
	svc := env.chatService()

	_, err := svc.OpenGeneralChat(ctx, nil)
	assert.ErrorIs(t, err, ErrNotSignedIn)
	_, err = svc.SendGeneralChatMessage(ctx, nil, "hello")
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.ErrorIs(t, svc.Clear(ctx, nil, ""), ErrNotSignedIn)
	_, _, err = svc.Conversations(ctx, nil)
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Zero(t, env.llm.Calls())
}

func TestChatService_RejectsEmptyMessage(t *testing.T) {
	svc := newTestEnv(t).chatService()
	_, err := svc.SendGeneralChatMessage(context.Background(), &domain.User{Email: student}, "   ")
	assert.True(t, errors.Is(err, ErrEmptyMessage))
}

func TestModelTurns_DropsFailedExchange(t *testing.T) {
	msgs := []domain.ChatMessage{
		{Sender: domain.SenderUser, Text: "q1"},
		{Sender: domain.SenderAssistant, Text: "a1"},
		{Sender: domain.SenderUser, Text: "q2"},
		{Sender: domain.SenderAssistant, Text: "sorry", Failed: true},
		{Sender: domain.SenderUser, Text: "q3"},
		{Sender: domain.SenderAssistant, Text: "a3"},
	}
	turns := modelTurns(msgs)
	require.Len(t, turns, 4)
	for i, turn := range turns {
		want := llm.RoleUser
		if i%2 == 1 {
			want = llm.RoleModel
		}
		assert.Equal(t, want, turn.Role, "turn %d", i)
	}
	assert.Equal(t, "q3", turns[2].Text)
}

func TestChatService_ResumedHistorySkipsFailedExchange(t *testing.T) {
	env := newTestEnv(t, "a3")
	ctx := context.Background()
	user := &domain.User{Email: student}
	require.NoError(t, env.chats.Append(ctx, student, "course:Intro to AI",
		domain.ChatMessage{Sender: domain.SenderUser, Text: "q1"},
		domain.ChatMessage{Sender: domain.SenderAssistant, Text: "a1"},
		domain.ChatMessage{Sender: domain.SenderUser, Text: "q2"},
		domain.ChatMessage{Sender: domain.SenderAssistant, Text: "sorry", Failed: true},
	))

	svc := env.chatService()
	_, err := svc.StartChat(ctx, user, "Intro to AI")
	require.NoError(t, err)
	_, err = svc.SendChatMessage(ctx, user, "q3")
	require.NoError(t, err)

	history := env.llm.LastRequest().History
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[0].Role)
	assert.Equal(t, "q1", history[0].Text)
	assert.Equal(t, llm.RoleModel, history[1].Role)
}

func TestChatService_Conversations(t *testing.T) {
	env := newTestEnv(t, "ok")
	ctx := context.Background()
	user := &domain.User{Email: student}
	svc := env.chatService()

	titles, general, err := svc.Conversations(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, titles)
	assert.False(t, general)

	for _, title := range []string{"Modern CSS", "Intro to AI"} {
		_, err = svc.StartChat(ctx, user, title)
		require.NoError(t, err)
		_, err = svc.SendChatMessage(ctx, user, "hi")
		require.NoError(t, err)
	}
	_, err = svc.SendGeneralChatMessage(ctx, user, "hi")
	require.NoError(t, err)

	titles, general, err = svc.Conversations(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro to AI", "Modern CSS"}, titles)
	assert.True(t, general)

	titles, _, err = svc.Conversations(ctx, &domain.User{Email: "grace@example.com"})
	require.NoError(t, err)
	assert.Empty(t, titles, "transcripts are per user")
}
