package types

import (
	"testing"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
)

func TestMessage_threading(t *testing.T) {
	tests := []struct {
		name       string
		ts         string
		threadTS   string
		wantInThr  bool
		wantRoot   bool
		wantThread string
	}{
		{
			name:       "plain message",
			ts:         "1577694990.000400",
			wantInThr:  false,
			wantRoot:   false,
			wantThread: "1577694990000",
		},
		{
			name:       "thread root",
			ts:         "1577694990.000400",
			threadTS:   "1577694990.000400",
			wantInThr:  true,
			wantRoot:   true,
			wantThread: "1577694990000",
		},
		{
			name:       "thread reply",
			ts:         "1577695123.000100",
			threadTS:   "1577694990.000400",
			wantInThr:  true,
			wantRoot:   false,
			wantThread: "1577694990000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Message{Msg: slack.Msg{Timestamp: tt.ts, ThreadTimestamp: tt.threadTS}}
			assert.Equal(t, tt.wantInThr, m.IsInThread())
			assert.Equal(t, tt.wantRoot, m.IsThreadRoot())
			assert.Equal(t, tt.wantThread, m.ThreadID())
		})
	}
}

func TestSequenceID(t *testing.T) {
	tests := []struct {
		ts   string
		want string
	}{
		{"1577694990.000400", "1577694990000"},
		{"1577694990000400", "1577694990000"},
		{"1577.69", "157769"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SequenceID(tt.ts), "ts=%q", tt.ts)
	}
}

func TestMessage_SenderID(t *testing.T) {
	m := Message{Msg: slack.Msg{BotID: "B01", Username: "deploybot"}}
	assert.Equal(t, "B01", m.SenderID())
	m.User = "U01"
	assert.Equal(t, "U01", m.SenderID())
}
