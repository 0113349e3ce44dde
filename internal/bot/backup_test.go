package bot

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mock_bot "github.com/anvy2024/Duolingo-sub000/internal/bot/mock"
	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupT_sendExport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_bot.NewMockServiceI(ctrl)
	mockService.EXPECT().Export(gomock.Any()).Return([]byte(`{"type":"global"}`), nil)

	mockBot := &mock_bot.MockBot{}
	backupT := NewBackupTAPI(mockBot, &mock_bot.MockFileURLGetter{}, cache.NewCache(), mockService)

	backupT.sendExport(testMessage())

	require.Equal(t, 1, len(mockBot.SentMessages))
	doc, ok := mockBot.SentMessages[0].(tgbotapi.DocumentConfig)
	require.True(t, ok)

	file, ok := doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Contains(t, file.Name, "vocab-backup-")
	assert.Equal(t, []byte(`{"type":"global"}`), file.Bytes)
}

func TestBackupT_handleImportDocument(t *testing.T) {
	t.Parallel()

	payload := []byte(`[{"word":"hello","translation":"bonjour"}]`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(payload)
	}))
	t.Cleanup(server.Close)

	tests := []struct {
		name     string
		f        func(*mock_bot.MockServiceI)
		wantText string
	}{
		{
			name: "success",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Import(gomock.Any(), payload, "en").Return(map[string]string{}, nil)
			},
			wantText: "✅ Backup restored! Your words were merged, nothing was lost.",
		},
		{
			name: "unrecognized file",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Import(gomock.Any(), payload, "en").Return(nil, assert.AnError)
			},
			wantText: "❌ That doesn't look like one of my backup files.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mock_bot.NewMockServiceI(ctrl)
			tt.f(mockService)

			mockBot := &mock_bot.MockBot{}
			files := &mock_bot.MockFileURLGetter{URL: server.URL}
			backupT := NewBackupTAPI(mockBot, files, cache.NewCache(), mockService)

			message := testMessage()
			message.Document = &tgbotapi.Document{FileID: "file-1"}

			backupT.handleImportDocument(message, "en")

			require.Equal(t, 1, len(mockBot.SentMessages))
			msg, ok := mockBot.SentMessages[0].(tgbotapi.MessageConfig)
			require.True(t, ok)
			assert.Equal(t, tt.wantText, msg.Text)
		})
	}
}

func TestBackupT_handleImportDocument_DownloadFails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}
	files := &mock_bot.MockFileURLGetter{Err: assert.AnError}
	backupT := NewBackupTAPI(mockBot, files, cache.NewCache(), mockService)

	message := testMessage()
	message.Document = &tgbotapi.Document{FileID: "file-1"}

	backupT.handleImportDocument(message, "en")

	require.Equal(t, 1, len(mockBot.SentMessages))
	msg, ok := mockBot.SentMessages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, "❌ Couldn't read that file.", msg.Text)
}
