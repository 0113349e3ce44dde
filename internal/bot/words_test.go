package bot

import (
	"testing"

	mock_bot "github.com/anvy2024/Duolingo-sub000/internal/bot/mock"
	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWordTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) *WordT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	cache := cache.NewCache()
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewWordTAPI(mockBot, cache, mockService)
}

func testMessage() *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
	}
}

func testQuery(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "query-id",
		Data:    data,
		From:    &tgbotapi.User{ID: 456},
		Message: testMessage(),
	}
}

func TestWordT_showWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		filter     string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:   "success: sends list with pagination",
			page:   0,
			filter: "all",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Words(gomock.Any(), "fr", 0, "all").Return("1. **chat** → *cat*", true, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "1. **chat** → *cat*", msg.Text)
				assert.Equal(t, "markdown", msg.ParseMode)

				kb, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				assert.Equal(t, "Next ▶️", kb.InlineKeyboard[0][0].Text)
				assert.Equal(t, "words_all_1", *kb.InlineKeyboard[0][0].CallbackData)
			},
		},
		{
			name:   "error: empty list",
			page:   0,
			filter: "favorite",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Words(gomock.Any(), "fr", 0, "favorite").Return("", false, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "❌ Nothing to show here yet", msg.Text)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wordT := newWordTMock(t, ctrl, tt.f)
			mockBot := wordT.bot.(*mock_bot.MockBot)

			wordT.showWords(testMessage(), "fr", tt.page, tt.filter)
			tt.assertFunc(t, mockBot)
		})
	}
}

func TestWordT_handleGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: lists generated words",
			data: "gen_" + models.CategoryGeneral,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().GenerateWords(gomock.Any(), "fr", models.CategoryGeneral, wordsPerBatch).Return([]models.Word{
					{ID: "1", Target: "chat", NativeMeaning: "cat"},
					{ID: "2", Target: "chien", NativeMeaning: "dog"},
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages), "wait notice plus result")
				msg, ok := mb.SentMessages[1].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "2 new words added")
				assert.Contains(t, msg.Text, "chat")
				assert.Contains(t, msg.Text, "chien")
			},
		},
		{
			name: "error: generation fails",
			data: "gen_" + models.CategoryCommonVerbs,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().GenerateWords(gomock.Any(), "fr", models.CategoryCommonVerbs, wordsPerBatch).Return(nil, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				msg, ok := mb.SentMessages[1].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "❌ Couldn't generate words. Try again later.", msg.Text)
			},
		},
		{
			name: "unknown category is ignored",
			data: "gen_bogus",
			f:    nil,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wordT := newWordTMock(t, ctrl, tt.f)
			mockBot := wordT.bot.(*mock_bot.MockBot)

			wordT.handleGenerate(testQuery(tt.data), "fr")
			tt.assertFunc(t, mockBot)
		})
	}
}

func TestWordT_handlePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: edits message in place",
			data: "words_mastered_2",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Words(gomock.Any(), "fr", 2, "mastered").Return("page three", false, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				edit, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Equal(t, "page three", edit.Text)

				require.NotNil(t, edit.ReplyMarkup)
				assert.Equal(t, "◀️ Prev", edit.ReplyMarkup.InlineKeyboard[0][0].Text)
				assert.Equal(t, "words_mastered_1", *edit.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
			},
		},
		{
			name: "error: bad filter",
			data: "words_bogus_0",
			f:    nil,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "❌ Error: bad list filter.", msg.Text)
			},
		},
		{
			name: "error: bad page number",
			data: "words_all_x",
			f:    nil,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "❌ Error: bad page number.", msg.Text)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wordT := newWordTMock(t, ctrl, tt.f)
			mockBot := wordT.bot.(*mock_bot.MockBot)

			wordT.handlePagination(testQuery(tt.data), "fr")
			tt.assertFunc(t, mockBot)
		})
	}
}
