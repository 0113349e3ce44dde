package cache

import (
	"strings"
	"sync"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
)

// Cache holds the in-memory audio snippet map (hydrated from the store at
// startup, write-through afterwards) and per-user bot session state.
type Cache struct {
	mu       sync.Mutex
	snippets map[string]string
	langs    map[int64]string
	cards    map[int64]models.Word
}

func NewCache() *Cache {
	return &Cache{
		snippets: make(map[string]string),
		langs:    make(map[int64]string),
		cards:    make(map[int64]models.Word),
	}
}

func (c *Cache) SetSnippet(key, payload string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snippets[key] = payload
}

func (c *Cache) GetSnippet(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, exists := c.snippets[strings.TrimSpace(key)]
	return payload, exists
}

func (c *Cache) DeleteSnippet(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snippets, strings.TrimSpace(key))
}

// ReplaceSnippets swaps the whole snippet map, used after startup hydration
// and after a backup import.
func (c *Cache) ReplaceSnippets(snippets map[string]string) {
	if snippets == nil {
		snippets = make(map[string]string)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snippets = snippets
}

// SetLang remembers the language a user is currently studying.
func (c *Cache) SetLang(userID int64, lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.langs[userID] = lang
}

func (c *Cache) GetLang(userID int64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lang, exists := c.langs[userID]
	return lang, exists
}

// SetCard stores the flashcard a user is currently looking at.
func (c *Cache) SetCard(userID int64, word models.Word) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards[userID] = word
}

func (c *Cache) GetCard(userID int64) (models.Word, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	word, exists := c.cards[userID]
	return word, exists
}

func (c *Cache) DeleteCard(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cards, userID)
}
