package gemini

import (
	"fmt"
	"sync"

	"influencer-srv/config"
	"influencer-srv/pkg/gemini"
)

var (
	instance gemini.IGemini
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the Gemini client using singleton pattern.
func Connect(cfg config.GeminiConfig) (gemini.IGemini, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := gemini.NewGemini(gemini.GeminiConfig{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Gemini client: %w", e)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// GetClient returns the singleton Gemini client.
func GetClient() gemini.IGemini {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("Gemini client not initialized. Call Connect() first")
	}
	return instance
}
