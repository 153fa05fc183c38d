package utils

import (
	"math/rand"
)

// GetRandomEmoji returns a random emoji used as the default avatar.
func GetRandomEmoji() string {
	emojis := []string{"✒️", "🖋️", "📜", "📖", "📝", "🪶", "📚", "🗞️", "✏️", "🖊️", "📰", "🔖"}
	return emojis[rand.Intn(len(emojis))]
}
