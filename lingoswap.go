// Package lingoswap provides a direction-aware AI translation assistant
// for editor text selections.
//
// Lingoswap detects which of two configured languages a selection is
// written in by scoring Unicode script-range membership, orients the
// translation direction accordingly, and sends the selection to an AI
// provider (OpenAI, etc.) for translation or grammar correction, with
// optional result caching.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/glottolabs/lingoswap"
//	    "github.com/glottolabs/lingoswap/cache"
//	    "github.com/glottolabs/lingoswap/provider"
//	)
//
//	func main() {
//	    // Create provider
//	    p := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    // Create assistant
//	    a := lingoswap.NewAssistant("English", "繁體中文", p,
//	        lingoswap.WithCache(cache.NewInMemoryCache(3600)),
//	    )
//
//	    // Translate a selection; direction follows the detected language
//	    result, err := a.Translate(context.Background(), "這是測試")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Output) // English rendering of the selection
//	}
package lingoswap
