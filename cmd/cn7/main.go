package main

import (
	"cn7-transcriptor/cmd/cn7/cmd"

	// Import providers to register them
	_ "cn7-transcriptor/internal/app/api/gemini"
	_ "cn7-transcriptor/internal/app/api/openai/whisper"
)

func main() {
	cmd.Execute()
}
