package main

import (
	"os"

	"esg-assistant/internal/app"
)

// @title           ESG Assistant API
// @version         1.0
// @description     Conversation history, message exchange and report analysis for the ESG chatbot.
// @host            localhost:8000
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
