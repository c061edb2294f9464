// FILE: cmd/cli/main.go
// PURPOSE: Interactive console for chatting with JUGAAD without the HTTP layer.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"jugaad-deals-be/internal/bootstrap"
	"jugaad-deals-be/internal/config"
	"jugaad-deals-be/internal/constant"
	"jugaad-deals-be/internal/pkg/logger"

	"github.com/fatih/color"
)

var exitWords = map[string]bool{"quit": true, "exit": true, "bye": true}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	sysLogger := logger.NewFileLogger(cfg.App.LogFilePath)
	defer sysLogger.Sync()

	ctx := context.Background()
	engine, err := bootstrap.NewEngine(ctx, cfg, sysLogger)
	if err != nil {
		log.Fatalf("Unable to start: %v", err)
	}

	bot := color.New(color.FgGreen, color.Bold)
	you := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	bot.Print(constant.AssistantName + ": ")
	fmt.Println(constant.WelcomeGreeting)
	dim.Println("(type 'quit', 'exit' or 'bye' to leave)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		you.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if exitWords[strings.ToLower(input)] {
			bot.Print(constant.AssistantName + ": ")
			fmt.Println("Bye! Happy saving! JUGAAD se hi to duniya chalti hai! 👋")
			return
		}

		reply := engine.Dispatcher.DispatchSession(ctx, engine.SessionRepo, constant.DefaultSessionID, input)
		bot.Print(constant.AssistantName + ": ")
		fmt.Println(reply.Text)
	}

	if err := scanner.Err(); err != nil {
		color.Red("input error: %v", err)
	}
}
