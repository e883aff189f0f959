package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/yogeshwar16/realestatehousing/internal/client"
	"github.com/yogeshwar16/realestatehousing/internal/config"
	"github.com/yogeshwar16/realestatehousing/internal/session"
	"github.com/yogeshwar16/realestatehousing/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}
	cfg := config.Load()
	logger.Init(cfg.Server.Env)

	api := client.New(cfg.Client.BaseURL, client.WithTimeout(cfg.Client.Timeout))
	store, err := session.Open(cfg.Client.SessionPath)
	if err != nil {
		log.Fatalf("open session store: %v", err)
	}
	defer store.Close()

	app := &app{api: api, store: store}
	ctx := context.Background()

	cmd, args := os.Args[1], os.Args[2:]
	if err := app.run(ctx, cmd, args); err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: propcli <command> [flags]

commands:
  signup           register a new account
  send-otp         request a login OTP for a registered mobile number
  login            exchange mobile number + OTP for a session
  whoami           show the locally persisted session
  update-profile   update the logged-in user's profile
  logout           clear the local session
  properties       list properties with optional filters
  property         show one property by ID
  create-property  list a property (sellers only)
  inquire          raise an inquiry about a property (customers only)`)
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "signup":
		return a.signup(ctx, args)
	case "send-otp":
		return a.sendOTP(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "whoami":
		return a.whoami()
	case "update-profile":
		return a.updateProfile(ctx, args)
	case "logout":
		return a.logout()
	case "properties":
		return a.properties(ctx, args)
	case "property":
		return a.property(ctx, args)
	case "create-property":
		return a.createProperty(ctx, args)
	case "inquire":
		return a.inquire(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}
