// Command adduser membuat (atau me-reset) akun admin dashboard.
//
//	go run ./cmd/adduser -username admin
//
// Password dibaca dari terminal tanpa echo, atau dari ADMIN_PASSWORD bila
// stdin bukan terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"darulfatheh_backend/internals/configs"
	database "darulfatheh_backend/internals/databases"
	authRepo "darulfatheh_backend/internals/features/users/auth/repository"
	authService "darulfatheh_backend/internals/features/users/auth/service"
)

const minPasswordLen = 8

func main() {
	username := flag.String("username", "", "admin username")
	flag.Parse()

	name := strings.TrimSpace(*username)
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: adduser -username <name>")
		os.Exit(2)
	}

	cfg := configs.Load()
	configs.InitLogger(cfg.Debug)

	password, err := readPassword()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer database.Close(db)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ %v", err)
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, created, err := authRepo.UpsertAdmin(ctx, db, name, hash)
	if err != nil {
		log.Fatalf("❌ save admin: %v", err)
	}
	if created {
		fmt.Printf("Admin created: %s (%s)\n", admin.AdminUsername, admin.AdminID)
	} else {
		fmt.Printf("Admin password reset: %s\n", admin.AdminUsername)
	}
}

func readPassword() (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		pw := os.Getenv("ADMIN_PASSWORD")
		if len(pw) < minPasswordLen {
			return "", fmt.Errorf("ADMIN_PASSWORD must be at least %d characters", minPasswordLen)
		}
		return pw, nil
	}

	fmt.Print("Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(first) < minPasswordLen {
		return "", fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return string(first), nil
}
